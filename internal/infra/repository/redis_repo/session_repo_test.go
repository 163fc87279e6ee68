package redis_repo

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var testSessionRepo *SessionRedisRepo

func TestMain(m *testing.M) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("test redis unavailable, integration tests will be skipped: %v", err)
		os.Exit(m.Run())
	}
	testSessionRepo = NewSessionRepo(client)
	os.Exit(m.Run())
}

func createRandomSession(t *testing.T, ttl time.Duration) *Session {
	t.Helper()

	session := &Session{
		SessionID: uuid.New(),
		UserID:    42,
		UserAgent: "go-test",
		ClientIP:  "127.0.0.1",
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	require.NoError(t, testSessionRepo.CreateSession(context.Background(), session, ttl))

	t.Cleanup(func() {
		testSessionRepo.DeleteSession(context.Background(), session.SessionID)
	})
	return session
}

func TestCreateAndGetSession(t *testing.T) {
	if testSessionRepo == nil {
		t.Skip("Redis not configured, skipping TestCreateAndGetSession")
	}

	session := createRandomSession(t, time.Minute)

	got, err := testSessionRepo.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	require.Equal(t, session.SessionID, got.SessionID)
	require.Equal(t, session.UserID, got.UserID)
	require.Equal(t, session.UserAgent, got.UserAgent)
	require.False(t, got.IsBlocked)
}

func TestGetSession_NotFound(t *testing.T) {
	if testSessionRepo == nil {
		t.Skip("Redis not configured, skipping TestGetSession_NotFound")
	}

	_, err := testSessionRepo.GetSession(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_TTLExpiry(t *testing.T) {
	if testSessionRepo == nil {
		t.Skip("Redis not configured, skipping TestSession_TTLExpiry")
	}

	session := createRandomSession(t, 500*time.Millisecond)

	time.Sleep(700 * time.Millisecond)

	_, err := testSessionRepo.GetSession(context.Background(), session.SessionID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBlockSession(t *testing.T) {
	if testSessionRepo == nil {
		t.Skip("Redis not configured, skipping TestBlockSession")
	}

	session := createRandomSession(t, time.Minute)

	require.NoError(t, testSessionRepo.BlockSession(context.Background(), session.SessionID))

	got, err := testSessionRepo.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	require.True(t, got.IsBlocked)
}

func TestDeleteSession(t *testing.T) {
	if testSessionRepo == nil {
		t.Skip("Redis not configured, skipping TestDeleteSession")
	}

	session := createRandomSession(t, time.Minute)

	require.NoError(t, testSessionRepo.DeleteSession(context.Background(), session.SessionID))

	_, err := testSessionRepo.GetSession(context.Background(), session.SessionID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}
