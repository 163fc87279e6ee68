package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ISessionRepository 定義 Redis 會話操作的介面
type ISessionRepository interface {
	// CreateSession 建立會話，TTL 到期自動失效
	CreateSession(ctx context.Context, session *Session, ttl time.Duration) error

	// GetSession 取得會話
	GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error)

	// BlockSession 封鎖會話，保留到 TTL 到期
	BlockSession(ctx context.Context, sessionID uuid.UUID) error

	// DeleteSession 登出時刪除會話
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

type SessionRepoError error

var (
	ErrSessionNotFound SessionRepoError = errors.New("session not found")
	ErrSessionBlocked  SessionRepoError = errors.New("session is blocked")
)

// Session 登入會話，以 session_id 為 key 存於 redis
type Session struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uint      `json:"user_id"`
	IsAdmin   bool      `json:"is_admin"`
	UserAgent string    `json:"user_agent"`
	ClientIP  string    `json:"client_ip"`
	IsBlocked bool      `json:"is_blocked"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionRedisRepo struct {
	sessionCache *redis.Client
}

func NewSessionRepo(sessionCache *redis.Client) *SessionRedisRepo {
	return &SessionRedisRepo{sessionCache: sessionCache}
}

func generateSessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *SessionRedisRepo) CreateSession(ctx context.Context, session *Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.sessionCache.Set(ctx, generateSessionKey(session.SessionID), data, ttl).Err()
}

// 取得會話
// 錯誤:
//   - ErrSessionNotFound: 會話不存在或已到期
//   - err: 其他錯誤
func (s *SessionRedisRepo) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	data, err := s.sessionCache.Get(ctx, generateSessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// 封鎖會話，TTL 不變，期間內拒絕該會話的請求
func (s *SessionRedisRepo) BlockSession(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	session.IsBlocked = true

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// KeepTTL 保留原到期時間
	return s.sessionCache.Set(ctx, generateSessionKey(sessionID), data, redis.KeepTTL).Err()
}

func (s *SessionRedisRepo) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessionCache.Del(ctx, generateSessionKey(sessionID)).Err()
}

// 確保 SessionRedisRepo 實現了 ISessionRepository 介面
var _ ISessionRepository = (*SessionRedisRepo)(nil)
