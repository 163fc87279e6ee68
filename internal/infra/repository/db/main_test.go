package db

import (
	"log"
	"os"
	"testing"
)

var testStore *StoreImpl

func TestMain(m *testing.M) {
	conn, err := GetDbConn("shopcenter", "localhost", "5432", "royce", "password")
	if err != nil {
		log.Printf("test database unavailable, integration tests will be skipped: %v", err)
		os.Exit(m.Run())
	}

	testStore = NewStore(conn)
	if err := testStore.InitMigrate(); err != nil {
		log.Fatalf("migrate test database failed: %v", err)
	}

	os.Exit(m.Run())
}
