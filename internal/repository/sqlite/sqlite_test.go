package sqlite

import (
	"context"
	"testing"

	"github.com/nikitav/billboard/internal/model"
)

// newTestDB opens an in-memory database for a single test and closes it on
// cleanup. Each test gets a fresh, empty schema.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser inserts a user and fails the test if it errors.
func createTestUser(t *testing.T, u *UserDB, userName, email string) *model.User {
	t.Helper()
	user := &model.User{
		UserName: userName,
		Email:    email,
		Password: "e52d98c459819a11775936d8dfbb7929", // md5("secret1")
	}
	if err := u.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// createTestBillboard inserts a billboard and fails the test if it errors.
func createTestBillboard(t *testing.T, b *BillboardDB, topic, description string, userID int64) *model.Billboard {
	t.Helper()
	billboard := &model.Billboard{
		Topic:       topic,
		Description: description,
		UserID:      userID,
	}
	if err := b.Create(context.Background(), billboard); err != nil {
		t.Fatalf("failed to create test billboard: %v", err)
	}
	return billboard
}
