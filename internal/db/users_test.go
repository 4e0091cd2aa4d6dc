package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tourismportal/internal/models"
)

func TestCreateUserDefaults(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := &models.User{
		Name:         "Maria Santos",
		Email:        "maria@example.com",
		PasswordHash: "hash",
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("ID not populated")
	}
	if user.Role != models.RoleUser {
		t.Errorf("Role = %q, want %q", user.Role, models.RoleUser)
	}
	if user.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", user.Status, models.StatusPending)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	createUser(t, db, "First", "shared@example.com", "user")

	dup := &models.User{
		Name:         "Second",
		Email:        "shared@example.com",
		PasswordHash: "hash",
	}
	err := db.CreateUser(context.Background(), dup)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("CreateUser() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	created := createUser(t, db, "Maria Santos", "maria@example.com", "user")

	got, err := db.GetUserByEmail(context.Background(), "maria@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %v, want %v", got.ID, created.ID)
	}

	if _, err := db.GetUserByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByEmail(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestSetUserStatus(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createUser(t, db, "Maria Santos", "maria@example.com", "user")

	pending, err := db.GetPendingUsers(ctx)
	if err != nil {
		t.Fatalf("GetPendingUsers() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending count = %d, want 1", len(pending))
	}

	if err := db.SetUserStatus(ctx, user.ID, models.StatusRejected, "suspicious signup"); err != nil {
		t.Fatalf("SetUserStatus() error = %v", err)
	}

	got, err := db.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if got.Status != models.StatusRejected {
		t.Errorf("Status = %q, want %q", got.Status, models.StatusRejected)
	}
	if got.Remarks != "suspicious signup" {
		t.Errorf("Remarks = %q, want %q", got.Remarks, "suspicious signup")
	}

	// A second decision conflicts, same as places.
	err = db.SetUserStatus(ctx, user.ID, models.StatusApproved, "")
	if !errors.Is(err, ErrUserNotPending) {
		t.Errorf("second SetUserStatus() error = %v, want ErrUserNotPending", err)
	}
}

func TestSetUserStatusUnknownUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	err := db.SetUserStatus(context.Background(), uuid.New(), models.StatusApproved, "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SetUserStatus() error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createUser(t, db, "Maria Santos", "maria@example.com", "user")

	if err := db.UpdateUserPassword(ctx, user.ID, "newhash"); err != nil {
		t.Fatalf("UpdateUserPassword() error = %v", err)
	}

	got, err := db.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if got.PasswordHash != "newhash" {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "newhash")
	}

	if err := db.UpdateUserPassword(ctx, uuid.New(), "hash"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateUserPassword(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestPromoteUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createUser(t, db, "Maria Santos", "maria@example.com", "user")

	if err := db.PromoteUser(ctx, user.ID, models.RoleAdmin); err != nil {
		t.Fatalf("PromoteUser() error = %v", err)
	}

	got, err := db.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if !got.IsAdmin() {
		t.Errorf("Role = %q, want %q", got.Role, models.RoleAdmin)
	}
}

func TestGetAdminEmails(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	createUser(t, db, "User", "user@example.com", "user")
	createUser(t, db, "Admin One", "admin1@example.com", "admin")
	createUser(t, db, "Admin Two", "admin2@example.com", "admin")

	emails, err := db.GetAdminEmails(context.Background())
	if err != nil {
		t.Fatalf("GetAdminEmails() error = %v", err)
	}
	if len(emails) != 2 {
		t.Fatalf("admin email count = %d, want 2", len(emails))
	}
	for _, email := range emails {
		if email == "user@example.com" {
			t.Error("non-admin email included")
		}
	}
}
