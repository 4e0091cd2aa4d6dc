package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memStorage is an in-memory Storage for tests. TTLs are recorded but not
// enforced; expiry behavior belongs to the backing store.
type memStorage struct {
	data map[string][]byte
	err  error
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (m *memStorage) Get(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data[key], nil
}

func (m *memStorage) Set(key string, val []byte, exp time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = val
	return nil
}

func (m *memStorage) Delete(key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	store := NewTokenStore(newMemStorage())
	userID := uuid.New()

	if err := store.StoreRefreshToken("token-1", userID, "user@example.com", time.Hour); err != nil {
		t.Fatalf("StoreRefreshToken() error = %v", err)
	}

	gotID, gotEmail, err := store.GetRefreshToken("token-1")
	if err != nil {
		t.Fatalf("GetRefreshToken() error = %v", err)
	}
	if gotID != userID {
		t.Errorf("userID = %v, want %v", gotID, userID)
	}
	if gotEmail != "user@example.com" {
		t.Errorf("email = %q, want %q", gotEmail, "user@example.com")
	}
}

func TestGetRefreshTokenUnknown(t *testing.T) {
	store := NewTokenStore(newMemStorage())

	if _, _, err := store.GetRefreshToken("never-stored"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestDeleteRefreshTokenRevokes(t *testing.T) {
	store := NewTokenStore(newMemStorage())

	if err := store.StoreRefreshToken("token-1", uuid.New(), "user@example.com", time.Hour); err != nil {
		t.Fatalf("StoreRefreshToken() error = %v", err)
	}
	if err := store.DeleteRefreshToken("token-1"); err != nil {
		t.Fatalf("DeleteRefreshToken() error = %v", err)
	}
	if _, _, err := store.GetRefreshToken("token-1"); err == nil {
		t.Error("expected error after revocation")
	}
}

func TestAccessTokenBlacklist(t *testing.T) {
	store := NewTokenStore(newMemStorage())

	if store.IsAccessTokenBlacklisted("jti-1") {
		t.Error("token blacklisted before BlacklistAccessToken()")
	}
	if err := store.BlacklistAccessToken("jti-1", time.Minute); err != nil {
		t.Fatalf("BlacklistAccessToken() error = %v", err)
	}
	if !store.IsAccessTokenBlacklisted("jti-1") {
		t.Error("token not blacklisted after BlacklistAccessToken()")
	}
	if store.IsAccessTokenBlacklisted("jti-2") {
		t.Error("unrelated token reported blacklisted")
	}
}

func TestBlacklistFailsOpenOnStorageError(t *testing.T) {
	storage := newMemStorage()
	store := NewTokenStore(storage)
	storage.err = errors.New("redis down")

	if store.IsAccessTokenBlacklisted("jti-1") {
		t.Error("storage errors should not report tokens as blacklisted")
	}
}

func TestTokenKeysDoNotCollide(t *testing.T) {
	store := NewTokenStore(newMemStorage())
	userID := uuid.New()

	// Same ID used as refresh token and blacklisted access token must not
	// overwrite each other.
	if err := store.StoreRefreshToken("shared-id", userID, "user@example.com", time.Hour); err != nil {
		t.Fatalf("StoreRefreshToken() error = %v", err)
	}
	if err := store.BlacklistAccessToken("shared-id", time.Minute); err != nil {
		t.Fatalf("BlacklistAccessToken() error = %v", err)
	}

	if _, _, err := store.GetRefreshToken("shared-id"); err != nil {
		t.Errorf("GetRefreshToken() error = %v, want nil", err)
	}
	if !store.IsAccessTokenBlacklisted("shared-id") {
		t.Error("access token not blacklisted")
	}
}
