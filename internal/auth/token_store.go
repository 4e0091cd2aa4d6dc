package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	accessTokenKeyPrefix  = "blacklist:access_token:"
)

// Storage is the subset of the Fiber storage interface the token store needs.
// Backed by Redis in production, by an in-memory map in tests.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// TokenStore handles storage and retrieval of refresh tokens and the access
// token blacklist.
type TokenStore struct {
	storage Storage
}

// NewTokenStore creates a new token store.
func NewTokenStore(storage Storage) *TokenStore {
	return &TokenStore{storage: storage}
}

type refreshTokenData struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// StoreRefreshToken stores a refresh token with TTL.
func (s *TokenStore) StoreRefreshToken(tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	payload, err := json.Marshal(refreshTokenData{UserID: userID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}
	return s.storage.Set(refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves refresh token data. Returns an error if the token
// was never stored, expired, or was revoked.
func (s *TokenStore) GetRefreshToken(tokenID string) (userID uuid.UUID, email string, err error) {
	data, err := s.storage.Get(refreshTokenKeyPrefix + tokenID)
	if err != nil || len(data) == 0 {
		return uuid.Nil, "", fmt.Errorf("refresh token not found")
	}

	var tokenData refreshTokenData
	if err := json.Unmarshal(data, &tokenData); err != nil {
		return uuid.Nil, "", fmt.Errorf("unmarshal token data: %w", err)
	}
	return tokenData.UserID, tokenData.Email, nil
}

// DeleteRefreshToken revokes a refresh token.
func (s *TokenStore) DeleteRefreshToken(tokenID string) error {
	return s.storage.Delete(refreshTokenKeyPrefix + tokenID)
}

// BlacklistAccessToken marks an access token revoked until it expires.
func (s *TokenStore) BlacklistAccessToken(tokenID string, ttl time.Duration) error {
	return s.storage.Set(accessTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsAccessTokenBlacklisted checks if an access token has been revoked.
func (s *TokenStore) IsAccessTokenBlacklisted(tokenID string) bool {
	data, err := s.storage.Get(accessTokenKeyPrefix + tokenID)
	if err != nil {
		return false // fail open: treat storage errors as not blacklisted
	}
	return len(data) > 0
}
