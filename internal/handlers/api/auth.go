package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"

	"tourismportal/internal/auth"
	"tourismportal/internal/db"
	"tourismportal/internal/models"
	"tourismportal/internal/validation"
)

const bcryptCost = 10

// AuthHandler handles registration, login, and token lifecycle.
type AuthHandler struct {
	db         *db.DB
	jwt        *auth.JWTService
	tokenStore *auth.TokenStore
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(database *db.DB, jwtService *auth.JWTService, tokenStore *auth.TokenStore) *AuthHandler {
	return &AuthHandler{db: database, jwt: jwtService, tokenStore: tokenStore}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.ValidateName(req.Name) {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	if !validation.ValidateEmail(req.Email) {
		return jsonError(c, fiber.StatusBadRequest, "invalid email address")
	}
	if ok, msg := validation.ValidatePassword(req.Password); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.db.CreateUser(c.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return jsonError(c, fiber.StatusConflict, "email is already registered")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return jsonCreated(c, userPayload(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues an access/refresh token pair.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.db.GetUserByEmail(c.Context(), email)
	if err != nil {
		// Same message as a bad password so the endpoint doesn't leak
		// which emails are registered.
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	if user.Status == models.StatusRejected {
		return jsonError(c, fiber.StatusForbidden, "account has been rejected: "+user.Remarks)
	}

	accessToken, err := h.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	refreshID, refreshToken, err := h.jwt.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	if err := h.tokenStore.StoreRefreshToken(refreshID, user.ID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return jsonSuccess(c, fiber.Map{
		"token":         accessToken,
		"refresh_token": refreshToken,
		"user":          userPayload(user),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh exchanges a valid refresh token for a new access token.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req refreshRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	claims, err := h.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "invalid or expired refresh token")
	}

	// The token must still be present in the store; logout revokes it.
	userID, _, err := h.tokenStore.GetRefreshToken(claims.ID)
	if err != nil || userID != claims.UserID {
		return jsonError(c, fiber.StatusUnauthorized, "invalid or expired refresh token")
	}

	user, err := h.db.GetUserByID(c.Context(), claims.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "invalid or expired refresh token")
	}

	accessToken, err := h.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return jsonSuccess(c, fiber.Map{"token": accessToken})
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout blacklists the presented access token and revokes the refresh token.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, ok := c.Locals("token_claims").(*auth.Claims)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.tokenStore.BlacklistAccessToken(claims.ID, auth.AccessTokenExpiry); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to log out")
	}

	var req logoutRequest
	if err := json.Unmarshal(c.Body(), &req); err == nil && req.RefreshToken != "" {
		if refreshClaims, err := h.jwt.ValidateRefreshToken(req.RefreshToken); err == nil {
			h.tokenStore.DeleteRefreshToken(refreshClaims.ID)
		}
	}

	return jsonSuccess(c, fiber.Map{"message": "logged out"})
}

type changePasswordRequest struct {
	CurrentPassword         string `json:"current_password"`
	NewPassword             string `json:"new_password"`
	NewPasswordConfirmation string `json:"new_password_confirmation"`
}

// ChangePassword replaces the authenticated user's password.
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req changePasswordRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.NewPassword != req.NewPasswordConfirmation {
		return jsonError(c, fiber.StatusBadRequest, "password confirmation does not match")
	}
	if ok, msg := validation.ValidatePassword(req.NewPassword); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to change password")
	}

	if err := h.db.UpdateUserPassword(c.Context(), user.ID, string(hash)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to change password")
	}

	return jsonSuccess(c, fiber.Map{"message": "password changed"})
}

// userPayload is the user shape returned by auth endpoints. Never includes
// the password hash.
func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"role":   user.Role,
		"status": user.Status,
	}
}
