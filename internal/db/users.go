package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tourismportal/internal/models"
)

const userColumns = `id, name, email, password_hash, role, status, remarks, created_at, updated_at`

func scanUser(row pgx.Row, u *models.User) error {
	return row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.Remarks,
		&u.CreatedAt, &u.UpdatedAt,
	)
}

// CreateUser inserts a new registered account. The password must already be
// hashed by the caller.
func (d *DB) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'user'))
		RETURNING id, role, status, remarks, created_at, updated_at
	`
	err := d.Pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.Role, &user.Status, &user.Remarks, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetUserByEmail retrieves a user by their login email.
func (d *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := scanUser(d.Pool.QueryRow(ctx, query, email), &user)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by their UUID.
func (d *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := scanUser(d.Pool.QueryRow(ctx, query, id), &user)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPendingUsers returns accounts awaiting review, oldest first.
func (d *DB) GetPendingUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE status = $1 ORDER BY created_at ASC`

	rows, err := d.Pool.Query(ctx, query, models.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetUserStatus records a moderation decision on a pending account.
func (d *DB) SetUserStatus(ctx context.Context, id uuid.UUID, status, remarks string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE users
		SET status = $1, remarks = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, status, remarks, id, models.StatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := d.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrUserNotPending
		}
		return ErrUserNotFound
	}
	return nil
}

// UpdateUserPassword replaces a user's password hash.
func (d *DB) UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PromoteUser sets a user's role. Used by the seed command to create admins.
func (d *DB) PromoteUser(ctx context.Context, id uuid.UUID, role string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2
	`, role, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetAdminEmails returns the email addresses of all admins, for submission
// notifications.
func (d *DB) GetAdminEmails(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT email FROM users WHERE role = $1`, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
