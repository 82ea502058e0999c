package repository

import (
	"context"
	"errors"
	"fmt"

	"sisauth/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, phone, national_id, created_at, updated_at`

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, changes model.UpdateUserRequest) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, oldHash, newHash string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.NationalID, &u.CreatedAt, &u.UpdatedAt)
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (name, email, password_hash, phone, national_id)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, user.Name, user.Email, user.PasswordHash, user.Phone, user.NationalID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindAll lists every user ordered by id
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// FindByEmail retrieves a user by email, ignoring case; (nil, nil) when absent
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email), user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by id; (nil, nil) when absent
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id), user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// Update applies the present fields in a single statement; (nil, nil) when the row is gone.
// Nullable columns are written whenever their key was sent, null included.
func (r *userRepository) Update(ctx context.Context, id int64, changes model.UpdateUserRequest) (*model.User, error) {
	sql := `UPDATE users
            SET name = COALESCE($2, name),
                email = COALESCE($3, email),
                phone = CASE WHEN $4::boolean THEN $5 ELSE phone END,
                national_id = CASE WHEN $6::boolean THEN $7 ELSE national_id END
            WHERE id = $1
            RETURNING ` + userColumns
	user := &model.User{}
	err := scanUser(r.db.QueryRow(ctx, sql, id, changes.Name, changes.Email,
		changes.Phone.Set, changes.Phone.Value, changes.NationalID.Set, changes.NationalID.Value), user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// UpdatePassword swaps the hash only if it still equals oldHash.
// It reports false when the row was missing or changed concurrently.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, oldHash, newHash string) (bool, error) {
	sql := `UPDATE users SET password_hash = $1 WHERE id = $2 AND password_hash = $3`
	cmdTag, err := r.db.Exec(ctx, sql, newHash, id, oldHash)
	if err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// Delete removes a user; addresses and role links go with it via ON DELETE CASCADE
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
