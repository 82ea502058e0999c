package repository

import (
	"context"
	"errors"
	"fmt"

	"sisauth/internal/model"

	"github.com/jackc/pgx/v5"
)

// RoleRepository defines operations on roles and the role_user association
type RoleRepository interface {
	FindAll(ctx context.Context) ([]model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Role, error)
	RoleNamesByUser(ctx context.Context, userID int64) ([]string, error)
	CountByIDs(ctx context.Context, ids []int64) (int, error)
	Sync(ctx context.Context, userID int64, roleIDs []int64) error
	Detach(ctx context.Context, userID int64, roleIDs []int64) error
}

type roleRepository struct {
	db DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) list(ctx context.Context, sql string, args ...any) ([]model.Role, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	roles := []model.Role{}
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}
	return roles, nil
}

// FindAll lists every role
func (r *roleRepository) FindAll(ctx context.Context) ([]model.Role, error) {
	return r.list(ctx, `SELECT id, name, created_at, updated_at FROM roles ORDER BY id`)
}

// FindByUser lists the roles linked to userID
func (r *roleRepository) FindByUser(ctx context.Context, userID int64) ([]model.Role, error) {
	return r.list(ctx, `SELECT r.id, r.name, r.created_at, r.updated_at
            FROM roles r JOIN role_user ru ON ru.role_id = r.id
            WHERE ru.user_id = $1 ORDER BY r.id`, userID)
}

// FindByName retrieves a role by name; (nil, nil) when absent
func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	role := &model.Role{}
	err := r.db.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM roles WHERE name = $1`, name).
		Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find role by name: %w", err)
	}
	return role, nil
}

// RoleNamesByUser returns just the role names, for the authorization gate
func (r *roleRepository) RoleNamesByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT r.name FROM roles r
            JOIN role_user ru ON ru.role_id = r.id WHERE ru.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query role names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role names: %w", err)
	}
	return names, nil
}

// CountByIDs counts how many of ids exist
func (r *roleRepository) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM roles WHERE id = ANY($1)`, ids).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count roles: %w", err)
	}
	return n, nil
}

// Sync makes the user's role set exactly roleIDs, in one transaction
func (r *roleRepository) Sync(ctx context.Context, userID int64, roleIDs []int64) error {
	if roleIDs == nil {
		roleIDs = []int64{} // nil would encode as NULL and match nothing
	}
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM role_user WHERE user_id = $1 AND NOT (role_id = ANY($2))`, userID, roleIDs); err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		_, err := tx.Exec(ctx, `INSERT INTO role_user (user_id, role_id)
            SELECT $1, unnest($2::bigint[]) ON CONFLICT DO NOTHING`, userID, roleIDs)
		return err
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrForeignKey
		}
		return fmt.Errorf("failed to sync roles: %w", err)
	}
	return nil
}

// Detach removes roleIDs from the user's role set
func (r *roleRepository) Detach(ctx context.Context, userID int64, roleIDs []int64) error {
	if len(roleIDs) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM role_user WHERE user_id = $1 AND role_id = ANY($2)`, userID, roleIDs); err != nil {
		return fmt.Errorf("failed to detach roles: %w", err)
	}
	return nil
}
