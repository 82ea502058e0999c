package repository

import (
	"context"
	"errors"
	"fmt"

	"sisauth/internal/model"

	"github.com/jackc/pgx/v5"
)

const addressColumns = `id, user_id, street, number, neighborhood, complement, postal_code, created_at, updated_at`

// AddressRepository defines operations for address data
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	FindAll(ctx context.Context) ([]model.Address, error)
	FindByID(ctx context.Context, id int64) (*model.Address, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Address, error)
	Update(ctx context.Context, id int64, changes model.UpdateAddressRequest) (*model.Address, error)
	Delete(ctx context.Context, id int64) error
}

type addressRepository struct {
	db DB
}

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(db DB) AddressRepository {
	return &addressRepository{db: db}
}

func scanAddress(row pgx.Row, a *model.Address) error {
	return row.Scan(&a.ID, &a.UserID, &a.Street, &a.Number, &a.Neighborhood, &a.Complement, &a.PostalCode, &a.CreatedAt, &a.UpdatedAt)
}

// Create inserts an address for an existing user
func (r *addressRepository) Create(ctx context.Context, a *model.Address) error {
	sql := `INSERT INTO addresses (user_id, street, number, neighborhood, complement, postal_code)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, a.UserID, a.Street, a.Number, a.Neighborhood, a.Complement, a.PostalCode).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrForeignKey
		}
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (r *addressRepository) list(ctx context.Context, sql string, args ...any) ([]model.Address, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	addresses := []model.Address{}
	for rows.Next() {
		var a model.Address
		if err := scanAddress(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan address row: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating address rows: %w", err)
	}
	return addresses, nil
}

// FindAll lists every address ordered by id
func (r *addressRepository) FindAll(ctx context.Context) ([]model.Address, error) {
	return r.list(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY id`)
}

// FindByUser lists the addresses owned by userID
func (r *addressRepository) FindByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	return r.list(ctx, `SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY id`, userID)
}

// FindByID retrieves an address; (nil, nil) when absent
func (r *addressRepository) FindByID(ctx context.Context, id int64) (*model.Address, error) {
	a := &model.Address{}
	err := scanAddress(r.db.QueryRow(ctx, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find address by ID: %w", err)
	}
	return a, nil
}

// Update applies the present fields in a single statement; (nil, nil) when the row is gone
func (r *addressRepository) Update(ctx context.Context, id int64, changes model.UpdateAddressRequest) (*model.Address, error) {
	sql := `UPDATE addresses
            SET street = COALESCE($2, street),
                number = COALESCE($3, number),
                neighborhood = COALESCE($4, neighborhood),
                complement = CASE WHEN $5::boolean THEN $6 ELSE complement END,
                postal_code = COALESCE($7, postal_code)
            WHERE id = $1
            RETURNING ` + addressColumns
	a := &model.Address{}
	err := scanAddress(r.db.QueryRow(ctx, sql, id, changes.Street, changes.Number, changes.Neighborhood,
		changes.Complement.Set, changes.Complement.Value, changes.PostalCode), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return a, nil
}

// Delete removes an address
func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
