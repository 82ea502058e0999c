// Package seed creates the demo accounts used in development.
package seed

import (
	"context"
	"fmt"

	"sisauth/internal/model"
	"sisauth/internal/repository"
	"sisauth/internal/utils"

	"github.com/rs/zerolog/log"
)

const DefaultPassword = "password"

type Account struct {
	Name  string
	Email string
	Role  string // empty means no role
}

var DefaultAccounts = []Account{
	{Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin},
	{Name: "Editor", Email: "editor@example.com", Role: model.RoleEditor},
	{Name: "User", Email: "user@example.com"},
}

// Run creates missing accounts and attaches their role. Existing accounts
// keep their password; running it twice changes nothing.
func Run(ctx context.Context, users repository.UserRepository, roles repository.RoleRepository, hasher *utils.PasswordHasher, accounts []Account) error {
	for _, acc := range accounts {
		user, err := users.FindByEmail(ctx, acc.Email)
		if err != nil {
			return fmt.Errorf("failed to look up %s: %w", acc.Email, err)
		}

		if user == nil {
			hash, err := hasher.Hash(DefaultPassword)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user = &model.User{Name: acc.Name, Email: acc.Email, PasswordHash: hash}
			if err := users.Create(ctx, user); err != nil {
				return fmt.Errorf("failed to create %s: %w", acc.Email, err)
			}
			log.Info().Str("email", acc.Email).Msg("seeded user")
		}

		if acc.Role == "" {
			continue
		}
		if err := attachRole(ctx, roles, user.ID, acc.Role); err != nil {
			return fmt.Errorf("failed to attach %s to %s: %w", acc.Role, acc.Email, err)
		}
	}
	return nil
}

func attachRole(ctx context.Context, roles repository.RoleRepository, userID int64, name string) error {
	role, err := roles.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("role %q does not exist", name)
	}

	current, err := roles.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(current)+1)
	for _, r := range current {
		if r.ID == role.ID {
			return nil
		}
		ids = append(ids, r.ID)
	}
	return roles.Sync(ctx, userID, append(ids, role.ID))
}
