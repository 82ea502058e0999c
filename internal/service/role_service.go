package service

import (
	"context"
	"errors"
	"fmt"

	"sisauth/internal/model"
	"sisauth/internal/repository"

	"github.com/rs/zerolog/log"
)

// RoleService manages the roles attached to users
type RoleService interface {
	All(ctx context.Context) ([]model.Role, error)
	UserRoles(ctx context.Context, userID int64) ([]model.Role, error)
	Assign(ctx context.Context, userID int64, roleIDs []int64) error
	Revoke(ctx context.Context, userID int64, roleIDs []int64) error
	RoleNames(ctx context.Context, userID int64) ([]string, error)
}

type roleService struct {
	repo     repository.RoleRepository
	userRepo repository.UserRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(repo repository.RoleRepository, userRepo repository.UserRepository) RoleService {
	return &roleService{repo: repo, userRepo: userRepo}
}

func (s *roleService) All(ctx context.Context) ([]model.Role, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (s *roleService) UserRoles(ctx context.Context, userID int64) ([]model.Role, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	roles, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for user %d: %w", userID, err)
	}
	return roles, nil
}

// Assign makes the user's role set equal to roleIDs. An empty list clears
// every role.
func (s *roleService) Assign(ctx context.Context, userID int64, roleIDs []int64) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}

	ids, err := s.knownRoles(ctx, roleIDs)
	if err != nil {
		return err
	}

	if err := s.repo.Sync(ctx, userID, ids); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return ErrUnknownRole
		}
		return fmt.Errorf("failed to sync roles: %w", err)
	}
	log.Info().Int64("user_id", userID).Ints64("roles", ids).Msg("roles assigned")
	return nil
}

// Revoke removes roleIDs from the user's role set.
func (s *roleService) Revoke(ctx context.Context, userID int64, roleIDs []int64) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}

	ids, err := s.knownRoles(ctx, roleIDs)
	if err != nil {
		return err
	}

	if err := s.repo.Detach(ctx, userID, ids); err != nil {
		return fmt.Errorf("failed to detach roles: %w", err)
	}
	log.Info().Int64("user_id", userID).Ints64("roles", ids).Msg("roles revoked")
	return nil
}

// RoleNames is the lookup used by the authorization gate.
func (s *roleService) RoleNames(ctx context.Context, userID int64) ([]string, error) {
	names, err := s.repo.RoleNamesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load role names: %w", err)
	}
	return names, nil
}

// knownRoles de-duplicates ids and fails with ErrUnknownRole if any of them
// does not exist.
func (s *roleService) knownRoles(ctx context.Context, roleIDs []int64) ([]int64, error) {
	ids := dedupe(roleIDs)
	if len(ids) == 0 {
		return ids, nil
	}

	n, err := s.repo.CountByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count roles: %w", err)
	}
	if n != len(ids) {
		return nil, ErrUnknownRole
	}
	return ids, nil
}

func (s *roleService) ensureUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
