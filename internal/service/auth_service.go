package service

import (
	"context"
	"fmt"
	"strings"

	"sisauth/internal/model"
	"sisauth/internal/repository"
	"sisauth/internal/utils"

	"github.com/rs/zerolog/log"
)

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, utils.Token, error)
	Refresh(ctx context.Context, tokenString string) (*model.User, utils.Token, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	hasher   *utils.PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, hasher *utils.PasswordHasher) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		hasher:   hasher,
	}
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, utils.Token, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.Token{}, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		log.Warn().Msg("login: unknown email")
		return nil, utils.Token{}, ErrInvalidCredentials
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		log.Warn().Int64("user_id", user.ID).Msg("login: password mismatch")
		return nil, utils.Token{}, ErrInvalidCredentials
	}

	token, err := s.jwtUtil.Issue(user.ID)
	if err != nil {
		return nil, utils.Token{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Refresh re-issues a still-valid token and returns its owner. A token whose
// user has since been deleted yields ErrUserNotFound.
func (s *authService) Refresh(ctx context.Context, tokenString string) (*model.User, utils.Token, error) {
	token, err := s.jwtUtil.Refresh(tokenString)
	if err != nil {
		return nil, utils.Token{}, err
	}

	user, err := s.Profile(ctx, token.UserID)
	if err != nil {
		return nil, utils.Token{}, err
	}
	return user, token, nil
}

// Profile returns the authenticated user's record
func (s *authService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ChangePassword replaces the stored hash after checking email ownership and
// the old password. The write only lands if the hash is still the one we read.
func (s *authService) ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for password change: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !strings.EqualFold(req.Email, user.Email) {
		return nil, ErrEmailMismatch
	}
	if !s.hasher.Check(req.OldPassword, user.PasswordHash) {
		return nil, ErrOldPasswordMismatch
	}

	newHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.userRepo.UpdatePassword(ctx, userID, user.PasswordHash, newHash)
	if err != nil {
		return nil, fmt.Errorf("failed to store new password: %w", err)
	}
	if !updated {
		return nil, ErrConflict
	}

	user.PasswordHash = newHash
	log.Info().Int64("user_id", userID).Msg("password changed")
	return user, nil
}
