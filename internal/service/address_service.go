package service

import (
	"context"
	"errors"
	"fmt"

	"sisauth/internal/model"
	"sisauth/internal/repository"
)

// AddressService defines operations on user addresses
type AddressService interface {
	List(ctx context.Context) ([]model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	Get(ctx context.Context, id int64) (*model.Address, error)
	Create(ctx context.Context, userID int64, req model.CreateAddressRequest) (*model.Address, error)
	Update(ctx context.Context, id int64, req model.UpdateAddressRequest) (*model.Address, error)
	Delete(ctx context.Context, id int64) error
}

type addressService struct {
	repo     repository.AddressRepository
	userRepo repository.UserRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(repo repository.AddressRepository, userRepo repository.UserRepository) AddressService {
	return &addressService{repo: repo, userRepo: userRepo}
}

func (s *addressService) List(ctx context.Context) ([]model.Address, error) {
	addresses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

func (s *addressService) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	addresses, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses for user %d: %w", userID, err)
	}
	return addresses, nil
}

func (s *addressService) Get(ctx context.Context, id int64) (*model.Address, error) {
	address, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

// Create attaches a new address to an existing user.
func (s *addressService) Create(ctx context.Context, userID int64, req model.CreateAddressRequest) (*model.Address, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	address := &model.Address{
		UserID:       userID,
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		Complement:   req.Complement,
		PostalCode:   req.PostalCode,
	}
	if err := s.repo.Create(ctx, address); err != nil {
		// user deleted between the check and the insert
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create address in repository: %w", err)
	}
	return address, nil
}

func (s *addressService) Update(ctx context.Context, id int64, req model.UpdateAddressRequest) (*model.Address, error) {
	address, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update address in repository: %w", err)
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

func (s *addressService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAddressNotFound
		}
		return fmt.Errorf("failed to delete address in repository: %w", err)
	}
	return nil
}

func (s *addressService) ensureUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
