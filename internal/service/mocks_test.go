package service

import (
	"context"

	"sisauth/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, changes model.UpdateUserRequest) (*model.User, error) {
	args := m.Called(ctx, id, changes)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, oldHash, newHash string) (bool, error) {
	args := m.Called(ctx, id, oldHash, newHash)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) Create(ctx context.Context, address *model.Address) error {
	args := m.Called(ctx, address)
	if args.Error(0) == nil {
		address.ID = 1
	}
	return args.Error(0)
}

func (m *mockAddressRepo) FindAll(ctx context.Context) ([]model.Address, error) {
	args := m.Called(ctx)
	addresses, _ := args.Get(0).([]model.Address)
	return addresses, args.Error(1)
}

func (m *mockAddressRepo) FindByID(ctx context.Context, id int64) (*model.Address, error) {
	args := m.Called(ctx, id)
	address, _ := args.Get(0).(*model.Address)
	return address, args.Error(1)
}

func (m *mockAddressRepo) FindByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	addresses, _ := args.Get(0).([]model.Address)
	return addresses, args.Error(1)
}

func (m *mockAddressRepo) Update(ctx context.Context, id int64, changes model.UpdateAddressRequest) (*model.Address, error) {
	args := m.Called(ctx, id, changes)
	address, _ := args.Get(0).(*model.Address)
	return address, args.Error(1)
}

func (m *mockAddressRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRoleRepo struct{ mock.Mock }

func (m *mockRoleRepo) FindAll(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]model.Role)
	return roles, args.Error(1)
}

func (m *mockRoleRepo) FindByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*model.Role)
	return role, args.Error(1)
}

func (m *mockRoleRepo) FindByUser(ctx context.Context, userID int64) ([]model.Role, error) {
	args := m.Called(ctx, userID)
	roles, _ := args.Get(0).([]model.Role)
	return roles, args.Error(1)
}

func (m *mockRoleRepo) RoleNamesByUser(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *mockRoleRepo) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *mockRoleRepo) Sync(ctx context.Context, userID int64, roleIDs []int64) error {
	return m.Called(ctx, userID, roleIDs).Error(0)
}

func (m *mockRoleRepo) Detach(ctx context.Context, userID int64, roleIDs []int64) error {
	return m.Called(ctx, userID, roleIDs).Error(0)
}
