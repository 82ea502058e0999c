package seed

import (
	"context"
	"errors"
	"testing"

	"sisauth/internal/model"
	"sisauth/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	byEmail map[string]*model.User
	next    int64
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	f.next++
	u.ID = f.next
	f.byEmail[u.Email] = u
	return nil
}
func (f *fakeUsers) FindAll(context.Context) ([]model.User, error) { return nil, nil }
func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUsers) FindByID(context.Context, int64) (*model.User, error) { return nil, nil }
func (f *fakeUsers) Update(context.Context, int64, model.UpdateUserRequest) (*model.User, error) {
	return nil, nil
}
func (f *fakeUsers) UpdatePassword(context.Context, int64, string, string) (bool, error) {
	return false, nil
}
func (f *fakeUsers) Delete(context.Context, int64) error { return nil }

type fakeRoles struct {
	roles    map[string]*model.Role
	assigned map[int64][]int64
	syncs    int
}

func (f *fakeRoles) FindAll(context.Context) ([]model.Role, error) { return nil, nil }
func (f *fakeRoles) FindByName(_ context.Context, name string) (*model.Role, error) {
	return f.roles[name], nil
}
func (f *fakeRoles) FindByUser(_ context.Context, userID int64) ([]model.Role, error) {
	var out []model.Role
	for _, id := range f.assigned[userID] {
		out = append(out, model.Role{ID: id})
	}
	return out, nil
}
func (f *fakeRoles) RoleNamesByUser(context.Context, int64) ([]string, error) { return nil, nil }
func (f *fakeRoles) CountByIDs(context.Context, []int64) (int, error)       { return 0, nil }
func (f *fakeRoles) Sync(_ context.Context, userID int64, ids []int64) error {
	f.syncs++
	f.assigned[userID] = ids
	return nil
}
func (f *fakeRoles) Detach(context.Context, int64, []int64) error { return nil }

func newFakes() (*fakeUsers, *fakeRoles) {
	return &fakeUsers{byEmail: map[string]*model.User{}}, &fakeRoles{
		roles: map[string]*model.Role{
			model.RoleAdmin:  {ID: 1, Name: model.RoleAdmin},
			model.RoleEditor: {ID: 2, Name: model.RoleEditor},
		},
		assigned: map[int64][]int64{},
	}
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	users, roles := newFakes()
	hasher := utils.NewPasswordHasher(bcrypt.MinCost)

	require.NoError(t, Run(ctx, users, roles, hasher, DefaultAccounts))
	require.Len(t, users.byEmail, 3)
	assert.Equal(t, 2, roles.syncs)

	admin := users.byEmail["admin@example.com"]
	assert.True(t, hasher.Check(DefaultPassword, admin.PasswordHash))
	assert.Equal(t, []int64{1}, roles.assigned[admin.ID])
	assert.Equal(t, []int64{2}, roles.assigned[users.byEmail["editor@example.com"].ID])
	assert.Empty(t, roles.assigned[users.byEmail["user@example.com"].ID])

	require.NoError(t, Run(ctx, users, roles, hasher, DefaultAccounts))
	assert.Len(t, users.byEmail, 3)
	assert.Equal(t, 2, roles.syncs)
}

func TestRun_MissingRole(t *testing.T) {
	users, roles := newFakes()
	err := Run(context.Background(), users, roles, utils.NewPasswordHasher(bcrypt.MinCost),
		[]Account{{Name: "V", Email: "v@example.com", Role: model.RoleViewer}})
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), "Viewer")
}
