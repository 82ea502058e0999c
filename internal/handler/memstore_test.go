package handler

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"sisauth/internal/model"
	"sisauth/internal/repository"
)

// memStore backs the three repository interfaces with maps and applies the
// same cascade rules as the schema.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	users     map[int64]*model.User
	addresses map[int64]*model.Address
	roles     map[int64]*model.Role
	roleUser  map[int64]map[int64]struct{}
	pingErr   error
}

func newMemStore() *memStore {
	s := &memStore{
		users:     map[int64]*model.User{},
		addresses: map[int64]*model.Address{},
		roles:     map[int64]*model.Role{},
		roleUser:  map[int64]map[int64]struct{}{},
	}
	for i, name := range []string{model.RoleAdmin, model.RoleEditor, model.RoleViewer} {
		id := int64(i + 1)
		s.roles[id] = &model.Role{ID: id, Name: name}
	}
	s.nextID = 100
	return s
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) Ping(context.Context) error { return s.pingErr }

type memUsers struct{ *memStore }
type memAddresses struct{ *memStore }
type memRoles struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = r.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r memUsers) FindAll(context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) Update(_ context.Context, id int64, ch model.UpdateUserRequest) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if ch.Name != nil {
		u.Name = *ch.Name
	}
	if ch.Email != nil {
		u.Email = *ch.Email
	}
	if ch.Phone.Set {
		u.Phone = ch.Phone.Value
	}
	if ch.NationalID.Set {
		u.NationalID = ch.NationalID.Value
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (r memUsers) UpdatePassword(_ context.Context, id int64, oldHash, newHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.PasswordHash != oldHash {
		return false, nil
	}
	u.PasswordHash = newHash
	return true, nil
}

func (r memUsers) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	delete(r.roleUser, id)
	for aid, a := range r.addresses {
		if a.UserID == id {
			delete(r.addresses, aid)
		}
	}
	return nil
}

func (r memAddresses) Create(_ context.Context, a *model.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[a.UserID]; !ok {
		return repository.ErrForeignKey
	}
	a.ID = r.id()
	cp := *a
	r.addresses[a.ID] = &cp
	return nil
}

func (r memAddresses) list(keep func(*model.Address) bool) []model.Address {
	out := []model.Address{}
	for _, a := range r.addresses {
		if keep(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memAddresses) FindAll(context.Context) ([]model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(*model.Address) bool { return true }), nil
}

func (r memAddresses) FindByID(_ context.Context, id int64) (*model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addresses[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r memAddresses) FindByUser(_ context.Context, userID int64) ([]model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(a *model.Address) bool { return a.UserID == userID }), nil
}

func (r memAddresses) Update(_ context.Context, id int64, ch model.UpdateAddressRequest) (*model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addresses[id]
	if !ok {
		return nil, nil
	}
	if ch.Street != nil {
		a.Street = *ch.Street
	}
	if ch.Number != nil {
		a.Number = *ch.Number
	}
	if ch.Neighborhood != nil {
		a.Neighborhood = *ch.Neighborhood
	}
	if ch.Complement.Set {
		a.Complement = ch.Complement.Value
	}
	if ch.PostalCode != nil {
		a.PostalCode = *ch.PostalCode
	}
	cp := *a
	return &cp, nil
}

func (r memAddresses) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.addresses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.addresses, id)
	return nil
}

func (r memRoles) FindAll(context.Context) ([]model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Role{}
	for _, role := range r.roles {
		out = append(out, *role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memRoles) FindByName(_ context.Context, name string) (*model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.roles {
		if role.Name == name {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memRoles) FindByUser(_ context.Context, userID int64) ([]model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Role{}
	for rid := range r.roleUser[userID] {
		out = append(out, *r.roles[rid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memRoles) RoleNamesByUser(ctx context.Context, userID int64) ([]string, error) {
	roles, _ := r.FindByUser(ctx, userID)
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names, nil
}

func (r memRoles) CountByIDs(_ context.Context, ids []int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, id := range ids {
		if _, ok := r.roles[id]; ok {
			n++
		}
	}
	return n, nil
}

func (r memRoles) Sync(_ context.Context, userID int64, roleIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := map[int64]struct{}{}
	for _, id := range roleIDs {
		if _, ok := r.roles[id]; !ok {
			return repository.ErrForeignKey
		}
		set[id] = struct{}{}
	}
	r.roleUser[userID] = set
	return nil
}

func (r memRoles) Detach(_ context.Context, userID int64, roleIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range roleIDs {
		delete(r.roleUser[userID], id)
	}
	return nil
}
