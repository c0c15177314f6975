package memory

import (
	"context"
	"sync"

	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
)

// UserRepository is the in-memory account directory. The application is
// single-tenant with no persistence; a mutex-guarded slice holds the session
// state and readers get copies.
type UserRepository struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserRepository(seed []user.User) *UserRepository {
	return &UserRepository{users: append([]user.User(nil), seed...)}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Linked() && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]user.User(nil), r.users...), nil
}

func (r *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// At most one account per employee record.
	if newUser.Linked() {
		for _, u := range r.users {
			if u.Linked() && *u.EmployeeID == *newUser.EmployeeID {
				return user.User{}, user.ErrEmployeeLinked
			}
		}
	}

	r.users = append(r.users, newUser)
	return newUser, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Role = role
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}
