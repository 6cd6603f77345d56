package memory

import (
	"context"
	"strings"
	"sync"

	"clientsolve/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: []*user.User{}}
}

func cloneUser(u *user.User) *user.User {
	cp, err := user.ReconstructUser(
		u.ID(), u.Username(), u.Email(), u.PasswordHash(),
		u.Role(), u.ClientID(), u.Active(),
	)
	if err != nil {
		panic(err)
	}
	return cp
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, cloneUser(u))
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.users {
		if existing.ID() == u.ID() {
			r.users[i] = cloneUser(u)
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.users {
		if existing.ID() == userID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.users {
		if existing.ID() == userID {
			return cloneUser(existing), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.users {
		if existing.Email() == email {
			return cloneUser(existing), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*user.User, 0, len(r.users))
	search := strings.ToLower(filter.Search)

	for _, u := range r.users {
		if filter.ClientID != "" {
			// The by-client view only lists client-role accounts.
			if !u.Role().IsClient() || u.ClientID() != filter.ClientID {
				continue
			}
		}
		if filter.Active != nil && u.Active() != *filter.Active {
			continue
		}
		if search != "" && !userMatches(u, search) {
			continue
		}
		result = append(result, cloneUser(u))
	}
	return result, nil
}

func userMatches(u *user.User, search string) bool {
	return strings.Contains(strings.ToLower(u.Username()), search) ||
		strings.Contains(strings.ToLower(u.Email()), search)
}
