package memory

import (
	"context"
	"fmt"
	"strings"

	"glamhaven/internal/data/entity"
)

type userRepo struct {
	s *store
}

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.userSeq++
	user.ID = r.s.userSeq
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id int) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if strings.EqualFold(user.Username, username) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("user %d not found", user.ID)
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) AddLoyaltyPoints(ctx context.Context, id, points int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	user.LoyaltyPoints += points
	r.s.users[id] = user
	return nil
}
