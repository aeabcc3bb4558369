// Package memory implements an in-memory user store for development
// and testing.
package memory

import (
	"context"
	"fmt"
	"sync"

	"exlog/domain"
)

// DB is a mutex-guarded in-memory implementation of domain.UserStore.
type DB struct {
	mu      sync.Mutex
	users   []domain.User
	counter int64
}

var _ domain.UserStore = (*DB)(nil)

func New() *DB {
	return &DB{}
}

func (db *DB) FindByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (db *DB) AddUser(ctx context.Context, user domain.User) (domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == user.Username {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}

	db.counter++
	user.ID = domain.UserID(fmt.Sprintf("%024x", db.counter))
	user.Log = []domain.Exercise{}
	db.users = append(db.users, user)
	return copyUser(user), nil
}

// GetUsers returns every user without its log, matching the projection
// the real store applies.
func (db *DB) GetUsers(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.User, 0, len(db.users))
	for _, u := range db.users {
		result = append(result, domain.User{ID: u.ID, Username: u.Username})
	}
	return result, nil
}

func (db *DB) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (db *DB) AppendExercise(ctx context.Context, id domain.UserID, ex domain.Exercise) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.users {
		if db.users[i].ID == id {
			db.users[i].Log = append(db.users[i].Log, ex)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func copyUser(u domain.User) domain.User {
	log := make([]domain.Exercise, len(u.Log))
	copy(log, u.Log)
	u.Log = log
	return u
}
