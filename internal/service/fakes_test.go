package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"app/internal/model"
	"app/internal/repository"
)

// In-memory repositories used by the service tests.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*model.User
	failing bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("storage down")
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = "u-" + u.Email
	}
	u.CreatedAt = time.Now()
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errors.New("storage down")
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errors.New("storage down")
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) SetPremium(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errors.New("storage down")
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u.Premium = true
	cp := *u
	return &cp, nil
}

type fakeUsageRepo struct {
	mu      sync.Mutex
	counts  map[string]int
	writes  int
	failing bool
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{counts: make(map[string]int)}
}

func (f *fakeUsageRepo) IncrementWithinLimit(_ context.Context, userID, day string, limit int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errors.New("storage down")
	}
	key := userID + "|" + day
	if f.counts[key] >= limit {
		return 0, repository.ErrDailyLimitReached
	}
	f.counts[key]++
	f.writes++
	return f.counts[key], nil
}

func (f *fakeUsageRepo) Get(_ context.Context, userID, day string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errors.New("storage down")
	}
	return f.counts[userID+"|"+day], nil
}

func (f *fakeUsageRepo) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
