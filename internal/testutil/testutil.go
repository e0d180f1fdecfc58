// Package testutil holds in-memory port implementations shared by package tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

type NopLogger struct{}

func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Warn(string, map[string]interface{})  {}

func (NopLogger) InfoContext(context.Context, string, map[string]interface{})  {}
func (NopLogger) ErrorContext(context.Context, string, map[string]interface{}) {}
func (NopLogger) DebugContext(context.Context, string, map[string]interface{}) {}
func (NopLogger) WarnContext(context.Context, string, map[string]interface{})  {}

var _ ports.LoggerPort = NopLogger{}

// MemoryCache is a CachePort that ignores TTLs.
type MemoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	Sets    int
	Deletes []string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return v, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.Sets++
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.Deletes = append(c.Deletes, k)
	}
	return nil
}

var _ ports.CachePort = (*MemoryCache)(nil)

// FakeDirectory serves records from memory. Err, when set, is returned for every lookup.
type FakeDirectory struct {
	mu      sync.Mutex
	records map[string]*domain.UserRecord
	Err     error
	Calls   int
}

func NewFakeDirectory(records ...*domain.UserRecord) *FakeDirectory {
	d := &FakeDirectory{records: make(map[string]*domain.UserRecord)}
	for _, r := range records {
		d.records[r.Email] = r
	}
	return d
}

func (d *FakeDirectory) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls++

	if err := ctx.Err(); err != nil {
		return nil, &domain.TransportError{Op: "FakeDirectory.FindByEmail", Err: err}
	}
	if d.Err != nil {
		return nil, d.Err
	}
	r, ok := d.records[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *r
	return &cp, nil
}

var _ ports.UserDirectory = (*FakeDirectory)(nil)

// MemoryUserRepository keeps users in a map and enforces unique emails.
// ListUsers orders by email.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	cp := *user
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemoryUserRepository) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) ListUsers(_ context.Context, limit, offset int) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })
	if offset >= len(all) {
		return []*domain.User{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *MemoryUserRepository) UpdateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	cp := *user
	cp.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemoryUserRepository) DeleteUser(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

var _ ports.UserRepository = (*MemoryUserRepository)(nil)
