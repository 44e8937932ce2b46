package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	if _, exists := r.byEmail[u.Email]; exists {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now()
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *fakeRepo) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, u *User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = false
	return nil
}

// fakeHasher keeps tests fast by skipping bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestRegister(t *testing.T) {
	t.Run("tourist by default", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeHasher{})

		u, err := svc.Register(context.Background(), "Alice@Example.com ", "password123", "Alice", "")
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, RoleTourist, u.Role)
		assert.True(t, u.Approved)
		assert.True(t, u.IsActive)
		assert.Equal(t, "hashed:password123", u.PasswordHash)
	})

	t.Run("owner starts unapproved", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeHasher{})

		u, err := svc.Register(context.Background(), "owner@example.com", "password123", "Owner", RoleVehicleOwner)
		require.NoError(t, err)
		assert.Equal(t, RoleVehicleOwner, u.Role)
		assert.False(t, u.Approved)
	})

	t.Run("admin self-registration is rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeHasher{})

		_, err := svc.Register(context.Background(), "boss@example.com", "password123", "", RoleAdmin)
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeHasher{})

		_, err := svc.Register(context.Background(), "dup@example.com", "password123", "", "")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "DUP@example.com", "password123", "", "")
		require.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeHasher{})

		_, err := svc.Register(context.Background(), "short@example.com", "1234567", "", "")
		require.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	setup := func(t *testing.T) (Service, *fakeRepo) {
		t.Helper()
		repo := newFakeRepo()
		svc := NewService(repo, fakeHasher{})
		_, err := svc.Register(context.Background(), "alice@example.com", "password123", "Alice", "")
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("success updates last login", func(t *testing.T) {
		svc, repo := setup(t)

		u, err := svc.Login(context.Background(), "alice@example.com", "password123")
		require.NoError(t, err)

		stored := repo.byID[u.ID]
		assert.NotNil(t, stored.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(context.Background(), "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks like bad credentials", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc, repo := setup(t)
		repo.byEmail["alice@example.com"].IsActive = false

		_, err := svc.Login(context.Background(), "alice@example.com", "password123")
		require.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestSetApproval(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeHasher{})

	u, err := svc.Register(context.Background(), "owner@example.com", "password123", "", RoleVehicleOwner)
	require.NoError(t, err)
	require.False(t, u.Approved)

	approved, err := svc.SetApproval(context.Background(), u.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	revoked, err := svc.SetApproval(context.Background(), u.ID, false)
	require.NoError(t, err)
	assert.False(t, revoked.Approved)

	_, err = svc.SetApproval(context.Background(), "missing", true)
	require.ErrorIs(t, err, ErrNotFound)
}
