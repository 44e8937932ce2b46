package travelpackage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	packages map[string]*Package
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{packages: make(map[string]*Package)}
}

func (r *fakeRepo) Create(ctx context.Context, p *Package) error {
	r.nextID++
	p.ID = fmt.Sprintf("pkg-%d", r.nextID)
	clone := *p
	r.packages[p.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Package, error) {
	p, ok := r.packages[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Package, int, error) {
	var out []*Package
	for _, p := range r.packages {
		clone := *p
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, p *Package) error {
	if _, ok := r.packages[p.ID]; !ok {
		return ErrNotFound
	}
	clone := *p
	r.packages[p.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.packages[id]; !ok {
		return ErrNotFound
	}
	delete(r.packages, id)
	return nil
}

func price(v float64) *float64 { return &v }

func TestCreatePackage(t *testing.T) {
	t.Run("requires at least one price", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Create(context.Background(), CreateRequest{
			OwnerID: "owner-1",
			Name:    "South Coast Week",
		})
		require.ErrorIs(t, err, ErrNoPrice)
	})

	t.Run("rejects non-positive prices", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Create(context.Background(), CreateRequest{
			OwnerID:       "owner-1",
			Name:          "South Coast Week",
			PricePerGroup: price(0),
		})
		require.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("new packages await approval", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		p, err := svc.Create(context.Background(), CreateRequest{
			OwnerID:        "owner-1",
			Name:           "  South Coast Week  ",
			PricePerPerson: price(30000),
		})
		require.NoError(t, err)
		assert.Equal(t, "South Coast Week", p.Name)
		assert.False(t, p.Approved)
		assert.Equal(t, 1, p.DurationDays)
	})
}

func TestUpdatePackagePermissions(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), CreateRequest{
		OwnerID:       "owner-1",
		Name:          "South Coast Week",
		PricePerGroup: price(120000),
	})
	require.NoError(t, err)

	t.Run("stranger cannot update", func(t *testing.T) {
		_, err := svc.Update(context.Background(), p.ID, UpdateRequest{Name: strPtr("New Name")}, "owner-2", false)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("owner cannot self-approve", func(t *testing.T) {
		approved := true
		_, err := svc.Update(context.Background(), p.ID, UpdateRequest{Approved: &approved}, "owner-1", false)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin approves", func(t *testing.T) {
		approved := true
		got, err := svc.Update(context.Background(), p.ID, UpdateRequest{Approved: &approved}, "admin-1", true)
		require.NoError(t, err)
		assert.True(t, got.Approved)
	})

	t.Run("owner edits own package", func(t *testing.T) {
		got, err := svc.Update(context.Background(), p.ID, UpdateRequest{PricePerGroup: price(150000)}, "owner-1", false)
		require.NoError(t, err)
		assert.Equal(t, 150000.0, *got.PricePerGroup)
	})
}

func strPtr(s string) *string { return &s }
