package booking

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylontrails/travel-booking-backend/internal/tour"
	"github.com/ceylontrails/travel-booking-backend/internal/travelpackage"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
	"github.com/ceylontrails/travel-booking-backend/internal/vehicle"
)

// ==== Fakes ====

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int

	// clashesLeft makes Create fail with a reference clash this many times.
	clashesLeft int
	createCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*Booking)}
}

func (r *fakeRepo) Create(ctx context.Context, b *Booking) error {
	r.createCalls++
	if r.clashesLeft > 0 {
		r.clashesLeft--
		return ErrReferenceClash
	}
	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.OwnerID != "" && !b.ownedBy(filter.OwnerID) {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, b *Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

type fakeTourService struct {
	tours map[string]*tour.Tour
}

func (f *fakeTourService) GetByID(ctx context.Context, id string) (*tour.Tour, error) {
	t, ok := f.tours[id]
	if !ok {
		return nil, tour.ErrNotFound
	}
	return t, nil
}

func (f *fakeTourService) Create(ctx context.Context, req tour.CreateRequest) (*tour.Tour, error) {
	panic("not used")
}
func (f *fakeTourService) List(ctx context.Context, filter tour.Filter) ([]*tour.Tour, int, error) {
	panic("not used")
}
func (f *fakeTourService) Update(ctx context.Context, id string, req tour.UpdateRequest) (*tour.Tour, error) {
	panic("not used")
}
func (f *fakeTourService) Delete(ctx context.Context, id string) error { panic("not used") }

type fakeVehicleService struct {
	vehicles map[string]*vehicle.Vehicle
}

func (f *fakeVehicleService) GetByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, vehicle.ErrNotFound
	}
	return v, nil
}

func (f *fakeVehicleService) Create(ctx context.Context, req vehicle.CreateRequest) (*vehicle.Vehicle, error) {
	panic("not used")
}
func (f *fakeVehicleService) List(ctx context.Context, filter vehicle.Filter) ([]*vehicle.Vehicle, int, error) {
	panic("not used")
}
func (f *fakeVehicleService) Update(ctx context.Context, id string, req vehicle.UpdateRequest, actorID string, isAdmin bool) (*vehicle.Vehicle, error) {
	panic("not used")
}
func (f *fakeVehicleService) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	panic("not used")
}

type fakePackageService struct {
	packages map[string]*travelpackage.Package
}

func (f *fakePackageService) GetByID(ctx context.Context, id string) (*travelpackage.Package, error) {
	p, ok := f.packages[id]
	if !ok {
		return nil, travelpackage.ErrNotFound
	}
	return p, nil
}

func (f *fakePackageService) Create(ctx context.Context, req travelpackage.CreateRequest) (*travelpackage.Package, error) {
	panic("not used")
}
func (f *fakePackageService) List(ctx context.Context, filter travelpackage.Filter) ([]*travelpackage.Package, int, error) {
	panic("not used")
}
func (f *fakePackageService) Update(ctx context.Context, id string, req travelpackage.UpdateRequest, actorID string, isAdmin bool) (*travelpackage.Package, error) {
	panic("not used")
}
func (f *fakePackageService) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	panic("not used")
}

// ==== Fixtures ====

const (
	touristID = "user-tourist"
	ownerID   = "user-owner"
	adminID   = "user-admin"
)

func newTestService(repo *fakeRepo) Service {
	groupPrice := 120000.0

	tours := &fakeTourService{tours: map[string]*tour.Tour{
		"tour-1": {ID: "tour-1", Name: "Hill Country Loop", PricePerPerson: 55000, DurationDays: 3, IsActive: true},
	}}
	vehicles := &fakeVehicleService{vehicles: map[string]*vehicle.Vehicle{
		"veh-1": {ID: "veh-1", OwnerID: ownerID, Name: "Toyota Hiace", PricePerDay: 18000, Approved: true},
	}}
	packages := &fakePackageService{packages: map[string]*travelpackage.Package{
		"pkg-1": {ID: "pkg-1", OwnerID: ownerID, Name: "South Coast Week", PricePerGroup: &groupPrice, DurationDays: 7, Approved: true},
	}}

	return NewService(repo, tours, vehicles, packages, NewCommissionEngine(15))
}

func strPtr(s string) *string { return &s }

// ==== Create ====

func TestCreateTourBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:    touristID,
		TourID:    strPtr("tour-1"),
		StartDate: date(2024, 1, 10),
		Adults:    2,
		Children:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, 137500.0, b.TotalPrice)

	// Tours have no owner to split with.
	assert.Equal(t, 0.0, b.CommissionPercent)
	assert.Equal(t, 0.0, b.AdminEarnings)
	assert.Equal(t, 137500.0, b.OwnerEarnings)
	assert.Nil(t, b.VehicleOwnerID)
	assert.Nil(t, b.PackageOwnerID)

	assert.True(t, strings.HasPrefix(b.ReferenceCode, "TRB-"))

	// End date derived from the tour's three-day duration.
	require.NotNil(t, b.EndDate)
	assert.Equal(t, date(2024, 1, 12), *b.EndDate)
}

func TestCreateVehicleBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:    touristID,
		VehicleID: strPtr("veh-1"),
		StartDate: date(2024, 1, 10),
		EndDate:   datePtr(2024, 1, 12),
		Adults:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, 54000.0, b.TotalPrice)
	assert.Equal(t, 15.0, b.CommissionPercent)
	assert.Equal(t, 8100.0, b.AdminEarnings)
	assert.Equal(t, 45900.0, b.OwnerEarnings)

	require.NotNil(t, b.VehicleOwnerID)
	assert.Equal(t, ownerID, *b.VehicleOwnerID)
}

func TestCreatePackageBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	override := 10.0
	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:            touristID,
		PackageID:         strPtr("pkg-1"),
		StartDate:         date(2024, 2, 1),
		Adults:            4,
		CommissionPercent: &override,
	})
	require.NoError(t, err)

	assert.Equal(t, 120000.0, b.TotalPrice)
	assert.Equal(t, 10.0, b.CommissionPercent)
	assert.Equal(t, 12000.0, b.AdminEarnings)
	assert.Equal(t, 108000.0, b.OwnerEarnings)

	require.NotNil(t, b.PackageOwnerID)
	assert.Equal(t, ownerID, *b.PackageOwnerID)

	require.NotNil(t, b.EndDate)
	assert.Equal(t, date(2024, 2, 7), *b.EndDate)
}

func TestCreateFallbackPricing(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	total := 50000.0
	override := 25.0
	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:            touristID,
		StartDate:         date(2024, 2, 1),
		Adults:            2,
		TotalPrice:        &total,
		CommissionPercent: &override,
	})
	require.NoError(t, err)

	assert.Equal(t, 50000.0, b.TotalPrice)
	// No owner snapshot means no commission, even with an override.
	assert.Equal(t, 0.0, b.CommissionPercent)
	assert.Equal(t, 0.0, b.AdminEarnings)
}

func TestCreateRejectsMultipleItems(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:    touristID,
		TourID:    strPtr("tour-1"),
		VehicleID: strPtr("veh-1"),
		StartDate: date(2024, 1, 10),
		Adults:    2,
	})
	require.ErrorIs(t, err, ErrMultipleItems)
	assert.Zero(t, repo.createCalls)
}

func TestCreateRejectsDanglingReferences(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	cases := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"tour", CreateRequest{UserID: touristID, TourID: strPtr("missing")}, ErrTourNotFound},
		{"vehicle", CreateRequest{UserID: touristID, VehicleID: strPtr("missing")}, ErrVehicleNotFound},
		{"package", CreateRequest{UserID: touristID, PackageID: strPtr("missing")}, ErrPackageNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.StartDate = date(2024, 1, 10)
			tc.req.Adults = 1
			_, err := svc.Create(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateRejectsInvalidDateRange(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:    touristID,
		VehicleID: strPtr("veh-1"),
		StartDate: date(2024, 1, 12),
		EndDate:   datePtr(2024, 1, 10),
		Adults:    2,
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateRetriesOnReferenceClash(t *testing.T) {
	repo := newFakeRepo()
	repo.clashesLeft = 2
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:    touristID,
		TourID:    strPtr("tour-1"),
		StartDate: date(2024, 1, 10),
		Adults:    2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, 3, repo.createCalls)
}

func TestCreateGivesUpAfterRepeatedClashes(t *testing.T) {
	repo := newFakeRepo()
	repo.clashesLeft = 10
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:    touristID,
		TourID:    strPtr("tour-1"),
		StartDate: date(2024, 1, 10),
		Adults:    2,
	})
	require.ErrorIs(t, err, ErrReferenceClash)
	assert.Equal(t, 3, repo.createCalls)
}

// ==== Read access ====

func createVehicleBooking(t *testing.T, svc Service) *Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:    touristID,
		VehicleID: strPtr("veh-1"),
		StartDate: date(2024, 1, 10),
		EndDate:   datePtr(2024, 1, 12),
		Adults:    2,
	})
	require.NoError(t, err)
	return b
}

func TestGetByIDAccess(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	b := createVehicleBooking(t, svc)

	cases := []struct {
		name    string
		actor   Actor
		allowed bool
	}{
		{"admin", Actor{UserID: adminID, Role: user.RoleAdmin}, true},
		{"booking owner", Actor{UserID: touristID, Role: user.RoleTourist}, true},
		{"item owner", Actor{UserID: ownerID, Role: user.RoleVehicleOwner}, true},
		{"other tourist", Actor{UserID: "user-other", Role: user.RoleTourist}, false},
		{"other owner", Actor{UserID: "user-other-owner", Role: user.RoleVehicleOwner}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.GetByID(context.Background(), b.ID, tc.actor)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, b.ID, got.ID)
			} else {
				require.ErrorIs(t, err, ErrPermissionDenied)
			}
		})
	}
}

// ==== Status transitions ====

func TestUpdateStatus(t *testing.T) {
	t.Run("admin may set any status", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		admin := Actor{UserID: adminID, Role: user.RoleAdmin}

		got, err := svc.UpdateStatus(context.Background(), b.ID, admin, StatusConfirmed, nil)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)

		// Even reopening a terminal status is allowed on this path.
		_, err = svc.UpdateStatus(context.Background(), b.ID, admin, StatusCompleted, nil)
		require.NoError(t, err)
		got, err = svc.UpdateStatus(context.Background(), b.ID, admin, StatusPending, nil)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, got.Status)
	})

	t.Run("matching item owner may update", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		got, err := svc.UpdateStatus(context.Background(), b.ID,
			Actor{UserID: ownerID, Role: user.RoleVehicleOwner}, StatusConfirmed, nil)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)
	})

	t.Run("unrelated owner is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		_, err := svc.UpdateStatus(context.Background(), b.ID,
			Actor{UserID: "user-other-owner", Role: user.RoleVehicleOwner}, StatusConfirmed, nil)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("tourist may only touch own bookings", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		_, err := svc.UpdateStatus(context.Background(), b.ID,
			Actor{UserID: "user-other", Role: user.RoleTourist}, StatusCancelled, nil)
		require.ErrorIs(t, err, ErrPermissionDenied)

		got, err := svc.UpdateStatus(context.Background(), b.ID,
			Actor{UserID: touristID, Role: user.RoleTourist}, StatusCancelled, nil)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		_, err := svc.UpdateStatus(context.Background(), b.ID,
			Actor{UserID: adminID, Role: user.RoleAdmin}, Status("archived"), nil)
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("note is appended, not replaced", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		admin := Actor{UserID: adminID, Role: user.RoleAdmin}

		got, err := svc.UpdateStatus(context.Background(), b.ID, admin, StatusConfirmed, strPtr("driver assigned"))
		require.NoError(t, err)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "driver assigned", *got.Notes)

		got, err = svc.UpdateStatus(context.Background(), b.ID, admin, StatusCompleted, strPtr("trip finished"))
		require.NoError(t, err)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "driver assigned\ntrip finished", *got.Notes)
	})
}

// ==== Cancel ====

func TestCancel(t *testing.T) {
	traveler := Actor{UserID: touristID, Role: user.RoleTourist}

	t.Run("traveler cancels own pending booking", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		got, err := svc.Cancel(context.Background(), b.ID, traveler)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		_, err := svc.Cancel(context.Background(), b.ID, traveler)
		require.NoError(t, err)

		got, err := svc.Cancel(context.Background(), b.ID, traveler)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("completed bookings cannot be cancelled", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		_, err := svc.UpdateStatus(context.Background(), b.ID,
			Actor{UserID: adminID, Role: user.RoleAdmin}, StatusCompleted, nil)
		require.NoError(t, err)

		_, err = svc.Cancel(context.Background(), b.ID, traveler)
		require.ErrorIs(t, err, ErrAlreadyCompleted)
	})

	t.Run("only the booking's traveler may cancel", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		b := createVehicleBooking(t, svc)

		_, err := svc.Cancel(context.Background(), b.ID, Actor{UserID: adminID, Role: user.RoleAdmin})
		require.ErrorIs(t, err, ErrPermissionDenied)

		_, err = svc.Cancel(context.Background(), b.ID, Actor{UserID: ownerID, Role: user.RoleVehicleOwner})
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		_, err := svc.Cancel(context.Background(), "missing", traveler)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
