package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylontrails/travel-booking-backend/internal/booking"
)

type fakeBookingService struct {
	lastCreate booking.CreateRequest
}

func (f *fakeBookingService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	f.lastCreate = req
	return &booking.Booking{
		ID:            "7e6d5c4b-3a29-4180-9f8e-7d6c5b4a3928",
		ReferenceCode: "TRB-1756400000000-ABCDEF",
		UserID:        req.UserID,
		StartDate:     req.StartDate,
		Adults:        req.Adults,
		Children:      req.Children,
		Status:        booking.StatusPending,
	}, nil
}

func (f *fakeBookingService) GetByID(ctx context.Context, id string, actor booking.Actor) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeBookingService) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, int, error) {
	panic("not used")
}
func (f *fakeBookingService) UpdateStatus(ctx context.Context, id string, actor booking.Actor, status booking.Status, note *string) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeBookingService) Cancel(ctx context.Context, id string, actor booking.Actor) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeBookingService) Delete(ctx context.Context, id string) error {
	panic("not used")
}

const travelerID = "2a1b0c9d-8e7f-4a5b-9c8d-7e6f5a4b3c2d"

func stubAuth(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

func newBookingRouter(svc booking.Service, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	passthrough := func(c *gin.Context) { c.Next() }
	RegisterRoutes(v1, NewHandler(svc), stubAuth(userID, role), passthrough, passthrough)
	return r
}

func postBooking(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTravelers(t *testing.T) {
	t.Run("omitted adults defaults to one", func(t *testing.T) {
		svc := &fakeBookingService{}
		r := newBookingRouter(svc, travelerID, "tourist")

		w := postBooking(t, r, `{"start_date": "2026-09-10"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		assert.Equal(t, 1, svc.lastCreate.Adults)
		assert.Equal(t, 0, svc.lastCreate.Children)
		assert.Equal(t, travelerID, svc.lastCreate.UserID)
	})

	t.Run("explicit zero adults is kept", func(t *testing.T) {
		svc := &fakeBookingService{}
		r := newBookingRouter(svc, travelerID, "tourist")

		w := postBooking(t, r, `{"start_date": "2026-09-10", "adults": 0, "children": 2}`)
		require.Equal(t, http.StatusCreated, w.Code)

		assert.Equal(t, 0, svc.lastCreate.Adults)
		assert.Equal(t, 2, svc.lastCreate.Children)
	})

	t.Run("negative adults is rejected", func(t *testing.T) {
		svc := &fakeBookingService{}
		r := newBookingRouter(svc, travelerID, "tourist")

		w := postBooking(t, r, `{"start_date": "2026-09-10", "adults": -1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateRoleGate(t *testing.T) {
	svc := &fakeBookingService{}
	r := newBookingRouter(svc, "8f7e6d5c-4b3a-4291-8076-5f4e3d2c1b0a", "vehicle_owner")

	w := postBooking(t, r, `{"start_date": "2026-09-10"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
