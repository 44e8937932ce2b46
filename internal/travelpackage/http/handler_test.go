package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/travelpackage"
)

type fakeService struct {
	lastFilter travelpackage.Filter
}

func (f *fakeService) List(ctx context.Context, filter travelpackage.Filter) ([]*travelpackage.Package, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeService) Create(ctx context.Context, req travelpackage.CreateRequest) (*travelpackage.Package, error) {
	panic("not used")
}
func (f *fakeService) GetByID(ctx context.Context, id string) (*travelpackage.Package, error) {
	panic("not used")
}
func (f *fakeService) Update(ctx context.Context, id string, req travelpackage.UpdateRequest, actorID string, isAdmin bool) (*travelpackage.Package, error) {
	panic("not used")
}
func (f *fakeService) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	panic("not used")
}

const packageOwnerID = "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d"

func newPackageRouter(svc travelpackage.Service, jwtManager *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	passthrough := func(c *gin.Context) { c.Next() }
	RegisterRoutes(v1, NewHandler(svc), auth.AuthRequired(jwtManager), auth.OptionalAuth(jwtManager), passthrough)
	return r
}

func TestListVisibility(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Minute)

	ownerToken, err := jwtManager.GenerateAccessToken(packageOwnerID, "owner@example.com", "vehicle_owner")
	require.NoError(t, err)

	t.Run("anonymous listing is forced to approved only", func(t *testing.T) {
		svc := &fakeService{}
		r := newPackageRouter(svc, jwtManager)

		req := httptest.NewRequest(http.MethodGet, "/v1/packages?approved=false", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		require.NotNil(t, svc.lastFilter.Approved)
		assert.True(t, *svc.lastFilter.Approved)
	})

	t.Run("owner sees own unapproved packages", func(t *testing.T) {
		svc := &fakeService{}
		r := newPackageRouter(svc, jwtManager)

		req := httptest.NewRequest(http.MethodGet, "/v1/packages?owner_id="+packageOwnerID, nil)
		req.Header.Set("Authorization", "Bearer "+ownerToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Nil(t, svc.lastFilter.Approved)
		assert.Equal(t, packageOwnerID, svc.lastFilter.OwnerID)
	})
}
