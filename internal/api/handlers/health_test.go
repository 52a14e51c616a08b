package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"team-lifecycle-backend/internal/api/handlers"
	"team-lifecycle-backend/internal/mocks"
	"team-lifecycle-backend/internal/service"
	"team-lifecycle-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockAdminServiceInterface(ctrl)
	registry.EXPECT().Snapshot().Return(service.RegistrySnapshot{
		Teams:     []service.TeamSnapshot{{Number: 1}},
		Available: []int{2, 3},
	}).AnyTimes()

	healthy := handlers.PingerFunc(func(context.Context) error { return nil })
	broken := handlers.PingerFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("healthy", func(t *testing.T) {
		h := handlers.NewHealthHandler(registry, map[string]handlers.Pinger{"redis": healthy})
		s := testutils.SetupHTTPTest()
		s.Router.GET("/health", h.Health)
		s.Router.GET("/health/ready", h.Ready)
		s.Router.GET("/health/live", h.Live)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, 1, resp.ActiveTeams)
		assert.Equal(t, 2, resp.FreeNumbers)
		assert.Equal(t, "healthy", resp.Services["redis"])

		assert.Equal(t, http.StatusOK, s.MakeRequest(http.MethodGet, "/health/ready", nil).Code)
		assert.Equal(t, http.StatusOK, s.MakeRequest(http.MethodGet, "/health/live", nil).Code)
	})

	t.Run("dependency down", func(t *testing.T) {
		h := handlers.NewHealthHandler(registry, map[string]handlers.Pinger{"database": broken})
		s := testutils.SetupHTTPTest()
		s.Router.GET("/health", h.Health)
		s.Router.GET("/health/ready", h.Ready)
		s.Router.GET("/health/live", h.Live)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Contains(t, resp.Services["database"], "connection refused")

		assert.Equal(t, http.StatusServiceUnavailable, s.MakeRequest(http.MethodGet, "/health/ready", nil).Code)
		assert.Equal(t, http.StatusOK, s.MakeRequest(http.MethodGet, "/health/live", nil).Code)
	})
}
