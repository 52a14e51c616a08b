package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-lifecycle-backend/internal/api/routes"
	"team-lifecycle-backend/internal/auth"
	"team-lifecycle-backend/internal/config"
	"team-lifecycle-backend/internal/delivery"
	"team-lifecycle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type acceptAll struct{}

func (acceptAll) Notify(_ context.Context, n service.Notification) (service.Delivery, error) {
	return service.Delivery{Delivered: true, Ref: string(n.Kind)}, nil
}

// RouterTestSuite drives the assembled router end to end
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	auth   *auth.AuthService
	hub    *delivery.Hub
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AllowedOrigins:        []string{"*"},
		BotAPIKey:             "bot-key",
		JoinRequestsPerMinute: 2,
	}

	authService, err := auth.NewAuthService("routes-test", time.Hour)
	suite.Require().NoError(err)
	suite.auth = authService
	suite.hub = delivery.NewHub()

	registry := prometheus.NewRegistry()
	lifecycle := service.NewTeamLifecycleService(service.Options{
		Settings: service.Settings{MaxTeamSize: 3, MaxTeams: 2, DurationMinutes: 60, MachinesPerTeam: 1},
		OwnerID:  "owner",
		Sink:     delivery.NewFanoutSink(suite.hub, acceptAll{}),
		Metrics:  service.NewMetrics(registry),
	})

	suite.router = routes.SetupRoutes(cfg, routes.Dependencies{
		Lifecycle: lifecycle,
		Hub:       suite.hub,
		Auth:      authService,
		Registry:  registry,
	})
}

func (suite *RouterTestSuite) TearDownTest() {
	suite.hub.Close()
}

func (suite *RouterTestSuite) token(userID string) string {
	tok, err := suite.auth.GenerateJWT(userID, userID)
	suite.Require().NoError(err)
	return tok.AccessToken
}

func (suite *RouterTestSuite) do(method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) TestRequiresToken() {
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/teams", "", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/health/live", "", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/nope", "", nil).Code)
}

func (suite *RouterTestSuite) TestIssueTokenThenUseIt() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewBufferString(`{"user_id":"U5","username":"eve"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bot-Key", "bot-key")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code)

	var tok auth.TokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tok))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "U5")
}

func (suite *RouterTestSuite) TestJoinFlowOverHTTP() {
	w := suite.do(http.MethodPost, "/api/v1/teams", "alice", nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var team service.TeamSnapshot
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &team))
	suite.Equal(1, team.Number)

	w = suite.do(http.MethodPost, "/api/v1/teams/1/join", "bob", nil)
	suite.Require().Equal(http.StatusAccepted, w.Code)
	var pending service.PendingJoinRequest
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &pending))

	w = suite.do(http.MethodPost, "/api/v1/join-requests/"+pending.ID+"/approve", "bob", nil)
	suite.Equal(http.StatusForbidden, w.Code, "only the captain approves")

	w = suite.do(http.MethodPost, "/api/v1/join-requests/"+pending.ID+"/approve", "alice", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &team))
	suite.Equal(2, team.MemberCount)

	w = suite.do(http.MethodGet, "/api/v1/teams/mine", "bob", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/teams/1", "bob", nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/teams/1", "alice", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/teams/1", "alice", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestJoinRateLimit() {
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/teams", "alice", nil).Code)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, suite.do(http.MethodPost, "/api/v1/teams/1/join", "spammer", nil).Code)
	}
	suite.Equal([]int{http.StatusAccepted, http.StatusAccepted, http.StatusTooManyRequests}, codes)
}

func (suite *RouterTestSuite) TestAdminAndMetrics() {
	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/admin/settings", "alice", nil).Code)

	w := suite.do(http.MethodPatch, "/api/v1/admin/settings", "owner", map[string]int{"max_teams": 5})
	suite.Require().Equal(http.StatusOK, w.Code)
	var settings service.Settings
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &settings))
	suite.Equal(5, settings.MaxTeams)

	w = suite.do(http.MethodGet, "/metrics", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "teamlife_api_http_requests_total")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestSwaggerRouteRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authService, err := auth.NewAuthService("x", time.Hour)
	require.NoError(t, err)
	hub := delivery.NewHub()
	defer hub.Close()

	router := routes.SetupRoutes(&config.Config{}, routes.Dependencies{
		Lifecycle: service.NewTeamLifecycleService(service.Options{Settings: service.Settings{MaxTeamSize: 1, MaxTeams: 1, DurationMinutes: 1}}),
		Hub:       hub,
		Auth:      authService,
	})

	found := false
	for _, r := range router.Routes() {
		if r.Path == "/swagger/*any" {
			found = true
		}
		assert.NotEqual(t, "/metrics", r.Path, "metrics need a registry")
	}
	assert.True(t, found)
}
