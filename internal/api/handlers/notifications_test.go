package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"team-lifecycle-backend/internal/api/handlers"
	"team-lifecycle-backend/internal/database/models"
	"team-lifecycle-backend/internal/delivery"
	"team-lifecycle-backend/internal/mocks"
	"team-lifecycle-backend/internal/repository"
	"team-lifecycle-backend/internal/service"
	"team-lifecycle-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotificationRouter(h *handlers.NotificationHandler, userID string) *testutils.HTTPTestSuite {
	s := testutils.SetupHTTPTest()
	g := s.Router.Group("/api/v1", testutils.AsUser(userID, userID))
	g.GET("/notifications", h.List)
	g.GET("/notifications/stream", h.Stream)
	return s
}

func TestNotificationListOwnHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
	admins := mocks.NewMockAdminServiceInterface(ctrl)
	h := handlers.NewNotificationHandler(nil, repo, admins, nil)

	repo.EXPECT().
		List(repository.NotificationFilter{UserID: "U1", Kind: "team_ended", TeamNumber: 2}, 10, 10).
		Return([]models.Notification{{UserID: "U1", Kind: "team_ended"}}, int64(11), nil)

	s := newNotificationRouter(h, "U1")
	recorder := s.MakeRequest(http.MethodGet, "/api/v1/notifications?kind=team_ended&team_number=2&page=2&page_size=10", nil)

	var resp handlers.NotificationListResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, int64(11), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Notifications, 1)
}

func TestNotificationListOtherUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
	admins := mocks.NewMockAdminServiceInterface(ctrl)
	h := handlers.NewNotificationHandler(nil, repo, admins, nil)
	s := newNotificationRouter(h, "U1")

	admins.EXPECT().IsAdmin("U1").Return(false)
	recorder := s.MakeRequest(http.MethodGet, "/api/v1/notifications?user_id=U2", nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	admins.EXPECT().IsAdmin("U1").Return(true)
	repo.EXPECT().List(repository.NotificationFilter{UserID: "U2"}, 20, 0).Return(nil, int64(0), nil)
	recorder = s.MakeRequest(http.MethodGet, "/api/v1/notifications?user_id=U2", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	admins.EXPECT().IsAdmin("U1").Return(true)
	repo.EXPECT().List(repository.NotificationFilter{}, 20, 0).Return(nil, int64(0), nil)
	recorder = s.MakeRequest(http.MethodGet, "/api/v1/notifications?user_id=", nil)
	assert.Equal(t, http.StatusOK, recorder.Code, "admins may list every recipient")
}

func TestNotificationListErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
	s := newNotificationRouter(handlers.NewNotificationHandler(nil, repo, nil, nil), "U1")

	recorder := s.MakeRequest(http.MethodGet, "/api/v1/notifications?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = s.MakeRequest(http.MethodGet, "/api/v1/notifications?team_number=x", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().List(repository.NotificationFilter{UserID: "U1", Since: since}, 20, 0).Return(nil, int64(0), errors.New("db down"))
	recorder = s.MakeRequest(http.MethodGet, "/api/v1/notifications?since=2024-03-01T00:00:00Z", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	disabled := newNotificationRouter(handlers.NewNotificationHandler(nil, nil, nil, nil), "U1")
	recorder = disabled.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestNotificationStream(t *testing.T) {
	hub := delivery.NewHub()
	defer hub.Close()

	h := handlers.NewNotificationHandler(hub, nil, nil, []string{"http://localhost:3000"})
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/stream", testutils.AsUser("U1", "Alice"), h.Stream)
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/stream"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.test"}})
	require.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://localhost:3000"}})
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections("U1") == 1 }, 2*time.Second, 10*time.Millisecond)

	d, err := hub.Notify(t.Context(), service.Notification{UserID: "U1", Kind: service.EventJoinApproved, TeamNumber: 2})
	require.NoError(t, err)
	assert.True(t, d.Delivered)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env delivery.Envelope
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, service.EventJoinApproved, env.Kind)
}
