package handlers

import (
	"net/http"
	"strconv"
	"time"

	"team-lifecycle-backend/internal/database/models"
	"team-lifecycle-backend/internal/delivery"
	"team-lifecycle-backend/internal/logger"
	"team-lifecycle-backend/internal/repository"
	"team-lifecycle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotificationHandler serves the live notification stream and the audit log
type NotificationHandler struct {
	hub      *delivery.Hub
	repo     repository.NotificationRepositoryInterface
	admins   service.AdminServiceInterface
	upgrader websocket.Upgrader
}

// NotificationListResponse is one page of the audit log
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// NewNotificationHandler creates a notification handler. repo may be nil when auditing is disabled.
func NewNotificationHandler(hub *delivery.Hub, repo repository.NotificationRepositoryInterface, admins service.AdminServiceInterface, allowedOrigins []string) *NotificationHandler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}
	return &NotificationHandler{
		hub:    hub,
		repo:   repo,
		admins: admins,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := origins[origin]
				_, wildcard := origins["*"]
				return ok || wildcard
			},
		},
	}
}

// Stream handles GET /notifications/stream
// @Summary Subscribe to notifications
// @Description Upgrades to a websocket that receives every notification addressed to the caller
// @Tags notifications
// @Param token query string false "Bearer token, for clients that cannot set headers"
// @Success 101 "Switching protocols"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithContext(c).WithError(err).Warn("Websocket upgrade failed")
		return
	}

	log := logger.WithContext(c).WithField("stream_user", userID)
	client := delivery.NewClient(conn, log)
	h.hub.Register(userID, client)
	defer h.hub.Unregister(userID, client)

	log.Debug("Notification stream opened")
	client.Serve()
	log.Debug("Notification stream closed")
}

// List handles GET /notifications
// @Summary List audited notifications
// @Description Returns the caller's notification history; admins may query any user or all users
// @Tags notifications
// @Produce json
// @Param user_id query string false "Recipient (admins only)"
// @Param kind query string false "Event kind"
// @Param team_number query int false "Team number"
// @Param since query string false "RFC3339 lower bound"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} NotificationListResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 404 {object} ErrorResponse "Auditing disabled"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	if h.repo == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "notification audit is disabled"})
		return
	}

	filter := repository.NotificationFilter{
		UserID: userID,
		Kind:   c.Query("kind"),
	}
	if target, set := c.GetQuery("user_id"); set && target != userID {
		if !h.admins.IsAdmin(userID) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only admins may read other users' notifications"})
			return
		}
		filter.UserID = target
	}
	if raw := c.Query("team_number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team number"})
			return
		}
		filter.TeamNumber = n
	}
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "since must be RFC3339"})
			return
		}
		filter.Since = since
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	records, total, err := h.repo.List(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NotificationListResponse{
		Notifications: records,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	})
}
