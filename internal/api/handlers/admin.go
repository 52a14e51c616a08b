package handlers

import (
	"net/http"

	apperrors "team-lifecycle-backend/internal/errors"
	"team-lifecycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for administrative operations
type AdminHandler struct {
	adminService service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminRequest names the user an admin grant applies to
type AdminRequest struct {
	UserID string `json:"user_id" binding:"required,max=64"`
}

// requireAdmin guards the read-only admin views; mutating operations authorize in the service
func (h *AdminHandler) requireAdmin(c *gin.Context) (string, bool) {
	userID, _, ok := caller(c)
	if !ok {
		return "", false
	}
	if !h.adminService.IsAdmin(userID) {
		respondError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return userID, true
}

// Reset handles POST /admin/reset
// @Summary Reset the registry
// @Description Disbands every team, clears pending requests and reopens all numbers. No teardown runs.
// @Tags admin
// @Success 204 "Registry reset"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Security BearerAuth
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	if err := h.adminService.Reset(c, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CloseTeam handles POST /admin/teams/:number/close
// @Summary Close a team number
// @Description Takes a number out of rotation, ending its team if one is active
// @Tags admin
// @Param number path int true "Team number"
// @Success 204 "Number closed"
// @Failure 400 {object} ErrorResponse "Invalid team number"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 409 {object} ErrorResponse "Already closed, out of range, or still being created"
// @Security BearerAuth
// @Router /admin/teams/{number}/close [post]
func (h *AdminHandler) CloseTeam(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	n, ok := teamNumberParam(c)
	if !ok {
		return
	}
	if err := h.adminService.CloseTeam(c, userID, n); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReopenTeam handles POST /admin/teams/:number/reopen
// @Summary Reopen a closed team number
// @Tags admin
// @Param number path int true "Team number"
// @Success 204 "Number reopened"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 409 {object} ErrorResponse "Number is not closed"
// @Security BearerAuth
// @Router /admin/teams/{number}/reopen [post]
func (h *AdminHandler) ReopenTeam(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	n, ok := teamNumberParam(c)
	if !ok {
		return
	}
	if err := h.adminService.ReopenTeam(c, userID, n); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddAdmin handles POST /admin/admins
// @Summary Grant admin rights
// @Tags admin
// @Accept json
// @Param request body AdminRequest true "User to promote"
// @Success 204 "Admin added"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 409 {object} ErrorResponse "Already an admin"
// @Security BearerAuth
// @Router /admin/admins [post]
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.adminService.AddAdmin(c, userID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveAdmin handles DELETE /admin/admins/:userId
// @Summary Revoke admin rights
// @Tags admin
// @Param userId path string true "Admin user ID"
// @Success 204 "Admin removed"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 404 {object} ErrorResponse "Not an admin"
// @Security BearerAuth
// @Router /admin/admins/{userId} [delete]
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	if err := h.adminService.RemoveAdmin(c, userID, c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSettings handles GET /admin/settings
// @Summary View settings
// @Tags admin
// @Produce json
// @Success 200 {object} service.Settings
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Security BearerAuth
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	c.JSON(http.StatusOK, h.adminService.Settings())
}

// UpdateSettings handles PATCH /admin/settings
// @Summary Update settings
// @Description Partial update; lowering max_teams never evicts running teams
// @Tags admin
// @Accept json
// @Produce json
// @Param settings body service.SettingsUpdate true "Fields to change"
// @Success 200 {object} service.Settings
// @Failure 400 {object} ErrorResponse "Invalid settings"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 409 {object} ErrorResponse "Max team size below an active team's member count"
// @Security BearerAuth
// @Router /admin/settings [patch]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	var update service.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	settings, err := h.adminService.UpdateSettings(c, userID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Snapshot handles GET /admin/snapshot
// @Summary Inspect the registry
// @Tags admin
// @Produce json
// @Success 200 {object} service.RegistrySnapshot
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Security BearerAuth
// @Router /admin/snapshot [get]
func (h *AdminHandler) Snapshot(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	c.JSON(http.StatusOK, h.adminService.Snapshot())
}
