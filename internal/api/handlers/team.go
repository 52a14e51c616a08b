package handlers

import (
	"net/http"

	"team-lifecycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team lifecycle operations
type TeamHandler struct {
	teamService service.TeamLifecycleServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamLifecycleServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// LeaveResponse reports the team a member left
type LeaveResponse struct {
	TeamNumber int `json:"team_number"`
}

// CapacityResponse reports how many admins were reached
type CapacityResponse struct {
	Reached int `json:"reached"`
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team captained by the caller, using the smallest free team number
// @Tags teams
// @Produce json
// @Success 201 {object} service.TeamSnapshot "Team created"
// @Failure 409 {object} ErrorResponse "Caller already in a team, or no capacity"
// @Failure 502 {object} ErrorResponse "Captain could not be notified; nothing was created"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, username, ok := caller(c)
	if !ok {
		return
	}

	team, err := h.teamService.CreateTeam(c, userID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams
// @Summary List active teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamSnapshot
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.ListTeams())
}

// GetTeam handles GET /teams/:number
// @Summary Get team by number
// @Tags teams
// @Produce json
// @Param number path int true "Team number"
// @Success 200 {object} service.TeamSnapshot
// @Failure 400 {object} ErrorResponse "Invalid team number"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{number} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	n, ok := teamNumberParam(c)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(n)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// MyTeam handles GET /teams/mine
// @Summary Get the caller's team
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamSnapshot
// @Failure 409 {object} ErrorResponse "Caller is not in a team"
// @Security BearerAuth
// @Router /teams/mine [get]
func (h *TeamHandler) MyTeam(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	team, err := h.teamService.TeamOf(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// RequestJoin handles POST /teams/:number/join
// @Summary Ask to join a team
// @Description Sends a join request to the team's captain for approval
// @Tags teams
// @Produce json
// @Param number path int true "Team number"
// @Success 202 {object} service.PendingJoinRequest "Request sent to the captain"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Already in a team or team full"
// @Failure 502 {object} ErrorResponse "Captain unreachable"
// @Security BearerAuth
// @Router /teams/{number}/join [post]
func (h *TeamHandler) RequestJoin(c *gin.Context) {
	userID, username, ok := caller(c)
	if !ok {
		return
	}
	n, ok := teamNumberParam(c)
	if !ok {
		return
	}

	req, err := h.teamService.RequestJoin(c, userID, username, n)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, req)
}

// EndTeam handles DELETE /teams/:number
// @Summary End a team
// @Description Captains end their own team, admins may end any team
// @Tags teams
// @Param number path int true "Team number"
// @Success 204 "Team ended"
// @Failure 403 {object} ErrorResponse "Caller is neither captain nor admin"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{number} [delete]
func (h *TeamHandler) EndTeam(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	n, ok := teamNumberParam(c)
	if !ok {
		return
	}

	if err := h.teamService.EndTeamAs(c, userID, n); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Leave handles POST /teams/leave
// @Summary Leave the caller's team
// @Tags teams
// @Produce json
// @Success 200 {object} LeaveResponse
// @Failure 409 {object} ErrorResponse "Caller is not in a team"
// @Security BearerAuth
// @Router /teams/leave [post]
func (h *TeamHandler) Leave(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	n, err := h.teamService.Leave(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LeaveResponse{TeamNumber: n})
}

// Timer handles POST /teams/timer
// @Summary Send the caller a timer update
// @Description Delivers the remaining time of the caller's team as a notification and returns it
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamSnapshot
// @Failure 409 {object} ErrorResponse "Caller is not in a team"
// @Security BearerAuth
// @Router /teams/timer [post]
func (h *TeamHandler) Timer(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	team, err := h.teamService.SendTimer(c, userID)
	if err != nil && team.Number == 0 {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// PendingRequests handles GET /join-requests
// @Summary List join requests awaiting the caller's decision
// @Tags join-requests
// @Produce json
// @Success 200 {array} service.PendingJoinRequest
// @Security BearerAuth
// @Router /join-requests [get]
func (h *TeamHandler) PendingRequests(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.teamService.PendingRequests(userID))
}

// Approve handles POST /join-requests/:id/approve
// @Summary Approve a join request
// @Tags join-requests
// @Produce json
// @Param id path string true "Join request ID"
// @Success 200 {object} service.TeamSnapshot
// @Failure 403 {object} ErrorResponse "Caller is not the captain"
// @Failure 404 {object} ErrorResponse "Request or team not found"
// @Failure 409 {object} ErrorResponse "Requester already in a team or team full"
// @Failure 410 {object} ErrorResponse "Request expired"
// @Security BearerAuth
// @Router /join-requests/{id}/approve [post]
func (h *TeamHandler) Approve(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	team, err := h.teamService.Approve(c, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// Deny handles POST /join-requests/:id/deny
// @Summary Deny a join request
// @Tags join-requests
// @Param id path string true "Join request ID"
// @Success 204 "Request denied"
// @Failure 403 {object} ErrorResponse "Caller is not the captain"
// @Failure 404 {object} ErrorResponse "Request or team not found"
// @Security BearerAuth
// @Router /join-requests/{id}/deny [post]
func (h *TeamHandler) Deny(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	if err := h.teamService.Deny(c, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestCapacity handles POST /capacity-requests
// @Summary Ask admins for more team slots
// @Tags teams
// @Produce json
// @Success 202 {object} CapacityResponse
// @Failure 502 {object} ErrorResponse "No admin could be reached"
// @Security BearerAuth
// @Router /capacity-requests [post]
func (h *TeamHandler) RequestCapacity(c *gin.Context) {
	userID, username, ok := caller(c)
	if !ok {
		return
	}

	reached, err := h.teamService.RequestCapacity(c, userID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, CapacityResponse{Reached: reached})
}

// Command handles POST /commands
// @Summary Run a chat command
// @Description Single entry point for chat front ends; the actor is taken from the token
// @Tags commands
// @Accept json
// @Produce json
// @Param command body service.Command true "Command"
// @Success 200 {object} service.Result
// @Failure 400 {object} ErrorResponse "Unknown or malformed command"
// @Security BearerAuth
// @Router /commands [post]
func (h *TeamHandler) Command(c *gin.Context) {
	userID, username, ok := caller(c)
	if !ok {
		return
	}

	var cmd service.Command
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	cmd.ActorID = userID
	cmd.ActorName = username

	res, err := h.teamService.Dispatch(c, cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
