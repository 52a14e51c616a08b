package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"team-lifecycle-backend/internal/auth"
	apperrors "team-lifecycle-backend/internal/errors"
	"team-lifecycle-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps the error taxonomy onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrJoinRequestExpired):
		return http.StatusGone
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsDelivery(err):
		return http.StatusBadGateway
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Error("Request failed")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// caller extracts the authenticated identity or writes a 401
func caller(c *gin.Context) (string, string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrMissingIdentity.Error()})
		return "", "", false
	}
	username, _ := auth.GetUsername(c)
	if username == "" {
		username = userID
	}
	return userID, username, true
}

// teamNumberParam parses the :number path parameter or writes a 400
func teamNumberParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team number"})
		return 0, false
	}
	return n, true
}
