package handlers_test

import (
	"net/http"
	"testing"

	"team-lifecycle-backend/internal/api/handlers"
	apperrors "team-lifecycle-backend/internal/errors"
	"team-lifecycle-backend/internal/mocks"
	"team-lifecycle-backend/internal/service"
	"team-lifecycle-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamLifecycleServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	anonymous   *testutils.HTTPTestSuite
}

func (suite *TeamHandlerTestSuite) routes(r *gin.Engine, userID string) {
	v1 := r.Group("/api/v1", testutils.AsUser(userID, "Alice"))
	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/mine", suite.handler.MyTeam)
		teams.POST("/leave", suite.handler.Leave)
		teams.POST("/timer", suite.handler.Timer)
		teams.GET("/:number", suite.handler.GetTeam)
		teams.DELETE("/:number", suite.handler.EndTeam)
		teams.POST("/:number/join", suite.handler.RequestJoin)
	}
	requests := v1.Group("/join-requests")
	{
		requests.GET("", suite.handler.PendingRequests)
		requests.POST("/:id/approve", suite.handler.Approve)
		requests.POST("/:id/deny", suite.handler.Deny)
	}
	v1.POST("/capacity-requests", suite.handler.RequestCapacity)
	v1.POST("/commands", suite.handler.Command)
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamLifecycleServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.routes(suite.httpSuite.Router, "U1")

	suite.anonymous = testutils.SetupHTTPTest()
	suite.routes(suite.anonymous.Router, "")
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := service.TeamSnapshot{Number: 1, CaptainID: "U1", CaptainName: "Alice", MemberCount: 1}
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), "U1", "Alice").
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", nil)

		var response service.TeamSnapshot
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, 1, response.Number)
		assert.Equal(t, "U1", response.CaptainID)
	})

	suite.T().Run("AlreadyInTeam", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), "U1", "Alice").
			Return(service.TeamSnapshot{}, apperrors.ErrAlreadyInTeam)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already")
	})

	suite.T().Run("NoCapacity", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), "U1", "Alice").
			Return(service.TeamSnapshot{}, apperrors.ErrNoSlotsAvailable)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("CreatorUnreachable", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), "U1", "Alice").
			Return(service.TeamSnapshot{}, apperrors.NewDeliveryError("U1", "team_created", nil))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", nil)
		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})

	suite.T().Run("Anonymous", func(t *testing.T) {
		recorder := suite.anonymous.MakeRequest(http.MethodPost, "/api/v1/teams", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeam(3).Return(service.TeamSnapshot{Number: 3}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/3", nil)

		var response service.TeamSnapshot
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 3, response.Number)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeam(9).Return(service.TeamSnapshot{}, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/9", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("InvalidNumber", func(t *testing.T) {
		for _, path := range []string{"/api/v1/teams/abc", "/api/v1/teams/0", "/api/v1/teams/-2"} {
			recorder := suite.httpSuite.MakeRequest(http.MethodGet, path, nil)
			testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team number")
		}
	})
}

func (suite *TeamHandlerTestSuite) TestListAndMine() {
	suite.mockService.EXPECT().ListTeams().Return([]service.TeamSnapshot{{Number: 1}, {Number: 2}})
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams", nil)
	var teams []service.TeamSnapshot
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &teams)
	suite.Len(teams, 2)

	suite.mockService.EXPECT().TeamOf("U1").Return(service.TeamSnapshot{}, apperrors.ErrNotInTeam)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/mine", nil)
	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestJoinFlow() {
	request := service.PendingJoinRequest{ID: "req-1", RequesterID: "U1", TeamNumber: 2}
	suite.mockService.EXPECT().RequestJoin(gomock.Any(), "U1", "Alice", 2).Return(request, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/2/join", nil)
	var pending service.PendingJoinRequest
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusAccepted, &pending)
	suite.Equal("req-1", pending.ID)

	suite.mockService.EXPECT().Approve(gomock.Any(), "U1", "req-1").Return(service.TeamSnapshot{Number: 2, MemberCount: 2}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/join-requests/req-1/approve", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	suite.mockService.EXPECT().Approve(gomock.Any(), "U1", "req-2").Return(service.TeamSnapshot{}, apperrors.ErrNotCaptain)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/join-requests/req-2/approve", nil)
	suite.Equal(http.StatusForbidden, recorder.Code)

	suite.mockService.EXPECT().Approve(gomock.Any(), "U1", "req-3").Return(service.TeamSnapshot{}, apperrors.ErrJoinRequestExpired)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/join-requests/req-3/approve", nil)
	suite.Equal(http.StatusGone, recorder.Code)

	suite.mockService.EXPECT().Deny(gomock.Any(), "U1", "req-4").Return(nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/join-requests/req-4/deny", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.mockService.EXPECT().Deny(gomock.Any(), "U1", "gone").Return(apperrors.ErrJoinRequestNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/join-requests/gone/deny", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)

	suite.mockService.EXPECT().PendingRequests("U1").Return([]service.PendingJoinRequest{request})
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/join-requests", nil)
	var list []service.PendingJoinRequest
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &list)
	suite.Len(list, 1)
}

func (suite *TeamHandlerTestSuite) TestJoinTeamFull() {
	suite.mockService.EXPECT().RequestJoin(gomock.Any(), "U1", "Alice", 1).Return(service.PendingJoinRequest{}, apperrors.ErrTeamFull)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/join", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "full")
}

func (suite *TeamHandlerTestSuite) TestLeaveAndEnd() {
	suite.mockService.EXPECT().Leave(gomock.Any(), "U1").Return(4, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/leave", nil)
	var left handlers.LeaveResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &left)
	suite.Equal(4, left.TeamNumber)

	suite.mockService.EXPECT().EndTeamAs(gomock.Any(), "U1", 4).Return(nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/4", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.mockService.EXPECT().EndTeamAs(gomock.Any(), "U1", 5).Return(apperrors.ErrNotCaptain)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/5", nil)
	suite.Equal(http.StatusForbidden, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestTimer() {
	snap := service.TeamSnapshot{Number: 1, RemainingSeconds: 600}
	suite.mockService.EXPECT().SendTimer(gomock.Any(), "U1").
		Return(snap, apperrors.NewDeliveryError("U1", "timer_snapshot", nil))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/timer", nil)
	var response service.TeamSnapshot
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(600), response.RemainingSeconds)

	suite.mockService.EXPECT().SendTimer(gomock.Any(), "U1").Return(service.TeamSnapshot{}, apperrors.ErrNotInTeam)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/timer", nil)
	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestRequestCapacity() {
	suite.mockService.EXPECT().RequestCapacity(gomock.Any(), "U1", "Alice").Return(2, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/capacity-requests", nil)
	var response handlers.CapacityResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusAccepted, &response)
	suite.Equal(2, response.Reached)

	suite.mockService.EXPECT().RequestCapacity(gomock.Any(), "U1", "Alice").
		Return(0, apperrors.NewDeliveryError("admins", "capacity_request", apperrors.ErrDeliveryFailed))
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/capacity-requests", nil)
	suite.Equal(http.StatusBadGateway, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestCommand() {
	suite.mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, cmd service.Command) (service.Result, error) {
			suite.Equal("U1", cmd.ActorID, "actor comes from the token")
			suite.Equal("Alice", cmd.ActorName)
			suite.Equal(service.CommandJoinTeam, cmd.Kind)
			suite.Equal(3, cmd.TeamNumber)
			return service.Result{Kind: cmd.Kind, Message: "Join request sent to the captain of team 3"}, nil
		})

	body := map[string]interface{}{"kind": "join_team", "team_number": 3, "actor_id": "spoofed"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/commands", body)
	var result service.Result
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &result)
	suite.Equal(service.CommandJoinTeam, result.Kind)

	suite.mockService.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(service.Result{}, apperrors.ErrInvalidCommand)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/commands", map[string]string{"kind": "dance"})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
