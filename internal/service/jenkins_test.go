package service_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "team-lifecycle-backend/internal/errors"
	"team-lifecycle-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// JenkinsServiceTestSuite defines the test suite for JenkinsService
type JenkinsServiceTestSuite struct {
	suite.Suite
	mockServer *httptest.Server
}

// TearDownTest cleans up after each test
func (suite *JenkinsServiceTestSuite) TearDownTest() {
	if suite.mockServer != nil {
		suite.mockServer.Close()
		suite.mockServer = nil
	}
}

func (suite *JenkinsServiceTestSuite) TestReclaim_Success() {
	suite.mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.Equal(suite.T(), "/job/teardown/buildWithParameters", r.URL.Path)

		expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("bot:token-123"))
		assert.Equal(suite.T(), expectedAuth, r.Header.Get("Authorization"))

		require.NoError(suite.T(), r.ParseForm())
		assert.Equal(suite.T(), "3", r.PostForm.Get("TEAM_NUMBER"))
		assert.Equal(suite.T(), "10.0.0.", r.PostForm.Get("IP_BASE"))
		assert.Equal(suite.T(), "105", r.PostForm.Get("RANGE_START"))
		assert.Equal(suite.T(), "109", r.PostForm.Get("RANGE_END"))
		w.WriteHeader(http.StatusCreated)
	}))

	jenkins := service.NewJenkinsService(service.JenkinsConfig{
		BaseURL: suite.mockServer.URL,
		Job:     "teardown",
		User:    "bot",
		Token:   "token-123",
	})

	err := jenkins.Reclaim(context.Background(), service.ReclaimRequest{
		TeamNumber: 3,
		IPBase:     "10.0.0.",
		RangeStart: 105,
		RangeEnd:   109,
	})
	assert.NoError(suite.T(), err)
}

func (suite *JenkinsServiceTestSuite) TestReclaim_ServerError() {
	suite.mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))

	jenkins := service.NewJenkinsService(service.JenkinsConfig{BaseURL: suite.mockServer.URL, Job: "teardown"})
	err := jenkins.Reclaim(context.Background(), service.ReclaimRequest{TeamNumber: 1})
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "status=500")
}

func (suite *JenkinsServiceTestSuite) TestReclaim_NotConfigured() {
	jenkins := service.NewJenkinsService(service.JenkinsConfig{})
	err := jenkins.Reclaim(context.Background(), service.ReclaimRequest{TeamNumber: 1})
	assert.ErrorIs(suite.T(), err, apperrors.ErrJenkinsNotConfigured)
	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

func TestJenkinsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JenkinsServiceTestSuite))
}
