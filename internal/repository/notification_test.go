//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"team-lifecycle-backend/internal/database/models"
	"team-lifecycle-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	factory       *testutils.NotificationFactory
}

func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewNotificationFactory()
}

func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) TestCreate() {
	n := suite.factory.Create()
	n.ID = uuid.Nil

	err := suite.repo.Create(n)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, n.ID)
	suite.NotZero(n.CreatedAt)
}

func (suite *NotificationRepositoryTestSuite) TestListFiltersAndPaginates() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factory.WithUser("U1")))
	}
	other := suite.factory.WithUser("U2")
	other.Kind = "team_ended"
	other.TeamNumber = 4
	suite.Require().NoError(suite.repo.Create(other))

	records, total, err := suite.repo.List(NotificationFilter{UserID: "U1"}, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(records, 2)

	records, total, err = suite.repo.List(NotificationFilter{Kind: "team_ended", TeamNumber: 4}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(records, 1)
	suite.Equal("U2", records[0].UserID)

	records, total, err = suite.repo.List(NotificationFilter{}, 10, 3)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(records, 1)
}

func (suite *NotificationRepositoryTestSuite) TestListNewestFirst() {
	old := suite.factory.CreatedAt(time.Now().Add(-time.Hour))
	recent := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(old))
	suite.Require().NoError(suite.repo.Create(recent))

	records, _, err := suite.repo.List(NotificationFilter{}, 10, 0)
	suite.NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal(recent.ID, records[0].ID)

	records, total, err := suite.repo.List(NotificationFilter{Since: time.Now().Add(-time.Minute)}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(recent.ID, records[0].ID)
}

func (suite *NotificationRepositoryTestSuite) TestCountByOutcome() {
	suite.Require().NoError(suite.repo.Create(suite.factory.WithOutcome(models.DeliveryOutcomeDelivered)))
	suite.Require().NoError(suite.repo.Create(suite.factory.WithOutcome(models.DeliveryOutcomeDelivered)))
	suite.Require().NoError(suite.repo.Create(suite.factory.WithOutcome(models.DeliveryOutcomeFailed)))

	counts, err := suite.repo.CountByOutcome(time.Now().Add(-time.Hour))
	suite.NoError(err)
	suite.Equal(int64(2), counts[models.DeliveryOutcomeDelivered])
	suite.Equal(int64(1), counts[models.DeliveryOutcomeFailed])
	suite.Zero(counts[models.DeliveryOutcomeUndelivered])
}

func (suite *NotificationRepositoryTestSuite) TestDeleteOlderThan() {
	suite.Require().NoError(suite.repo.Create(suite.factory.CreatedAt(time.Now().Add(-48 * time.Hour))))
	suite.Require().NoError(suite.repo.Create(suite.factory.Create()))

	removed, err := suite.repo.DeleteOlderThan(time.Now().Add(-24 * time.Hour))
	suite.NoError(err)
	suite.Equal(int64(1), removed)

	_, total, err := suite.repo.List(NotificationFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
