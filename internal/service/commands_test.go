package service_test

import (
	"context"
	"testing"

	apperrors "team-lifecycle-backend/internal/errors"
	"team-lifecycle-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchJoinFlow(t *testing.T) {
	ctx := context.Background()
	sink := newRecordingSink()
	svc := service.NewTeamLifecycleService(service.Options{
		Settings: testSettings(),
		OwnerID:  "owner",
		Sink:     sink,
		Clock:    newFakeClock(),
	})

	res, err := svc.Dispatch(ctx, service.Command{Kind: service.CommandCreateTeam, ActorID: "a", ActorName: "Alice"})
	require.NoError(t, err)
	require.NotNil(t, res.Team)
	assert.Equal(t, 1, res.Team.Number)
	assert.Equal(t, "Team 1 created", res.Message)

	res, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandJoinTeam, ActorID: "b", ActorName: "Bob", TeamNumber: 1})
	require.NoError(t, err)
	require.NotNil(t, res.Request)

	res, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandApproveJoin, ActorID: "a", RequestID: res.Request.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Team.MemberCount)

	res, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandListTeams, ActorID: "b"})
	require.NoError(t, err)
	assert.Len(t, res.Teams, 1)

	res, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandLeaveTeam, ActorID: "b"})
	require.NoError(t, err)
	assert.Equal(t, "You left team 1", res.Message)

	_, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandEndTeam, ActorID: "a"})
	require.NoError(t, err)
	assert.Empty(t, svc.ListTeams())
}

func TestDispatchAdminCommands(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTeamLifecycleService(service.Options{
		Settings: testSettings(),
		OwnerID:  "owner",
		Sink:     newRecordingSink(),
		Clock:    newFakeClock(),
	})

	_, err := svc.Dispatch(ctx, service.Command{Kind: service.CommandViewSettings, ActorID: "a"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandAdminAdd, ActorID: "owner", TargetID: "a"})
	require.NoError(t, err)

	res, err := svc.Dispatch(ctx, service.Command{Kind: service.CommandViewSettings, ActorID: "a"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Settings.MaxTeams)

	four := 4
	res, err = svc.Dispatch(ctx, service.Command{
		Kind:     service.CommandUpdateSettings,
		ActorID:  "a",
		Settings: &service.SettingsUpdate{MaxTeams: &four},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Settings.MaxTeams)

	_, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandUpdateSettings, ActorID: "a"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandCloseTeam, ActorID: "a", TeamNumber: 3})
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandReopenTeam, ActorID: "a", TeamNumber: 3})
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandReset, ActorID: "a"})
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, service.Command{Kind: service.CommandAdminRemove, ActorID: "owner", TargetID: "a"})
	require.NoError(t, err)
}

func TestDispatchRejectsBadCommands(t *testing.T) {
	svc := service.NewTeamLifecycleService(service.Options{Settings: testSettings(), Sink: newRecordingSink()})

	_, err := svc.Dispatch(context.Background(), service.Command{Kind: "dance", ActorID: "a"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCommand)

	_, err = svc.Dispatch(context.Background(), service.Command{Kind: service.CommandCreateTeam})
	assert.ErrorIs(t, err, apperrors.ErrMissingIdentity)
	assert.True(t, apperrors.IsAuthentication(err))
}
