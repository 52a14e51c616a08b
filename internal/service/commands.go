package service

import (
	"context"
	"fmt"

	apperrors "team-lifecycle-backend/internal/errors"
)

// Command kinds accepted by Dispatch
const (
	CommandCreateTeam      = "create_team"
	CommandJoinTeam        = "join_team"
	CommandApproveJoin     = "approve_join"
	CommandDenyJoin        = "deny_join"
	CommandLeaveTeam       = "leave_team"
	CommandEndTeam         = "end_team"
	CommandTimer           = "timer"
	CommandRequestCapacity = "request_capacity"
	CommandListTeams       = "list_teams"
	CommandReset           = "reset"
	CommandAdminAdd        = "admin_add"
	CommandAdminRemove     = "admin_remove"
	CommandUpdateSettings  = "update_settings"
	CommandViewSettings    = "view_settings"
	CommandReopenTeam      = "reopen_team"
	CommandCloseTeam       = "close_team"
)

// Command is a user action as it arrives from a chat front end.
// ActorID and ActorName are filled from the authenticated caller.
type Command struct {
	Kind       string          `json:"kind" validate:"required"`
	ActorID    string          `json:"-"`
	ActorName  string          `json:"-"`
	TeamNumber int             `json:"team_number,omitempty"`
	RequestID  string          `json:"request_id,omitempty"`
	TargetID   string          `json:"target_id,omitempty"`
	Settings   *SettingsUpdate `json:"settings,omitempty"`
}

// Result is the command outcome rendered back to the caller
type Result struct {
	Kind     string              `json:"kind"`
	Message  string              `json:"message"`
	Team     *TeamSnapshot       `json:"team,omitempty"`
	Teams    []TeamSnapshot      `json:"teams,omitempty"`
	Request  *PendingJoinRequest `json:"request,omitempty"`
	Settings *Settings           `json:"settings,omitempty"`
	Reached  int                 `json:"reached,omitempty"`
}

// Dispatch routes a command to the matching lifecycle operation
func (s *TeamLifecycleService) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	if cmd.ActorID == "" {
		return Result{}, apperrors.ErrMissingIdentity
	}
	res := Result{Kind: cmd.Kind}

	switch cmd.Kind {
	case CommandCreateTeam:
		team, err := s.CreateTeam(ctx, cmd.ActorID, cmd.ActorName)
		if err != nil {
			return Result{}, err
		}
		res.Team = &team
		res.Message = fmt.Sprintf("Team %d created", team.Number)

	case CommandJoinTeam:
		req, err := s.RequestJoin(ctx, cmd.ActorID, cmd.ActorName, cmd.TeamNumber)
		if err != nil {
			return Result{}, err
		}
		res.Request = &req
		res.Message = fmt.Sprintf("Join request sent to the captain of team %d", cmd.TeamNumber)

	case CommandApproveJoin:
		team, err := s.Approve(ctx, cmd.ActorID, cmd.RequestID)
		if err != nil {
			return Result{}, err
		}
		res.Team = &team
		res.Message = "Join request approved"

	case CommandDenyJoin:
		if err := s.Deny(ctx, cmd.ActorID, cmd.RequestID); err != nil {
			return Result{}, err
		}
		res.Message = "Join request denied"

	case CommandLeaveTeam:
		n, err := s.Leave(ctx, cmd.ActorID)
		if err != nil {
			return Result{}, err
		}
		res.Message = fmt.Sprintf("You left team %d", n)

	case CommandEndTeam:
		n := cmd.TeamNumber
		if n == 0 {
			team, err := s.TeamOf(cmd.ActorID)
			if err != nil {
				return Result{}, err
			}
			n = team.Number
		}
		if err := s.EndTeamAs(ctx, cmd.ActorID, n); err != nil {
			return Result{}, err
		}
		res.Message = fmt.Sprintf("Team %d ended", n)

	case CommandTimer:
		team, err := s.SendTimer(ctx, cmd.ActorID)
		if err != nil && !apperrors.IsDelivery(err) {
			return Result{}, err
		}
		res.Team = &team
		res.Message = fmt.Sprintf("%d seconds remaining", team.RemainingSeconds)

	case CommandRequestCapacity:
		reached, err := s.RequestCapacity(ctx, cmd.ActorID, cmd.ActorName)
		if err != nil {
			return Result{}, err
		}
		res.Reached = reached
		res.Message = "Capacity request sent to admins"

	case CommandListTeams:
		res.Teams = s.ListTeams()
		res.Message = fmt.Sprintf("%d active teams", len(res.Teams))

	case CommandReset:
		if err := s.Reset(ctx, cmd.ActorID); err != nil {
			return Result{}, err
		}
		res.Message = "All teams reset"

	case CommandAdminAdd:
		if err := s.AddAdmin(ctx, cmd.ActorID, cmd.TargetID); err != nil {
			return Result{}, err
		}
		res.Message = "Admin added"

	case CommandAdminRemove:
		if err := s.RemoveAdmin(ctx, cmd.ActorID, cmd.TargetID); err != nil {
			return Result{}, err
		}
		res.Message = "Admin removed"

	case CommandUpdateSettings:
		if cmd.Settings == nil {
			return Result{}, apperrors.ErrInvalidSettings
		}
		settings, err := s.UpdateSettings(ctx, cmd.ActorID, *cmd.Settings)
		if err != nil {
			return Result{}, err
		}
		res.Settings = &settings
		res.Message = "Settings updated"

	case CommandViewSettings:
		if !s.IsAdmin(cmd.ActorID) {
			return Result{}, apperrors.ErrUnauthorized
		}
		settings := s.Settings()
		res.Settings = &settings
		res.Message = "Current settings"

	case CommandReopenTeam:
		if err := s.ReopenTeam(ctx, cmd.ActorID, cmd.TeamNumber); err != nil {
			return Result{}, err
		}
		res.Message = fmt.Sprintf("Team %d reopened", cmd.TeamNumber)

	case CommandCloseTeam:
		if err := s.CloseTeam(ctx, cmd.ActorID, cmd.TeamNumber); err != nil {
			return Result{}, err
		}
		res.Message = fmt.Sprintf("Team %d closed", cmd.TeamNumber)

	default:
		return Result{}, apperrors.ErrInvalidCommand
	}
	return res, nil
}
