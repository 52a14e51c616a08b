package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamLifecycleServiceInterface defines the interface for the team lifecycle service
type TeamLifecycleServiceInterface interface {
	CreateTeam(ctx context.Context, userID, displayName string) (TeamSnapshot, error)
	RequestJoin(ctx context.Context, requesterID, requesterName string, n int) (PendingJoinRequest, error)
	Approve(ctx context.Context, captainID, requestID string) (TeamSnapshot, error)
	Deny(ctx context.Context, captainID, requestID string) error
	Leave(ctx context.Context, userID string) (int, error)
	EndTeamAs(ctx context.Context, callerID string, n int) error
	SendTimer(ctx context.Context, userID string) (TeamSnapshot, error)
	RequestCapacity(ctx context.Context, userID, displayName string) (int, error)
	PendingRequests(captainID string) []PendingJoinRequest
	GetTeam(n int) (TeamSnapshot, error)
	TeamOf(userID string) (TeamSnapshot, error)
	ListTeams() []TeamSnapshot
	Dispatch(ctx context.Context, cmd Command) (Result, error)
}

// AdminServiceInterface defines the admin surface of the team lifecycle service
type AdminServiceInterface interface {
	Reset(ctx context.Context, callerID string) error
	CloseTeam(ctx context.Context, callerID string, n int) error
	ReopenTeam(ctx context.Context, callerID string, n int) error
	AddAdmin(ctx context.Context, callerID, userID string) error
	RemoveAdmin(ctx context.Context, callerID, userID string) error
	UpdateSettings(ctx context.Context, callerID string, update SettingsUpdate) (Settings, error)
	Settings() Settings
	IsAdmin(userID string) bool
	Snapshot() RegistrySnapshot
}

// JenkinsServiceInterface defines the interface for the Jenkins teardown hook
type JenkinsServiceInterface interface {
	Reclaim(ctx context.Context, r ReclaimRequest) error
}

var (
	_ TeamLifecycleServiceInterface = (*TeamLifecycleService)(nil)
	_ AdminServiceInterface         = (*TeamLifecycleService)(nil)
	_ ProvisioningHook              = (*JenkinsService)(nil)
)
