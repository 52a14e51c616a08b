package service

import (
	"context"
	"time"
)

//go:generate mockgen -source=notifications.go -destination=../mocks/notification_mocks.go -package=mocks

// EventKind identifies a notification intent. Rendering is the delivery layer's job.
type EventKind string

const (
	EventTeamCreated     EventKind = "team_created"
	EventTimerSnapshot   EventKind = "timer_snapshot"
	EventJoinRequested   EventKind = "join_requested"
	EventJoinApproved    EventKind = "join_approved"
	EventJoinDenied      EventKind = "join_denied"
	EventJoinExpired     EventKind = "join_expired"
	EventMemberLeft      EventKind = "member_left"
	EventCaptainPromoted EventKind = "captain_promoted"
	EventTeamEnded       EventKind = "team_ended"
	EventHalfwayReached  EventKind = "halfway_reached"
	EventCapacityRequest EventKind = "capacity_request"
)

// Reasons attached to EventTeamEnded
const (
	ReasonExpired        = "expired"
	ReasonEndedByCaptain = "ended by captain"
	ReasonEndedByAdmin   = "ended by admin"
	ReasonClosedByAdmin  = "closed by admin"
	ReasonReset          = "reset by admin"
)

// Notification is an outward message intent addressed to one user.
type Notification struct {
	UserID     string            `json:"user_id"`
	Kind       EventKind         `json:"kind"`
	TeamNumber int               `json:"team_number,omitempty"`
	Team       *TeamSnapshot     `json:"team,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	IssuedAt   time.Time         `json:"issued_at"`
}

// Delivery is the sink's verdict on one notification. Ref is an opaque handle
// the delivery layer may use to edit the sent message later.
type Delivery struct {
	Delivered bool   `json:"delivered"`
	Ref       string `json:"ref,omitempty"`
}

// NotificationSink fulfils notification intents (DM, channel post, websocket push).
// A returned error and Delivered=false are both treated as "not delivered".
type NotificationSink interface {
	Notify(ctx context.Context, n Notification) (Delivery, error)
}

// ReclaimRequest describes the resources to tear down when a team terminates.
// IPBase and the range are passed through from Settings unexamined.
type ReclaimRequest struct {
	TeamNumber int    `json:"team_number"`
	IPBase     string `json:"ip_base"`
	RangeStart int    `json:"range_start"`
	RangeEnd   int    `json:"range_end"`
}

// ProvisioningHook reclaims external resources once per team termination.
type ProvisioningHook interface {
	Reclaim(ctx context.Context, req ReclaimRequest) error
}
