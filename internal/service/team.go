package service

import (
	"sort"
	"strings"
	"time"
)

type teamStatus int

const (
	// statusPending: registered while the creator's confirmation is in flight
	statusPending teamStatus = iota
	statusActive
	// statusEnding: terminated, waiting for notifications and teardown before deregistration
	statusEnding
)

func (s teamStatus) String() string {
	switch s {
	case statusPending:
		return "pending"
	case statusActive:
		return "active"
	case statusEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Team is a live group of users holding one team number.
// All fields are guarded by the owning TeamLifecycleService's mutex.
type Team struct {
	Number    int
	CaptainID string
	// Members maps user ID to display name; the captain is always a member
	Members   map[string]string
	CreatedAt time.Time
	EndTime   time.Time

	HalfwayNotified bool
	// PendingDeliveryRefs maps requester ID to the prompt handle shown to the captain
	PendingDeliveryRefs map[string]string

	status        teamStatus
	parkOnRelease bool
}

func newTeam(number int, captainID, captainName string, now time.Time, duration time.Duration) *Team {
	return &Team{
		Number:              number,
		CaptainID:           captainID,
		Members:             map[string]string{captainID: captainName},
		CreatedAt:           now,
		EndTime:             now.Add(duration),
		PendingDeliveryRefs: make(map[string]string),
		status:              statusPending,
	}
}

// Active reports whether the team accepts joins and lifecycle operations
func (t *Team) Active() bool {
	return t.status == statusActive
}

// Duration is the team's total lifetime, fixed at creation
func (t *Team) Duration() time.Duration {
	return t.EndTime.Sub(t.CreatedAt)
}

// Remaining returns the time left until EndTime, never negative
func (t *Team) Remaining(now time.Time) time.Duration {
	if r := t.EndTime.Sub(now); r > 0 {
		return r
	}
	return 0
}

func (t *Team) memberIDs() []string {
	ids := make([]string, 0, len(t.Members))
	for id := range t.Members {
		ids = append(ids, id)
	}
	sortUserIDs(ids)
	return ids
}

// nextCaptain picks the lowest remaining member ID
func (t *Team) nextCaptain() string {
	ids := t.memberIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

func (t *Team) snapshot(now time.Time, maxTeamSize int) TeamSnapshot {
	members := make([]MemberSnapshot, 0, len(t.Members))
	for _, id := range t.memberIDs() {
		members = append(members, MemberSnapshot{
			UserID:      id,
			DisplayName: t.Members[id],
			Captain:     id == t.CaptainID,
		})
	}
	return TeamSnapshot{
		Number:           t.Number,
		CaptainID:        t.CaptainID,
		CaptainName:      t.Members[t.CaptainID],
		Members:          members,
		MemberCount:      len(t.Members),
		MaxTeamSize:      maxTeamSize,
		CreatedAt:        t.CreatedAt,
		EndTime:          t.EndTime,
		RemainingSeconds: int64(t.Remaining(now) / time.Second),
		HalfwayNotified:  t.HalfwayNotified,
		Status:           t.status.String(),
	}
}

// sortUserIDs orders decimal IDs (platform snowflakes) numerically and any
// other ID lexically. Decimal IDs come first.
func sortUserIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		da, db := isDecimal(a), isDecimal(b)
		if da != db {
			return da
		}
		if da {
			a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
			if len(a) != len(b) {
				return len(a) < len(b)
			}
		}
		if a != b {
			return a < b
		}
		return ids[i] < ids[j]
	})
}

func isDecimal(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MemberSnapshot is one roster line of a TeamSnapshot
type MemberSnapshot struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Captain     bool   `json:"captain"`
}

// TeamSnapshot is an immutable copy of a team, safe to hand to callers and sinks
type TeamSnapshot struct {
	Number           int              `json:"number"`
	CaptainID        string           `json:"captain_id"`
	CaptainName      string           `json:"captain_name"`
	Members          []MemberSnapshot `json:"members"`
	MemberCount      int              `json:"member_count"`
	MaxTeamSize      int              `json:"max_team_size"`
	CreatedAt        time.Time        `json:"created_at"`
	EndTime          time.Time        `json:"end_time"`
	RemainingSeconds int64            `json:"remaining_seconds"`
	HalfwayNotified  bool             `json:"halfway_notified"`
	Status           string           `json:"status"`
}

// PendingJoinRequest is a join request awaiting the captain's decision
type PendingJoinRequest struct {
	ID            string    `json:"id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	TeamNumber    int       `json:"team_number"`
	IssuedAt      time.Time `json:"issued_at"`
	PromptRef     string    `json:"prompt_ref,omitempty"`
}

// Settings holds the mutable registry configuration
type Settings struct {
	MaxTeamSize           int    `json:"max_team_size"`
	MaxTeams              int    `json:"max_teams"`
	DurationMinutes       int    `json:"duration_minutes"`
	IPBase                string `json:"ip_base"`
	StartResourceID       int    `json:"start_resource_id"`
	MachinesPerTeam       int    `json:"machines_per_team"`
	JoinRequestTTLMinutes int    `json:"join_request_ttl_minutes"`
}

// Duration is the lifetime given to newly created teams
func (s Settings) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// JoinRequestTTL is zero when join requests never expire
func (s Settings) JoinRequestTTL() time.Duration {
	return time.Duration(s.JoinRequestTTLMinutes) * time.Minute
}

// reclaimRequest maps team n to its contiguous resource block
func (s Settings) reclaimRequest(n int) ReclaimRequest {
	start := s.StartResourceID + (n-1)*s.MachinesPerTeam
	return ReclaimRequest{
		TeamNumber: n,
		IPBase:     s.IPBase,
		RangeStart: start,
		RangeEnd:   start + s.MachinesPerTeam - 1,
	}
}

// SettingsUpdate is a partial settings change; nil fields are left untouched
type SettingsUpdate struct {
	MaxTeamSize           *int    `json:"max_team_size,omitempty" validate:"omitempty,min=1,max=100"`
	MaxTeams              *int    `json:"max_teams,omitempty" validate:"omitempty,min=1,max=1000"`
	DurationMinutes       *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	IPBase                *string `json:"ip_base,omitempty" validate:"omitempty,max=64"`
	StartResourceID       *int    `json:"start_resource_id,omitempty" validate:"omitempty,min=0"`
	MachinesPerTeam       *int    `json:"machines_per_team,omitempty" validate:"omitempty,min=1"`
	JoinRequestTTLMinutes *int    `json:"join_request_ttl_minutes,omitempty" validate:"omitempty,min=0"`
}

func (u SettingsUpdate) apply(s Settings) Settings {
	if u.MaxTeamSize != nil {
		s.MaxTeamSize = *u.MaxTeamSize
	}
	if u.MaxTeams != nil {
		s.MaxTeams = *u.MaxTeams
	}
	if u.DurationMinutes != nil {
		s.DurationMinutes = *u.DurationMinutes
	}
	if u.IPBase != nil {
		s.IPBase = *u.IPBase
	}
	if u.StartResourceID != nil {
		s.StartResourceID = *u.StartResourceID
	}
	if u.MachinesPerTeam != nil {
		s.MachinesPerTeam = *u.MachinesPerTeam
	}
	if u.JoinRequestTTLMinutes != nil {
		s.JoinRequestTTLMinutes = *u.JoinRequestTTLMinutes
	}
	return s
}

// RegistrySnapshot is a consistent read of the whole registry
type RegistrySnapshot struct {
	Settings        Settings       `json:"settings"`
	Teams           []TeamSnapshot `json:"teams"`
	UserTeam        map[string]int `json:"user_team"`
	Available       []int          `json:"available_numbers"`
	Held            []int          `json:"held_numbers"`
	Closed          []int          `json:"closed_numbers"`
	Admins          []string       `json:"admins"`
	PendingRequests int            `json:"pending_requests"`
}
