package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	apperrors "team-lifecycle-backend/internal/errors"
	"team-lifecycle-backend/internal/logger"

	"github.com/go-playground/validator/v10"
)

// Options configures a TeamLifecycleService
type Options struct {
	Settings Settings
	// OwnerID is always authorized for admin operations, even when not in the admin set
	OwnerID  string
	Admins   []string
	Sink     NotificationSink
	Hook     ProvisioningHook
	Clock    Clock
	Metrics  *Metrics
	Validate *validator.Validate
}

// TeamLifecycleService owns the team registry: teams, the user index, the
// number pool, pending join requests and admin settings.
//
// A single mutex guards all registry state. Notifications and teardown run
// outside the lock on snapshots taken inside it, and rollbacks re-validate
// state under the lock before touching it.
type TeamLifecycleService struct {
	mu       sync.Mutex
	settings Settings
	ownerID  string
	admins   map[string]struct{}
	teams    map[int]*Team
	userTeam map[string]int
	slots    *SlotAllocator
	requests map[string]*PendingJoinRequest
	// requestKeys indexes requests by requester and team
	requestKeys map[string]string

	sink     NotificationSink
	hook     ProvisioningHook
	clock    Clock
	metrics  *Metrics
	validate *validator.Validate
}

// NewTeamLifecycleService creates an empty registry
func NewTeamLifecycleService(opts Options) *TeamLifecycleService {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Validate == nil {
		opts.Validate = validator.New()
	}
	s := &TeamLifecycleService{
		settings:    opts.Settings,
		ownerID:     opts.OwnerID,
		admins:      make(map[string]struct{}, len(opts.Admins)),
		teams:       make(map[int]*Team),
		userTeam:    make(map[string]int),
		slots:       NewSlotAllocator(opts.Settings.MaxTeams),
		requests:    make(map[string]*PendingJoinRequest),
		requestKeys: make(map[string]string),
		sink:        opts.Sink,
		hook:        opts.Hook,
		clock:       opts.Clock,
		metrics:     opts.Metrics,
		validate:    opts.Validate,
	}
	for _, id := range opts.Admins {
		if id != "" {
			s.admins[id] = struct{}{}
		}
	}
	return s
}

// ending carries a terminated team from beginEndLocked to finishEnd
type ending struct {
	team     *Team
	reason   string
	snapshot TeamSnapshot
	members  []string
	admins   []string
	reclaim  ReclaimRequest
}

// CreateTeam registers a new team captained by userID and returns its snapshot.
// The team only becomes visible once the creator has been notified; if that
// notification fails the creation is undone.
func (s *TeamLifecycleService) CreateTeam(ctx context.Context, userID, displayName string) (TeamSnapshot, error) {
	log := logger.WithContext(ctx).WithField("user_id", userID)
	if userID == "" {
		return TeamSnapshot{}, apperrors.NewValidationError("user_id", "user ID is required")
	}

	s.mu.Lock()
	if _, ok := s.userTeam[userID]; ok {
		s.mu.Unlock()
		return TeamSnapshot{}, apperrors.ErrAlreadyInTeam
	}
	n, ok := s.slots.Acquire()
	if !ok {
		s.mu.Unlock()
		return TeamSnapshot{}, apperrors.ErrNoSlotsAvailable
	}
	if len(s.teams) >= s.settings.MaxTeams {
		s.slots.Release(n)
		s.mu.Unlock()
		return TeamSnapshot{}, apperrors.ErrAtCapacity
	}
	team := newTeam(n, userID, displayName, s.clock.Now(), s.settings.Duration())
	s.teams[n] = team
	s.userTeam[userID] = n
	snap := team.snapshot(s.clock.Now(), s.settings.MaxTeamSize)
	s.mu.Unlock()

	_, err := s.deliver(ctx, Notification{
		UserID:     userID,
		Kind:       EventTeamCreated,
		TeamNumber: n,
		Team:       &snap,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.teams[n] != team {
		// reset while the confirmation was in flight
		return TeamSnapshot{}, apperrors.ErrTeamNotFound
	}
	if err != nil {
		delete(s.teams, n)
		if s.userTeam[userID] == n {
			delete(s.userTeam, userID)
		}
		s.releaseLocked(team)
		log.WithError(err).Warn("Team creation rolled back: creator unreachable")
		return TeamSnapshot{}, err
	}
	team.status = statusActive
	s.metrics.setTeams(len(s.teams))
	log.WithField("team", n).Info("Team created")
	return team.snapshot(s.clock.Now(), s.settings.MaxTeamSize), nil
}

// RequestJoin records a join request for team n and prompts its captain
func (s *TeamLifecycleService) RequestJoin(ctx context.Context, requesterID, requesterName string, n int) (PendingJoinRequest, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": requesterID,
		"team":    n,
	})
	if requesterID == "" {
		return PendingJoinRequest{}, apperrors.NewValidationError("user_id", "user ID is required")
	}

	s.mu.Lock()
	team, ok := s.teams[n]
	if !ok || !team.Active() {
		s.mu.Unlock()
		return PendingJoinRequest{}, apperrors.ErrTeamNotFound
	}
	if _, ok := s.userTeam[requesterID]; ok {
		s.mu.Unlock()
		return PendingJoinRequest{}, apperrors.ErrAlreadyInTeam
	}
	if len(team.Members) >= s.settings.MaxTeamSize {
		s.mu.Unlock()
		return PendingJoinRequest{}, apperrors.ErrTeamFull
	}
	req := s.addRequestLocked(requesterID, requesterName, n)
	captainID := team.CaptainID
	snap := team.snapshot(s.clock.Now(), s.settings.MaxTeamSize)
	s.mu.Unlock()

	d, err := s.deliver(ctx, Notification{
		UserID:     captainID,
		Kind:       EventJoinRequested,
		TeamNumber: n,
		Team:       &snap,
		Fields: map[string]string{
			"request_id":     req.ID,
			"requester_id":   requesterID,
			"requester_name": requesterName,
		},
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	current, stillPending := s.requests[req.ID]
	if err != nil {
		if stillPending {
			s.deleteRequestLocked(current)
		}
		log.WithError(err).Warn("Join request dropped: captain unreachable")
		return PendingJoinRequest{}, fmt.Errorf("%w: %w", apperrors.ErrCaptainUnreachable, err)
	}
	if !stillPending {
		// resolved or swept while the prompt was in flight
		return *req, nil
	}
	current.PromptRef = d.Ref
	if t, ok := s.teams[n]; ok {
		t.PendingDeliveryRefs[requesterID] = d.Ref
	}
	log.WithField("request_id", req.ID).Info("Join request sent to captain")
	return *current, nil
}

// Approve admits the requester of requestID. Only the team's captain may approve.
func (s *TeamLifecycleService) Approve(ctx context.Context, captainID, requestID string) (TeamSnapshot, error) {
	log := logger.WithContext(ctx).WithField("request_id", requestID)

	s.mu.Lock()
	req, err := s.lookupRequestLocked(requestID)
	if err != nil {
		s.mu.Unlock()
		return TeamSnapshot{}, err
	}
	team, ok := s.teams[req.TeamNumber]
	if !ok || !team.Active() {
		s.deleteRequestLocked(req)
		s.mu.Unlock()
		return TeamSnapshot{}, apperrors.ErrTeamNotFound
	}
	if team.CaptainID != captainID {
		s.mu.Unlock()
		return TeamSnapshot{}, apperrors.ErrNotCaptain
	}
	if _, ok := s.userTeam[req.RequesterID]; ok {
		s.deleteRequestLocked(req)
		s.mu.Unlock()
		return TeamSnapshot{}, apperrors.ErrAlreadyInTeam
	}
	if len(team.Members) >= s.settings.MaxTeamSize {
		// request stays pending; the captain can retry once a seat frees up
		s.mu.Unlock()
		return TeamSnapshot{}, apperrors.ErrTeamFull
	}
	s.deleteRequestLocked(req)
	team.Members[req.RequesterID] = req.RequesterName
	s.userTeam[req.RequesterID] = team.Number
	snap := team.snapshot(s.clock.Now(), s.settings.MaxTeamSize)
	s.mu.Unlock()

	_, err = s.deliver(ctx, Notification{
		UserID:     req.RequesterID,
		Kind:       EventJoinApproved,
		TeamNumber: team.Number,
		Team:       &snap,
	})
	if err == nil {
		s.metrics.joinDecision("approved")
		log.WithFields(map[string]interface{}{
			"team":    team.Number,
			"user_id": req.RequesterID,
		}).Info("Join request approved")
		return snap, nil
	}

	s.metrics.joinDecision("rolled_back")
	log.WithError(err).Warn("Join approval rolled back: requester unreachable")

	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	var notes []Notification
	var end *ending
	if s.teams[team.Number] == team && team.Active() && s.userTeam[req.RequesterID] == team.Number {
		if _, member := team.Members[req.RequesterID]; member {
			notes, end = s.removeMemberLocked(team, req.RequesterID, false)
		}
	}
	s.mu.Unlock()

	s.broadcast(ctx, notes)
	if end != nil {
		s.finishEnd(ctx, end)
	}
	return TeamSnapshot{}, err
}

// Deny rejects requestID and tells the requester. Only the captain may deny.
func (s *TeamLifecycleService) Deny(ctx context.Context, captainID, requestID string) error {
	s.mu.Lock()
	req, err := s.lookupRequestLocked(requestID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	team, ok := s.teams[req.TeamNumber]
	if !ok {
		s.deleteRequestLocked(req)
		s.mu.Unlock()
		return apperrors.ErrTeamNotFound
	}
	if team.CaptainID != captainID {
		s.mu.Unlock()
		return apperrors.ErrNotCaptain
	}
	s.deleteRequestLocked(req)
	s.mu.Unlock()

	s.metrics.joinDecision("denied")
	s.broadcast(ctx, []Notification{{
		UserID:     req.RequesterID,
		Kind:       EventJoinDenied,
		TeamNumber: req.TeamNumber,
	}})
	return nil
}

// Leave removes userID from their team. A departing captain is replaced by
// the lowest remaining member ID; an emptied team is terminated.
func (s *TeamLifecycleService) Leave(ctx context.Context, userID string) (int, error) {
	log := logger.WithContext(ctx).WithField("user_id", userID)

	s.mu.Lock()
	n, ok := s.userTeam[userID]
	if !ok {
		s.mu.Unlock()
		return 0, apperrors.ErrNotInTeam
	}
	team, ok := s.teams[n]
	if !ok || !team.Active() {
		s.mu.Unlock()
		return 0, apperrors.ErrTeamNotFound
	}
	notes, end := s.removeMemberLocked(team, userID, true)
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	if _, err := s.deliver(ctx, Notification{
		UserID:     userID,
		Kind:       EventMemberLeft,
		TeamNumber: n,
		Fields:     map[string]string{"user_id": userID, "self": "true"},
	}); err != nil {
		log.WithError(err).Warn("Leave confirmation not delivered")
	}
	s.broadcast(ctx, notes)
	if end != nil {
		s.finishEnd(ctx, end)
	}
	log.WithField("team", n).Info("Member left team")
	return n, nil
}

// EndTeam terminates team n. It is idempotent: absent or already ending
// teams are ignored. auto marks the termination as an expiry.
func (s *TeamLifecycleService) EndTeam(ctx context.Context, n int, auto bool) {
	reason := ReasonEndedByCaptain
	if auto {
		reason = ReasonExpired
	}
	s.mu.Lock()
	var end *ending
	if team, ok := s.teams[n]; ok {
		end = s.beginEndLocked(team, reason)
	}
	s.mu.Unlock()

	if end != nil {
		s.finishEnd(ctx, end)
	}
}

// EndTeamAs terminates team n on behalf of callerID, who must be its captain or an admin
func (s *TeamLifecycleService) EndTeamAs(ctx context.Context, callerID string, n int) error {
	s.mu.Lock()
	team, ok := s.teams[n]
	if !ok || !team.Active() {
		s.mu.Unlock()
		return apperrors.ErrTeamNotFound
	}
	reason := ReasonEndedByCaptain
	if team.CaptainID != callerID {
		if !s.authorizedLocked(callerID) {
			s.mu.Unlock()
			return apperrors.ErrNotCaptain
		}
		reason = ReasonEndedByAdmin
	}
	end := s.beginEndLocked(team, reason)
	s.mu.Unlock()

	s.finishEnd(ctx, end)
	return nil
}

// removeMemberLocked drops userID from team and returns the follow-up
// notifications plus, if the team emptied, its pending termination.
func (s *TeamLifecycleService) removeMemberLocked(team *Team, userID string, announce bool) ([]Notification, *ending) {
	delete(team.Members, userID)
	if s.userTeam[userID] == team.Number {
		delete(s.userTeam, userID)
	}
	if len(team.Members) == 0 {
		return nil, s.beginEndLocked(team, ReasonEndedByCaptain)
	}

	var notes []Notification
	if team.CaptainID == userID {
		team.CaptainID = team.nextCaptain()
		snap := team.snapshot(s.clock.Now(), s.settings.MaxTeamSize)
		notes = append(notes, Notification{
			UserID:     team.CaptainID,
			Kind:       EventCaptainPromoted,
			TeamNumber: team.Number,
			Team:       &snap,
		})
	}
	if announce {
		for _, id := range team.memberIDs() {
			notes = append(notes, Notification{
				UserID:     id,
				Kind:       EventMemberLeft,
				TeamNumber: team.Number,
				Fields:     map[string]string{"user_id": userID},
			})
		}
	}
	return notes, nil
}

// beginEndLocked marks an active team ending, clears its members from the
// index and drops its join requests. It returns nil if the team is not active.
func (s *TeamLifecycleService) beginEndLocked(team *Team, reason string) *ending {
	if team.status != statusActive {
		return nil
	}
	team.status = statusEnding
	end := &ending{
		team:     team,
		reason:   reason,
		snapshot: team.snapshot(s.clock.Now(), s.settings.MaxTeamSize),
		members:  team.memberIDs(),
		admins:   s.adminIDsLocked(),
		reclaim:  s.settings.reclaimRequest(team.Number),
	}
	for _, id := range end.members {
		if s.userTeam[id] == team.Number {
			delete(s.userTeam, id)
		}
	}
	for _, req := range s.requests {
		if req.TeamNumber == team.Number {
			s.deleteRequestLocked(req)
		}
	}
	return end
}

// finishEnd notifies members and admins, runs teardown and finally deregisters the team
func (s *TeamLifecycleService) finishEnd(ctx context.Context, end *ending) {
	// the termination is already committed; a cancelled caller must not
	// cut off the TeamEnded broadcast or the teardown
	ctx = context.WithoutCancel(ctx)
	n := end.team.Number
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team":   n,
		"reason": end.reason,
	})

	var notes []Notification
	for _, id := range mergeAudience(end.members, end.admins) {
		snap := end.snapshot
		notes = append(notes, Notification{
			UserID:     id,
			Kind:       EventTeamEnded,
			TeamNumber: n,
			Team:       &snap,
			Fields:     map[string]string{"reason": end.reason},
		})
	}
	s.broadcast(ctx, notes)

	if s.hook != nil {
		if err := s.hook.Reclaim(ctx, end.reclaim); err != nil {
			s.metrics.provisioningFailed()
			log.WithError(apperrors.NewProvisioningError(n, err)).Error("Resource teardown failed")
		}
	}

	s.mu.Lock()
	if s.teams[n] == end.team {
		delete(s.teams, n)
		s.releaseLocked(end.team)
	}
	count := len(s.teams)
	s.mu.Unlock()

	s.metrics.setTeams(count)
	s.metrics.terminated(end.reason)
	log.Info("Team terminated")
}

func (s *TeamLifecycleService) releaseLocked(team *Team) {
	if team.parkOnRelease {
		s.slots.Park(team.Number)
		return
	}
	s.slots.Release(team.Number)
}

// Reset clears all teams, closed numbers and join requests without running
// teardown, and rebuilds the number pool from the current max teams.
func (s *TeamLifecycleService) Reset(ctx context.Context, callerID string) error {
	s.mu.Lock()
	if !s.authorizedLocked(callerID) {
		s.mu.Unlock()
		return apperrors.ErrUnauthorized
	}
	var notes []Notification
	for _, team := range s.teams {
		if !team.Active() {
			continue
		}
		for _, id := range s.audienceLocked(team) {
			notes = append(notes, Notification{
				UserID:     id,
				Kind:       EventTeamEnded,
				TeamNumber: team.Number,
				Fields:     map[string]string{"reason": ReasonReset},
			})
		}
	}
	terminated := len(s.teams)
	s.teams = make(map[int]*Team)
	s.userTeam = make(map[string]int)
	s.requests = make(map[string]*PendingJoinRequest)
	s.requestKeys = make(map[string]string)
	s.slots.Reset(s.settings.MaxTeams)
	s.mu.Unlock()

	s.metrics.setTeams(0)
	s.broadcast(ctx, notes)
	logger.WithContext(ctx).WithField("teams", terminated).Warn("Registry reset")
	return nil
}

// CloseTeam takes number n out of circulation. An active team holding n is
// terminated and the number is parked once its teardown completes.
func (s *TeamLifecycleService) CloseTeam(ctx context.Context, callerID string, n int) error {
	s.mu.Lock()
	if !s.authorizedLocked(callerID) {
		s.mu.Unlock()
		return apperrors.ErrUnauthorized
	}
	if n < 1 || n > s.slots.Max() {
		s.mu.Unlock()
		return apperrors.ErrInvalidTeamNumber
	}
	if s.slots.IsClosed(n) {
		s.mu.Unlock()
		return apperrors.ErrAlreadyClosed
	}
	var end *ending
	if team, ok := s.teams[n]; ok {
		if team.status == statusPending {
			s.mu.Unlock()
			return apperrors.ErrTeamNotReady
		}
		// an ending team parks its number when teardown completes
		team.parkOnRelease = true
		end = s.beginEndLocked(team, ReasonClosedByAdmin)
	} else {
		s.slots.Park(n)
	}
	s.mu.Unlock()

	if end != nil {
		s.finishEnd(ctx, end)
	}
	logger.WithContext(ctx).WithField("team", n).Info("Team number closed")
	return nil
}

// ReopenTeam returns a closed number to the pool
func (s *TeamLifecycleService) ReopenTeam(ctx context.Context, callerID string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorizedLocked(callerID) {
		return apperrors.ErrUnauthorized
	}
	if !s.slots.Reopen(n) {
		return apperrors.ErrNotClosed
	}
	logger.WithContext(ctx).WithField("team", n).Info("Team number reopened")
	return nil
}

// AddAdmin grants admin rights to userID
func (s *TeamLifecycleService) AddAdmin(ctx context.Context, callerID, userID string) error {
	if userID == "" {
		return apperrors.NewValidationError("user_id", "user ID is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorizedLocked(callerID) {
		return apperrors.ErrUnauthorized
	}
	if _, ok := s.admins[userID]; ok {
		return apperrors.ErrAdminExists
	}
	s.admins[userID] = struct{}{}
	logger.WithContext(ctx).WithField("admin", userID).Info("Admin added")
	return nil
}

// RemoveAdmin revokes admin rights from userID
func (s *TeamLifecycleService) RemoveAdmin(ctx context.Context, callerID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorizedLocked(callerID) {
		return apperrors.ErrUnauthorized
	}
	if _, ok := s.admins[userID]; !ok {
		return apperrors.ErrAdminNotFound
	}
	delete(s.admins, userID)
	logger.WithContext(ctx).WithField("admin", userID).Info("Admin removed")
	return nil
}

// UpdateSettings applies a partial settings change. Lowering max teams never
// evicts: held numbers above the new bound disappear when their teams end.
// Max team size cannot drop below the size of any registered team.
func (s *TeamLifecycleService) UpdateSettings(ctx context.Context, callerID string, update SettingsUpdate) (Settings, error) {
	if err := s.validate.Struct(update); err != nil {
		return Settings{}, apperrors.NewValidationError("settings", err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorizedLocked(callerID) {
		return Settings{}, apperrors.ErrUnauthorized
	}
	next := update.apply(s.settings)
	if next.MaxTeamSize < s.settings.MaxTeamSize {
		for _, team := range s.teams {
			if len(team.Members) > next.MaxTeamSize {
				return Settings{}, apperrors.ErrTeamSizeBelowRoster
			}
		}
	}
	if next.MaxTeams != s.settings.MaxTeams {
		s.slots.Resize(next.MaxTeams)
	}
	s.settings = next
	logger.WithContext(ctx).WithField("settings", next).Info("Settings updated")
	return next, nil
}

// Settings returns the current settings
func (s *TeamLifecycleService) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// IsAdmin reports whether userID may perform admin operations
func (s *TeamLifecycleService) IsAdmin(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authorizedLocked(userID)
}

// SendTimer delivers the caller's team status to them
func (s *TeamLifecycleService) SendTimer(ctx context.Context, userID string) (TeamSnapshot, error) {
	snap, err := s.TeamOf(userID)
	if err != nil {
		return TeamSnapshot{}, err
	}
	if _, err := s.deliver(ctx, Notification{
		UserID:     userID,
		Kind:       EventTimerSnapshot,
		TeamNumber: snap.Number,
		Team:       &snap,
	}); err != nil {
		return snap, err
	}
	return snap, nil
}

// RequestCapacity asks every admin for more team slots and returns how many were reached
func (s *TeamLifecycleService) RequestCapacity(ctx context.Context, userID, displayName string) (int, error) {
	s.mu.Lock()
	admins := s.adminIDsLocked()
	active := len(s.teams)
	max := s.settings.MaxTeams
	s.mu.Unlock()

	reached := 0
	for _, id := range admins {
		_, err := s.deliver(ctx, Notification{
			UserID: id,
			Kind:   EventCapacityRequest,
			Fields: map[string]string{
				"requester_id":   userID,
				"requester_name": displayName,
				"active_teams":   strconv.Itoa(active),
				"max_teams":      strconv.Itoa(max),
			},
		})
		if err == nil {
			reached++
			continue
		}
		logger.WithContext(ctx).WithError(err).WithField("admin", id).Warn("Capacity request not delivered")
	}
	if reached == 0 {
		return 0, apperrors.NewDeliveryError("admins", string(EventCapacityRequest), apperrors.ErrDeliveryFailed)
	}
	return reached, nil
}

// GetTeam returns the snapshot of active team n
func (s *TeamLifecycleService) GetTeam(n int) (TeamSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[n]
	if !ok || !team.Active() {
		return TeamSnapshot{}, apperrors.ErrTeamNotFound
	}
	return team.snapshot(s.clock.Now(), s.settings.MaxTeamSize), nil
}

// TeamOf returns the team userID belongs to
func (s *TeamLifecycleService) TeamOf(userID string) (TeamSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.userTeam[userID]
	if !ok {
		return TeamSnapshot{}, apperrors.ErrNotInTeam
	}
	team, ok := s.teams[n]
	if !ok || !team.Active() {
		return TeamSnapshot{}, apperrors.ErrTeamNotFound
	}
	return team.snapshot(s.clock.Now(), s.settings.MaxTeamSize), nil
}

// ListTeams returns all active teams ordered by number
func (s *TeamLifecycleService) ListTeams() []TeamSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeSnapshotsLocked()
}

// Snapshot returns a consistent copy of the whole registry
func (s *TeamLifecycleService) Snapshot() RegistrySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	userTeam := make(map[string]int, len(s.userTeam))
	for id, n := range s.userTeam {
		userTeam[id] = n
	}
	return RegistrySnapshot{
		Settings:        s.settings,
		Teams:           s.activeSnapshotsLocked(),
		UserTeam:        userTeam,
		Available:       s.slots.Available(),
		Held:            s.slots.Held(),
		Closed:          s.slots.Closed(),
		Admins:          s.adminIDsLocked(),
		PendingRequests: len(s.requests),
	}
}

func (s *TeamLifecycleService) activeSnapshotsLocked() []TeamSnapshot {
	now := s.clock.Now()
	out := make([]TeamSnapshot, 0, len(s.teams))
	for _, team := range s.teams {
		if team.Active() {
			out = append(out, team.snapshot(now, s.settings.MaxTeamSize))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (s *TeamLifecycleService) authorizedLocked(userID string) bool {
	if userID == "" {
		return false
	}
	if userID == s.ownerID {
		return true
	}
	_, ok := s.admins[userID]
	return ok
}

// audienceLocked returns the team's members followed by admins who are not members
func (s *TeamLifecycleService) audienceLocked(team *Team) []string {
	return mergeAudience(team.memberIDs(), s.adminIDsLocked())
}

func mergeAudience(members, admins []string) []string {
	seen := make(map[string]struct{}, len(members)+len(admins))
	out := make([]string, 0, len(members)+len(admins))
	for _, id := range append(append([]string{}, members...), admins...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *TeamLifecycleService) adminIDsLocked() []string {
	ids := make([]string, 0, len(s.admins))
	for id := range s.admins {
		ids = append(ids, id)
	}
	sortUserIDs(ids)
	return ids
}

// deliver sends one notification whose failure the caller must act on
func (s *TeamLifecycleService) deliver(ctx context.Context, n Notification) (Delivery, error) {
	if n.IssuedAt.IsZero() {
		n.IssuedAt = s.clock.Now()
	}
	if s.sink == nil {
		s.metrics.notification(n.Kind, "error")
		return Delivery{}, apperrors.NewDeliveryError(n.UserID, string(n.Kind), apperrors.ErrDeliveryFailed)
	}
	d, err := s.sink.Notify(ctx, n)
	switch {
	case err != nil:
		s.metrics.notification(n.Kind, "error")
		return d, apperrors.NewDeliveryError(n.UserID, string(n.Kind), err)
	case !d.Delivered:
		s.metrics.notification(n.Kind, "undelivered")
		return d, apperrors.NewDeliveryError(n.UserID, string(n.Kind), nil)
	}
	s.metrics.notification(n.Kind, "delivered")
	return d, nil
}

// broadcast sends best-effort notifications; failures are only logged
func (s *TeamLifecycleService) broadcast(ctx context.Context, notes []Notification) {
	for _, n := range notes {
		if _, err := s.deliver(ctx, n); err != nil {
			logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
				"kind":    n.Kind,
				"user_id": n.UserID,
				"team":    n.TeamNumber,
			}).Warn("Notification not delivered")
		}
	}
}
