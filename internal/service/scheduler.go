package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"team-lifecycle-backend/internal/logger"
)

// TickReport summarizes one scheduler pass
type TickReport struct {
	Skipped         bool  `json:"skipped"`
	Halfway         []int `json:"halfway"`
	Expired         []int `json:"expired"`
	ExpiredRequests int   `json:"expired_requests"`
}

// MilestoneScheduler periodically announces halfway points, ends expired
// teams and sweeps stale join requests. Overlapping ticks are skipped.
type MilestoneScheduler struct {
	svc      *TeamLifecycleService
	interval time.Duration
	running  atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMilestoneScheduler creates a scheduler for svc
func NewMilestoneScheduler(svc *TeamLifecycleService, interval time.Duration) *MilestoneScheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &MilestoneScheduler{svc: svc, interval: interval}
}

// Start runs Tick every interval until ctx is done or Stop is called
func (m *MilestoneScheduler) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		logger.WithContext(ctx).WithField("interval", m.interval.String()).Info("Milestone scheduler started")
		for {
			select {
			case <-ctx.Done():
				logger.New().Info("Milestone scheduler stopped")
				return
			case <-ticker.C:
				m.Tick(ctx)
			}
		}
	}(m.done)
}

// Stop cancels the loop and waits for an in-flight tick to finish
func (m *MilestoneScheduler) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Tick runs one milestone pass. It returns a skipped report if a previous
// pass is still running.
func (m *MilestoneScheduler) Tick(ctx context.Context) TickReport {
	if !m.running.CompareAndSwap(false, true) {
		logger.WithContext(ctx).Debug("Milestone tick skipped: previous tick still running")
		return TickReport{Skipped: true}
	}
	defer m.running.Store(false)

	started := time.Now()
	defer func() { m.svc.metrics.observeTick(time.Since(started)) }()

	halfway, expired, notes := m.svc.scanMilestones()
	m.svc.broadcast(ctx, notes)
	for _, n := range expired {
		m.svc.EndTeam(ctx, n, true)
	}

	report := TickReport{Halfway: halfway, Expired: expired}
	for _, note := range notes {
		if note.Kind == EventJoinExpired {
			report.ExpiredRequests++
		}
	}
	if len(halfway) > 0 || len(expired) > 0 || report.ExpiredRequests > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"halfway":          halfway,
			"expired":          expired,
			"expired_requests": report.ExpiredRequests,
		}).Info("Milestone tick processed")
	}
	return report
}

// scanMilestones marks halfway teams and collects expired ones under the lock.
// A team past its end is only expired, never also announced as halfway.
func (s *TeamLifecycleService) scanMilestones() (halfway, expired []int, notes []Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()

	for n, team := range s.teams {
		if !team.Active() {
			continue
		}
		remaining := team.EndTime.Sub(now)
		if remaining <= 0 {
			expired = append(expired, n)
			continue
		}
		if team.HalfwayNotified || remaining > team.Duration()/2 {
			continue
		}
		team.HalfwayNotified = true
		halfway = append(halfway, n)
		snap := team.snapshot(now, s.settings.MaxTeamSize)
		for _, id := range s.audienceLocked(team) {
			notes = append(notes, Notification{
				UserID:     id,
				Kind:       EventHalfwayReached,
				TeamNumber: n,
				Team:       &snap,
			})
		}
	}
	notes = append(notes, s.sweepExpiredRequestsLocked(now)...)

	sort.Ints(halfway)
	sort.Ints(expired)
	return halfway, expired, notes
}
