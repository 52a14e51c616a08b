package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"team-lifecycle-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: epoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingSink delivers everything except to users marked unreachable
type recordingSink struct {
	mu          sync.Mutex
	sent        []service.Notification
	unreachable map[string]bool
	failing     map[service.EventKind]bool
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		unreachable: make(map[string]bool),
		failing:     make(map[service.EventKind]bool),
	}
}

func (r *recordingSink) Notify(ctx context.Context, n service.Notification) (service.Delivery, error) {
	// a cancelled caller context fails the send like a real transport would
	if err := ctx.Err(); err != nil {
		return service.Delivery{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	if r.unreachable[n.UserID] {
		return service.Delivery{}, nil
	}
	if r.failing[n.Kind] {
		return service.Delivery{}, errors.New("transport closed")
	}
	return service.Delivery{Delivered: true, Ref: fmt.Sprintf("msg-%d", len(r.sent))}, nil
}

func (r *recordingSink) setUnreachable(userID string, v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unreachable[userID] = v
}

func (r *recordingSink) count(kind service.EventKind, userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, note := range r.sent {
		if note.Kind == kind && (userID == "" || note.UserID == userID) {
			n++
		}
	}
	return n
}

func (r *recordingSink) last(kind service.EventKind) (service.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sent) - 1; i >= 0; i-- {
		if r.sent[i].Kind == kind {
			return r.sent[i], true
		}
	}
	return service.Notification{}, false
}

// countingHook records reclaims and can block until released
type countingHook struct {
	mu      sync.Mutex
	calls   []service.ReclaimRequest
	err     error
	entered chan struct{}
	release chan struct{}
}

func (h *countingHook) Reclaim(ctx context.Context, req service.ReclaimRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	h.calls = append(h.calls, req)
	entered, release, err := h.entered, h.release, h.err
	h.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return err
}

func (h *countingHook) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.calls)
}

// gatedSink holds notifications of one kind until release is closed
type gatedSink struct {
	*recordingSink
	kind    service.EventKind
	entered chan struct{}
	release chan struct{}
}

func newGatedSink(inner *recordingSink, kind service.EventKind) *gatedSink {
	return &gatedSink{
		recordingSink: inner,
		kind:          kind,
		entered:       make(chan struct{}, 1),
		release:       make(chan struct{}),
	}
}

func (g *gatedSink) Notify(ctx context.Context, n service.Notification) (service.Delivery, error) {
	if n.Kind == g.kind {
		select {
		case g.entered <- struct{}{}:
		default:
		}
		<-g.release
	}
	return g.recordingSink.Notify(ctx, n)
}

func testSettings() service.Settings {
	return service.Settings{
		MaxTeamSize:     2,
		MaxTeams:        2,
		DurationMinutes: 60,
		IPBase:          "10.0.0.",
		StartResourceID: 100,
		MachinesPerTeam: 5,
	}
}

// assertInvariants checks the registry-wide invariants on a snapshot
func assertInvariants(t *testing.T, snap service.RegistrySnapshot) {
	t.Helper()

	indexed := 0
	for _, team := range snap.Teams {
		assert.LessOrEqual(t, team.MemberCount, snap.Settings.MaxTeamSize, "team %d over capacity", team.Number)
		assert.NotZero(t, team.MemberCount, "active team %d has no members", team.Number)

		captainFound := false
		for _, m := range team.Members {
			assert.Equal(t, team.Number, snap.UserTeam[m.UserID], "member %s not indexed to team %d", m.UserID, team.Number)
			if m.UserID == team.CaptainID {
				captainFound = true
			}
			indexed++
		}
		assert.True(t, captainFound, "captain of team %d is not a member", team.Number)
	}
	assert.Equal(t, indexed, len(snap.UserTeam), "user index holds users outside active teams")

	seen := make(map[int]string)
	mark := func(set string, nums []int) {
		for _, n := range nums {
			if prev, ok := seen[n]; ok {
				t.Errorf("number %d is both %s and %s", n, prev, set)
			}
			seen[n] = set
		}
	}
	mark("available", snap.Available)
	mark("closed", snap.Closed)
	mark("held", snap.Held)

	active := make([]int, 0, len(snap.Teams))
	for _, team := range snap.Teams {
		active = append(active, team.Number)
	}
	assert.ElementsMatch(t, active, snap.Held)
}
