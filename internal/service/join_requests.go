package service

import (
	"sort"
	"strconv"
	"time"

	apperrors "team-lifecycle-backend/internal/errors"

	"github.com/google/uuid"
)

func requestKey(requesterID string, n int) string {
	return requesterID + "|" + strconv.Itoa(n)
}

// addRequestLocked stores a new request. A repeated request from the same
// user for the same team replaces the earlier one.
func (s *TeamLifecycleService) addRequestLocked(requesterID, requesterName string, n int) *PendingJoinRequest {
	key := requestKey(requesterID, n)
	if oldID, ok := s.requestKeys[key]; ok {
		if old, ok := s.requests[oldID]; ok {
			s.deleteRequestLocked(old)
		}
	}
	req := &PendingJoinRequest{
		ID:            uuid.New().String(),
		RequesterID:   requesterID,
		RequesterName: requesterName,
		TeamNumber:    n,
		IssuedAt:      s.clock.Now(),
	}
	s.requests[req.ID] = req
	s.requestKeys[key] = req.ID
	return req
}

func (s *TeamLifecycleService) deleteRequestLocked(req *PendingJoinRequest) {
	delete(s.requests, req.ID)
	key := requestKey(req.RequesterID, req.TeamNumber)
	if s.requestKeys[key] == req.ID {
		delete(s.requestKeys, key)
	}
	if team, ok := s.teams[req.TeamNumber]; ok {
		delete(team.PendingDeliveryRefs, req.RequesterID)
	}
}

// lookupRequestLocked finds a request that is still actionable. Expired
// requests are left in place for the scheduler sweep, which tells the requester.
func (s *TeamLifecycleService) lookupRequestLocked(requestID string) (*PendingJoinRequest, error) {
	req, ok := s.requests[requestID]
	if !ok {
		return nil, apperrors.ErrJoinRequestNotFound
	}
	if s.expiredLocked(req, s.clock.Now()) {
		return nil, apperrors.ErrJoinRequestExpired
	}
	return req, nil
}

func (s *TeamLifecycleService) expiredLocked(req *PendingJoinRequest, now time.Time) bool {
	ttl := s.settings.JoinRequestTTL()
	return ttl > 0 && now.Sub(req.IssuedAt) >= ttl
}

// sweepExpiredRequestsLocked drops expired requests and returns the notices for their requesters
func (s *TeamLifecycleService) sweepExpiredRequestsLocked(now time.Time) []Notification {
	var notes []Notification
	for _, req := range s.requests {
		if !s.expiredLocked(req, now) {
			continue
		}
		s.deleteRequestLocked(req)
		notes = append(notes, Notification{
			UserID:     req.RequesterID,
			Kind:       EventJoinExpired,
			TeamNumber: req.TeamNumber,
			Fields:     map[string]string{"request_id": req.ID},
		})
	}
	return notes
}

// PendingRequests lists the open join requests addressed to captainID, oldest first
func (s *TeamLifecycleService) PendingRequests(captainID string) []PendingJoinRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	out := make([]PendingJoinRequest, 0)
	for _, req := range s.requests {
		team, ok := s.teams[req.TeamNumber]
		if !ok || team.CaptainID != captainID || s.expiredLocked(req, now) {
			continue
		}
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.Before(out[j].IssuedAt) })
	return out
}
