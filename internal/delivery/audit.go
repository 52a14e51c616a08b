package delivery

import (
	"context"
	"encoding/json"
	"time"

	"team-lifecycle-backend/internal/database/models"
	"team-lifecycle-backend/internal/logger"
	"team-lifecycle-backend/internal/repository"
	"team-lifecycle-backend/internal/service"
)

// AuditSink records every attempt made through the wrapped sink.
// Audit write failures are logged and never change the delivery verdict.
type AuditSink struct {
	next service.NotificationSink
	repo repository.NotificationRepositoryInterface
}

var _ service.NotificationSink = (*AuditSink)(nil)

// NewAuditSink wraps next with an audit trail
func NewAuditSink(next service.NotificationSink, repo repository.NotificationRepositoryInterface) *AuditSink {
	return &AuditSink{next: next, repo: repo}
}

// Notify implements service.NotificationSink.
func (a *AuditSink) Notify(ctx context.Context, n service.Notification) (service.Delivery, error) {
	d, err := a.next.Notify(ctx, n)

	record := &models.Notification{
		UserID:     n.UserID,
		Kind:       string(n.Kind),
		TeamNumber: n.TeamNumber,
		Ref:        d.Ref,
	}
	switch {
	case err != nil:
		record.Outcome = models.DeliveryOutcomeFailed
		record.Error = truncate(err.Error(), 500)
	case d.Delivered:
		record.Outcome = models.DeliveryOutcomeDelivered
	default:
		record.Outcome = models.DeliveryOutcomeUndelivered
	}
	if payload, mErr := json.Marshal(n); mErr == nil {
		record.Payload = payload
	}

	if cErr := a.repo.Create(record); cErr != nil {
		logger.WithContext(ctx).WithError(cErr).WithField("kind", n.Kind).Error("Failed to record notification")
	}
	return d, err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// AuditPruner deletes audit rows older than the retention window
type AuditPruner struct {
	repo      repository.NotificationRepositoryInterface
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

// NewAuditPruner prunes every interval; a zero retention disables pruning
func NewAuditPruner(repo repository.NotificationRepositoryInterface, retention, interval time.Duration) *AuditPruner {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AuditPruner{repo: repo, retention: retention, interval: interval, now: time.Now}
}

// Prune runs one pass and returns how many rows were removed
func (p *AuditPruner) Prune(ctx context.Context) (int64, error) {
	if p.retention <= 0 {
		return 0, nil
	}
	removed, err := p.repo.DeleteOlderThan(p.now().Add(-p.retention))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.WithContext(ctx).WithField("removed", removed).Info("Pruned notification audit log")
	}
	return removed, nil
}

// Run prunes until ctx is cancelled
func (p *AuditPruner) Run(ctx context.Context) {
	if p.retention <= 0 {
		return
	}
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		if _, err := p.Prune(ctx); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Audit prune failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
