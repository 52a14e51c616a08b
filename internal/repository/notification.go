package repository

import (
	"time"

	"team-lifecycle-backend/internal/database/models"

	"gorm.io/gorm"
)

// NotificationRepository handles database operations for the notification audit log
type NotificationRepository struct {
	db *gorm.DB
}

// Ensure NotificationRepository implements NotificationRepositoryInterface
var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a new audit record
func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// List retrieves audit records, newest first, with the total count for the filter
func (r *NotificationRepository) List(filter NotificationFilter, limit, offset int) ([]models.Notification, int64, error) {
	var records []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.TeamNumber > 0 {
		query = query.Where("team_number = ?", filter.TeamNumber)
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// CountByOutcome groups audit records created since the given time by outcome
func (r *NotificationRepository) CountByOutcome(since time.Time) (map[models.DeliveryOutcome]int64, error) {
	var rows []struct {
		Outcome models.DeliveryOutcome
		Count   int64
	}
	err := r.db.Model(&models.Notification{}).
		Select("outcome, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("outcome").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.DeliveryOutcome]int64, len(rows))
	for _, row := range rows {
		counts[row.Outcome] = row.Count
	}
	return counts, nil
}

// DeleteOlderThan prunes records created before cutoff and returns how many were removed
func (r *NotificationRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}
