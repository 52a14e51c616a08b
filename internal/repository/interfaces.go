package repository

import (
	"time"

	"team-lifecycle-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// NotificationFilter narrows an audit query; zero values match everything
type NotificationFilter struct {
	UserID     string
	Kind       string
	TeamNumber int
	Since      time.Time
}

// NotificationRepositoryInterface defines the interface for notification audit operations
type NotificationRepositoryInterface interface {
	Create(n *models.Notification) error
	List(filter NotificationFilter, limit, offset int) ([]models.Notification, int64, error)
	CountByOutcome(since time.Time) (map[models.DeliveryOutcome]int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
