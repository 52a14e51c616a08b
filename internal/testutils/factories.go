package testutils

import (
	"encoding/json"
	"time"

	"team-lifecycle-backend/internal/database/models"

	"github.com/google/uuid"
)

// NotificationFactory provides methods to create test audit rows
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates a delivered team_created notification for user U1
func (f *NotificationFactory) Create() *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		UserID:     "U1",
		Kind:       "team_created",
		TeamNumber: 1,
		Outcome:    models.DeliveryOutcomeDelivered,
		Ref:        "ref-" + uuid.NewString()[:8],
		Payload:    json.RawMessage(`{"team_number":1}`),
	}
}

// WithUser sets the recipient
func (f *NotificationFactory) WithUser(userID string) *models.Notification {
	n := f.Create()
	n.UserID = userID
	return n
}

// WithOutcome sets the delivery outcome
func (f *NotificationFactory) WithOutcome(outcome models.DeliveryOutcome) *models.Notification {
	n := f.Create()
	n.Outcome = outcome
	if outcome != models.DeliveryOutcomeDelivered {
		n.Ref = ""
	}
	return n
}

// CreatedAt backdates a notification
func (f *NotificationFactory) CreatedAt(at time.Time) *models.Notification {
	n := f.Create()
	n.CreatedAt = at
	return n
}
