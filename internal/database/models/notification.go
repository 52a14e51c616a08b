package models

import (
	"encoding/json"
)

// Notification is one audited notification attempt
type Notification struct {
	BaseModel
	UserID     string          `json:"user_id" gorm:"size:64;not null;index"`
	Kind       string          `json:"kind" gorm:"size:40;not null;index"`
	TeamNumber int             `json:"team_number" gorm:"index"`
	Outcome    DeliveryOutcome `json:"outcome" gorm:"size:20;not null" validate:"required"`
	Ref        string          `json:"ref,omitempty" gorm:"size:200"`
	Error      string          `json:"error,omitempty" gorm:"size:500"`
	Payload    json.RawMessage `json:"payload" gorm:"type:jsonb" swaggertype:"object"`
}

// TableName pins the table name
func (Notification) TableName() string {
	return "notifications"
}
