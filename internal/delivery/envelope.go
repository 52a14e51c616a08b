package delivery

import (
	"encoding/json"
	"fmt"

	"team-lifecycle-backend/internal/service"

	"github.com/google/uuid"
)

// Envelope is the wire form of a notification pushed to subscribers
type Envelope struct {
	ID string `json:"id"`
	service.Notification
}

// encode stamps a fresh reference on the notification and marshals it
func encode(n service.Notification) (string, []byte, error) {
	env := Envelope{ID: uuid.NewString(), Notification: n}
	payload, err := json.Marshal(env)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s notification: %w", n.Kind, err)
	}
	return env.ID, payload, nil
}
