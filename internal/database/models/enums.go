package models

// DeliveryOutcome records what happened to one notification attempt
type DeliveryOutcome string

const (
	DeliveryOutcomeDelivered   DeliveryOutcome = "delivered"
	DeliveryOutcomeUndelivered DeliveryOutcome = "undelivered"
	DeliveryOutcomeFailed      DeliveryOutcome = "failed"
)

// IsValid checks if the DeliveryOutcome is valid
func (o DeliveryOutcome) IsValid() bool {
	switch o {
	case DeliveryOutcomeDelivered, DeliveryOutcomeUndelivered, DeliveryOutcomeFailed:
		return true
	}
	return false
}
