package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CounterOffer represents one provider's reconciled response to one quote record.
type CounterOffer struct {
	ID         uuid.UUID       `json:"id"`
	QuoteID    uuid.UUID       `json:"quote_id"`
	ProviderID uuid.UUID       `json:"provider_id"`
	Payload    json.RawMessage `json:"payload"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
