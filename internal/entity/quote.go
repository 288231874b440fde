package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QuoteRecord represents one uploaded patient document for data transfer between layers.
type QuoteRecord struct {
	ID               uuid.UUID       `json:"id"`
	PatientID        uuid.UUID       `json:"patient_id"`
	FilePath         string          `json:"file_path"`
	OriginalFilename string          `json:"original_filename"`
	Status           string          `json:"status"`
	Payload          json.RawMessage `json:"payload,omitempty"`
	ErrorMessage     *string         `json:"error_message,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
