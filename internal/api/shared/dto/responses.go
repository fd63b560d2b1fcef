package dto

import "github.com/feral-file/ff-partner-ledger/internal/domain"

// IngestResponse is returned once an event is accepted by the broker
type IngestResponse struct {
	EventID string              `json:"event_id"`
	Subject domain.EventSubject `json:"subject"`
}

