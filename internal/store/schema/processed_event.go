package schema

import (
	"time"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// ProcessedEvent represents the processed_events table - one row per fully handled business event and step
type ProcessedEvent struct {
	// EventID is the business event id (or order id for pool sales)
	EventID string `gorm:"column:event_id;primaryKey;type:text"`
	// Scope is the processing step the row guards
	Scope domain.EventScope `gorm:"column:scope;primaryKey;type:text"`
	// PayloadHash is the sha256 of the canonical JSON payload
	PayloadHash string `gorm:"column:payload_hash;not null;type:text"`
	// ProcessedAt is the timestamp when the event was applied
	ProcessedAt time.Time `gorm:"column:processed_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProcessedEvent model
func (ProcessedEvent) TableName() string {
	return "processed_events"
}
