package messaging

import (
	"context"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// Publisher defines the interface for publishing partner events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a partner event under its subject.
	// eventID is also used as the broker message id so a retried publish is stored once.
	PublishEvent(ctx context.Context, subject domain.EventSubject, eventID string, event interface{}) error
	// Close closes the connection
	Close()
}
