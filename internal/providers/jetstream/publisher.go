package jetstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// PublishTimeout bounds all publish attempts of one event
	PublishTimeout time.Duration
}

type publisher struct {
	nc      adapter.NatsConn
	js      adapter.JetStream
	json    adapter.JSON
	config  Config
	backoff func() backoff.BackOff
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "partner.events"
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 10 * time.Second
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Publisher disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Publisher reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		config: cfg,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			b.MaxElapsedTime = cfg.PublishTimeout
			return b
		},
	}, nil
}

// PublishEvent publishes a partner event, retrying transient broker failures
func (p *publisher) PublishEvent(ctx context.Context, subject domain.EventSubject, eventID string, event interface{}) error {
	if eventID == "" {
		return errors.New("event id is required")
	}

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	fullSubject := fmt.Sprintf("%s.%s", p.config.SubjectPrefix, subject)

	var ack *jetstream.PubAck
	operation := func() error {
		var err error
		ack, err = p.js.Publish(ctx, fullSubject, data, jetstream.WithMsgID(eventID), jetstream.WithExpectStream(p.config.StreamName))
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, d time.Duration) {
		logger.WarnCtx(ctx, "Publish failed, retrying",
			zap.String("subject", fullSubject),
			logger.Event(eventID),
			zap.Error(err),
			zap.Duration("retryIn", d))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(p.backoff(), ctx), notify); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugCtx(ctx, "Published partner event",
		zap.String("subject", fullSubject),
		logger.Event(eventID),
		zap.Bool("duplicate", ack != nil && ack.Duplicate))

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
