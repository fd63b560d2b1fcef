package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/providers/temporal"
	"github.com/feral-file/ff-partner-ledger/internal/workflows"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL                string
	StreamName         string
	SubjectPrefix      string
	ConsumerName       string
	MaxReconnects      int
	ReconnectWait      time.Duration
	ConnectionName     string
	AckWaitTimeout     time.Duration
	MaxDeliver         int
	NakDelay           time.Duration
	Concurrency        int
	TemporalTaskQueue  string
	WorkflowRunTimeout time.Duration
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run consumes partner events and starts one workflow per event until ctx is done
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	orchestrator temporal.TemporalOrchestrator
	json         adapter.JSON
	metrics      *metrics.Ledger
	config       Config
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	orchestrator temporal.TemporalOrchestrator,
	jsonAdapter adapter.JSON,
	m *metrics.Ledger,
) (Bridge, error) {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "partner.events"
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 16
	}
	if cfg.NakDelay <= 0 {
		cfg.NakDelay = 5 * time.Second
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:           nc,
		js:           js,
		orchestrator: orchestrator,
		json:         jsonAdapter,
		metrics:      m,
		config:       cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	err := b.js.EnsureStream(ctx, jetstream.StreamConfig{
		Name:     b.config.StreamName,
		Subjects: []string{b.config.SubjectPrefix + ".>"},
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream: %w", err)
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: b.config.SubjectPrefix + ".*",
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending))

	pool := pond.NewPool(b.config.Concurrency)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		pool.Submit(func() {
			b.handleMessage(ctx, msg)
		})
	})
	if err != nil {
		pool.StopAndWait()
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	logger.Info("Started consuming messages")

	<-ctx.Done()
	logger.Info("Shutting down event bridge")
	sub.Stop()
	pool.StopAndWait()

	return ctx.Err()
}

// decodedEvent is a parsed partner event ready to start its workflow
type decodedEvent struct {
	subject   domain.EventSubject
	eventID   string
	partnerID uuid.UUID
	workflow  interface{}
	payload   interface{}
}

// decode parses a message by subject
func (b *bridge) decode(msg adapter.Message) (*decodedEvent, error) {
	subject := domain.EventSubject(strings.TrimPrefix(msg.Subject(), b.config.SubjectPrefix+"."))
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})

	switch subject {
	case domain.SubjectOrderPaid:
		var event domain.OrderPaidEvent
		if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
			return nil, err
		}
		if event.Amount <= 0 {
			return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, event.Amount)
		}
		if event.EventID == "" && event.OrderID != "" {
			event.EventID = domain.OrderEventID(event.OrderID)
		}
		return &decodedEvent{subject, event.EventID, event.PartnerID, w.OrderPaid, event}, nil

	case domain.SubjectPartnerJoined:
		var event domain.PartnerJoinedEvent
		if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
			return nil, err
		}
		if event.ReferralCode == "" {
			return nil, errors.New("referral code is required")
		}
		return &decodedEvent{subject, event.EventID, event.PartnerID, w.PartnerJoined, event}, nil

	case domain.SubjectMilestone:
		var event domain.MilestoneEvent
		if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
			return nil, err
		}
		return &decodedEvent{subject, event.EventID, event.PartnerID, w.Milestone, event}, nil

	default:
		return nil, fmt.Errorf("unknown subject: %s", msg.Subject())
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var delivered uint64
	if metadata, err := msg.Metadata(); err == nil {
		delivered = metadata.NumDelivered
	}

	event, err := b.decode(msg)
	if err == nil && (event.eventID == "" || event.partnerID == uuid.Nil) {
		err = errors.New("event id and partner id are required")
	}
	if err != nil {
		logger.Error(err, zap.String("message", "Dropping invalid event"), zap.String("subject", msg.Subject()))
		b.metrics.ObserveBridgeEvent("", "invalid")
		// Redelivery cannot fix a malformed payload
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	logger.Info("Received event",
		zap.String("subject", string(event.subject)),
		logger.Event(event.eventID),
		logger.Partner(event.partnerID),
		zap.Uint64("deliveryCount", delivered),
	)

	outcome, err := b.startWorkflow(ctx, event)
	if err != nil {
		logger.Error(err, zap.String("message", "Failed to forward event to worker"), logger.Event(event.eventID))
		b.metrics.ObserveBridgeEvent(string(event.subject), "failed")
		if err := msg.NakWithDelay(b.config.NakDelay); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	b.metrics.ObserveBridgeEvent(string(event.subject), outcome)
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// startWorkflow starts the workflow of an event; a workflow already started for the event id is a success
func (b *bridge) startWorkflow(ctx context.Context, event *decodedEvent) (string, error) {
	opt := client.StartWorkflowOptions{
		ID:                                       workflows.WorkflowID(event.subject, event.eventID),
		TaskQueue:                                b.config.TemporalTaskQueue,
		WorkflowIDReusePolicy:                    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
		WorkflowRunTimeout:                       b.config.WorkflowRunTimeout,
	}

	_, err := b.orchestrator.ExecuteWorkflow(ctx, opt, event.workflow, event.payload)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			logger.Info("Workflow already started for event", zap.String("workflowID", opt.ID))
			return "duplicate", nil
		}
		return "", fmt.Errorf("failed to execute workflow: %w", err)
	}

	logger.Info("Event forwarded to worker",
		zap.String("workflowID", opt.ID),
		zap.String("subject", string(event.subject)),
	)

	return "started", nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	if err := b.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		b.nc.Close()
	}
}
