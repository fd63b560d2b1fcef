package adapter

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsConn is the subset of *nats.Conn the bridge and publisher use
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsConn=MockNatsConn,JetStream=MockJetStream,Consumer=MockNatsConsumer,ConsumeContext=MockConsumeContext,Message=MockJetStreamMessage,NatsJetStream=MockNatsJetStream
type NatsConn interface {
	Close()
	Drain() error
	IsConnected() bool
}

// JetStream is the subset of jetstream.JetStream used for partner events
type JetStream interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	// EnsureStream creates the stream or updates its subjects
	EnsureStream(ctx context.Context, cfg jetstream.StreamConfig) error
	CreateOrUpdateConsumer(ctx context.Context, stream string, cfg jetstream.ConsumerConfig) (Consumer, error)
}

// MessageHandler receives one delivered message
type MessageHandler func(msg Message)

// Consumer is a durable pull consumer
type Consumer interface {
	Consume(handler MessageHandler, opts ...jetstream.PullConsumeOpt) (ConsumeContext, error)
	Info(ctx context.Context) (*jetstream.ConsumerInfo, error)
}

// ConsumeContext controls a running Consume loop
type ConsumeContext interface {
	Stop()
	Drain()
}

// Message is a delivered JetStream message
type Message interface {
	Subject() string
	Data() []byte
	Metadata() (*jetstream.MsgMetadata, error)
	Ack() error
	NakWithDelay(delay time.Duration) error
	Term() error
}

// NatsJetStream dials NATS and opens a JetStream context
type NatsJetStream interface {
	Connect(url string, options ...nats.Option) (NatsConn, JetStream, error)
}

type natsDialer struct{}

// NewNatsJetStream returns the nats.go dialer
func NewNatsJetStream() NatsJetStream {
	return natsDialer{}
}

func (natsDialer) Connect(url string, options ...nats.Option) (NatsConn, JetStream, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	return nc, &jetStream{js: js}, nil
}

// jetStream narrows jetstream.JetStream to JetStream and wraps its consumers
type jetStream struct {
	js jetstream.JetStream
}

func (j *jetStream) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	return j.js.Publish(ctx, subject, data, opts...)
}

func (j *jetStream) EnsureStream(ctx context.Context, cfg jetstream.StreamConfig) error {
	_, err := j.js.CreateOrUpdateStream(ctx, cfg)
	return err
}

func (j *jetStream) CreateOrUpdateConsumer(ctx context.Context, stream string, cfg jetstream.ConsumerConfig) (Consumer, error) {
	c, err := j.js.CreateOrUpdateConsumer(ctx, stream, cfg)
	if err != nil {
		return nil, err
	}
	return &pullConsumer{c: c}, nil
}

type pullConsumer struct {
	c jetstream.Consumer
}

func (p *pullConsumer) Consume(handler MessageHandler, opts ...jetstream.PullConsumeOpt) (ConsumeContext, error) {
	return p.c.Consume(func(msg jetstream.Msg) {
		handler(msg)
	}, opts...)
}

func (p *pullConsumer) Info(ctx context.Context) (*jetstream.ConsumerInfo, error) {
	return p.c.Info(ctx)
}
