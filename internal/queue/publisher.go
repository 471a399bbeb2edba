package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gamevault/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

var (
	ErrBufferFull      = errors.New("ledger event buffer full")
	ErrPublisherClosed = errors.New("ledger event publisher closed")
)

const (
	defaultBufferSize  = 256
	defaultDialTimeout = 3 * time.Second
)

// Publisher sends committed ledger events to a durable RabbitMQ queue.
// Publish only enqueues; a single goroutine owns the broker connection,
// opening it lazily and reopening it after the broker drops it.
type Publisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	logger      zerolog.Logger

	events    chan model.LedgerEvent
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	// owned by the run goroutine
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(url, queue string, bufferSize int, dialTimeout time.Duration, logger zerolog.Logger) *Publisher {
	p := newPublisher(url, queue, bufferSize, dialTimeout, logger)
	p.wg.Add(1)
	go p.run()
	return p
}

func newPublisher(url, queue string, bufferSize int, dialTimeout time.Duration, logger zerolog.Logger) *Publisher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	return &Publisher{
		url:         url,
		queue:       queue,
		dialTimeout: dialTimeout,
		logger:      logger,
		events:      make(chan model.LedgerEvent, bufferSize),
		done:        make(chan struct{}),
	}
}

// Publish hands the event to the background sender without waiting for the
// broker. It fails fast when the buffer is full or the publisher is closed.
func (p *Publisher) Publish(ctx context.Context, event model.LedgerEvent) error {
	select {
	case <-p.done:
		return ErrPublisherClosed
	default:
	}

	select {
	case p.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBufferFull
	}
}

func (p *Publisher) run() {
	defer p.wg.Done()
	defer p.closeConnection()

	for {
		select {
		case event := <-p.events:
			p.deliver(event)
		case <-p.done:
			p.drain()
			return
		}
	}
}

// drain flushes what is buffered at shutdown, giving up at the first failure
func (p *Publisher) drain() {
	for {
		select {
		case event := <-p.events:
			if !p.deliver(event) {
				p.logger.Warn().Int("dropped", len(p.events)).Msg("ledger events dropped at shutdown")
				return
			}
		default:
			return
		}
	}
}

func (p *Publisher) deliver(event model.LedgerEvent) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*p.dialTimeout)
	defer cancel()

	if err := p.send(ctx, event); err != nil {
		p.logger.Warn().
			Err(err).
			Str("kind", event.Kind.String()).
			Int64("entry_id", event.EntryID).
			Msg("failed to publish ledger event")
		return false
	}
	return true
}

func (p *Publisher) channel(ctx context.Context) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.conn == nil || p.conn.IsClosed() {
		dialTimeout := p.dialTimeout
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < dialTimeout {
			dialTimeout = time.Until(deadline)
		}
		if dialTimeout <= 0 {
			return nil, context.DeadlineExceeded
		}
		conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	p.ch = ch
	return ch, nil
}

// send marshals the event and publishes it as a persistent message
func (p *Publisher) send(ctx context.Context, event model.LedgerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Kind.String(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		_ = ch.Close()
		p.ch = nil
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.Debug().
		Str("kind", event.Kind.String()).
		Int64("entry_id", event.EntryID).
		Int64("gamer_id", event.GamerID).
		Msg("ledger event published")
	return nil
}

func (p *Publisher) closeConnection() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			p.logger.Warn().Err(err).Msg("failed to close rabbitmq connection")
		}
	}
}

// Close stops accepting events, flushes the buffer and closes the connection.
func (p *Publisher) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
	return nil
}

// NoopPublisher drops every event. Used when RabbitMQ is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, model.LedgerEvent) error { return nil }
func (NoopPublisher) Close() error                                     { return nil }
