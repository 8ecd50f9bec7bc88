package rabbitmq

import (
	"catalog/pkg/events"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const processTimeout = 30 * time.Second

// EventHandler is a function that processes events
type EventHandler func(ctx context.Context, event *events.Event) error

type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  ConsumerConfig
}

type ConsumerConfig struct {
	Exchange       string   // e.g., "catalog.import"
	QueueName      string   // e.g., "catalog.import.all.v1"
	RoutingKeys    []string // e.g., ["item.import.v1"]
	ServiceName    string
	PrefetchCount  int // defaults to 10
	WorkerPoolSize int // deliveries processed concurrently, defaults to 1
}

func (c ConsumerConfig) deadLetterExchange() string { return c.Exchange + ".dlx" }

func (c ConsumerConfig) deadLetterQueue() string { return c.QueueName + ".dlq" }

func NewConsumer(url string, config ConsumerConfig) (*Consumer, error) {
	if config.PrefetchCount <= 0 {
		config.PrefetchCount = 10
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}

	conn, err := dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel, config); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	zap.L().Info("RabbitMQ consumer created",
		zap.String("queue", config.QueueName),
		zap.String("exchange", config.Exchange),
		zap.Strings("routingKeys", config.RoutingKeys),
		zap.Int("workers", config.WorkerPoolSize),
	)

	return &Consumer{conn: conn, channel: channel, config: config}, nil
}

// declareTopology sets QoS and declares the exchange, its DLX, the queue and its DLQ.
func declareTopology(ch *amqp.Channel, config ConsumerConfig) error {
	if err := ch.Qos(config.PrefetchCount, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	for _, exchange := range []string{config.Exchange, config.deadLetterExchange()} {
		if err := declareTopicExchange(ch, exchange); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	queueArgs := amqp.Table{"x-dead-letter-exchange": config.deadLetterExchange()}
	if _, err := ch.QueueDeclare(config.QueueName, true, false, false, false, queueArgs); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if _, err := ch.QueueDeclare(config.deadLetterQueue(), true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ: %w", err)
	}

	for _, routingKey := range config.RoutingKeys {
		if err := ch.QueueBind(config.deadLetterQueue(), routingKey, config.deadLetterExchange(), false, nil); err != nil {
			return fmt.Errorf("failed to bind DLQ: %w", err)
		}
		if err := ch.QueueBind(config.QueueName, routingKey, config.Exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue: %w", err)
		}
	}
	return nil
}

// Consume dispatches deliveries to a fixed pool of workers until ctx is cancelled or the
// broker closes the channel. In-flight deliveries finish before it returns.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	msgs, err := c.channel.Consume(
		c.config.QueueName,
		c.config.ServiceName, // consumer tag
		false,                // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	zap.L().Info("Started consuming messages", zap.String("queue", c.config.QueueName))
	return dispatch(ctx, msgs, c.config.WorkerPoolSize, handler)
}

func dispatch(ctx context.Context, msgs <-chan amqp.Delivery, workers int, handler EventHandler) error {
	jobs := make(chan amqp.Delivery)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for msg := range jobs {
				handleMessage(ctx, msg, handler)
			}
		}()
	}

	defer func() {
		close(jobs)
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Consumer context cancelled, stopping...")
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				zap.L().Warn("Message channel closed")
				return errors.New("message channel closed")
			}
			select {
			case jobs <- msg:
			case <-ctx.Done():
				msg.Nack(false, true)
				return ctx.Err()
			}
		}
	}
}

// handleMessage acks processed deliveries. Malformed ones go to the DLQ at once; other
// failures are requeued a single time before being dead-lettered. Cancelling ctx does not
// interrupt the handler, and a failure seen after cancellation is always requeued.
func handleMessage(ctx context.Context, msg amqp.Delivery, handler EventHandler) {
	traceID, _ := msg.Headers["x-trace-id"].(string)

	var event events.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		zap.L().Error("Failed to unmarshal event", zap.Error(err), zap.String("traceId", traceID))
		msg.Nack(false, false)
		return
	}

	processCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), processTimeout)
	defer cancel()

	if err := handler(processCtx, &event); err != nil {
		requeue := !errors.Is(err, events.ErrMalformedPayload) && (!msg.Redelivered || ctx.Err() != nil)
		zap.L().Error("Failed to process event",
			zap.Error(err),
			zap.String("event", event.Event),
			zap.String("traceId", traceID),
			zap.Bool("requeue", requeue),
		)
		msg.Nack(false, requeue)
		return
	}

	if err := msg.Ack(false); err != nil {
		zap.L().Error("Failed to acknowledge message", zap.Error(err), zap.String("traceId", traceID))
		return
	}

	zap.L().Info("Processed event",
		zap.String("event", event.Event),
		zap.String("routingKey", msg.RoutingKey),
		zap.String("traceId", traceID),
	)
}

func (c *Consumer) Close() error {
	if err := c.channel.Close(); err != nil {
		zap.L().Error("Failed to close channel", zap.Error(err))
	}
	if err := c.conn.Close(); err != nil {
		zap.L().Error("Failed to close connection", zap.Error(err))
		return err
	}
	zap.L().Info("RabbitMQ consumer closed")
	return nil
}
