package eventqueue

import (
	"context"
	"fmt"
	"sync"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	json "github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "rosta_events_queue"
	DeadLetterQueueName = "rosta_events_dlq"
)

// Service owns the RabbitMQ queues that buffer roster events between the
// write path and the delivery worker.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService opens a channel, declares the durable standard queue and DLQ,
// sets QoS, and enables publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		StandardQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// EnqueueInput wraps an event headed for the standard queue.
type EnqueueInput struct {
	Event models.RosterEvent
}

// EnqueueOutput is empty.
type EnqueueOutput struct{}

// EnqueueToDLQInput wraps an event headed for the dead-letter queue.
type EnqueueToDLQInput struct {
	Event models.RosterEvent
}

// EnqueueToDLQOutput is empty.
type EnqueueToDLQOutput struct{}

// ReenqueueInput wraps a (possibly modified) event returned to the queue tail.
type ReenqueueInput struct {
	Event models.RosterEvent
}

// ReenqueueOutput is empty.
type ReenqueueOutput struct{}

// FetchNInput caps how many events one fetch may return.
type FetchNInput struct {
	Max int
}

// QueuedItem pairs a fetched delivery tag with its decoded event.
type QueuedItem struct {
	DeliveryTag uint64
	Event       models.RosterEvent
}

// FetchNOutput returns up to Max events.
type FetchNOutput struct {
	Items []QueuedItem
}

// AckMessageInput acknowledges a delivery so it leaves the queue.
type AckMessageInput struct {
	DeliveryTag uint64
}

// AckMessageOutput is empty.
type AckMessageOutput struct{}

// PublishEvent satisfies contracts.EventPublisher for the write path.
func (s *Service) PublishEvent(ctx context.Context, event *models.RosterEvent) error {
	_, err := s.Enqueue(ctx, &EnqueueInput{Event: *event})
	return err
}

// Enqueue publishes an event to the standard queue with persistence and
// waits for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, in *EnqueueInput) (*EnqueueOutput, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("EventQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, in.Event.Type))

	if err := s.publish(ctx, StandardQueueName, in.Event); err != nil {
		return nil, err
	}
	return &EnqueueOutput{}, nil
}

// Reenqueue returns the event to the tail of the standard queue.
func (s *Service) Reenqueue(ctx context.Context, in *ReenqueueInput) (*ReenqueueOutput, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("EventQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, in.Event.Type))

	if err := s.publish(ctx, StandardQueueName, in.Event); err != nil {
		return nil, err
	}
	return &ReenqueueOutput{}, nil
}

// EnqueueToDeadQueue parks the event in the DLQ.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, in *EnqueueToDLQInput) (*EnqueueToDLQOutput, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("EventQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, in.Event.Type))

	if err := s.publish(ctx, DeadLetterQueueName, in.Event); err != nil {
		return nil, err
	}
	return &EnqueueToDLQOutput{}, nil
}

// FetchN retrieves up to N events using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, in *FetchNInput) (*FetchNOutput, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("EventQueue.FetchN called", zap.String(constvars.LoggingRequestIDKey, requestID))

	n := in.Max
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQConsumeMessage(err, StandardQueueName)
		}
		if !ok {
			break
		}
		var event models.RosterEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			// Invalid JSON goes straight to the DLQ so it cannot poison the loop.
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, DeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Event: event})
	}

	return &FetchNOutput{Items: items}, nil
}

// AckMessage acknowledges a delivery by tag.
func (s *Service) AckMessage(ctx context.Context, in *AckMessageInput) (*AckMessageOutput, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("EventQueue.AckMessage called", zap.String(constvars.LoggingRequestIDKey, requestID))
	if err := s.ch.Ack(in.DeliveryTag, false); err != nil {
		return nil, err
	}
	return &AckMessageOutput{}, nil
}

func (s *Service) publish(ctx context.Context, queue string, event models.RosterEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
