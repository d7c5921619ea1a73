package publisher

import (
	"academia-service/internal/app/contracts"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	mu      sync.Mutex
	Channel channel
	Queue   string
	Log     *zap.Logger
}

// NewRabbitMQPublisher opens a channel on conn and declares queue as durable.
func NewRabbitMQPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return newPublisher(ch, queue, logger), nil
}

func newPublisher(ch channel, queue string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: ch,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) PublishTimetableGenerated(ctx context.Context, event *models.TimetableGeneratedEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("rabbitMQPublisher.PublishTimetableGenerated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"event_type":       event.EventType,
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		MessageId:     event.EventID,
		CorrelationId: requestID,
		Headers:       headers,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("rabbitMQPublisher.PublishTimetableGenerated error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("rabbitMQPublisher.PublishTimetableGenerated succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegNumberKey, event.RegNumber),
	)
	return nil
}
