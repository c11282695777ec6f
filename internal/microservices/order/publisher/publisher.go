package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"ordering-service/internal/connections/rabbitmq"
	"ordering-service/internal/domain/event"
	"ordering-service/internal/microservices/order/domain/dto"
)

const (
	exchange   = "orders_topic"
	routingKey = "order.created"
)

// OrderEventPublisher pushes order.created events to RabbitMQ for the
// payment and restaurant-approval consumers.
type OrderEventPublisher struct {
	client *rabbitmq.Client
}

func New(client *rabbitmq.Client) *OrderEventPublisher {
	return &OrderEventPublisher{client: client}
}

func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, ev *event.OrderCreated) error {
	msg := dto.ToOrderMessage(ev)
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal order message: %w", err)
	}
	headers := amqp.Table{
		"x-source":       "order-service",
		"correlation_id": msg.TrackingID,
	}
	if err := p.client.Publish(ctx, exchange, routingKey, body, headers); err != nil {
		return fmt.Errorf("failed to publish order message: %w", err)
	}
	return nil
}
