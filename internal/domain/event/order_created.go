package event

import (
	"time"

	"ordering-service/internal/domain/entity"
)

// OrderCreated records a successfully validated and initialized order. It is
// returned to the caller for publication; the domain never publishes itself.
type OrderCreated struct {
	Order     *entity.Order
	CreatedAt time.Time
}

func NewOrderCreated(order *entity.Order, createdAt time.Time) *OrderCreated {
	return &OrderCreated{Order: order, CreatedAt: createdAt}
}
