package dto

import (
	"time"

	"ordering-service/internal/domain/event"
)

// OrderItemMsg and OrderMessage form the wire shape of the order.created
// event consumed by payment and restaurant-approval services.
type OrderItemMsg struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	SubTotal  string `json:"sub_total"`
}

type OrderMessage struct {
	OrderID      string         `json:"order_id"`
	TrackingID   string         `json:"order_tracking_id"`
	CustomerID   string         `json:"customer_id"`
	RestaurantID string         `json:"restaurant_id"`
	Items        []OrderItemMsg `json:"items"`
	Price        string         `json:"price"`
	Status       string         `json:"order_status"`
	CreatedAt    time.Time      `json:"created_at"`
}

func ToOrderMessage(ev *event.OrderCreated) OrderMessage {
	order := ev.Order
	items := make([]OrderItemMsg, 0, len(order.Items()))
	for _, it := range order.Items() {
		items = append(items, OrderItemMsg{
			ProductID: it.Product().ID().String(),
			Name:      it.Product().Name(),
			Quantity:  it.Quantity(),
			Price:     it.Price().String(),
			SubTotal:  it.SubTotal().String(),
		})
	}
	return OrderMessage{
		OrderID:      order.ID().String(),
		TrackingID:   order.TrackingID().String(),
		CustomerID:   order.CustomerID().String(),
		RestaurantID: order.RestaurantID().String(),
		Items:        items,
		Price:        order.Price().String(),
		Status:       string(order.Status()),
		CreatedAt:    ev.CreatedAt,
	}
}
