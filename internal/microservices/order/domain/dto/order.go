package dto

import (
	"github.com/shopspring/decimal"

	"ordering-service/internal/domain/entity"
	"ordering-service/internal/domain/valueobject"
)

type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	SubTotal  decimal.Decimal `json:"sub_total"`
}

type OrderAddress struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	RestaurantID string             `json:"restaurant_id"`
	Address      OrderAddress       `json:"address"`
	Items        []OrderItemRequest `json:"items"`
	Price        decimal.Decimal    `json:"price"`
}

type CreateOrderResponse struct {
	OrderID    string `json:"order_id"`
	TrackingID string `json:"order_tracking_id"`
	Status     string `json:"order_status"`
	Message    string `json:"message,omitempty"`
}

// ToOrder maps the request into an unvalidated order aggregate. Identifier
// and quantity problems surface here; pricing is the domain service's job.
func (r CreateOrderRequest) ToOrder() (*entity.Order, error) {
	customerID, err := valueobject.ParseCustomerID(r.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := valueobject.ParseRestaurantID(r.RestaurantID)
	if err != nil {
		return nil, err
	}
	address, err := valueobject.NewStreetAddress(r.Address.Street, r.Address.PostalCode, r.Address.City)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		productID, err := valueobject.ParseProductID(it.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := entity.NewOrderItem(
			entity.NewProductRef(productID),
			it.Quantity,
			valueobject.NewMoney(it.Price),
			valueobject.NewMoney(it.SubTotal),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return entity.NewOrder(customerID, restaurantID, address, items, valueobject.NewMoney(r.Price)), nil
}

// ToResponse maps a persisted order into the create-order response.
func ToResponse(order *entity.Order, message string) CreateOrderResponse {
	return CreateOrderResponse{
		OrderID:    order.ID().String(),
		TrackingID: order.TrackingID().String(),
		Status:     string(order.Status()),
		Message:    message,
	}
}
