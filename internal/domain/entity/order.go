package entity

import (
	"errors"
	"fmt"

	"ordering-service/internal/domain/valueobject"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusApproved   OrderStatus = "APPROVED"
	OrderStatusCancelling OrderStatus = "CANCELLING"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ErrInvalidStateTransition is returned when an order operation is applied in
// a lifecycle state that does not permit it.
var ErrInvalidStateTransition = errors.New("order is not in a valid state for the operation")

// Order is the aggregate root. A freshly mapped order has no id, no tracking
// id and an empty status; all three are assigned by Initialize once the
// domain service has validated it.
type Order struct {
	id              valueobject.OrderID
	customerID      valueobject.CustomerID
	restaurantID    valueobject.RestaurantID
	deliveryAddress valueobject.StreetAddress
	items           []*OrderItem
	price           valueobject.Money
	trackingID      valueobject.TrackingID
	status          OrderStatus
}

func NewOrder(
	customerID valueobject.CustomerID,
	restaurantID valueobject.RestaurantID,
	deliveryAddress valueobject.StreetAddress,
	items []*OrderItem,
	price valueobject.Money,
) *Order {
	return &Order{
		customerID:      customerID,
		restaurantID:    restaurantID,
		deliveryAddress: deliveryAddress,
		items:           items,
		price:           price,
	}
}

func (o *Order) ID() valueobject.OrderID                    { return o.id }
func (o *Order) CustomerID() valueobject.CustomerID         { return o.customerID }
func (o *Order) RestaurantID() valueobject.RestaurantID     { return o.restaurantID }
func (o *Order) DeliveryAddress() valueobject.StreetAddress { return o.deliveryAddress }
func (o *Order) Items() []*OrderItem                        { return o.items }
func (o *Order) Price() valueobject.Money                   { return o.price }
func (o *Order) TrackingID() valueobject.TrackingID         { return o.trackingID }
func (o *Order) Status() OrderStatus                        { return o.status }

// ProductIDs lists the products the order references, in item order.
func (o *Order) ProductIDs() []valueobject.ProductID {
	ids := make([]valueobject.ProductID, 0, len(o.items))
	for _, item := range o.items {
		ids = append(ids, item.Product().ID())
	}
	return ids
}

// ItemsSubtotal sums the declared subtotals of all items without rounding.
func (o *Order) ItemsSubtotal() valueobject.Money {
	total := valueobject.ZeroMoney
	for _, item := range o.items {
		total = total.Add(item.SubTotal())
	}
	return total
}

// Initialize assigns the order id, the tracking id and the PENDING status.
// Only a never-initialized order may be initialized.
func (o *Order) Initialize() error {
	if o.status != "" || !o.id.IsZero() {
		return fmt.Errorf("%w: already initialized as %s", ErrInvalidStateTransition, o.status)
	}
	o.id = valueobject.NewOrderID()
	o.trackingID = valueobject.NewTrackingID()
	o.status = OrderStatusPending
	return nil
}

func (o *Order) Approve() error {
	if o.status != OrderStatusPending {
		return fmt.Errorf("%w: approve from %s", ErrInvalidStateTransition, o.status)
	}
	o.status = OrderStatusApproved
	return nil
}

// InitCancel starts cancellation of an already approved order; downstream
// confirmations have to be unwound before the final Cancel.
func (o *Order) InitCancel() error {
	if o.status != OrderStatusApproved {
		return fmt.Errorf("%w: init cancel from %s", ErrInvalidStateTransition, o.status)
	}
	o.status = OrderStatusCancelling
	return nil
}

// Cancel completes cancellation. A pending order cancels directly; an
// approved one has to pass through CANCELLING first.
func (o *Order) Cancel() error {
	if o.status != OrderStatusCancelling && o.status != OrderStatusPending {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidStateTransition, o.status)
	}
	o.status = OrderStatusCancelled
	return nil
}
