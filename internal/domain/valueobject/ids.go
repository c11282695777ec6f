package valueobject

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderID identifies an order aggregate. Assigned on initialization, never before.
type OrderID struct{ uuid.UUID }

func NewOrderID() OrderID { return OrderID{uuid.New()} }

func ParseOrderID(s string) (OrderID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, fmt.Errorf("%w: order id %q", ErrInvalidValue, s)
	}
	return OrderID{u}, nil
}

func (id OrderID) IsZero() bool { return id.UUID == uuid.Nil }

// TrackingID is the customer-facing identifier of an order, distinct from OrderID.
type TrackingID struct{ uuid.UUID }

func NewTrackingID() TrackingID { return TrackingID{uuid.New()} }

func ParseTrackingID(s string) (TrackingID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TrackingID{}, fmt.Errorf("%w: tracking id %q", ErrInvalidValue, s)
	}
	return TrackingID{u}, nil
}

func (id TrackingID) IsZero() bool { return id.UUID == uuid.Nil }

type CustomerID struct{ uuid.UUID }

func ParseCustomerID(s string) (CustomerID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CustomerID{}, fmt.Errorf("%w: customer id %q", ErrInvalidValue, s)
	}
	return CustomerID{u}, nil
}

type RestaurantID struct{ uuid.UUID }

func ParseRestaurantID(s string) (RestaurantID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return RestaurantID{}, fmt.Errorf("%w: restaurant id %q", ErrInvalidValue, s)
	}
	return RestaurantID{u}, nil
}

type ProductID struct{ uuid.UUID }

func ParseProductID(s string) (ProductID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, fmt.Errorf("%w: product id %q", ErrInvalidValue, s)
	}
	return ProductID{u}, nil
}
