package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering-service/internal/domain/event"
	"ordering-service/internal/domain/valueobject"
)

func request() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerID:   uuid.NewString(),
		RestaurantID: uuid.NewString(),
		Address:      OrderAddress{Street: "1 Main St", PostalCode: "12345", City: "Springfield"},
		Items: []OrderItemRequest{{
			ProductID: uuid.NewString(),
			Quantity:  2,
			Price:     decimal.RequireFromString("10.00"),
			SubTotal:  decimal.RequireFromString("20.00"),
		}},
		Price: decimal.RequireFromString("20.00"),
	}
}

func TestToOrder(t *testing.T) {
	req := request()

	order, err := req.ToOrder()
	require.NoError(t, err)

	assert.Equal(t, req.CustomerID, order.CustomerID().String())
	assert.Equal(t, req.RestaurantID, order.RestaurantID().String())
	assert.Equal(t, "Springfield", order.DeliveryAddress().City())
	require.Len(t, order.Items(), 1)
	assert.Equal(t, req.Items[0].ProductID, order.Items()[0].Product().ID().String())
	assert.Equal(t, "20.00", order.Price().String())

	// unvalidated: no identifiers, no status
	assert.True(t, order.ID().IsZero())
	assert.Empty(t, order.Status())
}

func TestToOrder_MalformedProductID(t *testing.T) {
	req := request()
	req.Items[0].ProductID = "bogus"

	_, err := req.ToOrder()
	assert.ErrorIs(t, err, valueobject.ErrInvalidValue)
}

func TestToOrder_ZeroQuantity(t *testing.T) {
	req := request()
	req.Items[0].Quantity = 0

	_, err := req.ToOrder()
	assert.ErrorIs(t, err, valueobject.ErrInvalidValue)
}

func TestToOrderMessage(t *testing.T) {
	order, err := request().ToOrder()
	require.NoError(t, err)
	require.NoError(t, order.Initialize())
	order.Items()[0].Product().Reconcile("margherita", order.Items()[0].Price())

	at := time.Now().UTC()
	msg := ToOrderMessage(event.NewOrderCreated(order, at))

	assert.Equal(t, order.ID().String(), msg.OrderID)
	assert.Equal(t, order.TrackingID().String(), msg.TrackingID)
	assert.Equal(t, "PENDING", msg.Status)
	assert.Equal(t, "20.00", msg.Price)
	require.Len(t, msg.Items, 1)
	assert.Equal(t, "margherita", msg.Items[0].Name)
	assert.Equal(t, at, msg.CreatedAt)
}
