package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ordering-service/internal/domain"
	"ordering-service/internal/domain/entity"
	"ordering-service/internal/domain/event"
	"ordering-service/internal/domain/valueobject"
	"ordering-service/internal/microservices/order/domain/dto"
)

type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// the pg repository echoes the aggregate it was given
	return order, args.Error(1)
}

type MockCustomers struct {
	mock.Mock
}

func (m *MockCustomers) Find(ctx context.Context, id valueobject.CustomerID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

type MockRestaurants struct {
	mock.Mock
}

func (m *MockRestaurants) FindInformation(ctx context.Context, id valueobject.RestaurantID, productIDs []valueobject.ProductID) (*entity.Restaurant, error) {
	args := m.Called(ctx, id, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderCreated(ctx context.Context, ev *event.OrderCreated) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type fixture struct {
	svc         OrderServiceInterface
	orders      *MockOrders
	customers   *MockCustomers
	restaurants *MockRestaurants
	publisher   *MockPublisher
}

func newFixture() *fixture {
	f := &fixture{
		orders:      new(MockOrders),
		customers:   new(MockCustomers),
		restaurants: new(MockRestaurants),
		publisher:   new(MockPublisher),
	}
	f.svc = NewOrderService(
		domain.NewOrderDomainService(),
		f.orders,
		f.customers,
		f.restaurants,
		f.publisher,
		zap.NewNop(),
	)
	return f
}

func createRequest(t *testing.T, productID string, price, subTotal, total string) dto.CreateOrderRequest {
	t.Helper()
	return dto.CreateOrderRequest{
		CustomerID:   uuid.NewString(),
		RestaurantID: uuid.NewString(),
		Address:      dto.OrderAddress{Street: "1 Main St", PostalCode: "12345", City: "Springfield"},
		Items: []dto.OrderItemRequest{{
			ProductID: productID,
			Quantity:  2,
			Price:     decimal.RequireFromString(price),
			SubTotal:  decimal.RequireFromString(subTotal),
		}},
		Price: decimal.RequireFromString(total),
	}
}

func activeRestaurant(t *testing.T, restaurantID, productID string, price string) *entity.Restaurant {
	t.Helper()
	rid, err := valueobject.ParseRestaurantID(restaurantID)
	require.NoError(t, err)
	pid, err := valueobject.ParseProductID(productID)
	require.NoError(t, err)
	m, err := valueobject.NewMoneyFromString(price)
	require.NoError(t, err)
	return entity.NewRestaurant(rid, []*entity.Product{entity.NewProduct(pid, "margherita", m)}, true)
}

func TestCreateOrder_Success(t *testing.T) {
	f := newFixture()
	req := createRequest(t, uuid.NewString(), "10.00", "20.00", "20.00")

	customerID, err := valueobject.ParseCustomerID(req.CustomerID)
	require.NoError(t, err)

	f.customers.On("Find", mock.Anything, customerID).Return(entity.NewCustomer(customerID), nil)
	f.restaurants.On("FindInformation", mock.Anything, mock.Anything, mock.Anything).
		Return(activeRestaurant(t, req.RestaurantID, req.Items[0].ProductID, "10.00"), nil)
	f.orders.On("Save", mock.Anything, mock.Anything).Return(&entity.Order{}, nil)
	f.publisher.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.OrderID)
	assert.NotEmpty(t, resp.TrackingID)
	assert.Equal(t, string(entity.OrderStatusPending), resp.Status)

	f.orders.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestCreateOrder_CustomerNotFound(t *testing.T) {
	f := newFixture()
	req := createRequest(t, uuid.NewString(), "10.00", "20.00", "20.00")

	f.customers.On("Find", mock.Anything, mock.Anything).Return(nil, domain.ErrCustomerNotFound)

	_, err := f.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	// fail before the restaurant check
	f.restaurants.AssertNotCalled(t, "FindInformation", mock.Anything, mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateOrder_RestaurantNotFound(t *testing.T) {
	f := newFixture()
	req := createRequest(t, uuid.NewString(), "10.00", "20.00", "20.00")

	customerID, err := valueobject.ParseCustomerID(req.CustomerID)
	require.NoError(t, err)

	f.customers.On("Find", mock.Anything, customerID).Return(entity.NewCustomer(customerID), nil)
	f.restaurants.On("FindInformation", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrRestaurantNotFound)

	_, err = f.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateOrder_TotalMismatch(t *testing.T) {
	f := newFixture()
	req := createRequest(t, uuid.NewString(), "10.00", "20.00", "15.00")

	customerID, err := valueobject.ParseCustomerID(req.CustomerID)
	require.NoError(t, err)

	f.customers.On("Find", mock.Anything, customerID).Return(entity.NewCustomer(customerID), nil)
	f.restaurants.On("FindInformation", mock.Anything, mock.Anything, mock.Anything).
		Return(activeRestaurant(t, req.RestaurantID, req.Items[0].ProductID, "10.00"), nil)

	_, err = f.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrOrderTotalPriceMismatch)

	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestCreateOrder_PersistenceFailure(t *testing.T) {
	f := newFixture()
	req := createRequest(t, uuid.NewString(), "10.00", "20.00", "20.00")

	customerID, err := valueobject.ParseCustomerID(req.CustomerID)
	require.NoError(t, err)

	f.customers.On("Find", mock.Anything, customerID).Return(entity.NewCustomer(customerID), nil)
	f.restaurants.On("FindInformation", mock.Anything, mock.Anything, mock.Anything).
		Return(activeRestaurant(t, req.RestaurantID, req.Items[0].ProductID, "10.00"), nil)
	f.orders.On("Save", mock.Anything, mock.Anything).Return(nil, nil)

	_, err = f.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrOrderPersistenceFailure)

	f.publisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestCreateOrder_PublishFailureDoesNotRejectOrder(t *testing.T) {
	f := newFixture()
	req := createRequest(t, uuid.NewString(), "10.00", "20.00", "20.00")

	customerID, err := valueobject.ParseCustomerID(req.CustomerID)
	require.NoError(t, err)

	f.customers.On("Find", mock.Anything, customerID).Return(entity.NewCustomer(customerID), nil)
	f.restaurants.On("FindInformation", mock.Anything, mock.Anything, mock.Anything).
		Return(activeRestaurant(t, req.RestaurantID, req.Items[0].ProductID, "10.00"), nil)
	f.orders.On("Save", mock.Anything, mock.Anything).Return(&entity.Order{}, nil)
	f.publisher.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(assert.AnError)

	resp, err := f.svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderID)
}

func TestCreateOrder_MalformedIdentifier(t *testing.T) {
	f := newFixture()
	req := createRequest(t, "not-a-uuid", "10.00", "20.00", "20.00")

	_, err := f.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, valueobject.ErrInvalidValue)

	f.customers.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}
