package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ordering-service/internal/domain"
	"ordering-service/internal/domain/event"
	"ordering-service/internal/microservices/order/domain/dto"
	"ordering-service/internal/microservices/order/repository"
)

// EventPublisher delivers domain events to the messaging collaborator.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, ev *event.OrderCreated) error
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
}

type OrderService struct {
	domainService domain.OrderDomainService
	orders        repository.OrderRepositoryInterface
	customers     repository.CustomerRepositoryInterface
	restaurants   repository.RestaurantRepositoryInterface
	publisher     EventPublisher
	logger        *zap.Logger
}

func NewOrderService(
	domainService domain.OrderDomainService,
	orders repository.OrderRepositoryInterface,
	customers repository.CustomerRepositoryInterface,
	restaurants repository.RestaurantRepositoryInterface,
	publisher EventPublisher,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		domainService: domainService,
		orders:        orders,
		customers:     customers,
		restaurants:   restaurants,
		publisher:     publisher,
		logger:        logger,
	}
}

// CreateOrder runs one use case end to end: customer must exist, restaurant
// must exist, the mapped order must pass domain validation, the result must
// persist. The first failing step wins; nothing later runs.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error) {
	order, err := req.ToOrder()
	if err != nil {
		return dto.CreateOrderResponse{}, err
	}

	if _, err := s.customers.Find(ctx, order.CustomerID()); err != nil {
		s.logger.Warn("customer lookup failed",
			zap.String("customer_id", order.CustomerID().String()),
			zap.Error(err))
		return dto.CreateOrderResponse{}, err
	}

	restaurant, err := s.restaurants.FindInformation(ctx, order.RestaurantID(), order.ProductIDs())
	if err != nil {
		s.logger.Warn("restaurant lookup failed",
			zap.String("restaurant_id", order.RestaurantID().String()),
			zap.Error(err))
		return dto.CreateOrderResponse{}, err
	}

	ev, err := s.domainService.ValidateAndInitializeOrder(order, restaurant)
	if err != nil {
		s.logger.Warn("order rejected",
			zap.String("restaurant_id", order.RestaurantID().String()),
			zap.Error(err))
		return dto.CreateOrderResponse{}, err
	}

	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return dto.CreateOrderResponse{}, fmt.Errorf("%w: %v", domain.ErrOrderPersistenceFailure, err)
	}
	if saved == nil {
		return dto.CreateOrderResponse{}, domain.ErrOrderPersistenceFailure
	}

	// The order is durable at this point. A failed publish is retried by the
	// broker-side redelivery tooling, not by rejecting the request.
	if err := s.publisher.PublishOrderCreated(ctx, ev); err != nil {
		s.logger.Error("failed to publish order.created",
			zap.String("order_id", saved.ID().String()),
			zap.Error(err))
	}

	s.logger.Info("order created",
		zap.String("order_id", saved.ID().String()),
		zap.String("tracking_id", saved.TrackingID().String()),
		zap.String("customer_id", saved.CustomerID().String()),
		zap.String("total", saved.Price().String()))

	return dto.ToResponse(saved, "order created successfully"), nil
}
