package service

import (
	"go.uber.org/zap"

	"ordering-service/internal/domain"
	"ordering-service/internal/microservices/order/repository"
)

type Service struct {
	OrderService OrderServiceInterface
}

func New(repo *repository.Repository, publisher EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		OrderService: NewOrderService(
			domain.NewOrderDomainService(),
			repo.Orders,
			repo.Customers,
			repo.Restaurants,
			publisher,
			logger,
		),
	}
}
