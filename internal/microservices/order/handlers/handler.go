package handlers

import (
	"go.uber.org/zap"

	"ordering-service/internal/microservices/order/service"
)

type Handler struct {
	OrderHandler *OrderHandler
}

func New(s *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		OrderHandler: NewOrderHandler(s.OrderService, logger),
	}
}
