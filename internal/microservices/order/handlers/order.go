package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"ordering-service/internal/domain"
	"ordering-service/internal/domain/valueobject"
	"ordering-service/internal/microservices/order/domain/dto"
	"ordering-service/internal/microservices/order/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	logger  *zap.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{service: s, logger: logger}
}

func (oh *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		oh.logger.Debug("invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, dto.CreateOrderResponse{Message: "invalid JSON body"})
		return
	}

	resp, err := oh.service.CreateOrder(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFor(err), dto.CreateOrderResponse{Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func statusFor(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, valueobject.ErrInvalidValue):
		return http.StatusBadRequest
	case domain.IsValidation(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
