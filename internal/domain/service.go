package domain

import (
	"fmt"
	"time"

	"ordering-service/internal/domain/entity"
	"ordering-service/internal/domain/event"
)

// OrderDomainService owns the validation and initialization transition of an
// order against the restaurant it targets.
type OrderDomainService interface {
	ValidateAndInitializeOrder(order *entity.Order, restaurant *entity.Restaurant) (*event.OrderCreated, error)
}

type orderDomainService struct{}

func NewOrderDomainService() OrderDomainService { return &orderDomainService{} }

// ValidateAndInitializeOrder runs the creation preconditions fail-fast:
// restaurant orderable, items present, every item on the menu with a matching
// price, declared total equal to the item sum. On success the order gets its
// id, tracking id and PENDING status, and the creation event is returned.
// On failure the order is left untouched, with no identifiers assigned.
func (s *orderDomainService) ValidateAndInitializeOrder(order *entity.Order, restaurant *entity.Restaurant) (*event.OrderCreated, error) {
	if !restaurant.Active() {
		return nil, fmt.Errorf("%w: restaurant %s", ErrRestaurantNotActive, restaurant.ID())
	}
	if len(order.Items()) == 0 {
		return nil, ErrEmptyOrderItems
	}
	for _, item := range order.Items() {
		catalog, ok := restaurant.Product(item.Product().ID())
		if !ok {
			return nil, fmt.Errorf("%w: product %s, restaurant %s",
				ErrProductNotFoundInRestaurant, item.Product().ID(), restaurant.ID())
		}
		submitted := item.Price()
		item.Product().Reconcile(catalog.Name(), catalog.Price())
		if !item.PriceIsValid() {
			return nil, fmt.Errorf("%w: product %s submitted at %s, restaurant price %s",
				ErrOrderItemPriceMismatch, catalog.ID(), submitted, catalog.Price())
		}
	}
	if subtotal := order.ItemsSubtotal(); !order.Price().Equal(subtotal) {
		return nil, fmt.Errorf("%w: declared %s, items sum to %s",
			ErrOrderTotalPriceMismatch, order.Price(), subtotal)
	}

	if err := order.Initialize(); err != nil {
		return nil, err
	}
	return event.NewOrderCreated(order, time.Now().UTC()), nil
}
