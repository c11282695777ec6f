package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ordering-service/internal/domain/entity"
	"ordering-service/internal/domain/valueobject"
)

// Ports through which the order core reaches its collaborators. Customer and
// restaurant data is replicated into this service's store by upstream
// services; here it is read-only.

type OrderRepositoryInterface interface {
	// Save persists the order atomically and returns the stored aggregate.
	// A nil order with a nil error means the store reported no result.
	Save(ctx context.Context, order *entity.Order) (*entity.Order, error)
}

type CustomerRepositoryInterface interface {
	// Find returns domain.ErrCustomerNotFound when the customer does not exist.
	Find(ctx context.Context, id valueobject.CustomerID) (*entity.Customer, error)
}

type RestaurantRepositoryInterface interface {
	// FindInformation loads the restaurant's orderable flag and the catalog
	// entries for the given products. domain.ErrRestaurantNotFound when absent.
	FindInformation(ctx context.Context, id valueobject.RestaurantID, productIDs []valueobject.ProductID) (*entity.Restaurant, error)
}

type Repository struct {
	Orders      OrderRepositoryInterface
	Customers   CustomerRepositoryInterface
	Restaurants RestaurantRepositoryInterface
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Orders:      NewOrderRepository(pool),
		Customers:   NewCustomerRepository(pool),
		Restaurants: NewRestaurantRepository(pool),
	}
}
