package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ordering-service/internal/domain"
	"ordering-service/internal/domain/entity"
	"ordering-service/internal/domain/valueobject"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepositoryInterface {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Find(ctx context.Context, id valueobject.CustomerID) (*entity.Customer, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id.String(),
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer %s: %w", id, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
	}
	return entity.NewCustomer(id), nil
}
