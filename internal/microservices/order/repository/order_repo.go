package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ordering-service/internal/domain/entity"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{pool: pool}
}

// Save writes the order row, its items and the status-log row in one
// transaction. All or nothing: a failed insert rolls everything back.
func (r *OrderRepository) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	addr := order.DeliveryAddress()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders
		    (id, customer_id, restaurant_id, tracking_id, street, postal_code, city, price, status, created_at, updated_at)
		VALUES
		    ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`,
		order.ID().String(),
		order.CustomerID().String(),
		order.RestaurantID().String(),
		order.TrackingID().String(),
		addr.Street(),
		addr.PostalCode(),
		addr.City(),
		order.Price().String(),
		string(order.Status()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items() {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, name, quantity, price, sub_total, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
		`,
			order.ID().String(),
			item.Product().ID().String(),
			item.Product().Name(),
			item.Quantity(),
			item.Price().String(),
			item.SubTotal().String(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item %s: %w", item.Product().ID(), err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, 'order-service', NOW())
	`, order.ID().String(), string(order.Status()))
	if err != nil {
		return nil, fmt.Errorf("failed to insert order status log: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return order, nil
}
