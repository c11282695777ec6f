package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ordering-service/internal/domain"
	"ordering-service/internal/domain/entity"
	"ordering-service/internal/domain/valueobject"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) RestaurantRepositoryInterface {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) FindInformation(ctx context.Context, id valueobject.RestaurantID, productIDs []valueobject.ProductID) (*entity.Restaurant, error) {
	var active bool
	err := r.pool.QueryRow(ctx,
		`SELECT active FROM restaurants WHERE id = $1`, id.String(),
	).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRestaurantNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurant %s: %w", id, err)
	}

	ids := make([]string, 0, len(productIDs))
	for _, pid := range productIDs {
		ids = append(ids, pid.String())
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price::text
		FROM restaurant_products
		WHERE restaurant_id = $1 AND id = ANY($2)
	`, id.String(), ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurant products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var (
			rawID    string
			name     string
			rawPrice string
		)
		if err := rows.Scan(&rawID, &name, &rawPrice); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant product: %w", err)
		}
		productID, err := valueobject.ParseProductID(rawID)
		if err != nil {
			return nil, err
		}
		price, err := valueobject.NewMoneyFromString(rawPrice)
		if err != nil {
			return nil, err
		}
		products = append(products, entity.NewProduct(productID, name, price))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read restaurant products: %w", err)
	}

	return entity.NewRestaurant(id, products, active), nil
}
