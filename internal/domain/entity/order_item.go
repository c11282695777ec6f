package entity

import (
	"fmt"

	"ordering-service/internal/domain/valueobject"
)

// OrderItem is one requested line: a product, a quantity, the unit price the
// client saw and the subtotal it declared.
type OrderItem struct {
	product  *Product
	quantity int
	price    valueobject.Money
	subTotal valueobject.Money
}

func NewOrderItem(product *Product, quantity int, price, subTotal valueobject.Money) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity %d for product %s", valueobject.ErrInvalidValue, quantity, product.ID())
	}
	return &OrderItem{product: product, quantity: quantity, price: price, subTotal: subTotal}, nil
}

func (i *OrderItem) Product() *Product           { return i.product }
func (i *OrderItem) Quantity() int               { return i.quantity }
func (i *OrderItem) Price() valueobject.Money    { return i.price }
func (i *OrderItem) SubTotal() valueobject.Money { return i.subTotal }

// PriceIsValid holds after reconciliation: the unit price is positive, matches
// the catalog price now carried by the product, and quantity times unit price
// equals the declared subtotal.
func (i *OrderItem) PriceIsValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.Equal(i.product.Price()) &&
		i.subTotal.Equal(i.price.Multiply(i.quantity))
}
