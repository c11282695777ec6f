package entity

import "ordering-service/internal/domain/valueobject"

// Product is a catalog item. On the order side it is built from the request
// with an id only; name and price are filled in from the restaurant's
// authoritative record during validation.
type Product struct {
	id    valueobject.ProductID
	name  string
	price valueobject.Money
}

func NewProduct(id valueobject.ProductID, name string, price valueobject.Money) *Product {
	return &Product{id: id, name: name, price: price}
}

// NewProductRef builds a product carrying only its identity.
func NewProductRef(id valueobject.ProductID) *Product {
	return &Product{id: id}
}

func (p *Product) ID() valueobject.ProductID { return p.id }
func (p *Product) Name() string              { return p.name }
func (p *Product) Price() valueobject.Money  { return p.price }

// Reconcile overwrites name and price with the restaurant's confirmed values.
// It never flows back to the catalog; it only normalizes the order-side copy.
func (p *Product) Reconcile(name string, price valueobject.Money) {
	p.name = name
	p.price = price
}
