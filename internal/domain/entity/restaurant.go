package entity

import "ordering-service/internal/domain/valueobject"

// Restaurant is the read-only aggregate looked up per request: its orderable
// flag and the slice of its catalog referenced by the incoming order.
type Restaurant struct {
	id       valueobject.RestaurantID
	products map[valueobject.ProductID]*Product
	active   bool
}

func NewRestaurant(id valueobject.RestaurantID, products []*Product, active bool) *Restaurant {
	byID := make(map[valueobject.ProductID]*Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}
	return &Restaurant{id: id, products: byID, active: active}
}

func (r *Restaurant) ID() valueobject.RestaurantID { return r.id }
func (r *Restaurant) Active() bool                 { return r.active }

// Product returns the catalog entry for the given id, if the restaurant offers it.
func (r *Restaurant) Product(id valueobject.ProductID) (*Product, bool) {
	p, ok := r.products[id]
	return p, ok
}
