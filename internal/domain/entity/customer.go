package entity

import "ordering-service/internal/domain/valueobject"

// Customer carries identity only; the order flow needs just an existence check.
type Customer struct {
	id valueobject.CustomerID
}

func NewCustomer(id valueobject.CustomerID) *Customer { return &Customer{id: id} }

func (c *Customer) ID() valueobject.CustomerID { return c.id }
