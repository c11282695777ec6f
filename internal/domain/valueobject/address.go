package valueobject

import "fmt"

// StreetAddress is the delivery address of an order. Opaque to validation
// beyond presence of its parts.
type StreetAddress struct {
	street     string
	postalCode string
	city       string
}

func NewStreetAddress(street, postalCode, city string) (StreetAddress, error) {
	if street == "" || postalCode == "" || city == "" {
		return StreetAddress{}, fmt.Errorf("%w: street, postal code and city are required", ErrInvalidValue)
	}
	return StreetAddress{street: street, postalCode: postalCode, city: city}, nil
}

func (a StreetAddress) Street() string     { return a.street }
func (a StreetAddress) PostalCode() string { return a.postalCode }
func (a StreetAddress) City() string       { return a.city }
