package domain

import "errors"

// Not-found errors: the referenced aggregate does not exist.
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// Validation errors: the request is inconsistent or stale against the
// restaurant's current catalog. Never retryable as submitted.
var (
	ErrRestaurantNotActive         = errors.New("restaurant is not accepting orders")
	ErrEmptyOrderItems             = errors.New("order must contain at least one item")
	ErrProductNotFoundInRestaurant = errors.New("product is not offered by the restaurant")
	ErrOrderItemPriceMismatch      = errors.New("order item price does not match the restaurant price")
	ErrOrderTotalPriceMismatch     = errors.New("order total does not match the sum of item subtotals")
)

// Infrastructure errors.
var ErrOrderPersistenceFailure = errors.New("order could not be saved")

// IsValidation reports whether err is one of the domain validation kinds.
func IsValidation(err error) bool {
	return errors.Is(err, ErrRestaurantNotActive) ||
		errors.Is(err, ErrEmptyOrderItems) ||
		errors.Is(err, ErrProductNotFoundInRestaurant) ||
		errors.Is(err, ErrOrderItemPriceMismatch) ||
		errors.Is(err, ErrOrderTotalPriceMismatch)
}

// IsNotFound reports whether err is an absent-aggregate error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) || errors.Is(err, ErrRestaurantNotFound)
}
