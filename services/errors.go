package services

import "errors"

// Sentinel errors for the service layer. Controllers map these onto HTTP
// statuses; messages are the ones the client surfaces as-is.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrDuplicateUser      = errors.New("User already exists with that email or phone number")

	ErrMenuItemNotFound = errors.New("Menu item not found")
	ErrCartItemNotFound = errors.New("Cart item not found")
	ErrOrderNotFound    = errors.New("Order not found")
	ErrUserNotFound     = errors.New("User not found")
	ErrNoOrdersForPhone = errors.New("No orders found for this phone number")

	ErrEmptyCart     = errors.New("Cart is empty. Cannot create order.")
	ErrInvalidState  = errors.New("Only pending orders can be cancelled")
	ErrInvalidStatus = errors.New("Invalid status. Must be one of: PENDING, PREPARING, READY, COMPLETED, CANCELLED")

	ErrValidation = errors.New("validation failed")
)

// IsNotFound reports whether err is one of the missing-entity sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMenuItemNotFound) ||
		errors.Is(err, ErrCartItemNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrNoOrdersForPhone)
}
