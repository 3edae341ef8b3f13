package services

import "errors"

// Sentinel errors for the HTTP taxonomy. Controllers map these with
// errors.Is: validation errors to 400, forbidden to 403, not-found to 404.
var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrGroupNotFound    = errors.New("group not found")

	ErrForbidden = errors.New("forbidden")

	ErrStatusRequired  = errors.New("status field is required")
	ErrInvalidStatus   = errors.New("status must be 0 (unprocessed) or 1 (delivered)")
	ErrNotDeliveryCrew = errors.New("user is not a delivery crew member")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
