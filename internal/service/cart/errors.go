package cart

import "errors"

var (
	ErrInvalidItemRequest = errors.New("exactly one of dish id or setmeal id is required")
	ErrInvalidOwnerID     = errors.New("invalid owner id")

	ErrItemNotFound = errors.New("catalog item not found")
	ErrLineNotFound = errors.New("cart line not found")
	ErrRepository   = errors.New("cart repository error")
)
