package dish

import "errors"

var (
	ErrInvalidDish     = errors.New("invalid dish")
	ErrInvalidDishID   = errors.New("invalid dish id")
	ErrInvalidCategory = errors.New("invalid category id")
	ErrInvalidStatus   = errors.New("invalid dish status")

	ErrDishNotFound  = errors.New("dish not found")
	ErrDishNameTaken = errors.New("dish name already exists")
	ErrDishOnSale    = errors.New("dish is on sale and cannot be deleted")
	ErrDishInSetmeal = errors.New("dish is part of a setmeal and cannot be deleted")
	ErrRepository    = errors.New("dish repository error")
	ErrCache         = errors.New("dish cache error")
)
