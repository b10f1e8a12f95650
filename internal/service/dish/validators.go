package dish

import (
	"fmt"
	"strings"

	"takeout/internal/entities"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxNameLength   = 32
)

func validateDish(dish entities.Dish) error {
	name := strings.TrimSpace(dish.Name)
	if name == "" || len([]rune(name)) > maxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidDish, maxNameLength)
	}
	if dish.CategoryID <= 0 {
		return ErrInvalidCategory
	}
	if dish.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDish)
	}
	if !dish.Status.Valid() {
		return ErrInvalidStatus
	}
	for _, flavor := range dish.Flavors {
		if strings.TrimSpace(flavor.Name) == "" {
			return fmt.Errorf("%w: flavor name is required", ErrInvalidDish)
		}
	}
	return nil
}

func validateIDs(ids []int64) error {
	if len(ids) == 0 {
		return ErrInvalidDishID
	}
	for _, id := range ids {
		if id <= 0 {
			return ErrInvalidDishID
		}
	}
	return nil
}

func normalizePage(query entities.DishPageQuery) entities.DishPageQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = defaultPageSize
	}
	if query.PageSize > maxPageSize {
		query.PageSize = maxPageSize
	}
	if query.Name != nil && strings.TrimSpace(*query.Name) == "" {
		query.Name = nil
	}
	return query
}
