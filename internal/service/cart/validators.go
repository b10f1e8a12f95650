package cart

import (
	"strings"

	"takeout/internal/entities"
)

func isValidOwnerID(userID int64) bool {
	return userID > 0
}

// normalizeItemRequest проверяет, что задан ровно один товар, и приводит вкус к
// каноническому виду: у сета вкуса нет, пустая строка равна отсутствию вкуса.
func normalizeItemRequest(item entities.CartItemRequest) (entities.CartItemRequest, error) {
	if (item.DishID == nil) == (item.SetmealID == nil) {
		return item, ErrInvalidItemRequest
	}
	if item.DishID != nil && *item.DishID <= 0 {
		return item, ErrInvalidItemRequest
	}
	if item.SetmealID != nil && *item.SetmealID <= 0 {
		return item, ErrInvalidItemRequest
	}

	if item.SetmealID != nil {
		item.DishFlavor = nil
	}
	if item.DishFlavor != nil {
		flavor := strings.TrimSpace(*item.DishFlavor)
		if flavor == "" {
			item.DishFlavor = nil
		} else {
			item.DishFlavor = &flavor
		}
	}
	return item, nil
}
