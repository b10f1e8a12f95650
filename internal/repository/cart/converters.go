package cart

import (
	"takeout/internal/entities"
)

func ToDomain(l *CartLineDB) *entities.CartLine {
	if l == nil {
		return nil
	}

	return &entities.CartLine{
		ID:         l.ID,
		UserID:     l.UserID,
		DishID:     l.DishID,
		SetmealID:  l.SetmealID,
		DishFlavor: l.DishFlavor,
		Name:       l.Name,
		Image:      l.Image,
		Amount:     l.Amount,
		Number:     l.Number,
		CreatedAt:  l.CreatedAt,
	}
}

func ToDomainList(linesDB []CartLineDB) []entities.CartLine {
	if len(linesDB) == 0 {
		return []entities.CartLine{}
	}

	result := make([]entities.CartLine, len(linesDB))
	for i, lineDB := range linesDB {
		result[i] = *ToDomain(&lineDB)
	}
	return result
}
