package dish

import (
	"takeout/internal/entities"
)

func ToDomain(d *DishDB) *entities.Dish {
	if d == nil {
		return nil
	}

	dish := &entities.Dish{
		ID:          d.ID,
		Name:        d.Name,
		CategoryID:  d.CategoryID,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      entities.DishStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		CreatedBy:   d.CreatedBy,
		UpdatedBy:   d.UpdatedBy,
	}
	if d.CategoryName != nil {
		dish.CategoryName = *d.CategoryName
	}
	return dish
}

func ToDomainList(dishesDB []DishDB) []entities.Dish {
	if len(dishesDB) == 0 {
		return []entities.Dish{}
	}

	result := make([]entities.Dish, len(dishesDB))
	for i, dishDB := range dishesDB {
		result[i] = *ToDomain(&dishDB)
	}
	return result
}

func FlavorToDomain(f DishFlavorDB) entities.DishFlavor {
	return entities.DishFlavor{
		ID:     f.ID,
		DishID: f.DishID,
		Name:   f.Name,
		Value:  f.Value,
	}
}
