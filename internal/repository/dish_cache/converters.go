package dish_cache

import "takeout/internal/entities"

func FromDomainList(dishes []entities.Dish) []DishCached {
	res := make([]DishCached, len(dishes))
	for i, d := range dishes {
		res[i] = DishCached{
			ID:           d.ID,
			Name:         d.Name,
			CategoryID:   d.CategoryID,
			CategoryName: d.CategoryName,
			Price:        d.Price,
			Image:        d.Image,
			Description:  d.Description,
			Status:       int(d.Status),
			UpdatedAt:    d.UpdatedAt,
		}
		for _, f := range d.Flavors {
			res[i].Flavors = append(res[i].Flavors, DishFlavorCached(f))
		}
	}
	return res
}

func ToDomainList(cached []DishCached) []entities.Dish {
	res := make([]entities.Dish, len(cached))
	for i, c := range cached {
		res[i] = entities.Dish{
			ID:           c.ID,
			Name:         c.Name,
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Price:        c.Price,
			Image:        c.Image,
			Description:  c.Description,
			Status:       entities.DishStatus(c.Status),
			UpdatedAt:    c.UpdatedAt,
		}
		for _, f := range c.Flavors {
			res[i].Flavors = append(res[i].Flavors, entities.DishFlavor(f))
		}
	}
	return res
}
