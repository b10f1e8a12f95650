package dish

import (
	"context"
	"fmt"
	"strings"

	"takeout/internal/entities"
	"takeout/pkg/logger"
)

// CacheKeyPrefix - общий префикс ключей кэша списков блюд по категориям.
const CacheKeyPrefix = "dish_"

func CacheKey(categoryID int64) string {
	return fmt.Sprintf("%s%d", CacheKeyPrefix, categoryID)
}

type Service struct {
	repository Repository
	setmeals   SetmealRelations
	cache      Cache
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	setmeals SetmealRelations,
	cache Cache,
	txManager TxManager,
	log serviceLogger,
) *Service {
	return &Service{
		repository: repository,
		setmeals:   setmeals,
		cache:      cache,
		txManager:  txManager,
		log:        log,
	}
}

// Create сохраняет блюдо вместе со вкусами и сбрасывает кэш его категории.
func (s *Service) Create(ctx context.Context, employeeID int64, dish entities.Dish) (*entities.Dish, error) {
	dish.Name = strings.TrimSpace(dish.Name)
	if err := validateDish(dish); err != nil {
		return nil, err
	}
	dish.CreatedBy = employeeID
	dish.UpdatedBy = employeeID

	var created *entities.Dish
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, dish)
		if err != nil {
			return fmt.Errorf("create dish: %w", err)
		}

		if len(dish.Flavors) > 0 {
			if err := s.repository.InsertFlavors(ctx, created.ID, dish.Flavors); err != nil {
				return fmt.Errorf("insert flavors: %w", err)
			}
		}
		created.Flavors = withDishID(dish.Flavors, created.ID)

		if err := s.cache.Invalidate(ctx, CacheKey(dish.CategoryID)); err != nil {
			return fmt.Errorf("invalidate dish cache: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Page(ctx context.Context, query entities.DishPageQuery) (*entities.DishPage, error) {
	query = normalizePage(query)
	if query.Status != nil && !query.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	page, err := s.repository.Page(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("page dishes: %w", err)
	}
	return page, nil
}

// Get возвращает блюдо со вкусами.
func (s *Service) Get(ctx context.Context, dishID int64) (*entities.Dish, error) {
	if dishID <= 0 {
		return nil, ErrInvalidDishID
	}

	dish, err := s.repository.GetByID(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("get dish: %w", err)
	}

	flavors, err := s.repository.ListFlavors(ctx, []int64{dishID})
	if err != nil {
		return nil, fmt.Errorf("list flavors: %w", err)
	}
	dish.Flavors = flavors[dishID]
	return dish, nil
}

// Update перезаписывает блюдо и полностью заменяет его вкусы.
func (s *Service) Update(ctx context.Context, employeeID int64, dish entities.Dish) (*entities.Dish, error) {
	if dish.ID <= 0 {
		return nil, ErrInvalidDishID
	}
	dish.Name = strings.TrimSpace(dish.Name)
	if err := validateDish(dish); err != nil {
		return nil, err
	}
	dish.UpdatedBy = employeeID

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Update(ctx, dish); err != nil {
			return fmt.Errorf("update dish: %w", err)
		}

		if err := s.repository.DeleteFlavors(ctx, []int64{dish.ID}); err != nil {
			return fmt.Errorf("delete flavors: %w", err)
		}
		if len(dish.Flavors) > 0 {
			if err := s.repository.InsertFlavors(ctx, dish.ID, dish.Flavors); err != nil {
				return fmt.Errorf("insert flavors: %w", err)
			}
		}

		// блюдо могло сменить категорию - сбрасываем все списки
		if err := s.cache.InvalidatePrefix(ctx, CacheKeyPrefix); err != nil {
			return fmt.Errorf("invalidate dish cache: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dish.Flavors = withDishID(dish.Flavors, dish.ID)
	return &dish, nil
}

// Delete удаляет блюда пачкой. Блюда в продаже и блюда, входящие в сеты, удалять нельзя.
func (s *Service) Delete(ctx context.Context, dishIDs []int64) error {
	if err := validateIDs(dishIDs); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		onSale, err := s.repository.CountOnSale(ctx, dishIDs)
		if err != nil {
			return fmt.Errorf("count dishes on sale: %w", err)
		}
		if onSale > 0 {
			return ErrDishOnSale
		}

		setmealIDs, err := s.setmeals.SetmealIDsByDishIDs(ctx, dishIDs)
		if err != nil {
			return fmt.Errorf("find setmeals by dishes: %w", err)
		}
		if len(setmealIDs) > 0 {
			return ErrDishInSetmeal
		}

		if err := s.repository.DeleteFlavors(ctx, dishIDs); err != nil {
			return fmt.Errorf("delete flavors: %w", err)
		}
		if err := s.repository.DeleteByIDs(ctx, dishIDs); err != nil {
			return fmt.Errorf("delete dishes: %w", err)
		}

		if err := s.cache.InvalidatePrefix(ctx, CacheKeyPrefix); err != nil {
			return fmt.Errorf("invalidate dish cache: %w", err)
		}
		return nil
	})
}

func (s *Service) SetStatus(ctx context.Context, employeeID, dishID int64, status entities.DishStatus) error {
	if dishID <= 0 {
		return ErrInvalidDishID
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.UpdateStatus(ctx, dishID, status, employeeID); err != nil {
			return fmt.Errorf("update dish status: %w", err)
		}
		if err := s.cache.InvalidatePrefix(ctx, CacheKeyPrefix); err != nil {
			return fmt.Errorf("invalidate dish cache: %w", err)
		}
		return nil
	})
}

// List возвращает блюда категории, которые сейчас в продаже, со вкусами.
// Кэш читается и пополняется по ключу категории; его ошибки не мешают ответу.
func (s *Service) List(ctx context.Context, categoryID int64) ([]entities.Dish, error) {
	if categoryID <= 0 {
		return nil, ErrInvalidCategory
	}
	key := CacheKey(categoryID)

	dishes, ok, err := s.cache.GetDishes(ctx, key)
	switch {
	case err != nil:
		s.log.Warn("dish cache read failed, falling back to database",
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
	case ok:
		return dishes, nil
	}

	dishes, err = s.repository.ListByCategory(ctx, categoryID, entities.DishEnabled)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	if len(dishes) > 0 {
		ids := make([]int64, 0, len(dishes))
		for _, d := range dishes {
			ids = append(ids, d.ID)
		}
		flavors, err := s.repository.ListFlavors(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list flavors: %w", err)
		}
		for i := range dishes {
			dishes[i].Flavors = flavors[dishes[i].ID]
		}
	}

	if err := s.cache.SetDishes(ctx, key, dishes); err != nil {
		s.log.Warn("dish cache write failed",
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
	}
	return dishes, nil
}

func withDishID(flavors []entities.DishFlavor, dishID int64) []entities.DishFlavor {
	if len(flavors) == 0 {
		return nil
	}
	res := make([]entities.DishFlavor, len(flavors))
	for i, f := range flavors {
		f.DishID = dishID
		res[i] = f
	}
	return res
}
