package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"takeout/internal/entities"
)

type Service struct {
	repository Repository
	catalog    CatalogLookup
}

func New(repository Repository, catalog CatalogLookup) *Service {
	return &Service{
		repository: repository,
		catalog:    catalog,
	}
}

// Add добавляет товар в корзину: существующая строка с тем же товаром и вкусом
// увеличивается на единицу, иначе создается новая строка по текущим данным каталога.
func (s *Service) Add(ctx context.Context, userID int64, item entities.CartItemRequest) (*entities.CartLine, error) {
	if !isValidOwnerID(userID) {
		return nil, ErrInvalidOwnerID
	}
	item, err := normalizeItemRequest(item)
	if err != nil {
		return nil, err
	}

	existing, err := s.repository.FindByIdentity(ctx, userID, item)
	switch {
	case err == nil:
		line, err := s.repository.IncrementQuantity(ctx, existing.ID)
		if err == nil {
			return line, nil
		}
		// строку успели удалить между чтением и записью - создаем заново
		if !errors.Is(err, ErrLineNotFound) {
			return nil, fmt.Errorf("increment cart line: %w", err)
		}
	case !errors.Is(err, ErrLineNotFound):
		return nil, fmt.Errorf("find cart line: %w", err)
	}

	catalogItem, err := s.resolve(ctx, item)
	if err != nil {
		return nil, err
	}

	line, err := s.repository.Insert(ctx, entities.CartLine{
		UserID:     userID,
		DishID:     item.DishID,
		SetmealID:  item.SetmealID,
		DishFlavor: item.DishFlavor,
		Name:       catalogItem.Name,
		Image:      catalogItem.Image,
		Amount:     catalogItem.Price,
		Number:     1,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert cart line: %w", err)
	}
	return line, nil
}

// Remove уменьшает количество товара на единицу; строка с количеством 1 удаляется.
// Отсутствие строки не является ошибкой.
func (s *Service) Remove(ctx context.Context, userID int64, item entities.CartItemRequest) error {
	if !isValidOwnerID(userID) {
		return ErrInvalidOwnerID
	}
	item, err := normalizeItemRequest(item)
	if err != nil {
		return err
	}

	line, err := s.repository.FindByIdentity(ctx, userID, item)
	if err != nil {
		if errors.Is(err, ErrLineNotFound) {
			return nil
		}
		return fmt.Errorf("find cart line: %w", err)
	}

	if line.Number <= 1 {
		if err := s.repository.DeleteByID(ctx, line.ID); err != nil {
			return fmt.Errorf("delete cart line: %w", err)
		}
		return nil
	}

	if err := s.repository.UpdateQuantity(ctx, line.ID, line.Number-1); err != nil {
		return fmt.Errorf("decrement cart line: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]entities.CartLine, error) {
	if !isValidOwnerID(userID) {
		return nil, ErrInvalidOwnerID
	}

	lines, err := s.repository.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return lines, nil
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	if !isValidOwnerID(userID) {
		return ErrInvalidOwnerID
	}

	if err := s.repository.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *Service) resolve(ctx context.Context, item entities.CartItemRequest) (*entities.CatalogItem, error) {
	if item.IsDish() {
		catalogItem, err := s.catalog.ResolveDish(ctx, *item.DishID)
		if err != nil {
			return nil, fmt.Errorf("resolve dish %d: %w", *item.DishID, err)
		}
		return catalogItem, nil
	}

	catalogItem, err := s.catalog.ResolveSetmeal(ctx, *item.SetmealID)
	if err != nil {
		return nil, fmt.Errorf("resolve setmeal %d: %w", *item.SetmealID, err)
	}
	return catalogItem, nil
}
