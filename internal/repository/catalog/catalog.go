package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"takeout/internal/entities"
	"takeout/internal/service/cart"
	"takeout/internal/service/dish"
)

// Repository отдает текущие данные каталога для корзины и связи блюд с сетами.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ResolveDish(ctx context.Context, dishID int64) (*entities.CatalogItem, error) {
	return r.resolve(ctx, `SELECT name, image, price FROM dish WHERE id = $1`, dishID)
}

func (r *Repository) ResolveSetmeal(ctx context.Context, setmealID int64) (*entities.CatalogItem, error) {
	return r.resolve(ctx, `SELECT name, image, price FROM setmeal WHERE id = $1`, setmealID)
}

func (r *Repository) resolve(ctx context.Context, query string, id int64) (*entities.CatalogItem, error) {
	var (
		name, image string
		price       decimal.Decimal
	)
	err := r.querier.QueryRow(ctx, query, id).Scan(&name, &image, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: resolve catalog item: %w", cart.ErrRepository, err)
	}

	return &entities.CatalogItem{
		Name:  name,
		Image: image,
		Price: price,
	}, nil
}

// SetmealIDsByDishIDs возвращает сеты, в которые входит хотя бы одно из блюд.
func (r *Repository) SetmealIDsByDishIDs(ctx context.Context, dishIDs []int64) ([]int64, error) {
	query := `SELECT DISTINCT setmeal_id
		FROM setmeal_dish
		WHERE dish_id = ANY($1)
		ORDER BY setmeal_id`

	rows, err := r.querier.Query(ctx, query, dishIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: setmeals by dishes: %w", dish.ErrRepository, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 4)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: setmeals by dishes scan: %w", dish.ErrRepository, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: setmeals by dishes rows: %w", dish.ErrRepository, err)
	}
	return ids, nil
}
