package cart

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"takeout/internal/entities"
	"takeout/internal/service/cart"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const lineColumns = "id, user_id, dish_id, setmeal_id, dish_flavor, name, image, amount, number, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// FindByIdentity ищет строку по владельцу, товару и вкусу. NULL-вкус совпадает только с NULL.
func (r *Repository) FindByIdentity(ctx context.Context, userID int64, item entities.CartItemRequest) (*entities.CartLine, error) {
	query := `SELECT ` + lineColumns + `
		FROM shopping_cart
		WHERE user_id = $1
			AND dish_id IS NOT DISTINCT FROM $2
			AND setmeal_id IS NOT DISTINCT FROM $3
			AND dish_flavor IS NOT DISTINCT FROM $4`

	var lineModel CartLineDB
	err := r.querier.QueryRow(ctx, query, userID, item.DishID, item.SetmealID, item.DishFlavor).
		Scan(lineModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrLineNotFound
		}
		return nil, fmt.Errorf("%w: find by identity: %w", cart.ErrRepository, err)
	}

	return ToDomain(&lineModel), nil
}

// Insert создает строку. Если параллельный запрос успел создать такую же,
// ее количество увеличивается на единицу.
func (r *Repository) Insert(ctx context.Context, line entities.CartLine) (*entities.CartLine, error) {
	query := `INSERT INTO shopping_cart (user_id, dish_id, setmeal_id, dish_flavor, name, image, amount, number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, COALESCE(dish_id, 0), COALESCE(setmeal_id, 0), COALESCE(dish_flavor, ''))
		DO UPDATE SET number = shopping_cart.number + 1
		RETURNING ` + lineColumns

	var lineModel CartLineDB
	err := r.querier.QueryRow(
		ctx,
		query,
		line.UserID,
		line.DishID,
		line.SetmealID,
		line.DishFlavor,
		line.Name,
		line.Image,
		line.Amount,
		line.Number,
		line.CreatedAt,
	).Scan(lineModel.scanTargets()...)
	if err != nil {
		return nil, fmt.Errorf("%w: insert: %w", cart.ErrRepository, err)
	}

	return ToDomain(&lineModel), nil
}

func (r *Repository) IncrementQuantity(ctx context.Context, lineID int64) (*entities.CartLine, error) {
	query := `UPDATE shopping_cart
		SET number = number + 1
		WHERE id = $1
		RETURNING ` + lineColumns

	var lineModel CartLineDB
	err := r.querier.QueryRow(ctx, query, lineID).Scan(lineModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrLineNotFound
		}
		return nil, fmt.Errorf("%w: increment: %w", cart.ErrRepository, err)
	}

	return ToDomain(&lineModel), nil
}

func (r *Repository) UpdateQuantity(ctx context.Context, lineID int64, number int) error {
	query, args, err := qb.
		Update("shopping_cart").
		Set("number", number).
		Where(sq.Eq{"id": lineID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build update quantity: %w", cart.ErrRepository, err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: update quantity: %w", cart.ErrRepository, err)
	}
	return nil
}

func (r *Repository) DeleteByID(ctx context.Context, lineID int64) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM shopping_cart WHERE id = $1`, lineID); err != nil {
		return fmt.Errorf("%w: delete by id: %w", cart.ErrRepository, err)
	}
	return nil
}

func (r *Repository) DeleteByOwner(ctx context.Context, userID int64) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM shopping_cart WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("%w: delete by owner: %w", cart.ErrRepository, err)
	}
	return nil
}

func (r *Repository) ListByOwner(ctx context.Context, userID int64) ([]entities.CartLine, error) {
	query, args, err := qb.
		Select(lineColumns).
		From("shopping_cart").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build list: %w", cart.ErrRepository, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %w", cart.ErrRepository, err)
	}
	defer rows.Close()

	lineModels := make([]CartLineDB, 0, 8)
	for rows.Next() {
		var lineModel CartLineDB
		if err := rows.Scan(lineModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("%w: list scan: %w", cart.ErrRepository, err)
		}
		lineModels = append(lineModels, lineModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list rows: %w", cart.ErrRepository, err)
	}

	return ToDomainList(lineModels), nil
}
