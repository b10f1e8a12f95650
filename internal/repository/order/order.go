package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"takeout/internal/entities"
	"takeout/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "number", "user_id", "status", "amount",
	"order_time", "checkout_time", "cancel_reason", "cancel_time",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID int64) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build get by id: %w", order.ErrRepository, err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("%w: get by id: %w", order.ErrRepository, err)
	}

	return ToDomain(&orderModel), nil
}

// FindByStatusAndPlacedAtBefore возвращает заказы в статусе status, оформленные не позже cutoff.
func (r *Repository) FindByStatusAndPlacedAtBefore(ctx context.Context, status entities.OrderStatusType, cutoff time.Time) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": status.String()}).
		Where(sq.LtOrEq{"order_time": cutoff}).
		OrderBy("order_time", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build find by status: %w", order.ErrRepository, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: find by status: %w", order.ErrRepository, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(scanTargets(&orderModel)...); err != nil {
			return nil, fmt.Errorf("%w: find by status scan: %w", order.ErrRepository, err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: find by status rows: %w", order.ErrRepository, err)
	}

	return ToDomainList(orderModels), nil
}

// Update записывает статус и поля оплаты/отмены, только если заказ все еще в статусе expected.
// Иначе возвращает order.ErrStatusMismatch и ничего не меняет.
func (r *Repository) Update(ctx context.Context, o entities.Order, expected entities.OrderStatusType) error {
	query, args, err := qb.
		Update("orders").
		Set("status", o.Status.String()).
		Set("checkout_time", o.CheckoutTime).
		Set("cancel_reason", o.CancelReason).
		Set("cancel_time", o.CancelTime).
		Where(sq.Eq{"id": o.ID, "status": expected.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build update: %w", order.ErrRepository, err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: update order %d: %w", order.ErrRepository, o.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return order.ErrStatusMismatch
	}
	return nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.Number,
		&o.UserID,
		&o.Status,
		&o.Amount,
		&o.OrderTime,
		&o.CheckoutTime,
		&o.CancelReason,
		&o.CancelTime,
	}
}
