package dish

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"takeout/internal/entities"
	"takeout/internal/repository"
	"takeout/internal/service/dish"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var dishColumns = []string{
	"d.id", "d.name", "d.category_id", "c.name", "d.price", "d.image", "d.description",
	"d.status", "d.created_at", "d.updated_at", "d.created_by", "d.updated_by",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, d entities.Dish) (*entities.Dish, error) {
	query := `INSERT INTO dish (name, category_id, price, image, description, status, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), $7, $8)
		RETURNING id, created_at, updated_at`

	created := d
	err := r.querier.QueryRow(
		ctx,
		query,
		d.Name,
		d.CategoryID,
		d.Price,
		d.Image,
		d.Description,
		int16(d.Status),
		d.CreatedBy,
		d.UpdatedBy,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dish.ErrDishNameTaken
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, dish.ErrInvalidCategory
		}
		return nil, fmt.Errorf("%w: create: %w", dish.ErrRepository, err)
	}

	return &created, nil
}

func (r *Repository) GetByID(ctx context.Context, dishID int64) (*entities.Dish, error) {
	query, args, err := selectDishes().
		Where(sq.Eq{"d.id": dishID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build get by id: %w", dish.ErrRepository, err)
	}

	var dishModel DishDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&dishModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dish.ErrDishNotFound
		}
		return nil, fmt.Errorf("%w: get by id: %w", dish.ErrRepository, err)
	}

	return ToDomain(&dishModel), nil
}

// Page возвращает страницу блюд по фильтрам, отсортированную по времени изменения.
func (r *Repository) Page(ctx context.Context, q entities.DishPageQuery) (*entities.DishPage, error) {
	filter := sq.And{}
	if q.Name != nil {
		filter = append(filter, sq.ILike{"d.name": "%" + *q.Name + "%"})
	}
	if q.CategoryID != nil {
		filter = append(filter, sq.Eq{"d.category_id": *q.CategoryID})
	}
	if q.Status != nil {
		filter = append(filter, sq.Eq{"d.status": int16(*q.Status)})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("dish d").
		Where(filter).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build page count: %w", dish.ErrRepository, err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%w: page count: %w", dish.ErrRepository, err)
	}

	page := &entities.DishPage{Total: total, Records: []entities.Dish{}}
	if total == 0 {
		return page, nil
	}

	query, args, err := selectDishes().
		Where(filter).
		OrderBy("d.updated_at DESC", "d.id DESC").
		Limit(q.PageSize).
		Offset((q.Page - 1) * q.PageSize).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build page: %w", dish.ErrRepository, err)
	}

	dishes, err := r.queryDishes(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: page: %w", dish.ErrRepository, err)
	}
	page.Records = dishes
	return page, nil
}

func (r *Repository) Update(ctx context.Context, d entities.Dish) error {
	query, args, err := qb.
		Update("dish").
		Set("name", d.Name).
		Set("category_id", d.CategoryID).
		Set("price", d.Price).
		Set("image", d.Image).
		Set("description", d.Description).
		Set("status", int16(d.Status)).
		Set("updated_by", d.UpdatedBy).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build update: %w", dish.ErrRepository, err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return dish.ErrDishNameTaken
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return dish.ErrInvalidCategory
		}
		return fmt.Errorf("%w: update: %w", dish.ErrRepository, err)
	}
	if tag.RowsAffected() == 0 {
		return dish.ErrDishNotFound
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, dishID int64, status entities.DishStatus, updatedBy int64) error {
	query := `UPDATE dish
		SET status = $1, updated_by = $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := r.querier.Exec(ctx, query, int16(status), updatedBy, dishID)
	if err != nil {
		return fmt.Errorf("%w: update status: %w", dish.ErrRepository, err)
	}
	if tag.RowsAffected() == 0 {
		return dish.ErrDishNotFound
	}
	return nil
}

func (r *Repository) DeleteByIDs(ctx context.Context, dishIDs []int64) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM dish WHERE id = ANY($1)`, dishIDs); err != nil {
		return fmt.Errorf("%w: delete: %w", dish.ErrRepository, err)
	}
	return nil
}

func (r *Repository) ListByCategory(ctx context.Context, categoryID int64, status entities.DishStatus) ([]entities.Dish, error) {
	query, args, err := selectDishes().
		Where(sq.Eq{"d.category_id": categoryID, "d.status": int16(status)}).
		OrderBy("d.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build list by category: %w", dish.ErrRepository, err)
	}

	dishes, err := r.queryDishes(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list by category: %w", dish.ErrRepository, err)
	}
	return dishes, nil
}

func (r *Repository) CountOnSale(ctx context.Context, dishIDs []int64) (int64, error) {
	query := `SELECT COUNT(*) FROM dish WHERE id = ANY($1) AND status = $2`

	var count int64
	if err := r.querier.QueryRow(ctx, query, dishIDs, int16(entities.DishEnabled)).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count on sale: %w", dish.ErrRepository, err)
	}
	return count, nil
}

func (r *Repository) InsertFlavors(ctx context.Context, dishID int64, flavors []entities.DishFlavor) error {
	if len(flavors) == 0 {
		return nil
	}

	builder := qb.
		Insert("dish_flavor").
		Columns("dish_id", "name", "value")
	for _, f := range flavors {
		builder = builder.Values(dishID, f.Name, f.Value)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: build insert flavors: %w", dish.ErrRepository, err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return dish.ErrDishNotFound
		}
		return fmt.Errorf("%w: insert flavors: %w", dish.ErrRepository, err)
	}
	return nil
}

func (r *Repository) DeleteFlavors(ctx context.Context, dishIDs []int64) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM dish_flavor WHERE dish_id = ANY($1)`, dishIDs); err != nil {
		return fmt.Errorf("%w: delete flavors: %w", dish.ErrRepository, err)
	}
	return nil
}

// ListFlavors возвращает вкусы, сгруппированные по блюду.
func (r *Repository) ListFlavors(ctx context.Context, dishIDs []int64) (map[int64][]entities.DishFlavor, error) {
	query := `SELECT id, dish_id, name, value
		FROM dish_flavor
		WHERE dish_id = ANY($1)
		ORDER BY dish_id, id`

	rows, err := r.querier.Query(ctx, query, dishIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: list flavors: %w", dish.ErrRepository, err)
	}
	defer rows.Close()

	result := make(map[int64][]entities.DishFlavor, len(dishIDs))
	for rows.Next() {
		var f DishFlavorDB
		if err := rows.Scan(&f.ID, &f.DishID, &f.Name, &f.Value); err != nil {
			return nil, fmt.Errorf("%w: list flavors scan: %w", dish.ErrRepository, err)
		}
		result[f.DishID] = append(result[f.DishID], FlavorToDomain(f))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list flavors rows: %w", dish.ErrRepository, err)
	}
	return result, nil
}

func (r *Repository) queryDishes(ctx context.Context, query string, args ...interface{}) ([]entities.Dish, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishModels := make([]DishDB, 0, 8)
	for rows.Next() {
		var dishModel DishDB
		if err := rows.Scan(scanTargets(&dishModel)...); err != nil {
			return nil, err
		}
		dishModels = append(dishModels, dishModel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ToDomainList(dishModels), nil
}

func selectDishes() sq.SelectBuilder {
	return qb.
		Select(dishColumns...).
		From("dish d").
		LeftJoin("category c ON c.id = d.category_id")
}

func scanTargets(d *DishDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.Name,
		&d.CategoryID,
		&d.CategoryName,
		&d.Price,
		&d.Image,
		&d.Description,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.CreatedBy,
		&d.UpdatedBy,
	}
}
