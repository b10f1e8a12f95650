package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartLineDB struct {
	ID         int64
	UserID     int64
	DishID     *int64
	SetmealID  *int64
	DishFlavor *string
	Name       string
	Image      string
	Amount     decimal.Decimal
	Number     int
	CreatedAt  time.Time
}

func (m *CartLineDB) scanTargets() []interface{} {
	return []interface{}{
		&m.ID,
		&m.UserID,
		&m.DishID,
		&m.SetmealID,
		&m.DishFlavor,
		&m.Name,
		&m.Image,
		&m.Amount,
		&m.Number,
		&m.CreatedAt,
	}
}
