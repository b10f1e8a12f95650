package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
// Вложенные вызовы Do переиспользуют внешнюю транзакцию из контекста.
type Manager struct {
	internal *manager.Manager
	isoLevel pgx.TxIsoLevel
}

type Option func(*Manager)

// WithIsoLevel переопределяет уровень изоляции (по умолчанию read committed).
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.isoLevel = level
	}
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		isoLevel: pgx.ReadCommitted,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: m.isoLevel}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
