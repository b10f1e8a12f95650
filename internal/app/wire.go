//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"

	"takeout/internal/handlers/rest/cart_add_post"
	"takeout/internal/handlers/rest/cart_clean_delete"
	"takeout/internal/handlers/rest/cart_list_get"
	"takeout/internal/handlers/rest/cart_sub_post"
	"takeout/internal/handlers/rest/dish_delete"
	"takeout/internal/handlers/rest/dish_get"
	"takeout/internal/handlers/rest/dish_list_get"
	"takeout/internal/handlers/rest/dish_page_get"
	"takeout/internal/handlers/rest/dish_post"
	"takeout/internal/handlers/rest/dish_put"
	"takeout/internal/handlers/rest/dish_status_post"
	"takeout/internal/handlers/tasks/delivery_timeout"
	"takeout/internal/handlers/tasks/payment_timeout"
	"takeout/internal/pkg/config"

	cartRepo "takeout/internal/repository/cart"
	catalogRepo "takeout/internal/repository/catalog"
	dishRepo "takeout/internal/repository/dish"
	dishCache "takeout/internal/repository/dish_cache"
	orderRepo "takeout/internal/repository/order"
	cartService "takeout/internal/service/cart"
	dishService "takeout/internal/service/dish"
	orderService "takeout/internal/service/order"

	"takeout/pkg/background"
	"takeout/pkg/logger"
	"takeout/pkg/querier"
	"takeout/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Application struct {
	ServiceCart       ServiceCart
	ServiceDish       ServiceDish
	BackgroundWorkers *background.Worker
}

type ServiceCart interface {
	cart_add_post.Service
	cart_sub_post.Service
	cart_list_get.Service
	cart_clean_delete.Service
}

type ServiceDish interface {
	dish_post.Service
	dish_put.Service
	dish_delete.Service
	dish_get.Service
	dish_page_get.Service
	dish_list_get.Service
	dish_status_post.Service
}

// InitializeApplication для HTTP сервиса со свипером заказов (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCartRepository,
		provideCatalogRepository,
		provideDishRepository,
		provideDishCache,
		provideOrderRepository,

		provideServiceCart,
		provideServiceDish,
		provideServiceOrder,

		providePaymentTimeoutTask,
		provideDeliveryTimeoutTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCart), new(*cartService.Service)),
		wire.Bind(new(ServiceDish), new(*dishService.Service)),

		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(cartService.CatalogLookup), new(*catalogRepo.Repository)),
		wire.Bind(new(dishService.Repository), new(*dishRepo.Repository)),
		wire.Bind(new(dishService.SetmealRelations), new(*catalogRepo.Repository)),
		wire.Bind(new(dishService.Cache), new(*dishCache.Repository)),
		wire.Bind(new(dishService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dishCache.Client), new(*redis.Client)),

		wire.Bind(new(payment_timeout.Service), new(*orderService.Service)),
		wire.Bind(new(delivery_timeout.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type PaymentWorkerApp struct {
	OrderService *orderService.Service
}

// InitializePaymentWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializePaymentWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*PaymentWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Struct(new(PaymentWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCartRepository(querier *querier.Querier) *cartRepo.Repository {
	return cartRepo.New(querier)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideDishRepository(querier *querier.Querier) *dishRepo.Repository {
	return dishRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDishCache(client dishCache.Client, cfg *config.Config) *dishCache.Repository {
	return dishCache.New(client, cfg.Redis.DishCacheTTL)
}

func provideServiceCart(
	repository cartService.Repository,
	catalog cartService.CatalogLookup,
) *cartService.Service {
	return cartService.New(repository, catalog)
}

func provideServiceDish(
	log logger.Logger,
	repository dishService.Repository,
	setmeals dishService.SetmealRelations,
	cache dishService.Cache,
	txManager dishService.TxManager,
) *dishService.Service {
	return dishService.New(repository, setmeals, cache, txManager, log)
}

func provideServiceOrder(repository orderService.Repository, cfg *config.Config) *orderService.Service {
	return orderService.New(repository, orderService.Config{
		PaymentTimeout:  cfg.Tasks.PaymentTimeout,
		DeliveryTimeout: cfg.Tasks.DeliveryTimeout,
		Concurrency:     cfg.Tasks.SweepConcurrency,
	})
}

func providePaymentTimeoutTask(
	log logger.Logger,
	service payment_timeout.Service,
	cfg *config.Config,
) (*payment_timeout.PaymentTimeout, error) {
	schedule, err := background.ParseSchedule(cfg.Tasks.PaymentTimeoutCron)
	if err != nil {
		return nil, fmt.Errorf("payment timeout schedule: %w", err)
	}
	return payment_timeout.New(log, service, schedule, cfg.Tasks.SweepTickTimeout), nil
}

func provideDeliveryTimeoutTask(
	log logger.Logger,
	service delivery_timeout.Service,
	cfg *config.Config,
) (*delivery_timeout.DeliveryTimeout, error) {
	schedule, err := background.ParseSchedule(cfg.Tasks.DeliveryTimeoutCron)
	if err != nil {
		return nil, fmt.Errorf("delivery timeout schedule: %w", err)
	}
	return delivery_timeout.New(log, service, schedule, cfg.Tasks.SweepTickTimeout), nil
}

func provideTaskList(
	paymentTimeoutTask *payment_timeout.PaymentTimeout,
	deliveryTimeoutTask *delivery_timeout.DeliveryTimeout,
) []background.Task {
	return []background.Task{
		paymentTimeoutTask,
		deliveryTimeoutTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
