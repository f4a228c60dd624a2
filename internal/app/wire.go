//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"logistics/internal/handlers/rest/delivery_finish_put"
	"logistics/internal/handlers/rest/deliveryman_delete"
	"logistics/internal/handlers/rest/deliveryman_get"
	"logistics/internal/handlers/rest/deliveryman_post"
	"logistics/internal/handlers/rest/deliveryman_put"
	"logistics/internal/handlers/rest/deliverymen_get"
	"logistics/internal/handlers/rest/pickup_put"
	"logistics/internal/handlers/rest/pickups_get"
	"logistics/internal/handlers/tasks/pickup_stats"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/factory/order_handle"
	"logistics/internal/pkg/factory/work_window"
	deliverymanRepo "logistics/internal/repository/deliveryman"
	orderRepo "logistics/internal/repository/order"
	deliverymanService "logistics/internal/service/deliveryman"
	orderService "logistics/internal/service/order"
	pickupService "logistics/internal/service/pickup"
	"logistics/pkg/background"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

type (
	PickupStatsInterval time.Duration
)

type Application struct {
	ServiceDeliveryman ServiceDeliveryman
	ServicePickup      ServicePickup
	DB                 *querier.Querier
	BackgroundWorkers  *background.Worker
}

type ServiceDeliveryman interface {
	deliveryman_get.Service
	deliverymen_get.Service
	deliveryman_post.Service
	deliveryman_put.Service
	deliveryman_delete.Service
}

type ServicePickup interface {
	pickups_get.Service
	pickup_put.Service
	delivery_finish_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePickupConfig,
		providePickupStatsInterval,

		provideDeliverymanRepository,
		provideOrderRepository,
		provideWorkWindowFactory,

		provideServiceDeliveryman,
		provideServicePickup,

		providePickupStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDeliveryman), new(*deliverymanService.Deliveryman)),
		wire.Bind(new(ServicePickup), new(*pickupService.Pickup)),

		wire.Bind(new(deliverymanService.Repository), new(*deliverymanRepo.Repository)),
		wire.Bind(new(pickupService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(pickupService.WorkWindowFactory), new(*work_window.WorkWindowFactory)),
		wire.Bind(new(pickupService.TxManager), new(*tx.Manager)),

		wire.Bind(new(pickup_stats.Service), new(*pickupService.Pickup)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePickupConfig,

		provideOrderRepository,
		provideWorkWindowFactory,

		provideServicePickup,
		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(pickupService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(pickupService.WorkWindowFactory), new(*work_window.WorkWindowFactory)),
		wire.Bind(new(pickupService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.PickupService), new(*pickupService.Pickup)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func providePickupConfig(cfg *config.Config) *config.Pickup {
	return &cfg.Pickup
}

func providePickupStatsInterval(cfg *config.Config) PickupStatsInterval {
	return PickupStatsInterval(cfg.Tasks.PickupStatsInterval)
}

func provideDeliverymanRepository(querier *querier.Querier) *deliverymanRepo.Repository {
	return deliverymanRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWorkWindowFactory(cfg *config.Pickup) *work_window.WorkWindowFactory {
	return work_window.New(cfg)
}

func provideServiceDeliveryman(repository deliverymanService.Repository) *deliverymanService.Deliveryman {
	return deliverymanService.New(repository)
}

func provideServicePickup(
	repository pickupService.Repository,
	windowFactory pickupService.WorkWindowFactory,
	txManager pickupService.TxManager,
	cfg *config.Pickup,
) *pickupService.Pickup {
	return pickupService.New(repository, windowFactory, txManager, cfg)
}

func provideStatusHandlerFactory(pickup orderService.PickupService) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(pickup)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(handlerFactory orderService.HandlerFactory) *orderService.Service {
	return orderService.New(handlerFactory)
}

func providePickupStatsTask(
	log logger.Logger,
	pickup pickup_stats.Service,
	interval PickupStatsInterval,
) *pickup_stats.PickupStats {
	return pickup_stats.NewPickupStats(log, pickup, time.Duration(interval))
}

func provideTaskList(
	pickupStatsTask *pickup_stats.PickupStats,
) []background.Task {
	return []background.Task{
		pickupStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
