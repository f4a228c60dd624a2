//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickups_get_test
package pickups_get

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListActivePickups(ctx context.Context, deliverymanID int64, page int) (*entities.PickupPage, error)
	ListCompletedPickups(ctx context.Context, deliverymanID int64, page int) (*entities.PickupPage, error)
}
