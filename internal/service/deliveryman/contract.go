//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryman_test
package deliveryman

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliverymanModifyEntity entities.DeliverymanModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error)
	GetAll(ctx context.Context) ([]entities.Deliveryman, error)
	Update(ctx context.Context, deliverymanModifyEntity entities.DeliverymanModify) (*entities.Deliveryman, error)
	Delete(ctx context.Context, id int64) error
}
