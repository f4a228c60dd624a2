package deliveryman

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/deliveryman"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliverymanColumns = "id, name, email, avatar_id, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliverymanModifyEntity entities.DeliverymanModify) (int64, error) {
	deliverymanModifyModel := FromDomainModify(&deliverymanModifyEntity)
	query := `INSERT INTO deliverymen (name, email, avatar_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		deliverymanModifyModel.Name,
		deliverymanModifyModel.Email,
		deliverymanModifyModel.AvatarID,
	).Scan(&id)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return 0, deliveryman.ErrConflict
		}
		return 0, fmt.Errorf("unexpected deliveryman repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, deliverymanModifyEntity entities.DeliverymanModify) (*entities.Deliveryman, error) {
	deliverymanModifyModel := FromDomainModify(&deliverymanModifyEntity)

	builder := qb.
		Update("deliverymen")

	// опционные поля
	if deliverymanModifyModel.Name != nil {
		builder = builder.Set("name", deliverymanModifyModel.Name)
	}
	if deliverymanModifyModel.Email != nil {
		builder = builder.Set("email", deliverymanModifyModel.Email)
	}
	if deliverymanModifyModel.AvatarID != nil {
		builder = builder.Set("avatar_id", deliverymanModifyModel.AvatarID)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": deliverymanModifyModel.ID}).
		Suffix("RETURNING " + deliverymanColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository update error: %w", err)
	}

	deliverymanModel, err := scanDeliveryman(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryman.ErrDeliverymanNotFound
		}

		if repository.IsUniqueViolation(err) {
			return nil, deliveryman.ErrConflict
		}

		return nil, fmt.Errorf("unexpected deliveryman repository update error: %w", err)
	}

	return ToDomain(deliverymanModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	query := `SELECT ` + deliverymanColumns + `
		FROM deliverymen
		WHERE id = $1`

	deliverymanModel, err := scanDeliveryman(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryman.ErrDeliverymanNotFound
		}

		return nil, fmt.Errorf("unexpected deliveryman repository getbyid error: %w", err)
	}

	return ToDomain(deliverymanModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Deliveryman, error) {
	query := `
	SELECT ` + deliverymanColumns + `
	FROM deliverymen
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository getall error: %w", err)
	}
	defer rows.Close()

	deliverymanModels := make([]DeliverymanDB, 0, 8)
	for rows.Next() {
		deliverymanModel, err := scanDeliveryman(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected deliveryman repository getall error: %w", err)
		}
		deliverymanModels = append(deliverymanModels, *deliverymanModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository getall error: %w", err)
	}

	return ToDomainList(deliverymanModels), nil
}

// Delete не удаляет курьера, за которым числятся заказы (FK orders.deliveryman_id).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM deliverymen WHERE id = $1`, id)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return deliveryman.ErrDeliverymanHasOrders
		}
		return fmt.Errorf("unexpected deliveryman repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return deliveryman.ErrDeliverymanNotFound
	}
	return nil
}

func scanDeliveryman(row pgx.Row) (*DeliverymanDB, error) {
	var deliverymanModel DeliverymanDB
	err := row.Scan(
		&deliverymanModel.ID,
		&deliverymanModel.Name,
		&deliverymanModel.Email,
		&deliverymanModel.AvatarID,
		&deliverymanModel.CreatedAt,
		&deliverymanModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliverymanModel, nil
}
