package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/service/pickup"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"o.id", "o.product", "o.deliveryman_id", "o.recipient_id", "o.signature_id",
	"o.start_date", "o.end_date", "o.canceled_at", "o.created_at", "o.updated_at",
	"r.id", "r.name", "r.street", "r.number", "r.complement",
	"r.state", "r.city", "r.cep", "r.created_at",
}

var selectOrderColumns = strings.Join(orderColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// LockDeliveryman берет блокировку строки курьера. Внутри транзакции
// параллельные назначения одному курьеру выполняются по очереди.
func (r *Repository) LockDeliveryman(ctx context.Context, deliverymanID int64) error {
	query := `SELECT id FROM deliverymen WHERE id = $1 FOR UPDATE`

	var id int64
	err := r.querier.QueryRow(ctx, query, deliverymanID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pickup.ErrDeliverymanNotFound
		}
		return fmt.Errorf("unexpected order repository lock deliveryman error: %w", err)
	}
	return nil
}

func (r *Repository) DeliverymanExists(ctx context.Context, deliverymanID int64) error {
	query := `SELECT EXISTS (SELECT 1 FROM deliverymen WHERE id = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, deliverymanID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository deliveryman exists error: %w", err)
	}
	if !exists {
		return pickup.ErrDeliverymanNotFound
	}
	return nil
}

func (r *Repository) CountPickupsBetween(ctx context.Context, deliverymanID int64, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE deliveryman_id = $1
			AND canceled_at IS NULL
			AND start_date BETWEEN $2 AND $3
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, deliverymanID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count pickups error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountAllPickupsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE canceled_at IS NULL
			AND start_date BETWEEN $1 AND $2
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count all pickups error: %w", err)
	}
	return count, nil
}

func (r *Repository) GetByID(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `SELECT ` + selectOrderColumns + `
		FROM orders o
		JOIN recipients r ON r.id = o.recipient_id
		WHERE o.id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pickup.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetPickups(ctx context.Context, filter entities.PickupFilter) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders o").
		Join("recipients r ON r.id = o.recipient_id").
		Where(pickupsCondition(filter)).
		OrderBy("o.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get pickups error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get pickups error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, filter.Limit)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get pickups error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get pickups error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// CountPickups считает по тому же фильтру, что и GetPickups, без пагинации.
func (r *Repository) CountPickups(ctx context.Context, filter entities.PickupFilter) (int64, error) {
	query, args, err := qb.
		Select("COUNT(*)").
		From("orders o").
		Where(pickupsCondition(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count pickups error: %w", err)
	}

	var count int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count pickups error: %w", err)
	}
	return count, nil
}

func (r *Repository) UpdateStartDate(ctx context.Context, orderID int64, startDate time.Time) (*entities.Order, error) {
	query := `
		WITH o AS (
			UPDATE orders
			SET start_date = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + selectOrderColumns + `
		FROM o
		JOIN recipients r ON r.id = o.recipient_id`

	return r.updateOrder(ctx, "update start date", query, orderID, startDate)
}

// SetEndDate с nil signatureID оставляет подпись без изменений.
func (r *Repository) SetEndDate(ctx context.Context, orderID int64, endDate time.Time, signatureID *int64) (*entities.Order, error) {
	query := `
		WITH o AS (
			UPDATE orders
			SET end_date = $2, signature_id = COALESCE($3::BIGINT, signature_id), updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + selectOrderColumns + `
		FROM o
		JOIN recipients r ON r.id = o.recipient_id`

	return r.updateOrder(ctx, "set end date", query, orderID, endDate, signatureID)
}

func (r *Repository) SetCanceledAt(ctx context.Context, orderID int64, canceledAt time.Time) (*entities.Order, error) {
	query := `
		WITH o AS (
			UPDATE orders
			SET canceled_at = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + selectOrderColumns + `
		FROM o
		JOIN recipients r ON r.id = o.recipient_id`

	return r.updateOrder(ctx, "set canceled at", query, orderID, canceledAt)
}

func (r *Repository) updateOrder(ctx context.Context, op, query string, args ...interface{}) (*entities.Order, error) {
	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pickup.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	return ToDomain(orderModel), nil
}

func pickupsCondition(filter entities.PickupFilter) sq.Sqlizer {
	condition := sq.And{
		sq.Eq{"o.deliveryman_id": filter.DeliverymanID},
		sq.Eq{"o.canceled_at": nil},
	}

	switch filter.State {
	case entities.PickupActive:
		condition = append(condition, sq.Eq{"o.end_date": nil})
	case entities.PickupCompleted:
		condition = append(condition, sq.NotEq{"o.end_date": nil})
	}

	return condition
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Product,
		&orderModel.DeliverymanID,
		&orderModel.RecipientID,
		&orderModel.SignatureID,
		&orderModel.StartDate,
		&orderModel.EndDate,
		&orderModel.CanceledAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
		&orderModel.Recipient.ID,
		&orderModel.Recipient.Name,
		&orderModel.Recipient.Street,
		&orderModel.Recipient.Number,
		&orderModel.Recipient.Complement,
		&orderModel.Recipient.State,
		&orderModel.Recipient.City,
		&orderModel.Recipient.Cep,
		&orderModel.Recipient.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
