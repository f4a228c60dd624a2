package deliveryman

import (
	"context"
	"fmt"
	"strings"

	"logistics/internal/entities"
)

type Deliveryman struct {
	repository Repository
}

func New(repository Repository) *Deliveryman {
	return &Deliveryman{
		repository: repository,
	}
}

func (s *Deliveryman) CreateDeliveryman(ctx context.Context, deliverymanModify entities.DeliverymanModify) (int64, error) {
	if deliverymanModify.Name == nil || deliverymanModify.Email == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*deliverymanModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidEmail(*deliverymanModify.Email) {
		return 0, ErrInvalidEmail
	}
	if deliverymanModify.AvatarID != nil && !isValidID(*deliverymanModify.AvatarID) {
		return 0, ErrInvalidAvatarID
	}

	normalizeEmail(&deliverymanModify)

	id, err := s.repository.Create(ctx, deliverymanModify)
	if err != nil {
		return 0, fmt.Errorf("create deliveryman: %w", err)
	}

	return id, nil
}

func (s *Deliveryman) UpdateDeliveryman(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error) {
	if deliverymanModify.ID == nil || !isValidID(*deliverymanModify.ID) {
		return nil, ErrInvalidDeliverymanID
	}

	if deliverymanModify.Name == nil &&
		deliverymanModify.Email == nil &&
		deliverymanModify.AvatarID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if deliverymanModify.Name != nil && !isValidName(*deliverymanModify.Name) {
		return nil, ErrInvalidName
	}
	if deliverymanModify.Email != nil && !isValidEmail(*deliverymanModify.Email) {
		return nil, ErrInvalidEmail
	}
	if deliverymanModify.AvatarID != nil && !isValidID(*deliverymanModify.AvatarID) {
		return nil, ErrInvalidAvatarID
	}

	normalizeEmail(&deliverymanModify)

	deliveryman, err := s.repository.Update(ctx, deliverymanModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update deliveryman: %w", err)
	}
	return deliveryman, nil
}

func (s *Deliveryman) GetDeliveryman(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	if !isValidID(id) {
		return nil, ErrInvalidDeliverymanID
	}

	deliveryman, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveryman: %w", err)
	}

	return deliveryman, nil
}

func (s *Deliveryman) GetDeliverymen(ctx context.Context) ([]entities.Deliveryman, error) {
	deliverymen, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliverymen: %w", err)
	}

	return deliverymen, nil
}

func (s *Deliveryman) DeleteDeliveryman(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidDeliverymanID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete deliveryman: %w", err)
	}
	return nil
}

// email уникален без учета регистра
func normalizeEmail(deliverymanModify *entities.DeliverymanModify) {
	if deliverymanModify.Email == nil {
		return
	}
	email := strings.ToLower(strings.TrimSpace(*deliverymanModify.Email))
	deliverymanModify.Email = &email
}
