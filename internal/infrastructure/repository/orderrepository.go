package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wagate/internal/domain/order"
	"wagate/internal/infrastructure/persistence/mappers"
	"wagate/internal/infrastructure/persistence/models"
	"wagate/internal/shared/db"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.SetID(model.ID)

	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":           model.Status,
			"whatsapp_message": model.WhatsAppMessage,
			"notes":            model.Notes,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	return nil
}

// UpdateWhatsAppMessage persists only the cached message column.
func (r *OrderRepository) UpdateWhatsAppMessage(ctx context.Context, o *order.Order) error {
	msg, ok := o.WhatsAppMessage()
	if !ok {
		return order.ErrEmptyMessage
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", o.ID()).
		Updates(map[string]interface{}{
			"whatsapp_message": msg,
			"version":          o.Version(),
			"updated_at":       o.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update whatsapp message: %w", result.Error)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	var model models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_number = ?", orderNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by number: %w", err)
	}

	return mappers.OrderToDomain(&model)
}
