package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wagate/internal/domain/gateway"
	"wagate/internal/infrastructure/persistence/mappers"
	"wagate/internal/infrastructure/persistence/models"
	"wagate/internal/shared/db"
)

// settingsRowID pins the merchant settings to a single row.
const settingsRowID uint = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, seeding defaults on first access so the
// admin form always has something to edit.
func (r *SettingsRepository) Get(ctx context.Context) (*gateway.Settings, error) {
	var model models.GatewaySettingsModel

	err := db.GetTxFromContext(ctx, r.db).First(&model, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := gateway.DefaultSettings()
		if saveErr := r.Save(ctx, defaults); saveErr != nil {
			return nil, saveErr
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway settings: %w", err)
	}

	return mappers.SettingsToDomain(&model), nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *gateway.Settings) error {
	model := mappers.SettingsToModel(s, settingsRowID)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save gateway settings: %w", err)
	}

	return nil
}
