package mappers

import (
	"wagate/internal/domain/gateway"
	"wagate/internal/infrastructure/persistence/models"
)

func SettingsToModel(s *gateway.Settings, rowID uint) *models.GatewaySettingsModel {
	return &models.GatewaySettingsModel{
		ID:             rowID,
		Enabled:        s.Enabled(),
		Title:          s.Title(),
		Description:    s.Description(),
		WhatsAppNumber: s.WhatsAppNumber(),
		Instructions:   s.Instructions(),
		Template:       s.Template(),
		EnrichItems:    s.EnrichItems(),
		Version:        s.Version(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func SettingsToDomain(model *models.GatewaySettingsModel) *gateway.Settings {
	return gateway.Reconstruct(gateway.ReconstructParams{
		Enabled:        model.Enabled,
		Title:          model.Title,
		Description:    model.Description,
		WhatsAppNumber: model.WhatsAppNumber,
		Instructions:   model.Instructions,
		Template:       model.Template,
		EnrichItems:    model.EnrichItems,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
}
