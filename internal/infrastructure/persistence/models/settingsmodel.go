package models

import "time"

// GatewaySettingsModel is the single merchant settings row (ID is always
// settingsRowID).
type GatewaySettingsModel struct {
	ID             uint   `gorm:"primaryKey"`
	Enabled        bool   `gorm:"not null;default:true"`
	Title          string `gorm:"size:255"`
	Description    string `gorm:"type:text"`
	WhatsAppNumber string `gorm:"size:32"`
	Instructions   string `gorm:"type:text"`
	Template       string `gorm:"type:text"`
	EnrichItems    bool   `gorm:"not null;default:false"`
	Version        int    `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (GatewaySettingsModel) TableName() string {
	return "gateway_settings"
}
