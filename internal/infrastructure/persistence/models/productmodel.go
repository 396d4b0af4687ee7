package models

import "time"

// ProductModel tracks stock for the host catalog entries referenced by
// order items. Only stock levels matter to this gateway.
type ProductModel struct {
	ID            uint   `gorm:"primaryKey"`
	SKU           string `gorm:"uniqueIndex;size:64"`
	Name          string `gorm:"size:255;not null"`
	StockQuantity int    `gorm:"not null;default:0"`
	ManageStock   bool   `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
