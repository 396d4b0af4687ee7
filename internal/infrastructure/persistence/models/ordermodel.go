package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderNumber string `gorm:"uniqueIndex;size:64;not null"`
	Status      string `gorm:"size:20;not null;index"`

	Items datatypes.JSON `gorm:"type:json"`

	TotalAmount int64  `gorm:"not null"`
	Currency    string `gorm:"size:10;not null;default:'IDR'"`

	BillingFirstName string `gorm:"size:100"`
	BillingLastName  string `gorm:"size:100"`
	BillingEmail     string `gorm:"size:255"`
	BillingPhone     string `gorm:"size:32"`
	BillingAddress   string `gorm:"size:255"`
	BillingCity      string `gorm:"size:100"`
	BillingState     string `gorm:"size:100"`
	BillingPostcode  string `gorm:"size:20"`

	PaymentMethod string `gorm:"size:32;not null;index"`

	// WhatsAppMessage caches the generated deep-link text; NULL means not
	// generated yet.
	WhatsAppMessage *string `gorm:"column:whatsapp_message;type:text"`

	Notes datatypes.JSON `gorm:"type:json"`

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// ItemJSON is the persisted shape of one order line inside the Items
// JSON column.
type ItemJSON struct {
	ProductID  uint              `json:"product_id"`
	Name       string            `json:"name"`
	Quantity   int               `json:"quantity"`
	LineTotal  int64             `json:"line_total"`
	Attributes []AttributeJSON   `json:"attributes,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type AttributeJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
