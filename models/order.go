package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlacedOrder is the history row written after the provider accepts an
// order. The raw provider reply is kept as JSONB for support lookups; it
// is never surfaced to the customer directly.
type PlacedOrder struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `json:"user_id" gorm:"type:uuid;index;not null"`
	ProviderServiceID string         `json:"provider_service_id" gorm:"type:varchar(64);not null"`
	ServiceName       string         `json:"service_name" gorm:"type:varchar(255)"`
	Category          string         `json:"category" gorm:"type:text"`
	Link              string         `json:"link" gorm:"type:text;not null"`
	Quantity          int64          `json:"quantity" gorm:"not null"`
	Status            string         `json:"status" gorm:"type:varchar(20);default:'placed'"`
	ProviderReply     datatypes.JSON `json:"-" gorm:"type:jsonb"`
	CreatedAt         time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

func (PlacedOrder) TableName() string {
	return "placed_orders"
}

func (o *PlacedOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// PlaceOrderResponse is returned by POST /orders.
type PlaceOrderResponse struct {
	Placed       bool         `json:"placed"`
	Order        *PlacedOrder `json:"order,omitempty"`
	Notification Notification `json:"notification"`
	Draft        Selection    `json:"draft"`
}
