package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRecord is one purchasable entry from the provider catalog.
// The per-1000 rate is provider-internal and never leaves the backend.
type ServiceRecord struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProviderServiceID   string    `json:"provider_service_id" gorm:"type:varchar(64);uniqueIndex;not null"`
	Category            string    `json:"category" gorm:"type:text"`
	Name                string    `json:"name,omitempty" gorm:"type:varchar(255)"`
	Description         string    `json:"description,omitempty" gorm:"type:text"`
	ProviderRatePer1000 float64   `json:"-" gorm:"column:provider_rate_per_1000"`
	MinQuantity         *float64  `json:"min_quantity,omitempty" gorm:"column:min_quantity"`
	MaxQuantity         *float64  `json:"max_quantity,omitempty" gorm:"column:max_quantity"`
	Active              bool      `json:"-" gorm:"default:true;index"`
	CreatedAt           time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ServiceRecord) TableName() string {
	return "service_records"
}

func (s *ServiceRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// CategoryEntry is derived from the catalog feed, never stored.
// Key is the trimmed label used for grouping; Label keeps the original
// display string; Badge is a purely decorative token.
type CategoryEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Badge string `json:"badge,omitempty"`
}
