package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultFeePercentage is the platform surcharge applied to every booking.
const DefaultFeePercentage = 10.0

var defaultCategories = []string{
	"Plumbing", "Electrical", "Cleaning", "Carpentry", "Painting",
	"Home Repair", "Landscaping", "Moving", "Pest Control", "Other",
}

// PlatformConfig is a single-row table holding the fee percentage and the
// service category list.
type PlatformConfig struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	FeePercentage float64   `json:"fee_percentage" gorm:"default:10"`
	Categories    []string  `json:"categories" gorm:"serializer:json"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *PlatformConfig) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// GetPlatformConfig loads the config row, creating it with defaults only
// when the row genuinely does not exist. Any other query error propagates,
// so a transient failure cannot mint a second default row.
func GetPlatformConfig(tx *gorm.DB) (*PlatformConfig, error) {
	var config PlatformConfig
	err := tx.First(&config).Error
	if err == nil {
		return &config, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	config = PlatformConfig{
		FeePercentage: DefaultFeePercentage,
		Categories:    defaultCategories,
	}
	if err := tx.Create(&config).Error; err != nil {
		return nil, err
	}
	return &config, nil
}
