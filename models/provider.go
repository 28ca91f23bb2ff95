package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider is the business profile bound one-to-one to a user. It is only
// ever created by an approved provider application.
type Provider struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	UserID         string         `json:"user_id" gorm:"uniqueIndex"`
	BusinessName   string         `json:"business_name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Experience     string         `json:"experience"`
	Certifications string         `json:"certifications"`
	Status         ProviderStatus `json:"status" gorm:"default:PENDING"`
	Rating         float64        `json:"rating" gorm:"default:0"`
	TotalReviews   int64          `json:"total_reviews" gorm:"default:0"`
	TotalEarnings  float64        `json:"total_earnings" gorm:"default:0"`
	ProfileImage   string         `json:"profile_image"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (p *Provider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProviderPending
	}
	return nil
}
