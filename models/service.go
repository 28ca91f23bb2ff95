package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	ProviderID  string    `json:"provider_id" gorm:"index"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"` // minutes
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	// Rating and ReviewCount are derived from reviews; never set by clients.
	Rating        float64   `json:"rating" gorm:"default:0"`
	ReviewCount   int64     `json:"review_count" gorm:"default:0"`
	TotalBookings int64     `json:"total_bookings" gorm:"default:0"`
	Image         string    `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
