package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                      string    `json:"id" gorm:"primaryKey"`
	Name                    string    `json:"name"`
	Email                   string    `json:"email" gorm:"uniqueIndex"`
	Password                string    `json:"password,omitempty"`
	Phone                   string    `json:"phone"`
	Address                 string    `json:"address"`
	Role                    Role      `json:"role" gorm:"default:USER"`
	IsBlocked               bool      `json:"is_blocked" gorm:"default:false"`
	ProviderRejected        bool      `json:"provider_rejected" gorm:"default:false"`
	ProviderRejectionReason string    `json:"provider_rejection_reason"`
	CanReapply              bool      `json:"can_reapply" gorm:"default:true"`
	ProfileImage            string    `json:"profile_image"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
