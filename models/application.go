package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/servicehub-backend/utils"
	"gorm.io/gorm"
)

// ProviderApplication is a user's request to become a provider. One live
// application per user, enforced by the submission guard rather than a
// database constraint.
type ProviderApplication struct {
	ID                  string            `json:"id" gorm:"primaryKey"`
	UserID              string            `json:"user_id" gorm:"index"`
	BusinessName        string            `json:"business_name"`
	BusinessDescription string            `json:"business_description"`
	Category            string            `json:"category"`
	Experience          string            `json:"experience"`
	Phone               string            `json:"phone"`
	Address             string            `json:"address"`
	Certifications      string            `json:"certifications"`
	Portfolio           string            `json:"portfolio"`
	BusinessImage       string            `json:"business_image"`
	Status              ApplicationStatus `json:"status" gorm:"default:PENDING"`
	AdminNotes          string            `json:"admin_notes"`
	RejectionReason     string            `json:"rejection_reason"`
	ReviewedBy          string            `json:"reviewed_by"`
	ReviewedAt          *time.Time        `json:"reviewed_at"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func (a *ProviderApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	return nil
}

// CanSubmitApplication gates a new submission: providers never reapply, a
// rejected user gets exactly one more attempt (the reapply flag), and a
// pending or approved application blocks duplicates.
func CanSubmitApplication(user *User, hasLiveApplication bool) error {
	if user.Role == RoleProvider {
		return fmt.Errorf("%w: user is already a provider", utils.ErrConflict)
	}
	if user.ProviderRejected && !user.CanReapply {
		return fmt.Errorf("%w: previous application was rejected (%s)", utils.ErrForbidden, user.ProviderRejectionReason)
	}
	if hasLiveApplication {
		return fmt.Errorf("%w: an application already exists for this user", utils.ErrConflict)
	}
	return nil
}
