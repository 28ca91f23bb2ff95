package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/servicehub-backend/utils"
	"gorm.io/gorm"
)

// Review is tied to a completed booking, at most one per booking.
type Review struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	UserID           string     `json:"user_id" gorm:"index"`
	ProviderID       string     `json:"provider_id" gorm:"index"`
	ServiceID        string     `json:"service_id" gorm:"index"`
	BookingID        string     `json:"booking_id" gorm:"uniqueIndex"`
	Rating           int        `json:"rating"`
	Comment          string     `json:"comment"`
	ProviderResponse string     `json:"provider_response"`
	RespondedAt      *time.Time `json:"responded_at"`
	IsVisible        bool       `json:"is_visible" gorm:"default:true"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// CanReview gates a review submission: the booking must belong to the
// caller, be COMPLETED, and not already have a review.
func CanReview(booking *Booking, userID string, hasExistingReview bool) error {
	if booking.UserID != userID {
		return fmt.Errorf("%w: booking does not belong to this user", utils.ErrForbidden)
	}
	if booking.Status != BookingCompleted {
		return fmt.Errorf("%w: can only review completed bookings", utils.ErrInvalidTransition)
	}
	if hasExistingReview {
		return fmt.Errorf("%w: booking has already been reviewed", utils.ErrConflict)
	}
	return nil
}

// AverageRating returns the one-decimal mean of a rating set, and false when
// the set is empty.
func AverageRating(ratings []int) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return utils.Round1(float64(sum) / float64(len(ratings))), true
}

// ratingLocks serializes rating recomputation per service. The recompute is
// a read-aggregate-write sequence; without this, concurrent review writes
// for the same service can lose updates.
var ratingLocks sync.Map

// RecalculateServiceRating recomputes a service's derived rating and review
// count from its visible reviews. When no reviews remain, the previously
// stored values are left untouched.
// TODO(product): decide whether a fully un-reviewed service should reset to
// a "no reviews" sentinel instead of keeping its last rating.
func RecalculateServiceRating(tx *gorm.DB, serviceID string) error {
	muIface, _ := ratingLocks.LoadOrStore(serviceID, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	var reviews []Review
	if err := tx.Where("service_id = ? AND is_visible = ?", serviceID, true).Find(&reviews).Error; err != nil {
		return err
	}

	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}

	avg, ok := AverageRating(ratings)
	if !ok {
		return nil
	}

	return tx.Model(&Service{}).Where("id = ?", serviceID).Updates(map[string]interface{}{
		"rating":       avg,
		"review_count": len(reviews),
	}).Error
}

// RecalculateProviderRating keeps the provider aggregate in step with its
// reviews, same rules as the service recompute.
func RecalculateProviderRating(tx *gorm.DB, providerID string) error {
	var reviews []Review
	if err := tx.Where("provider_id = ? AND is_visible = ?", providerID, true).Find(&reviews).Error; err != nil {
		return err
	}

	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}

	avg, ok := AverageRating(ratings)
	if !ok {
		return nil
	}

	return tx.Model(&Provider{}).Where("id = ?", providerID).Updates(map[string]interface{}{
		"rating":        avg,
		"total_reviews": len(reviews),
	}).Error
}
