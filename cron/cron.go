package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run daily at 8 AM to remind users about bookings scheduled for today
	_, err := c.AddFunc("0 8 * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders finds accepted bookings dated today and emails the customers
func sendBookingReminders() {
	today := time.Now().Format("2006-01-02")

	var bookings []models.Booking
	err := db.DB.
		Where("status = ? AND booking_date = ?", models.BookingAccepted, today).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	fmt.Printf("Found %d bookings for reminders\n", len(bookings))

	for _, booking := range bookings {
		var user models.User
		if err := db.DB.First(&user, "id = ?", booking.UserID).Error; err != nil {
			log.Printf("Skipping reminder for booking %s: user not found", booking.ID)
			continue
		}
		var service models.Service
		if err := db.DB.First(&service, "id = ?", booking.ServiceID).Error; err != nil {
			log.Printf("Skipping reminder for booking %s: service not found", booking.ID)
			continue
		}

		if err := sendReminderEmail(&booking, &user, &service); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s", booking.ID, user.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking, user *models.User, service *models.Service) error {
	subject := fmt.Sprintf("Reminder: Service Booking Today - %s", service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your service booking scheduled today.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Total Amount:</strong> %.2f</li>
		</ul>
		<p>If you need to cancel, please do so from your dashboard as soon as possible.</p>
		<p>Best regards,</p>
		<p>The ServiceHub Team</p>
	`, user.Name, service.Name, booking.BookingDate, booking.BookingTime,
		booking.UserAddress, booking.TotalAmount)

	return utils.SendEmail(user.Email, subject, body)
}
