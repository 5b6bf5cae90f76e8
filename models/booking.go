package models

import "time"

// Booking status values
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a traveler's request to purchase a specific package.
// PackageID is advisory only: it is not validated against the catalog and
// deleting a package leaves its bookings in place.
type Booking struct {
	ID                  int       `json:"id"`
	PackageID           int       `json:"packageId"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	TravelDate          string    `json:"travelDate"`
	NumberOfTravelers   int       `json:"numberOfTravelers"`
	SpecialRequirements string    `json:"specialRequirements"`
	WhatsappConsent     bool      `json:"whatsappConsent"`
	Status              string    `json:"status"` // pending, confirmed, cancelled
	CreatedAt           time.Time `json:"createdAt"`
}

// InsertBooking carries the fields of a public booking submission.
type InsertBooking struct {
	PackageID           int    `json:"packageId"`
	Name                string `json:"name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"required"`
	TravelDate          string `json:"travelDate" binding:"required"`
	NumberOfTravelers   int    `json:"numberOfTravelers" binding:"required,gte=1"`
	SpecialRequirements string `json:"specialRequirements"`
	WhatsappConsent     bool   `json:"whatsappConsent"`
	Status              string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}
