package models

import "time"

// Custom tour request status values
const (
	RequestStatusPending    = "pending"
	RequestStatusProcessing = "processing"
	RequestStatusCompleted  = "completed"
)

// CustomTourRequest represents a traveler's request for a bespoke itinerary
// not tied to an existing package.
type CustomTourRequest struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Destination         string    `json:"destination"`
	TravelDates         string    `json:"travelDates"`
	NumberOfTravelers   int       `json:"numberOfTravelers"`
	SpecialRequirements string    `json:"specialRequirements"`
	WhatsappConsent     bool      `json:"whatsappConsent"`
	Status              string    `json:"status"` // pending, processing, completed
	CreatedAt           time.Time `json:"createdAt"`
}

// InsertCustomTourRequest carries the fields of a public custom-tour
// submission. Status is always stamped to pending by the store.
type InsertCustomTourRequest struct {
	Name                string `json:"name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"required"`
	Destination         string `json:"destination" binding:"required"`
	TravelDates         string `json:"travelDates" binding:"required"`
	NumberOfTravelers   int    `json:"numberOfTravelers" binding:"required,gte=1"`
	SpecialRequirements string `json:"specialRequirements"`
	WhatsappConsent     bool   `json:"whatsappConsent"`
}
