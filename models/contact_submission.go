package models

import "time"

// Contact submission status values
const (
	SubmissionStatusUnread  = "unread"
	SubmissionStatusRead    = "read"
	SubmissionStatusReplied = "replied"
)

// ContactSubmission represents a general inquiry message from a site visitor.
type ContactSubmission struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Subject         string    `json:"subject"`
	Message         string    `json:"message"`
	WhatsappConsent bool      `json:"whatsappConsent"`
	Status          string    `json:"status"` // unread, read, replied
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertContactSubmission carries the fields of a public contact-form
// submission. Status is always stamped to unread by the store.
type InsertContactSubmission struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Subject         string `json:"subject" binding:"required"`
	Message         string `json:"message" binding:"required"`
	WhatsappConsent bool   `json:"whatsappConsent"`
}
