package models

// Admin represents a privileged account permitted to manage the package
// catalog and view bookings.
type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // salt:hash string, never exposed in JSON
}

// InsertAdmin carries the fields for creating an admin account.
type InsertAdmin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
