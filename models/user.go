package models

// User is a legacy account type from the initial setup. The store keeps
// supporting it but no route exposes it.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser carries the fields for creating a legacy user.
type InsertUser struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
