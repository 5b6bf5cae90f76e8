package models

import "time"

// Package type values
const (
	PackageTypeNational      = "national"
	PackageTypeInternational = "international"
)

// Package represents a sellable travel itinerary offering.
type Package struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int       `json:"price"` // price in INR
	Location     string    `json:"location"`
	Duration     string    `json:"duration"`     // e.g. "7 Days / 6 Nights"
	Destinations string    `json:"destinations"` // e.g. "Delhi, Agra, Jaipur"
	ImageURL     string    `json:"imageUrl"`
	Type         string    `json:"type"` // "national" or "international"
	Featured     bool      `json:"featured"`
	BestSeller   bool      `json:"bestSeller"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// InsertPackage carries the caller-supplied fields for creating or fully
// replacing a package. Updates are full replaces, not partial patches.
type InsertPackage struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Price        int     `json:"price" binding:"required,gt=0"`
	Location     string  `json:"location" binding:"required"`
	Duration     string  `json:"duration" binding:"required"`
	Destinations string  `json:"destinations" binding:"required"`
	ImageURL     string  `json:"imageUrl" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=national international"`
	Featured     bool    `json:"featured"`
	BestSeller   bool    `json:"bestSeller"`
	Rating       float64 `json:"rating" binding:"gte=0,lte=5"`
	ReviewCount  int     `json:"reviewCount" binding:"gte=0"`
}
