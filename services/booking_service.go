package services

import (
	"sanskruti-travels-service/config"
	"sanskruti-travels-service/models"
	"sanskruti-travels-service/storage"
)

// InterfaceBookingService manages package bookings.
type InterfaceBookingService interface {
	GetBooking(id int) (models.Booking, bool)
	GetAllBookings() []models.Booking
	GetBookingsByPackageID(packageID int) []models.Booking
	CreateBooking(insert models.InsertBooking) models.Booking
	UpdateBookingStatus(id int, status string) (models.Booking, bool)
}

// BookingService manages package bookings. Booking submissions are public;
// listing and status updates are admin operations.
type BookingService struct {
	Store  *storage.MemStorage
	Config *config.Config
}

// NewBookingService creates a new booking service
func NewBookingService(store *storage.MemStorage, cfg *config.Config) *BookingService {
	return &BookingService{
		Store:  store,
		Config: cfg,
	}
}

// GetBooking returns the booking with the given id
func (s *BookingService) GetBooking(id int) (models.Booking, bool) {
	return s.Store.GetBooking(id)
}

// GetAllBookings returns all bookings in insertion order
func (s *BookingService) GetAllBookings() []models.Booking {
	return s.Store.GetAllBookings()
}

// GetBookingsByPackageID returns the bookings referencing a package
func (s *BookingService) GetBookingsByPackageID(packageID int) []models.Booking {
	return s.Store.GetBookingsByPackageID(packageID)
}

// CreateBooking stores a public booking submission. The referenced package
// id is deliberately not validated against the catalog.
func (s *BookingService) CreateBooking(insert models.InsertBooking) models.Booking {
	return s.Store.CreateBooking(insert)
}

// UpdateBookingStatus patches the status of an existing booking. No route
// exposes this yet; it exists for the admin panel's next iteration.
func (s *BookingService) UpdateBookingStatus(id int, status string) (models.Booking, bool) {
	return s.Store.UpdateBookingStatus(id, status)
}
