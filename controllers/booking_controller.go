package controllers

import (
	"net/http"

	"sanskruti-travels-service/models"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceBookingController handles booking requests.
type InterfaceBookingController interface {
	CreateBooking()
	GetBookings()
}

// BookingController accepts public booking submissions and serves the
// admin booking list.
type BookingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBookingController creates a new booking controller
func NewBookingController(ctx *gin.Context, container *container.ServiceContainer) *BookingController {
	return &BookingController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleBookingFunc returns a gin handler dispatching to the booking
// controller
func HandleBookingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBookingController(ctx, container)

		switch method {
		case "createBooking":
			controller.CreateBooking()
		case "getBookings":
			controller.GetBookings()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid method",
			})
		}
	}
}

// CreateBooking stores a public booking submission. The referenced package
// id is not checked against the catalog: submissions for deleted or stale
// packages are accepted on purpose.
func (c *BookingController) CreateBooking() {
	var insert models.InsertBooking
	if err := c.Ctx.ShouldBindJSON(&insert); err != nil {
		respondValidationError(c.Ctx, "Invalid booking data", err)
		return
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking := bookingService.CreateBooking(insert)
	c.Ctx.JSON(http.StatusCreated, booking)
}

// GetBookings returns all bookings (admin only)
func (c *BookingController) GetBookings() {
	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	c.Ctx.JSON(http.StatusOK, bookingService.GetAllBookings())
}
