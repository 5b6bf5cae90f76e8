package controllers

import (
	"net/http"

	"sanskruti-travels-service/models"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceInquiryController handles lead-capture requests.
type InterfaceInquiryController interface {
	CreateCustomTourRequest()
	CreateContactSubmission()
}

// InquiryController accepts the public custom-tour and contact forms.
type InquiryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInquiryController creates a new inquiry controller
func NewInquiryController(ctx *gin.Context, container *container.ServiceContainer) *InquiryController {
	return &InquiryController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleInquiryFunc returns a gin handler dispatching to the inquiry
// controller
func HandleInquiryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInquiryController(ctx, container)

		switch method {
		case "createCustomTourRequest":
			controller.CreateCustomTourRequest()
		case "createContactSubmission":
			controller.CreateContactSubmission()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid method",
			})
		}
	}
}

func (c *InquiryController) inquiryService() services.InterfaceInquiryService {
	return c.Container.GetService("inquiry").(services.InterfaceInquiryService)
}

// CreateCustomTourRequest stores a public custom-tour submission
func (c *InquiryController) CreateCustomTourRequest() {
	var insert models.InsertCustomTourRequest
	if err := c.Ctx.ShouldBindJSON(&insert); err != nil {
		respondValidationError(c.Ctx, "Invalid request data", err)
		return
	}

	request := c.inquiryService().CreateCustomTourRequest(insert)
	c.Ctx.JSON(http.StatusCreated, request)
}

// CreateContactSubmission stores a public contact-form submission
func (c *InquiryController) CreateContactSubmission() {
	var insert models.InsertContactSubmission
	if err := c.Ctx.ShouldBindJSON(&insert); err != nil {
		respondValidationError(c.Ctx, "Invalid contact data", err)
		return
	}

	submission := c.inquiryService().CreateContactSubmission(insert)
	c.Ctx.JSON(http.StatusCreated, submission)
}
