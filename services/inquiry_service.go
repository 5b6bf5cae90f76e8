package services

import (
	"sanskruti-travels-service/config"
	"sanskruti-travels-service/models"
	"sanskruti-travels-service/storage"
)

// InterfaceInquiryService manages custom-tour requests and contact
// submissions.
type InterfaceInquiryService interface {
	GetCustomTourRequest(id int) (models.CustomTourRequest, bool)
	GetAllCustomTourRequests() []models.CustomTourRequest
	CreateCustomTourRequest(insert models.InsertCustomTourRequest) models.CustomTourRequest
	UpdateCustomTourRequestStatus(id int, status string) (models.CustomTourRequest, bool)

	GetContactSubmission(id int) (models.ContactSubmission, bool)
	GetAllContactSubmissions() []models.ContactSubmission
	CreateContactSubmission(insert models.InsertContactSubmission) models.ContactSubmission
	UpdateContactSubmissionStatus(id int, status string) (models.ContactSubmission, bool)
}

// InquiryService manages the two lead-capture inboxes: custom-tour requests
// and contact-form submissions.
type InquiryService struct {
	Store  *storage.MemStorage
	Config *config.Config
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(store *storage.MemStorage, cfg *config.Config) *InquiryService {
	return &InquiryService{
		Store:  store,
		Config: cfg,
	}
}

// GetCustomTourRequest returns the request with the given id
func (s *InquiryService) GetCustomTourRequest(id int) (models.CustomTourRequest, bool) {
	return s.Store.GetCustomTourRequest(id)
}

// GetAllCustomTourRequests returns all custom-tour requests
func (s *InquiryService) GetAllCustomTourRequests() []models.CustomTourRequest {
	return s.Store.GetAllCustomTourRequests()
}

// CreateCustomTourRequest stores a public custom-tour submission
func (s *InquiryService) CreateCustomTourRequest(insert models.InsertCustomTourRequest) models.CustomTourRequest {
	return s.Store.CreateCustomTourRequest(insert)
}

// UpdateCustomTourRequestStatus patches the status of an existing request.
// Not routed yet, same as booking status updates.
func (s *InquiryService) UpdateCustomTourRequestStatus(id int, status string) (models.CustomTourRequest, bool) {
	return s.Store.UpdateCustomTourRequestStatus(id, status)
}

// GetContactSubmission returns the submission with the given id
func (s *InquiryService) GetContactSubmission(id int) (models.ContactSubmission, bool) {
	return s.Store.GetContactSubmission(id)
}

// GetAllContactSubmissions returns all contact submissions
func (s *InquiryService) GetAllContactSubmissions() []models.ContactSubmission {
	return s.Store.GetAllContactSubmissions()
}

// CreateContactSubmission stores a public contact-form submission
func (s *InquiryService) CreateContactSubmission(insert models.InsertContactSubmission) models.ContactSubmission {
	return s.Store.CreateContactSubmission(insert)
}

// UpdateContactSubmissionStatus patches the status of an existing
// submission.
func (s *InquiryService) UpdateContactSubmissionStatus(id int, status string) (models.ContactSubmission, bool) {
	return s.Store.UpdateContactSubmissionStatus(id, status)
}
