package storage

import (
	"sync"
	"time"

	"sanskruti-travels-service/models"
)

// MemStorage is the sole authority for entity lifecycle and querying. All
// state lives in process memory and is lost on restart; that is accepted
// behavior, not a defect.
//
// Each entity type has its own map keyed by id, its own monotonic counter
// starting at 1, and an ordered id slice so listings preserve insertion
// order without relying on map iteration order. Ids are never reused after
// deletion. A single mutex guards the counter-increment-then-insert
// sequence so ids stay unique and strictly increasing under concurrent
// requests.
type MemStorage struct {
	mu sync.RWMutex

	admins             map[int]models.Admin
	packages           map[int]models.Package
	bookings           map[int]models.Booking
	customTourRequests map[int]models.CustomTourRequest
	contactSubmissions map[int]models.ContactSubmission
	users              map[int]models.User

	adminOrder      []int
	packageOrder    []int
	bookingOrder    []int
	requestOrder    []int
	submissionOrder []int
	userOrder       []int

	adminID      int
	packageID    int
	bookingID    int
	requestID    int
	submissionID int
	userID       int
}

// NewMemStorage creates the store and seeds the sample package catalog.
// Seeding runs exactly once, here; there is nothing to tear down.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		admins:             make(map[int]models.Admin),
		packages:           make(map[int]models.Package),
		bookings:           make(map[int]models.Booking),
		customTourRequests: make(map[int]models.CustomTourRequest),
		contactSubmissions: make(map[int]models.ContactSubmission),
		users:              make(map[int]models.User),

		adminID:      1,
		packageID:    1,
		bookingID:    1,
		requestID:    1,
		submissionID: 1,
		userID:       1,
	}

	for _, pkg := range samplePackages() {
		s.CreatePackage(pkg)
	}

	return s
}

// --- Admin methods ---

// GetAdmin returns the admin with the given id.
func (s *MemStorage) GetAdmin(id int) (models.Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[id]
	return admin, ok
}

// GetAdminByUsername returns the admin with the given username. The match
// is exact and case-sensitive.
func (s *MemStorage) GetAdminByUsername(username string) (models.Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.adminOrder {
		if admin := s.admins[id]; admin.Username == username {
			return admin, true
		}
	}
	return models.Admin{}, false
}

// GetAllAdmins returns all admins in creation order.
func (s *MemStorage) GetAllAdmins() []models.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admins := make([]models.Admin, 0, len(s.adminOrder))
	for _, id := range s.adminOrder {
		admins = append(admins, s.admins[id])
	}
	return admins
}

// CreateAdmin stores a new admin. The password is expected to be hashed
// already; the store never touches credentials.
func (s *MemStorage) CreateAdmin(insert models.InsertAdmin) models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := models.Admin{
		ID:       s.adminID,
		Username: insert.Username,
		Password: insert.Password,
	}
	s.adminID++
	s.admins[admin.ID] = admin
	s.adminOrder = append(s.adminOrder, admin.ID)
	return admin
}

// --- Package methods ---

// GetPackageByID returns the package with the given id.
func (s *MemStorage) GetPackageByID(id int) (models.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, ok := s.packages[id]
	return pkg, ok
}

// GetAllPackages returns all packages in insertion order.
func (s *MemStorage) GetAllPackages() []models.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packages := make([]models.Package, 0, len(s.packageOrder))
	for _, id := range s.packageOrder {
		packages = append(packages, s.packages[id])
	}
	return packages
}

// GetFeaturedPackages returns the packages flagged as featured, preserving
// insertion order.
func (s *MemStorage) GetFeaturedPackages() []models.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packages := make([]models.Package, 0)
	for _, id := range s.packageOrder {
		if pkg := s.packages[id]; pkg.Featured {
			packages = append(packages, pkg)
		}
	}
	return packages
}

// GetPackagesByType returns the packages of the given type ("national" or
// "international"), preserving insertion order.
func (s *MemStorage) GetPackagesByType(packageType string) []models.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packages := make([]models.Package, 0)
	for _, id := range s.packageOrder {
		if pkg := s.packages[id]; pkg.Type == packageType {
			packages = append(packages, pkg)
		}
	}
	return packages
}

// CreatePackage assigns the next package id, stamps createdAt and updatedAt,
// and stores the record.
func (s *MemStorage) CreatePackage(insert models.InsertPackage) models.Package {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	pkg := models.Package{
		ID:           s.packageID,
		Title:        insert.Title,
		Description:  insert.Description,
		Price:        insert.Price,
		Location:     insert.Location,
		Duration:     insert.Duration,
		Destinations: insert.Destinations,
		ImageURL:     insert.ImageURL,
		Type:         insert.Type,
		Featured:     insert.Featured,
		BestSeller:   insert.BestSeller,
		Rating:       insert.Rating,
		ReviewCount:  insert.ReviewCount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.packageID++
	s.packages[pkg.ID] = pkg
	s.packageOrder = append(s.packageOrder, pkg.ID)
	return pkg
}

// UpdatePackage replaces all caller-supplied fields of an existing package
// and re-stamps updatedAt. This is a full replace: the caller must supply
// the complete payload. Returns false without mutating anything when the id
// is absent.
func (s *MemStorage) UpdatePackage(id int, insert models.InsertPackage) (models.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.packages[id]
	if !ok {
		return models.Package{}, false
	}

	updated := models.Package{
		ID:           existing.ID,
		Title:        insert.Title,
		Description:  insert.Description,
		Price:        insert.Price,
		Location:     insert.Location,
		Duration:     insert.Duration,
		Destinations: insert.Destinations,
		ImageURL:     insert.ImageURL,
		Type:         insert.Type,
		Featured:     insert.Featured,
		BestSeller:   insert.BestSeller,
		Rating:       insert.Rating,
		ReviewCount:  insert.ReviewCount,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now(),
	}
	s.packages[id] = updated
	return updated, true
}

// DeletePackage removes the package and returns whether it existed. The id
// is never reassigned, and bookings referencing it are left dangling on
// purpose.
func (s *MemStorage) DeletePackage(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.packages[id]; !ok {
		return false
	}
	delete(s.packages, id)
	for i, orderedID := range s.packageOrder {
		if orderedID == id {
			s.packageOrder = append(s.packageOrder[:i], s.packageOrder[i+1:]...)
			break
		}
	}
	return true
}

// --- Booking methods ---

// GetBooking returns the booking with the given id.
func (s *MemStorage) GetBooking(id int) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	return booking, ok
}

// GetAllBookings returns all bookings in insertion order.
func (s *MemStorage) GetAllBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.Booking, 0, len(s.bookingOrder))
	for _, id := range s.bookingOrder {
		bookings = append(bookings, s.bookings[id])
	}
	return bookings
}

// GetBookingsByPackageID returns the bookings referencing the given
// package, including orphans whose package was deleted.
func (s *MemStorage) GetBookingsByPackageID(packageID int) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.Booking, 0)
	for _, id := range s.bookingOrder {
		if booking := s.bookings[id]; booking.PackageID == packageID {
			bookings = append(bookings, booking)
		}
	}
	return bookings
}

// CreateBooking stores a public booking submission. The referenced package
// id is not checked against the catalog. Status defaults to pending when
// the caller leaves it empty.
func (s *MemStorage) CreateBooking(insert models.InsertBooking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := insert.Status
	if status == "" {
		status = models.BookingStatusPending
	}

	booking := models.Booking{
		ID:                  s.bookingID,
		PackageID:           insert.PackageID,
		Name:                insert.Name,
		Email:               insert.Email,
		Phone:               insert.Phone,
		TravelDate:          insert.TravelDate,
		NumberOfTravelers:   insert.NumberOfTravelers,
		SpecialRequirements: insert.SpecialRequirements,
		WhatsappConsent:     insert.WhatsappConsent,
		Status:              status,
		CreatedAt:           time.Now(),
	}
	s.bookingID++
	s.bookings[booking.ID] = booking
	s.bookingOrder = append(s.bookingOrder, booking.ID)
	return booking
}

// UpdateBookingStatus patches only the status of an existing booking. The
// new value is accepted verbatim; transition legality is a caller concern.
func (s *MemStorage) UpdateBookingStatus(id int, status string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, false
	}
	booking.Status = status
	s.bookings[id] = booking
	return booking, true
}

// --- Custom tour request methods ---

// GetCustomTourRequest returns the request with the given id.
func (s *MemStorage) GetCustomTourRequest(id int) (models.CustomTourRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.customTourRequests[id]
	return request, ok
}

// GetAllCustomTourRequests returns all requests in insertion order.
func (s *MemStorage) GetAllCustomTourRequests() []models.CustomTourRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.CustomTourRequest, 0, len(s.requestOrder))
	for _, id := range s.requestOrder {
		requests = append(requests, s.customTourRequests[id])
	}
	return requests
}

// CreateCustomTourRequest stores a public custom-tour submission with
// status pending.
func (s *MemStorage) CreateCustomTourRequest(insert models.InsertCustomTourRequest) models.CustomTourRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := models.CustomTourRequest{
		ID:                  s.requestID,
		Name:                insert.Name,
		Email:               insert.Email,
		Phone:               insert.Phone,
		Destination:         insert.Destination,
		TravelDates:         insert.TravelDates,
		NumberOfTravelers:   insert.NumberOfTravelers,
		SpecialRequirements: insert.SpecialRequirements,
		WhatsappConsent:     insert.WhatsappConsent,
		Status:              models.RequestStatusPending,
		CreatedAt:           time.Now(),
	}
	s.requestID++
	s.customTourRequests[request.ID] = request
	s.requestOrder = append(s.requestOrder, request.ID)
	return request
}

// UpdateCustomTourRequestStatus patches only the status of an existing
// request.
func (s *MemStorage) UpdateCustomTourRequestStatus(id int, status string) (models.CustomTourRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.customTourRequests[id]
	if !ok {
		return models.CustomTourRequest{}, false
	}
	request.Status = status
	s.customTourRequests[id] = request
	return request, true
}

// --- Contact submission methods ---

// GetContactSubmission returns the submission with the given id.
func (s *MemStorage) GetContactSubmission(id int) (models.ContactSubmission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submission, ok := s.contactSubmissions[id]
	return submission, ok
}

// GetAllContactSubmissions returns all submissions in insertion order.
func (s *MemStorage) GetAllContactSubmissions() []models.ContactSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submissions := make([]models.ContactSubmission, 0, len(s.submissionOrder))
	for _, id := range s.submissionOrder {
		submissions = append(submissions, s.contactSubmissions[id])
	}
	return submissions
}

// CreateContactSubmission stores a public contact-form submission with
// status unread.
func (s *MemStorage) CreateContactSubmission(insert models.InsertContactSubmission) models.ContactSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission := models.ContactSubmission{
		ID:              s.submissionID,
		Name:            insert.Name,
		Email:           insert.Email,
		Phone:           insert.Phone,
		Subject:         insert.Subject,
		Message:         insert.Message,
		WhatsappConsent: insert.WhatsappConsent,
		Status:          models.SubmissionStatusUnread,
		CreatedAt:       time.Now(),
	}
	s.submissionID++
	s.contactSubmissions[submission.ID] = submission
	s.submissionOrder = append(s.submissionOrder, submission.ID)
	return submission
}

// UpdateContactSubmissionStatus patches only the status of an existing
// submission.
func (s *MemStorage) UpdateContactSubmissionStatus(id int, status string) (models.ContactSubmission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission, ok := s.contactSubmissions[id]
	if !ok {
		return models.ContactSubmission{}, false
	}
	submission.Status = status
	s.contactSubmissions[id] = submission
	return submission, true
}

// --- User methods (legacy from initial setup) ---

// GetUser returns the legacy user with the given id.
func (s *MemStorage) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

// GetUserByUsername returns the legacy user with the given username.
func (s *MemStorage) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if user := s.users[id]; user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// CreateUser stores a new legacy user.
func (s *MemStorage) CreateUser(insert models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.userID,
		Username: insert.Username,
		Password: insert.Password,
	}
	s.userID++
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user
}
