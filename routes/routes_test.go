package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sanskruti-travels-service/config"
	"sanskruti-travels-service/models"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/storage"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		EnvType:              "LOCAL",
		ServerPort:           "8080",
		SessionSecret:        "test-secret",
		SessionTTLHours:      24,
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "sanskruti123",
		AllowedOrigin:        "http://localhost:3000",
		LogLevel:             "error",
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *storage.MemStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	store := storage.NewMemStorage()
	services.NewAdminService(store, cfg).EnsureDefaultAdmin()

	return SetupRouter(store, cfg, nil), store
}

// The rate limiter keys per client IP in a process-wide map, so every
// request gets its own forwarded address to stay out of other tests'
// buckets. The limiter itself is exercised in TestFormRateLimiter with a
// pinned address.
var nextTestIP int

func uniqueTestIP() string {
	nextTestIP++
	return fmt.Sprintf("10.1.%d.%d", nextTestIP/250, nextTestIP%250+1)
}

func performRequest(r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return performRequestFromIP(r, method, path, uniqueTestIP(), body, cookies...)
}

func performRequestFromIP(r *gin.Engine, method, path, ip string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", ip)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAsAdmin(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	w := performRequest(r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin",
		"password": "sanskruti123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "sanskruti_session" {
			return cookie
		}
	}
	t.Fatal("login response did not set the session cookie")
	return nil
}

func validPackagePayload() gin.H {
	return gin.H{
		"title":        gofakeit.Sentence(3),
		"description":  gofakeit.Sentence(10),
		"price":        55000,
		"location":     gofakeit.City(),
		"duration":     "6 Days / 5 Nights",
		"destinations": gofakeit.City() + ", " + gofakeit.City(),
		"imageUrl":     gofakeit.URL(),
		"type":         "national",
		"featured":     true,
		"rating":       4.4,
		"reviewCount":  12,
	}
}

func validBookingPayload(packageID int) gin.H {
	return gin.H{
		"packageId":         packageID,
		"name":              gofakeit.Name(),
		"email":             gofakeit.Email(),
		"phone":             gofakeit.Phone(),
		"travelDate":        "2026-10-15",
		"numberOfTravelers": 2,
	}
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// Unknown usernames are indistinguishable from wrong passwords
	w = performRequest(r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "nobody",
		"password": "sanskruti123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAuth_SessionLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/admin/check-auth", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	session := loginAsAdmin(t, r)

	w = performRequest(r, http.MethodGet, "/api/admin/check-auth", nil, session)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)

	w = performRequest(r, http.MethodPost, "/api/admin/logout", nil, session)
	assert.Equal(t, http.StatusOK, w.Code)

	// The old cookie no longer identifies a session
	w = performRequest(r, http.MethodGet, "/api/admin/check-auth", nil, session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_WithoutSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/admin/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestGetPackages_PublicCatalog(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/packages", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var packages []models.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	assert.Len(t, packages, 8)

	w = performRequest(r, http.MethodGet, "/api/packages/featured", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	assert.Len(t, packages, 3)

	w = performRequest(r, http.MethodGet, "/api/packages/national", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	for _, pkg := range packages {
		assert.Equal(t, models.PackageTypeNational, pkg.Type)
	}

	w = performRequest(r, http.MethodGet, "/api/packages/international", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	for _, pkg := range packages {
		assert.Equal(t, models.PackageTypeInternational, pkg.Type)
	}
}

func TestGetPackage_ByID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/packages/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var pkg models.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pkg))
	assert.Equal(t, "Kashmir Adventure", pkg.Title)

	w = performRequest(r, http.MethodGet, "/api/packages/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Package not found")

	w = performRequest(r, http.MethodGet, "/api/packages/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid package ID")
}

func TestCreatePackage_RequiresSession(t *testing.T) {
	r, store := newTestRouter(t)
	before := len(store.GetAllPackages())

	w := performRequest(r, http.MethodPost, "/api/packages", validPackagePayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The rejected request must not have touched the store
	assert.Len(t, store.GetAllPackages(), before)
}

func TestPackageAdminFlow(t *testing.T) {
	r, store := newTestRouter(t)
	session := loginAsAdmin(t, r)

	// Create
	payload := validPackagePayload()
	payload["title"] = "Test Expedition"
	w := performRequest(r, http.MethodPost, "/api/packages", payload, session)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Test Expedition", created.Title)
	assert.Equal(t, 9, created.ID)

	// Update is a full replace
	replacement := validPackagePayload()
	replacement["title"] = "Renamed Expedition"
	replacement["type"] = "international"
	w = performRequest(r, http.MethodPatch, fmt.Sprintf("/api/packages/%d", created.ID), replacement, session)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed Expedition", updated.Title)
	assert.Equal(t, models.PackageTypeInternational, updated.Type)

	// Delete
	w = performRequest(r, http.MethodDelete, fmt.Sprintf("/api/packages/%d", created.ID), nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	_, found := store.GetPackageByID(created.ID)
	assert.False(t, found)

	// Deleting again is a 404
	w = performRequest(r, http.MethodDelete, fmt.Sprintf("/api/packages/%d", created.ID), nil, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePackage_ValidationErrors(t *testing.T) {
	r, _ := newTestRouter(t)
	session := loginAsAdmin(t, r)

	payload := validPackagePayload()
	payload["price"] = 0
	delete(payload, "title")

	w := performRequest(r, http.MethodPost, "/api/packages", payload, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid package data")
	assert.Contains(t, w.Body.String(), `"errors"`)
}

func TestUpdatePackage_Absent(t *testing.T) {
	r, _ := newTestRouter(t)
	session := loginAsAdmin(t, r)

	w := performRequest(r, http.MethodPatch, "/api/packages/9999", validPackagePayload(), session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBooking_Public(t *testing.T) {
	r, store := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/bookings", validBookingPayload(1))
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Len(t, store.GetAllBookings(), 1)
}

func TestCreateBooking_OrphanPackageAccepted(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/bookings", validBookingPayload(9999))
	assert.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, 9999, booking.PackageID)
}

func TestCreateBooking_ZeroPackageIDAccepted(t *testing.T) {
	r, _ := newTestRouter(t)

	// The package reference is advisory all the way down, 0 included
	w := performRequest(r, http.MethodPost, "/api/bookings", validBookingPayload(0))
	assert.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, 0, booking.PackageID)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := validBookingPayload(1)
	payload["email"] = "not-an-email"

	w := performRequest(r, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid booking data")
}

func TestGetBookings_RequiresSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	session := loginAsAdmin(t, r)
	performRequest(r, http.MethodPost, "/api/bookings", validBookingPayload(1))

	w = performRequest(r, http.MethodGet, "/api/bookings", nil, session)
	assert.Equal(t, http.StatusOK, w.Code)

	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)
}

func TestCreateCustomTourRequest_Public(t *testing.T) {
	r, store := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/custom-tour", gin.H{
		"name":              gofakeit.Name(),
		"email":             gofakeit.Email(),
		"phone":             gofakeit.Phone(),
		"destination":       "Ladakh",
		"travelDates":       "June 2027",
		"numberOfTravelers": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var request models.CustomTourRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &request))
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Len(t, store.GetAllCustomTourRequests(), 1)
}

func TestCreateContactSubmission_Public(t *testing.T) {
	r, store := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/contact", gin.H{
		"name":    gofakeit.Name(),
		"email":   gofakeit.Email(),
		"phone":   gofakeit.Phone(),
		"subject": "Honeymoon ideas",
		"message": gofakeit.Sentence(12),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var submission models.ContactSubmission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submission))
	assert.Equal(t, models.SubmissionStatusUnread, submission.Status)
	assert.Len(t, store.GetAllContactSubmissions(), 1)
}

func TestFormRateLimiter(t *testing.T) {
	r, _ := newTestRouter(t)
	ip := uniqueTestIP()

	// The bucket holds formSubmitBurst tokens; the next request from the
	// same address is rejected.
	for i := 0; i < formSubmitBurst; i++ {
		w := performRequestFromIP(r, http.MethodPost, "/api/bookings", ip, validBookingPayload(1))
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequestFromIP(r, http.MethodPost, "/api/bookings", ip, validBookingPayload(1))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")

	// Catalog reads from the same address are untouched
	w = performRequestFromIP(r, http.MethodGet, "/api/packages", ip, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerHeaderSession(t *testing.T) {
	r, _ := newTestRouter(t)
	session := loginAsAdmin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+session.Value)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
