package services

import (
	"errors"

	"sanskruti-travels-service/config"
	"sanskruti-travels-service/models"
	"sanskruti-travels-service/storage"
	"sanskruti-travels-service/utils"

	"github.com/sirupsen/logrus"
)

// InterfaceAdminService manages admin accounts.
type InterfaceAdminService interface {
	EnsureDefaultAdmin()
	CreateAdmin(username, password string) (models.Admin, error)
	GetAllAdmins() []models.Admin
	GetAdminByID(id int) (models.Admin, bool)
}

// AdminService manages admin accounts. There is no route for creating
// admins; the only code path that does so is the default-admin bootstrap.
type AdminService struct {
	Store  *storage.MemStorage
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(store *storage.MemStorage, cfg *config.Config) *AdminService {
	return &AdminService{
		Store:  store,
		Config: cfg,
	}
}

// EnsureDefaultAdmin creates the default admin account when none exists.
// Runs once at startup; a store that already has any admin is left alone.
func (s *AdminService) EnsureDefaultAdmin() {
	if len(s.Store.GetAllAdmins()) > 0 {
		return
	}

	if _, err := s.CreateAdmin(s.Config.DefaultAdminUsername, s.Config.DefaultAdminPassword); err != nil {
		logrus.Errorf("failed to create default admin: %v", err)
		return
	}
	logrus.Infof("default admin account created (username: %s)", s.Config.DefaultAdminUsername)
}

// CreateAdmin hashes the password and stores a new admin. Usernames must be
// unique (case-sensitive).
func (s *AdminService) CreateAdmin(username, password string) (models.Admin, error) {
	if _, exists := s.Store.GetAdminByUsername(username); exists {
		return models.Admin{}, errors.New("username already exists")
	}

	return s.Store.CreateAdmin(models.InsertAdmin{
		Username: username,
		Password: utils.HashPassword(password),
	}), nil
}

// GetAllAdmins returns all admin accounts
func (s *AdminService) GetAllAdmins() []models.Admin {
	return s.Store.GetAllAdmins()
}

// GetAdminByID returns the admin with the given id
func (s *AdminService) GetAdminByID(id int) (models.Admin, bool) {
	return s.Store.GetAdmin(id)
}
