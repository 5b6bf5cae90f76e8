package services

import (
	"sanskruti-travels-service/config"
	"sanskruti-travels-service/models"
	"sanskruti-travels-service/storage"
)

// InterfacePackageService manages the travel package catalog.
type InterfacePackageService interface {
	GetPackageByID(id int) (models.Package, bool)
	GetAllPackages() []models.Package
	GetFeaturedPackages() []models.Package
	GetPackagesByType(packageType string) []models.Package
	CreatePackage(insert models.InsertPackage) models.Package
	UpdatePackage(id int, insert models.InsertPackage) (models.Package, bool)
	DeletePackage(id int) bool
}

// PackageService manages the travel package catalog on top of the store.
type PackageService struct {
	Store  *storage.MemStorage
	Config *config.Config
}

// NewPackageService creates a new package service
func NewPackageService(store *storage.MemStorage, cfg *config.Config) *PackageService {
	return &PackageService{
		Store:  store,
		Config: cfg,
	}
}

// GetPackageByID returns the package with the given id
func (s *PackageService) GetPackageByID(id int) (models.Package, bool) {
	return s.Store.GetPackageByID(id)
}

// GetAllPackages returns all packages in insertion order
func (s *PackageService) GetAllPackages() []models.Package {
	return s.Store.GetAllPackages()
}

// GetFeaturedPackages returns the packages flagged as featured
func (s *PackageService) GetFeaturedPackages() []models.Package {
	return s.Store.GetFeaturedPackages()
}

// GetPackagesByType returns the packages of the given type
func (s *PackageService) GetPackagesByType(packageType string) []models.Package {
	return s.Store.GetPackagesByType(packageType)
}

// CreatePackage stores a new package
func (s *PackageService) CreatePackage(insert models.InsertPackage) models.Package {
	return s.Store.CreatePackage(insert)
}

// UpdatePackage fully replaces an existing package's fields
func (s *PackageService) UpdatePackage(id int, insert models.InsertPackage) (models.Package, bool) {
	return s.Store.UpdatePackage(id, insert)
}

// DeletePackage removes a package. Bookings referencing it are left in
// place.
func (s *PackageService) DeletePackage(id int) bool {
	return s.Store.DeletePackage(id)
}
