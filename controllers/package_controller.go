package controllers

import (
	"net/http"
	"strconv"

	"sanskruti-travels-service/models"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfacePackageController handles package catalog requests.
type InterfacePackageController interface {
	GetPackages()
	GetFeaturedPackages()
	GetNationalPackages()
	GetInternationalPackages()
	GetPackage()
	CreatePackage()
	UpdatePackage()
	DeletePackage()
}

// PackageController serves the public catalog and the admin CRUD surface.
type PackageController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPackageController creates a new package controller
func NewPackageController(ctx *gin.Context, container *container.ServiceContainer) *PackageController {
	return &PackageController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePackageFunc returns a gin handler dispatching to the package
// controller
func HandlePackageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPackageController(ctx, container)

		switch method {
		case "getPackages":
			controller.GetPackages()
		case "getFeaturedPackages":
			controller.GetFeaturedPackages()
		case "getNationalPackages":
			controller.GetNationalPackages()
		case "getInternationalPackages":
			controller.GetInternationalPackages()
		case "getPackage":
			controller.GetPackage()
		case "createPackage":
			controller.CreatePackage()
		case "updatePackage":
			controller.UpdatePackage()
		case "deletePackage":
			controller.DeletePackage()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid method",
			})
		}
	}
}

func (c *PackageController) packageService() services.InterfacePackageService {
	return c.Container.GetService("package").(services.InterfacePackageService)
}

// packageIDParam parses the :id path parameter
func (c *PackageController) packageIDParam() (int, bool) {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid package ID",
		})
		return 0, false
	}
	return id, true
}

// GetPackages returns the whole catalog
func (c *PackageController) GetPackages() {
	c.Ctx.JSON(http.StatusOK, c.packageService().GetAllPackages())
}

// GetFeaturedPackages returns the featured packages
func (c *PackageController) GetFeaturedPackages() {
	c.Ctx.JSON(http.StatusOK, c.packageService().GetFeaturedPackages())
}

// GetNationalPackages returns the national packages
func (c *PackageController) GetNationalPackages() {
	c.Ctx.JSON(http.StatusOK, c.packageService().GetPackagesByType(models.PackageTypeNational))
}

// GetInternationalPackages returns the international packages
func (c *PackageController) GetInternationalPackages() {
	c.Ctx.JSON(http.StatusOK, c.packageService().GetPackagesByType(models.PackageTypeInternational))
}

// GetPackage returns one package by id
func (c *PackageController) GetPackage() {
	id, ok := c.packageIDParam()
	if !ok {
		return
	}

	pkg, found := c.packageService().GetPackageByID(id)
	if !found {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"message": "Package not found",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, pkg)
}

// CreatePackage stores a new package (admin only)
func (c *PackageController) CreatePackage() {
	var insert models.InsertPackage
	if err := c.Ctx.ShouldBindJSON(&insert); err != nil {
		respondValidationError(c.Ctx, "Invalid package data", err)
		return
	}

	pkg := c.packageService().CreatePackage(insert)
	c.Ctx.JSON(http.StatusCreated, pkg)
}

// UpdatePackage fully replaces an existing package (admin only). The
// request must carry the complete payload; this is not a partial patch.
func (c *PackageController) UpdatePackage() {
	id, ok := c.packageIDParam()
	if !ok {
		return
	}

	var insert models.InsertPackage
	if err := c.Ctx.ShouldBindJSON(&insert); err != nil {
		respondValidationError(c.Ctx, "Invalid package data", err)
		return
	}

	pkg, found := c.packageService().UpdatePackage(id, insert)
	if !found {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"message": "Package not found",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, pkg)
}

// DeletePackage removes a package (admin only)
func (c *PackageController) DeletePackage() {
	id, ok := c.packageIDParam()
	if !ok {
		return
	}

	if !c.packageService().DeletePackage(id) {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"message": "Package not found",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
