package handlers

import (
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	catalogSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service catalogue and barber roster.
type CatalogHandler struct {
	Service catalogSvc.CatalogService
}

func NewCatalogHandler(svc catalogSvc.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListServicesHandler handles GET /api/shops/:shopId/services. Clients see
// only enabled entries; staff see everything with ?all=true.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	u := middleware.CurrentUser(c)

	enabledOnly := true
	if u != nil && u.IsStaffOrAdmin() && c.Query("all") == "true" {
		enabledOnly = false
	}
	services, err := h.Service.ListServices(shop.ID, enabledOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// SeedServicesHandler handles POST /api/shops/:shopId/services/seed: loads
// the starter catalogue into a shop with no services yet.
func (h *CatalogHandler) SeedServicesHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	if err := h.Service.SeedDefaults(shop.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed the catalogue"})
		return
	}
	services, err := h.Service.ListServices(shop.ID, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler handles POST /api/shops/:shopId/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc, err := h.Service.CreateService(shop.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/shops/:shopId/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	svc, err := h.Service.UpdateService(shop.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/shops/:shopId/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	if err := h.Service.DeleteService(shop.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ToggleServiceHandler handles PATCH /api/shops/:shopId/services/:id/enabled.
func (h *CatalogHandler) ToggleServiceHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetServiceEnabled(shop.ID, c.Param("id"), *req.Enabled); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

// ListBarbersHandler handles GET /api/shops/:shopId/barbers.
func (h *CatalogHandler) ListBarbersHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	barbers, err := h.Service.ListBarbers(shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load barbers"})
		return
	}
	c.JSON(http.StatusOK, barbers)
}

// CreateBarberHandler handles POST /api/shops/:shopId/barbers.
func (h *CatalogHandler) CreateBarberHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.Barber
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	barber, err := h.Service.CreateBarber(shop.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, barber)
}

// UpdateBarberHandler handles PUT /api/shops/:shopId/barbers/:id.
func (h *CatalogHandler) UpdateBarberHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.Barber
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	if err := h.Service.UpdateBarber(shop.ID, req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Barber updated"})
}

// DeleteBarberHandler handles DELETE /api/shops/:shopId/barbers/:id.
func (h *CatalogHandler) DeleteBarberHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	if err := h.Service.DeleteBarber(shop.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Barber deleted"})
}
