package handlers

import (
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	userSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile and customer management endpoints.
type UserHandler struct {
	Service userSvc.UserService
}

func NewUserHandler(svc userSvc.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetProfileHandler handles GET /api/shops/:shopId/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// UpdateProfileHandler handles PUT /api/shops/:shopId/me.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.Service.UpdateProfile(u.ID, req.Name, req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListCustomersHandler handles GET /api/shops/:shopId/customers. Staff with
// the customer management permission only.
func (h *UserHandler) ListCustomersHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	clients, err := h.Service.ListClients(shop.ID)
	if err != nil {
		utils.GetLogger().Error("failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// ListTeamHandler handles GET /api/shops/:shopId/team. Admin only.
func (h *UserHandler) ListTeamHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	users, err := h.Service.ListUsers(shop.ID)
	if err != nil {
		utils.GetLogger().Error("failed to list team", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load accounts"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetRoleHandler handles PUT /api/shops/:shopId/users/:id/role. Admin only.
func (h *UserHandler) SetRoleHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Role        string                   `json:"role" binding:"required"`
		Permissions *models.StaffPermissions `json:"permissions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetRole(shop.ID, c.Param("id"), req.Role, req.Permissions); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

// SetEnabledHandler handles PUT /api/shops/:shopId/users/:id/enabled. Admin only.
func (h *UserHandler) SetEnabledHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetEnabled(shop.ID, c.Param("id"), *req.Enabled); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account updated"})
}

// DeleteUserHandler handles DELETE /api/shops/:shopId/users/:id. Admin only.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	if err := h.Service.DeleteUser(shop.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
