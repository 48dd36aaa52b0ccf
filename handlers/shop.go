package handlers

import (
	"errors"
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	shopSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/shop"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShopHandler serves tenant settings, the admin PIN gate, payment methods
// and currency conversion.
type ShopHandler struct {
	Service shopSvc.ShopService
}

func NewShopHandler(svc shopSvc.ShopService) *ShopHandler {
	return &ShopHandler{Service: svc}
}

// GetShopHandler handles GET /api/shops/:shopId.
func (h *ShopHandler) GetShopHandler(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentShop(c))
}

// UpdateShopHandler handles PUT /api/shops/:shopId. Admin only.
func (h *ShopHandler) UpdateShopHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Name         string `json:"name"`
		SoundEnabled *bool  `json:"soundEnabled"`
		ThemeColor   string `json:"themeColor"`
		LogoURL      string `json:"logoUrl"`
		Address      string `json:"address"`
		City         string `json:"city"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Name != "" {
		shop.Name = req.Name
	}
	if req.SoundEnabled != nil {
		shop.SoundEnabled = *req.SoundEnabled
	}
	if req.ThemeColor != "" {
		shop.ThemeColor = req.ThemeColor
	}
	if req.LogoURL != "" {
		shop.LogoURL = req.LogoURL
	}
	if req.Address != "" {
		shop.Address = req.Address
	}
	if req.City != "" {
		shop.City = req.City
	}

	if err := h.Service.UpdateShop(shop); err != nil {
		utils.GetLogger().Error("failed to update shop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop"})
		return
	}
	c.JSON(http.StatusOK, shop)
}

// GetSettingsHandler handles GET /api/shops/:shopId/settings.
func (h *ShopHandler) GetSettingsHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	settings, err := h.Service.GetSettings(shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler handles PUT /api/shops/:shopId/settings. Admin only.
func (h *ShopHandler) UpdateSettingsHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.ShopSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	settings, err := h.Service.UpdateSettings(shop.ID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SetPinHandler handles PUT /api/shops/:shopId/pin. Admin only.
func (h *ShopHandler) SetPinHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetPin(shop.ID, req.Pin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN updated"})
}

// VerifyPinHandler handles POST /api/shops/:shopId/pin/verify.
func (h *ShopHandler) VerifyPinHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err := h.Service.VerifyPin(shop.ID, req.Pin)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"verified": true})
	case errors.Is(err, shopSvc.ErrPinLocked):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, shopSvc.ErrPinNotSet):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	}
}

// ListPaymentMethodsHandler handles GET /api/shops/:shopId/payment-methods.
func (h *ShopHandler) ListPaymentMethodsHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	methods, err := h.Service.ListPaymentMethods(shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment methods"})
		return
	}
	c.JSON(http.StatusOK, methods)
}

// AddPaymentMethodHandler handles POST /api/shops/:shopId/payment-methods.
func (h *ShopHandler) AddPaymentMethodHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.PaymentMethod
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	pm, err := h.Service.AddPaymentMethod(shop.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pm)
}

// UpdatePaymentMethodHandler handles PUT /api/shops/:shopId/payment-methods/:id.
func (h *ShopHandler) UpdatePaymentMethodHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.PaymentMethod
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	if err := h.Service.UpdatePaymentMethod(shop.ID, req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method updated"})
}

// DeletePaymentMethodHandler handles DELETE /api/shops/:shopId/payment-methods/:id.
func (h *ShopHandler) DeletePaymentMethodHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	if err := h.Service.RemovePaymentMethod(shop.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method removed"})
}

// ConvertPriceHandler handles GET /api/shops/:shopId/currency/convert?amount=..&to=..
func (h *ShopHandler) ConvertPriceHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Amount float64 `form:"amount" binding:"required"`
		To     string  `form:"to" binding:"required"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	converted, err := h.Service.ConvertPrice(shop.ID, req.Amount, req.To)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": req.Amount, "currency": req.To, "converted": converted})
}
