package handlers

import (
	"errors"
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	shopSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/shop"
	userSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves sign-up, sign-in, sign-out and shop bootstrap.
type AuthHandler struct {
	UserService userSvc.UserService
	ShopService shopSvc.ShopService
	Catalog     SeedCatalog
}

// SeedCatalog loads a freshly bootstrapped shop's starter catalogue.
type SeedCatalog interface {
	SeedDefaults(shopID string) error
}

func NewAuthHandler(users userSvc.UserService, shops shopSvc.ShopService, catalog SeedCatalog) *AuthHandler {
	return &AuthHandler{UserService: users, ShopService: shops, Catalog: catalog}
}

// BootstrapShopHandler handles POST /api/shops: creates the shop and its
// admin account in one call.
func (h *AuthHandler) BootstrapShopHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		ShopName      string `json:"shopName" binding:"required"`
		OwnerEmail    string `json:"ownerEmail" binding:"required"`
		OwnerName     string `json:"ownerName"`
		OwnerPassword string `json:"ownerPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	shop, owner, err := h.ShopService.Bootstrap(req.ShopName, req.OwnerEmail, req.OwnerName, req.OwnerPassword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Catalog.SeedDefaults(shop.ID); err != nil {
		logger.Warn("failed to seed starter catalogue", zap.String("shopID", shop.ID), zap.Error(err))
	}

	auth, err := h.UserService.SignIn(shop.ID, owner.Email, req.OwnerPassword)
	if err != nil {
		logger.Error("failed to sign in fresh owner", zap.Error(err))
		c.JSON(http.StatusCreated, gin.H{"shop": shop})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shop": shop, "auth": auth})
}

// SignUpHandler handles POST /api/shops/:shopId/auth/signup.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req userSvc.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	auth, err := h.UserService.SignUp(shop, req)
	if err != nil {
		if errors.Is(err, userSvc.ErrCustomerLimit) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, auth)
}

// SignInHandler handles POST /api/shops/:shopId/auth/signin.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	auth, err := h.UserService.SignIn(shop.ID, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, auth)
}

// SignOutHandler handles POST /api/shops/:shopId/auth/signout.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if err := h.UserService.SignOut(u.ID); err != nil {
		utils.GetLogger().Error("failed to revoke token", zap.String("userID", u.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
