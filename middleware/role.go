package middleware

import (
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the authenticated account set by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(CtxUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// CurrentShop returns the tenant resolved by ShopMiddleware.
func CurrentShop(c *gin.Context) *models.Shop {
	if v, ok := c.Get(CtxShop); ok {
		if s, ok := v.(*models.Shop); ok {
			return s
		}
	}
	return nil
}

// RequireStaff blocks accounts that may not use the admin surface.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.IsStaffOrAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin blocks everyone but the shop admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RequirePermission blocks staff accounts that lack the given permission.
// Admin accounts always pass.
func RequirePermission(check func(models.StaffPermissions) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.Can(check) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission for this action"})
			return
		}
		c.Next()
	}
}
