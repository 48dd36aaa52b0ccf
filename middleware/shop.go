package middleware

import (
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	shopRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"

	"github.com/gin-gonic/gin"
)

// ShopMiddleware resolves the tenant from the :shopId route parameter,
// rejecting suspended shops and cross-tenant access by authenticated users.
func ShopMiddleware(shops shopRepo.ShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := c.Param("shopId")
		if shopID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "A shop id is required"})
			return
		}

		shop, err := shops.GetByID(shopID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
			return
		}
		if shop.Status == models.ShopSuspended {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This shop is currently unavailable"})
			return
		}

		if u := CurrentUser(c); u != nil && u.ShopID != shop.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account does not belong to this shop"})
			return
		}

		c.Set(CtxShop, shop)
		c.Next()
	}
}
