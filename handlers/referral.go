package handlers

import (
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/referral"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReferralHandler serves the client-facing referral program page.
type ReferralHandler struct {
	Service *referral.Service
}

func NewReferralHandler(svc *referral.Service) *ReferralHandler {
	return &ReferralHandler{Service: svc}
}

// ReferralInfoHandler handles GET /api/shops/:shopId/referrals/me: the
// client's code, balance, counters and the program's reward values.
func (h *ReferralHandler) ReferralInfoHandler(c *gin.Context) {
	u := middleware.CurrentUser(c)
	info, err := h.Service.InfoFor(u)
	if err != nil {
		utils.GetLogger().Error("failed to build referral info", zap.String("userID", u.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load referral details"})
		return
	}
	c.JSON(http.StatusOK, info)
}
