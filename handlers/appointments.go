package handlers

import (
	"errors"
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"
	appointmentSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves appointment listing and lifecycle changes.
type AppointmentHandler struct {
	Service appointmentSvc.AppointmentService
}

func NewAppointmentHandler(svc appointmentSvc.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// ListAppointmentsHandler handles GET /api/shops/:shopId/appointments with
// optional date, status and barberId filters. Staff only.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	q := appointmentRepo.AppointmentQuery{
		Date:     c.Query("date"),
		Status:   c.Query("status"),
		BarberID: c.Query("barberId"),
	}
	appts, err := h.Service.List(shop.ID, q)
	if err != nil {
		utils.GetLogger().Error("failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// MyAppointmentsHandler handles GET /api/shops/:shopId/appointments/mine.
func (h *AppointmentHandler) MyAppointmentsHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	u := middleware.CurrentUser(c)
	appts, err := h.Service.ListForClient(shop.ID, u.ID)
	if err != nil {
		utils.GetLogger().Error("failed to list client appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentHandler handles GET /api/shops/:shopId/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	appt, err := h.Service.Get(shop.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	u := middleware.CurrentUser(c)
	if !u.IsStaffOrAdmin() && appt.ClientID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking belongs to another client"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatusHandler handles PATCH /api/shops/:shopId/appointments/:id/status.
// Completion settles any referral credit exactly once.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Service.UpdateStatus(shop.ID, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrIllegalTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("failed to update appointment status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelMyAppointmentHandler handles POST /api/shops/:shopId/appointments/:id/cancel
// for the booking's own client.
func (h *AppointmentHandler) CancelMyAppointmentHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	u := middleware.CurrentUser(c)

	err := h.Service.CancelOwn(shop.ID, c.Param("id"), u.ID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
	case errors.Is(err, appointmentSvc.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, appointmentRepo.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("failed to cancel appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
	}
}

// MarkPaidHandler handles POST /api/shops/:shopId/appointments/:id/paid.
func (h *AppointmentHandler) MarkPaidHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	if err := h.Service.MarkPaid(shop.ID, c.Param("id")); err != nil {
		utils.GetLogger().Error("failed to mark appointment paid", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}
