package handlers

import (
	"errors"
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/booking"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking session flow and availability queries.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// respondBookingError maps service failures onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking session not found or expired"})
	case errors.Is(err, booking.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "That time slot has just been taken, please pick another"})
	case errors.Is(err, booking.ErrPlanLimit):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "This shop has reached its plan's booking limit"})
	default:
		utils.GetLogger().Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed, please try again"})
	}
}

// InitiateSessionHandler handles POST /api/shops/:shopId/bookings/session.
func (h *BookingHandler) InitiateSessionHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	user := middleware.CurrentUser(c)

	var req struct {
		Cart map[string]int `json:"cart" binding:"required"`
		Date string         `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Service.InitiateSession(shop, user, req.Cart, req.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateSessionHandler handles PUT /api/shops/:shopId/bookings/session/:sessionId.
func (h *BookingHandler) UpdateSessionHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)

	var req struct {
		Cart map[string]int `json:"cart"`
		Date string         `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Service.UpdateSession(shop.ID, c.Param("sessionId"), req.Cart, req.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBookingHandler handles POST /api/shops/:shopId/bookings/session/:sessionId/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	actor := middleware.CurrentUser(c)

	var req models.BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.SessionID = c.Param("sessionId")

	appt, err := h.Service.ConfirmBooking(shop, actor, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelSessionHandler handles DELETE /api/shops/:shopId/bookings/session/:sessionId.
func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionId")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled"})
}

// AvailableSlotsHandler handles GET /api/shops/:shopId/bookings/slots?date=...
// The optional cart narrows slots to those that can fit the selection.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A date query parameter is required"})
		return
	}

	var cart map[string]int
	if c.Request.ContentLength > 0 {
		var req struct {
			Cart map[string]int `json:"cart"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			cart = req.Cart
		}
	}

	slots, err := h.Service.GetAvailableSlots(shop.ID, date, cart)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			respondBookingError(c, err)
			return
		}
		// Availability is a read-only preview; a store failure here is
		// retriable, not a booking failure.
		utils.GetLogger().Error("availability lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load availability, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
