package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "bookingSession:"

func sessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

// InitiateSession starts a booking session for a client: validates the cart,
// computes totals, the reward preview and the available slots, and caches the
// lot in redis.
func (s *DefaultBookingSessionService) InitiateSession(shop *models.Shop, user *models.User, cart map[string]int, date string) (*models.BookingSession, error) {
	catalog, err := s.CatalogRepo.GetEnabledServices(shop.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalogue: %w", err)
	}
	if verr := ValidateCart(cart, catalog); verr != nil {
		return nil, verr
	}
	if date == "" {
		return nil, &ValidationError{Fields: map[string]string{"date": "A date is required."}}
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		ShopID:    shop.ID,
		UserID:    user.ID,
		Cart:      cart,
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := s.recompute(session, user, catalog); err != nil {
		return nil, err
	}
	if err := s.store(session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession replaces the cart and/or date of an existing session and
// recomputes everything derived.
func (s *DefaultBookingSessionService) UpdateSession(shopID, sessionID string, cart map[string]int, date string) (*models.BookingSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.ShopID != shopID {
		return nil, ErrSessionNotFound
	}

	if cart != nil {
		session.Cart = cart
	}
	if date != "" {
		session.Date = date
	}

	catalog, err := s.CatalogRepo.GetEnabledServices(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalogue: %w", err)
	}
	if verr := ValidateCart(session.Cart, catalog); verr != nil {
		return nil, verr
	}

	user, err := s.UserRepo.GetByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if err := s.recompute(session, user, catalog); err != nil {
		return nil, err
	}
	if err := s.store(session); err != nil {
		return nil, err
	}
	return session, nil
}

// recompute derives totals, reward preview and availability from the cart
// and date. Staff and admin accounts never receive reward discounts.
func (s *DefaultBookingSessionService) recompute(session *models.BookingSession, user *models.User, catalog []models.Service) error {
	session.TotalPrice, session.TotalDuration = CartTotals(session.Cart, catalog)

	balance := 0.0
	if user != nil && !user.IsStaffOrAdmin() {
		balance = user.RewardBalance
	}
	session.RewardDiscount, session.PayableTotal = ApplyReward(balance, session.TotalPrice)

	slots, err := s.availableSlots(session.ShopID, session.Date, session.TotalDuration)
	if err != nil {
		return err
	}
	session.AvailableSlots = slots
	return nil
}

func (s *DefaultBookingSessionService) availableSlots(shopID, date string, totalDuration int) ([]string, error) {
	settings, err := s.ShopRepo.GetSettings(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop settings: %w", err)
	}
	booked, err := s.AppointmentRepo.GetBookedForDate(shopID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	candidates := GenerateTimeSlots(settings.OpeningTime, settings.ClosingTime)
	return FilterAvailableSlots(candidates, totalDuration, date, booked, settings.ClosingTime), nil
}

// GetAvailableSlots computes availability for a date without a session; with
// an empty cart the full candidate list is returned.
func (s *DefaultBookingSessionService) GetAvailableSlots(shopID, date string, cart map[string]int) ([]string, error) {
	totalDuration := 0
	if len(cart) > 0 {
		catalog, err := s.CatalogRepo.GetEnabledServices(shopID)
		if err != nil {
			return nil, fmt.Errorf("failed to load service catalogue: %w", err)
		}
		_, totalDuration = CartTotals(cart, catalog)
	}
	return s.availableSlots(shopID, date, totalDuration)
}

// ConfirmBooking validates the confirmation payload, re-checks the chosen
// slot against the live schedule, and writes the appointment together with
// the reward debit in one transaction. The session is only discarded after a
// successful write, so a failed submission can be retried.
func (s *DefaultBookingSessionService) ConfirmBooking(shop *models.Shop, actor *models.User, in models.BookingInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	session, err := s.load(in.SessionID)
	if err != nil {
		return nil, err
	}
	if session.ShopID != shop.ID {
		return nil, ErrSessionNotFound
	}

	staffBooking := actor.IsStaffOrAdmin()
	if verr := ValidateConfirmation(in, staffBooking); verr != nil {
		return nil, verr
	}

	if shop.Plan == models.PlanFree && config.AppConfig.FreePlanMaxBookings > 0 &&
		shop.BookingCount >= config.AppConfig.FreePlanMaxBookings {
		return nil, ErrPlanLimit
	}

	catalog, err := s.CatalogRepo.GetEnabledServices(shop.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalogue: %w", err)
	}
	if verr := ValidateCart(session.Cart, catalog); verr != nil {
		return nil, verr
	}

	// Resolve who the booking is for.
	clientID, clientName, bookingType, err := s.resolveClient(actor, in)
	if err != nil {
		return nil, err
	}

	// Snapshot the selected services at their effective prices.
	var services []models.AppointmentService
	for _, svc := range catalog {
		qty, ok := session.Cart[svc.ID]
		if !ok || qty <= 0 {
			continue
		}
		services = append(services, models.AppointmentService{
			ID:       svc.ID,
			Name:     svc.Name,
			Price:    svc.EffectivePrice(),
			Duration: svc.Duration,
			Quantity: qty,
		})
	}

	totalPrice, totalDuration := CartTotals(session.Cart, catalog)

	// Reward discount applies to the booking client's own balance only.
	balance := 0.0
	if !staffBooking {
		balance = actor.RewardBalance
	}
	discount, payable := ApplyReward(balance, totalPrice)

	// Re-check the chosen slot against the live schedule before writing.
	slots, err := s.availableSlots(shop.ID, session.Date, totalDuration)
	if err != nil {
		return nil, err
	}
	if !containsSlot(slots, in.Time) {
		return nil, ErrSlotTaken
	}

	status := models.StatusPending
	bookedBy := ""
	if staffBooking {
		status = models.StatusConfirmed
		bookedBy = actor.Name
		if bookedBy == "" {
			bookedBy = actor.Email
		}
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		ShopID:        shop.ID,
		ClientID:      clientID,
		ClientName:    clientName,
		Services:      services,
		OriginalPrice: totalPrice,
		RewardApplied: discount,
		TotalPrice:    payable,
		TotalDuration: totalDuration,
		Date:          session.Date,
		Time:          in.Time,
		BarberID:      normalizeBarber(in.BarberID),
		Notes:         in.Notes,
		Status:        status,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: models.PaymentUnpaid,
		BookedBy:      bookedBy,
		BookingType:   bookingType,
	}

	if err := s.AppointmentRepo.CreateWithRewardDebit(appt); err != nil {
		logger.Error("booking write failed",
			zap.String("sessionID", session.SessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.ShopRepo.IncrementBookingCount(shop.ID, 1); err != nil {
		logger.Warn("failed to bump booking count", zap.String("shopID", shop.ID), zap.Error(err))
	}

	// Reminder scheduling is best-effort; a queue outage never fails a booking.
	if s.Reminders != nil && appt.Status == models.StatusConfirmed {
		if err := s.Reminders.Schedule(appt); err != nil {
			logger.Warn("failed to schedule reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	if err := s.CancelSession(session.SessionID); err != nil {
		logger.Warn("failed to drop booking session", zap.String("sessionID", session.SessionID), zap.Error(err))
	}
	return appt, nil
}

func (s *DefaultBookingSessionService) resolveClient(actor *models.User, in models.BookingInput) (clientID, clientName, bookingType string, err error) {
	if !actor.IsStaffOrAdmin() {
		name := actor.Name
		if name == "" {
			name = actor.Email
		}
		return actor.ID, name, models.BookingOnline, nil
	}

	if in.CustomerType == CustomerWalkIn {
		return models.WalkInClientID, strings.TrimSpace(in.WalkInName), models.BookingWalkIn, nil
	}

	customer, err := s.UserRepo.GetByID(in.CustomerID)
	if err != nil {
		return "", "", "", &ValidationError{Fields: map[string]string{"customerId": "Selected customer not found."}}
	}
	name := customer.Name
	if name == "" {
		name = customer.Email
	}
	return customer.ID, name, models.BookingOnline, nil
}

func normalizeBarber(barberID string) string {
	if barberID == "any" {
		return ""
	}
	return barberID
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// CancelSession discards a cached session.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := utils.GetCacheClient().Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) store(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := utils.GetCacheClient().Set(ctx, sessionKeyPrefix+session.SessionID, data, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) load(sessionID string) (*models.BookingSession, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	ctx := context.Background()
	data, err := utils.GetCacheClient().Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
