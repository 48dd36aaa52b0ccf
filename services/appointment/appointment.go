// Package appointment manages the booking lifecycle after creation: listing,
// status transitions, payment marking and the completion path that settles
// referral credits.
package appointment

import (
	"fmt"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/referral"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"

	"go.uber.org/zap"
)

// ErrNotOwner is returned when a client acts on someone else's booking.
var ErrNotOwner = fmt.Errorf("this booking belongs to another client")

// AppointmentService defines lifecycle operations on booked visits.
type AppointmentService interface {
	Get(shopID, id string) (*models.Appointment, error)
	List(shopID string, q appointmentRepo.AppointmentQuery) ([]models.Appointment, error)
	ListForClient(shopID, clientID string) ([]models.Appointment, error)
	UpdateStatus(shopID, id, next string) (*models.Appointment, error)
	CancelOwn(shopID, id, clientID string) error
	MarkPaid(shopID, id string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	Referrals *referral.Service
}

func (s *DefaultAppointmentService) Get(shopID, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(shopID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) List(shopID string, q appointmentRepo.AppointmentQuery) ([]models.Appointment, error) {
	return s.Repo.List(shopID, q)
}

func (s *DefaultAppointmentService) ListForClient(shopID, clientID string) ([]models.Appointment, error) {
	return s.Repo.List(shopID, appointmentRepo.AppointmentQuery{ClientID: clientID})
}

// UpdateStatus moves a booking one step along its lifecycle. Completion runs
// through the transactional path so referral credits settle exactly once.
func (s *DefaultAppointmentService) UpdateStatus(shopID, id, next string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(shopID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if !appt.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s to %s", appointmentRepo.ErrIllegalTransition, appt.Status, next)
	}

	if next == models.StatusCompleted {
		if err := s.complete(appt); err != nil {
			return nil, err
		}
	} else {
		if err := s.Repo.UpdateStatus(shopID, id, appt.Status, next); err != nil {
			return nil, fmt.Errorf("failed to update appointment status: %w", err)
		}
	}

	appt.Status = next
	return appt, nil
}

func (s *DefaultAppointmentService) complete(appt *models.Appointment) error {
	credit, err := s.Referrals.CreditFor(appt)
	if err != nil {
		return err
	}
	if err := s.Repo.CompleteWithReferralCredit(appt.ShopID, appt.ID, credit); err != nil {
		return fmt.Errorf("failed to complete appointment: %w", err)
	}
	if credit != nil {
		utils.GetLogger().Info("referral credit settled",
			zap.String("appointmentID", appt.ID),
			zap.String("referrerID", credit.ReferrerID),
			zap.Float64("referrerAmount", credit.ReferrerAmount),
			zap.Float64("referredAmount", credit.ReferredAmount))
	}
	return nil
}

// CancelOwn lets a client cancel their own pending or confirmed booking.
func (s *DefaultAppointmentService) CancelOwn(shopID, id, clientID string) error {
	appt, err := s.Repo.GetByID(shopID, id)
	if err != nil {
		return fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt.ClientID != clientID {
		return ErrNotOwner
	}
	if !appt.CanTransition(models.StatusCancelled) {
		return fmt.Errorf("%w: %s to %s", appointmentRepo.ErrIllegalTransition, appt.Status, models.StatusCancelled)
	}
	if err := s.Repo.UpdateStatus(shopID, id, appt.Status, models.StatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return nil
}

// MarkPaid records manual payment confirmation.
func (s *DefaultAppointmentService) MarkPaid(shopID, id string) error {
	if err := s.Repo.SetPaymentStatus(shopID, id, models.PaymentPaid); err != nil {
		return fmt.Errorf("failed to mark appointment paid: %w", err)
	}
	return nil
}
