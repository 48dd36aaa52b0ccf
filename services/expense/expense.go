// Package expense records shop outgoings and assembles the overview
// dashboard figures.
package expense

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"
	expenseRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/expense"

	"github.com/google/uuid"
)

// ExpenseService defines expense tracking and dashboard aggregation.
type ExpenseService interface {
	Create(shopID string, e models.Expense) (*models.Expense, error)
	Update(shopID string, e models.Expense) error
	Delete(shopID, id string) error
	List(shopID string) ([]models.Expense, error)
	Overview(shopID string) (*models.OverviewStats, error)
}

// DefaultExpenseService is the production implementation.
type DefaultExpenseService struct {
	Repo            expenseRepo.ExpenseRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

func (s *DefaultExpenseService) Create(shopID string, e models.Expense) (*models.Expense, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return nil, fmt.Errorf("an expense name is required")
	}
	if e.Amount <= 0 {
		return nil, fmt.Errorf("the amount must be positive")
	}
	e.ID = uuid.New().String()
	e.ShopID = shopID
	e.CreatedAt = time.Now()
	if err := s.Repo.Create(&e); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}
	return &e, nil
}

func (s *DefaultExpenseService) Update(shopID string, e models.Expense) error {
	if e.Amount <= 0 {
		return fmt.Errorf("the amount must be positive")
	}
	e.ShopID = shopID
	if err := s.Repo.Update(&e); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (s *DefaultExpenseService) Delete(shopID, id string) error {
	if err := s.Repo.Delete(shopID, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (s *DefaultExpenseService) List(shopID string) ([]models.Expense, error) {
	return s.Repo.GetByShop(shopID)
}

// Overview aggregates the shop's appointments and expenses into the
// dashboard snapshot. Revenue counts completed visits at their payable
// totals; confirmed visits are reported separately as pending revenue.
func (s *DefaultExpenseService) Overview(shopID string) (*models.OverviewStats, error) {
	appts, err := s.AppointmentRepo.List(shopID, appointmentRepo.AppointmentQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	totalExpenses, err := s.Repo.TotalByShop(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	stats := &models.OverviewStats{
		TotalExpenses: totalExpenses,
		ByStatus:      make(map[string]int),
		ByBarber:      make(map[string]int),
		Appointments:  len(appts),
	}
	for _, a := range appts {
		stats.ByStatus[a.Status]++
		if a.BarberID != "" {
			stats.ByBarber[a.BarberID]++
		}
		switch a.Status {
		case models.StatusCompleted:
			stats.Revenue += a.TotalPrice
			stats.RewardsApplied += a.RewardApplied
		case models.StatusConfirmed:
			stats.PendingRevenue += a.TotalPrice
		}
	}
	stats.NetIncome = stats.Revenue - stats.TotalExpenses
	return stats, nil
}
