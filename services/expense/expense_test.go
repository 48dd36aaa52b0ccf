package expense

import (
	"fmt"
	"testing"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpenseRepo struct {
	expenses []models.Expense
}

func (f *fakeExpenseRepo) Create(e *models.Expense) error {
	f.expenses = append(f.expenses, *e)
	return nil
}

func (f *fakeExpenseRepo) Update(e *models.Expense) error { return nil }

func (f *fakeExpenseRepo) Delete(shopID, id string) error { return nil }

func (f *fakeExpenseRepo) GetByShop(shopID string) ([]models.Expense, error) {
	return f.expenses, nil
}

func (f *fakeExpenseRepo) TotalByShop(shopID string) (float64, error) {
	var total float64
	for _, e := range f.expenses {
		total += e.Amount
	}
	return total, nil
}

type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(shopID, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (f *fakeAppointmentRepo) List(shopID string, q appointmentRepo.AppointmentQuery) ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeAppointmentRepo) GetBookedForDate(shopID, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(shopID, id, from, to string) error { return nil }

func (f *fakeAppointmentRepo) SetPaymentStatus(shopID, id, paymentStatus string) error { return nil }

func (f *fakeAppointmentRepo) CreateWithRewardDebit(appt *models.Appointment) error { return nil }

func (f *fakeAppointmentRepo) CompleteWithReferralCredit(shopID, id string, credit *appointmentRepo.ReferralCredit) error {
	return nil
}

func TestOverview(t *testing.T) {
	svc := &DefaultExpenseService{
		Repo: &fakeExpenseRepo{expenses: []models.Expense{
			{ID: "e1", Name: "Rent", Amount: 100},
			{ID: "e2", Name: "Supplies", Amount: 50},
		}},
		AppointmentRepo: &fakeAppointmentRepo{appts: []models.Appointment{
			{ID: "a1", Status: models.StatusCompleted, TotalPrice: 200, RewardApplied: 20, BarberID: "b1"},
			{ID: "a2", Status: models.StatusCompleted, TotalPrice: 100, BarberID: "b1"},
			{ID: "a3", Status: models.StatusConfirmed, TotalPrice: 80, BarberID: "b2"},
			{ID: "a4", Status: models.StatusCancelled, TotalPrice: 60},
			{ID: "a5", Status: models.StatusNoShow, TotalPrice: 40},
		}},
	}

	stats, err := svc.Overview("shop-1")
	require.NoError(t, err)

	assert.Equal(t, 300.0, stats.Revenue)
	assert.Equal(t, 80.0, stats.PendingRevenue)
	assert.Equal(t, 150.0, stats.TotalExpenses)
	assert.Equal(t, 150.0, stats.NetIncome)
	assert.Equal(t, 20.0, stats.RewardsApplied)
	assert.Equal(t, 5, stats.Appointments)
	assert.Equal(t, 2, stats.ByStatus[models.StatusCompleted])
	assert.Equal(t, 1, stats.ByStatus[models.StatusCancelled])
	assert.Equal(t, 2, stats.ByBarber["b1"])
	assert.Equal(t, 1, stats.ByBarber["b2"])
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := &DefaultExpenseService{Repo: &fakeExpenseRepo{}}

	_, err := svc.Create("shop-1", models.Expense{Name: "", Amount: 10})
	assert.Error(t, err)

	_, err = svc.Create("shop-1", models.Expense{Name: "Rent", Amount: 0})
	assert.Error(t, err)

	e, err := svc.Create("shop-1", models.Expense{Name: "Rent", Amount: 100})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "shop-1", e.ShopID)
}
