package appointment

import (
	"fmt"
	"testing"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/referral"

	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeApptRepo struct {
	appts          map[string]*models.Appointment
	settledCredit  *appointmentRepo.ReferralCredit
	completedCalls int
}

func (f *fakeApptRepo) GetByID(shopID, id string) (*models.Appointment, error) {
	if a, ok := f.appts[id]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (f *fakeApptRepo) List(shopID string, q appointmentRepo.AppointmentQuery) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeApptRepo) GetBookedForDate(shopID, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeApptRepo) UpdateStatus(shopID, id, from, to string) error {
	a, ok := f.appts[id]
	if !ok || a.Status != from {
		return appointmentRepo.ErrIllegalTransition
	}
	a.Status = to
	return nil
}

func (f *fakeApptRepo) SetPaymentStatus(shopID, id, paymentStatus string) error {
	f.appts[id].PaymentStatus = paymentStatus
	return nil
}

func (f *fakeApptRepo) CreateWithRewardDebit(appt *models.Appointment) error {
	f.appts[appt.ID] = appt
	return nil
}

func (f *fakeApptRepo) CompleteWithReferralCredit(shopID, id string, credit *appointmentRepo.ReferralCredit) error {
	f.appts[id].Status = models.StatusCompleted
	f.settledCredit = credit
	f.completedCalls++
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }
func (f *fakeUserRepo) Update(u *models.User) error { return nil }
func (f *fakeUserRepo) Delete(id string) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s not found", id)
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *fakeUserRepo) GetByShop(shopID string) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetClientsByShop(shopID string) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByReferralCode(shopID, code string) (*models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) SetTokenHash(id, tokenHash string) error { return nil }
func (f *fakeUserRepo) SetRole(id, role string, permissions *models.StaffPermissions) error {
	return nil
}
func (f *fakeUserRepo) SetEnabled(id string, enabled bool) error { return nil }

type fakeShopRepo struct {
	settings *models.ShopSettings
}

func (f *fakeShopRepo) Create(shop *models.Shop) error { return nil }
func (f *fakeShopRepo) Update(shop *models.Shop) error { return nil }
func (f *fakeShopRepo) GetByID(id string) (*models.Shop, error) { return nil, nil }
func (f *fakeShopRepo) GetByOwner(ownerID string) (*models.Shop, error) { return nil, nil }
func (f *fakeShopRepo) IncrementCustomerCount(id string, delta int) error { return nil }
func (f *fakeShopRepo) IncrementBookingCount(id string, delta int) error { return nil }
func (f *fakeShopRepo) SetPinHash(id, pinHash string) error { return nil }
func (f *fakeShopRepo) GetSettings(shopID string) (*models.ShopSettings, error) {
	return f.settings, nil
}
func (f *fakeShopRepo) UpsertSettings(settings *models.ShopSettings) error { return nil }
func (f *fakeShopRepo) ListPaymentMethods(shopID string) ([]models.PaymentMethod, error) {
	return nil, nil
}
func (f *fakeShopRepo) CreatePaymentMethod(pm *models.PaymentMethod) error { return nil }
func (f *fakeShopRepo) UpdatePaymentMethod(pm *models.PaymentMethod) error { return nil }
func (f *fakeShopRepo) DeletePaymentMethod(shopID, id string) error { return nil }

func newService(repo *fakeApptRepo, users *fakeUserRepo, shops *fakeShopRepo) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:      repo,
		Referrals: &referral.Service{UserRepo: users, ShopRepo: shops},
	}
}

func referralSettings() *models.ShopSettings {
	return &models.ShopSettings{
		ReferralSettings: &models.ReferralSettings{
			Enabled:              true,
			ReferrerRewardValue:  10,
			NewClientRewardValue: 5,
		},
	}
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	repo := &fakeApptRepo{appts: map[string]*models.Appointment{
		"a1": {ID: "a1", ShopID: "s1", Status: models.StatusPending},
	}}
	svc := newService(repo, &fakeUserRepo{}, &fakeShopRepo{settings: &models.ShopSettings{}})

	_, err := svc.UpdateStatus("s1", "a1", models.StatusCompleted)
	require.Error(t, err)
	assert.ErrorIs(t, err, appointmentRepo.ErrIllegalTransition)
	assert.Equal(t, models.StatusPending, repo.appts["a1"].Status)
}

func TestUpdateStatusConfirm(t *testing.T) {
	repo := &fakeApptRepo{appts: map[string]*models.Appointment{
		"a1": {ID: "a1", ShopID: "s1", Status: models.StatusPending},
	}}
	svc := newService(repo, &fakeUserRepo{}, &fakeShopRepo{settings: &models.ShopSettings{}})

	appt, err := svc.UpdateStatus("s1", "a1", models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, appt.Status)
}

func TestCompletionSettlesReferralCredit(t *testing.T) {
	repo := &fakeApptRepo{appts: map[string]*models.Appointment{
		"a1": {ID: "a1", ShopID: "s1", ClientID: "c1", Status: models.StatusConfirmed},
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		"c1": {ID: "c1", ReferredBy: "r1"},
	}}
	svc := newService(repo, users, &fakeShopRepo{settings: referralSettings()})

	appt, err := svc.UpdateStatus("s1", "a1", models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, appt.Status)
	assert.Equal(t, 1, repo.completedCalls)
	require.NotNil(t, repo.settledCredit)
	assert.Equal(t, "r1", repo.settledCredit.ReferrerID)
	assert.Equal(t, 10.0, repo.settledCredit.ReferrerAmount)
}

func TestCompletionWithoutReferralGrantsNothing(t *testing.T) {
	repo := &fakeApptRepo{appts: map[string]*models.Appointment{
		"a1": {ID: "a1", ShopID: "s1", ClientID: models.WalkInClientID, Status: models.StatusConfirmed},
	}}
	svc := newService(repo, &fakeUserRepo{}, &fakeShopRepo{settings: referralSettings()})

	_, err := svc.UpdateStatus("s1", "a1", models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.completedCalls)
	assert.Nil(t, repo.settledCredit)
}

func TestCancelOwn(t *testing.T) {
	repo := &fakeApptRepo{appts: map[string]*models.Appointment{
		"a1": {ID: "a1", ShopID: "s1", ClientID: "c1", Status: models.StatusPending},
	}}
	svc := newService(repo, &fakeUserRepo{}, &fakeShopRepo{settings: &models.ShopSettings{}})

	err := svc.CancelOwn("s1", "a1", "someone-else")
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.CancelOwn("s1", "a1", "c1"))
	assert.Equal(t, models.StatusCancelled, repo.appts["a1"].Status)

	err = svc.CancelOwn("s1", "a1", "c1")
	assert.ErrorIs(t, err, appointmentRepo.ErrIllegalTransition)
}
