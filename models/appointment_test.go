package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusNoShow, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransition(tt.to))
		})
	}
}

func TestBlocks(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).Blocks())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).Blocks())
	assert.False(t, (&Appointment{Status: StatusCompleted}).Blocks())
	assert.False(t, (&Appointment{Status: StatusCancelled}).Blocks())
	assert.False(t, (&Appointment{Status: StatusNoShow}).Blocks())
}

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 25.0, (&Service{Price: 25}).EffectivePrice())
	assert.Equal(t, 20.0, (&Service{Price: 25, DiscountedPrice: 20}).EffectivePrice())
	assert.Equal(t, 25.0, (&Service{Price: 25, DiscountedPrice: 0}).EffectivePrice())
}

func TestUserPermissions(t *testing.T) {
	canView := func(p StaffPermissions) bool { return p.CanViewBookings }

	admin := &User{Role: RoleAdmin}
	assert.True(t, admin.Can(canView))
	assert.True(t, admin.IsStaffOrAdmin())

	staff := &User{Role: RoleStaff, Permissions: &StaffPermissions{CanViewBookings: true}}
	assert.True(t, staff.Can(canView))
	assert.False(t, staff.Can(func(p StaffPermissions) bool { return p.CanViewOverview }))

	bare := &User{Role: RoleStaff}
	assert.False(t, bare.Can(canView))

	client := &User{Role: RoleClient}
	assert.False(t, client.Can(canView))
	assert.False(t, client.IsStaffOrAdmin())
}
