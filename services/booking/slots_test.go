package booking

import (
	"testing"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "March 15, 2025"

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
		want    []string
	}{
		{
			name:    "short morning window",
			opening: "09:00",
			closing: "10:30",
			want:    []string{"9:00 AM", "9:30 AM", "10:00 AM"},
		},
		{
			name:    "opening equals closing",
			opening: "09:00",
			closing: "09:00",
			want:    nil,
		},
		{
			name:    "opening after closing",
			opening: "18:00",
			closing: "09:00",
			want:    nil,
		},
		{
			name:    "malformed opening",
			opening: "9am",
			closing: "18:00",
			want:    nil,
		},
		{
			name:    "afternoon crosses noon boundary",
			opening: "11:30",
			closing: "13:00",
			want:    []string{"11:30 AM", "12:00 PM", "12:30 PM"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateTimeSlots(tt.opening, tt.closing))
		})
	}
}

func TestGenerateTimeSlotsFullDay(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "18:00")
	require.Len(t, slots, 18)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "5:30 PM", slots[len(slots)-1])
}

func booked(date, clock string, duration int) models.Appointment {
	return models.Appointment{
		Date:          date,
		Time:          clock,
		TotalDuration: duration,
		Status:        models.StatusConfirmed,
	}
}

func TestFilterAvailableSlots(t *testing.T) {
	daySlots := GenerateTimeSlots("09:00", "18:00")

	t.Run("thirty minute booking blocks exactly its slot", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 30, testDate,
			[]models.Appointment{booked(testDate, "10:00 AM", 30)}, "18:00")
		assert.NotContains(t, got, "10:00 AM")
		assert.Contains(t, got, "9:30 AM")
		assert.Contains(t, got, "10:30 AM")
	})

	t.Run("longer selection also blocks the preceding slot", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 60, testDate,
			[]models.Appointment{booked(testDate, "10:00 AM", 30)}, "18:00")
		assert.NotContains(t, got, "9:30 AM")
		assert.NotContains(t, got, "10:00 AM")
		assert.Contains(t, got, "9:00 AM")
		assert.Contains(t, got, "10:30 AM")
	})

	t.Run("selection running past closing is excluded", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 60, testDate, nil, "18:00")
		assert.NotContains(t, got, "5:30 PM")
		assert.Contains(t, got, "5:00 PM")
	})

	t.Run("selection ending exactly at closing is kept", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 30, testDate, nil, "18:00")
		assert.Contains(t, got, "5:30 PM")
	})

	t.Run("empty cart returns every candidate", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 0, testDate,
			[]models.Appointment{booked(testDate, "10:00 AM", 30)}, "18:00")
		assert.Equal(t, daySlots, got)
	})

	t.Run("unparseable booking is skipped", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 30, testDate,
			[]models.Appointment{booked("not a date", "10:00 AM", 30)}, "18:00")
		assert.Contains(t, got, "10:00 AM")
	})

	t.Run("bookings on another day do not conflict", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 30, testDate,
			[]models.Appointment{booked("March 16, 2025", "10:00 AM", 30)}, "18:00")
		assert.Contains(t, got, "10:00 AM")
	})

	t.Run("order is preserved", func(t *testing.T) {
		got := FilterAvailableSlots(daySlots, 30, testDate,
			[]models.Appointment{booked(testDate, "9:00 AM", 30)}, "18:00")
		require.NotEmpty(t, got)
		assert.Equal(t, "9:30 AM", got[0])
	})
}

func TestParseSlotRoundTrip(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "18:00")
	for _, slot := range slots {
		parsed, ok := ParseSlot(testDate, slot)
		require.True(t, ok, "slot %q should parse", slot)
		assert.Equal(t, slot, parsed.Format(models.TimeLayout))
	}

	_, ok := ParseSlot(testDate, "25:99")
	assert.False(t, ok)
}

func TestCartTotals(t *testing.T) {
	catalog := []models.Service{
		{ID: "cut", Name: "Haircut", Price: 25, Duration: 30},
		{ID: "beard", Name: "Beard Trim", Price: 15, DiscountedPrice: 10, Duration: 30},
		{ID: "combo", Name: "Haircut & Beard", Price: 35, Duration: 60},
	}

	t.Run("sums effective prices and durations", func(t *testing.T) {
		price, duration := CartTotals(map[string]int{"cut": 1, "beard": 2}, catalog)
		assert.Equal(t, 45.0, price) // 25 + 2*10, discounted price wins
		assert.Equal(t, 90, duration)
	})

	t.Run("unknown ids and non-positive quantities are ignored", func(t *testing.T) {
		price, duration := CartTotals(map[string]int{"gone": 3, "cut": 0}, catalog)
		assert.Equal(t, 0.0, price)
		assert.Equal(t, 0, duration)
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		price, duration := CartTotals(nil, catalog)
		assert.Equal(t, 0.0, price)
		assert.Equal(t, 0, duration)
	})
}

func TestApplyReward(t *testing.T) {
	tests := []struct {
		name         string
		balance      float64
		total        float64
		wantDiscount float64
		wantPayable  float64
	}{
		{"balance exceeds total", 50, 30, 30, 0},
		{"balance below total", 10, 100, 10, 90},
		{"zero balance", 0, 100, 0, 100},
		{"negative balance", -5, 100, 0, 100},
		{"zero total", 50, 0, 0, 0},
		{"exact match", 40, 40, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, payable := ApplyReward(tt.balance, tt.total)
			assert.Equal(t, tt.wantDiscount, discount)
			assert.Equal(t, tt.wantPayable, payable)
		})
	}
}
