package booking

import (
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
)

// slotStep is the spacing between candidate start times.
const slotStep = 30 * time.Minute

// parseClock parses an "HH:MM" 24-hour string into minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// GenerateTimeSlots builds the candidate slot list for one day: every 30
// minutes from opening (inclusive) to closing (exclusive), formatted as
// display clock strings. An opening at or after closing yields no slots, as
// does a malformed input.
func GenerateTimeSlots(openingTime, closingTime string) []string {
	open, ok := parseClock(openingTime)
	if !ok {
		return nil
	}
	clos, ok := parseClock(closingTime)
	if !ok {
		return nil
	}
	if open >= clos {
		return nil
	}

	var slots []string
	day := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	for m := open; m < clos; m += int(slotStep / time.Minute) {
		slots = append(slots, day.Add(time.Duration(m)*time.Minute).Format(models.TimeLayout))
	}
	return slots
}

// ParseSlot resolves a display date and slot string into an instant. The
// second return reports success; malformed input never aborts availability
// computation, the affected entry is just skipped.
func ParseSlot(date, clock string) (time.Time, bool) {
	t, err := time.Parse(models.DateLayout+" "+models.TimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// bookedInterval is a half-open occupied range [Start, End).
type bookedInterval struct {
	start time.Time
	end   time.Time
}

// FilterAvailableSlots removes candidate slots that cannot hold a booking of
// totalDuration minutes on the given date: slots that would run past closing
// time and slots overlapping an existing booking. With no services selected
// (totalDuration == 0) there is nothing to conflict with and the full
// candidate list is returned. Order is preserved.
func FilterAvailableSlots(slots []string, totalDuration int, date string, booked []models.Appointment, closingTime string) []string {
	if totalDuration == 0 {
		return slots
	}

	intervals := make([]bookedInterval, 0, len(booked))
	for _, b := range booked {
		start, ok := ParseSlot(b.Date, b.Time)
		if !ok {
			continue
		}
		intervals = append(intervals, bookedInterval{
			start: start,
			end:   start.Add(time.Duration(b.TotalDuration) * time.Minute),
		})
	}

	closeMinutes, haveClose := parseClock(closingTime)
	var closeAt time.Time
	if haveClose {
		if dayStart, ok := ParseSlot(date, "12:00 AM"); ok {
			closeAt = dayStart.Add(time.Duration(closeMinutes) * time.Minute)
		} else {
			haveClose = false
		}
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		start, ok := ParseSlot(date, slot)
		if !ok {
			continue
		}
		end := start.Add(time.Duration(totalDuration) * time.Minute)

		if haveClose && end.After(closeAt) {
			continue
		}

		conflict := false
		for _, iv := range intervals {
			if start.Before(iv.end) && end.After(iv.start) {
				conflict = true
				break
			}
		}
		if !conflict {
			available = append(available, slot)
		}
	}
	return available
}

// CartTotals sums the effective price and duration of a cart over the given
// catalogue. Unknown service ids are ignored; the catalogue passed in is
// expected to hold only enabled services. The sums are order-independent.
func CartTotals(cart map[string]int, catalog []models.Service) (totalPrice float64, totalDuration int) {
	for _, svc := range catalog {
		qty, ok := cart[svc.ID]
		if !ok || qty <= 0 {
			continue
		}
		totalPrice += svc.EffectivePrice() * float64(qty)
		totalDuration += svc.Duration * qty
	}
	return totalPrice, totalDuration
}

// ApplyReward caps the client's reward balance against the cart total. The
// discount never exceeds either side and the payable amount never goes
// negative.
func ApplyReward(balance, totalPrice float64) (discount, payable float64) {
	if balance <= 0 || totalPrice <= 0 {
		return 0, totalPrice
	}
	discount = balance
	if totalPrice < discount {
		discount = totalPrice
	}
	return discount, totalPrice - discount
}
