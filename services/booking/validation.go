package booking

import (
	"strings"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
)

// Customer types for staff-originated bookings.
const (
	CustomerRegistered = "registered"
	CustomerWalkIn     = "walk-in"
)

// ValidateCart checks the service selection against the catalogue: at least
// one service, quantities >= 1 and within each service's max quantity.
func ValidateCart(cart map[string]int, catalog []models.Service) *ValidationError {
	fields := map[string]string{}
	if len(cart) == 0 {
		fields["services"] = "You have to select at least one service."
		return &ValidationError{Fields: fields}
	}

	byID := make(map[string]models.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}
	for id, qty := range cart {
		svc, ok := byID[id]
		if !ok {
			fields["services"] = "One of the selected services is no longer offered."
			continue
		}
		if qty < 1 {
			fields["services"] = "Service quantity must be at least 1."
			continue
		}
		if svc.MaxQuantity > 0 && qty > svc.MaxQuantity {
			fields["services"] = "Service quantity exceeds the allowed maximum."
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateConfirmation checks the confirmation payload. Staff bookings need
// either a registered customer or a named walk-in client.
func ValidateConfirmation(in models.BookingInput, staffBooking bool) *ValidationError {
	fields := map[string]string{}

	if in.Time == "" {
		fields["time"] = "Please select a time."
	}
	switch in.PaymentMethod {
	case models.PaymentCash, models.PaymentOnline:
	case "":
		fields["paymentMethod"] = "Please select a payment method."
	default:
		fields["paymentMethod"] = "Unknown payment method."
	}

	if staffBooking {
		switch in.CustomerType {
		case CustomerRegistered:
			if in.CustomerID == "" {
				fields["customerId"] = "Please select a registered customer."
			}
		case CustomerWalkIn:
			if len(strings.TrimSpace(in.WalkInName)) < 2 {
				fields["walkInName"] = "Name must be at least 2 characters."
			}
		default:
			fields["customerType"] = "Please choose a customer type."
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
