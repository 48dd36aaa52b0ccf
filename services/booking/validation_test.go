package booking

import (
	"testing"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []models.Service{
	{ID: "cut", Name: "Haircut", Price: 25, Duration: 30},
	{ID: "beard", Name: "Beard Trim", Price: 15, Duration: 30, MaxQuantity: 2},
}

func TestValidateCart(t *testing.T) {
	t.Run("valid cart passes", func(t *testing.T) {
		assert.Nil(t, ValidateCart(map[string]int{"cut": 1, "beard": 2}, testCatalog))
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		verr := ValidateCart(nil, testCatalog)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "services")
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		verr := ValidateCart(map[string]int{"massage": 1}, testCatalog)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "services")
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		verr := ValidateCart(map[string]int{"cut": 0}, testCatalog)
		require.NotNil(t, verr)
	})

	t.Run("quantity above maximum is rejected", func(t *testing.T) {
		verr := ValidateCart(map[string]int{"beard": 3}, testCatalog)
		require.NotNil(t, verr)
	})
}

func TestValidateConfirmation(t *testing.T) {
	valid := models.BookingInput{
		Time:          "10:00 AM",
		PaymentMethod: models.PaymentCash,
	}

	t.Run("client booking needs only time and payment", func(t *testing.T) {
		assert.Nil(t, ValidateConfirmation(valid, false))
	})

	t.Run("missing time is rejected", func(t *testing.T) {
		in := valid
		in.Time = ""
		verr := ValidateConfirmation(in, false)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "time")
	})

	t.Run("unknown payment method is rejected", func(t *testing.T) {
		in := valid
		in.PaymentMethod = "barter"
		verr := ValidateConfirmation(in, false)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "paymentMethod")
	})

	t.Run("staff booking requires a customer type", func(t *testing.T) {
		verr := ValidateConfirmation(valid, true)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "customerType")
	})

	t.Run("registered customer needs an id", func(t *testing.T) {
		in := valid
		in.CustomerType = CustomerRegistered
		verr := ValidateConfirmation(in, true)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "customerId")

		in.CustomerID = "client-1"
		assert.Nil(t, ValidateConfirmation(in, true))
	})

	t.Run("walk-in needs a real name", func(t *testing.T) {
		in := valid
		in.CustomerType = CustomerWalkIn
		in.WalkInName = " A "
		verr := ValidateConfirmation(in, true)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "walkInName")

		in.WalkInName = "Omar"
		assert.Nil(t, ValidateConfirmation(in, true))
	})
}
