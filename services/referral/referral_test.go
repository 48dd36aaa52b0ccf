package referral

import (
	"testing"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCredit(t *testing.T) {
	settings := &models.ReferralSettings{
		Enabled:              true,
		ReferrerRewardValue:  10,
		NewClientRewardValue: 5,
	}
	client := &models.User{ID: "c1", ReferredBy: "r1"}

	t.Run("grants both sides", func(t *testing.T) {
		credit := ComputeCredit(settings, client)
		require.NotNil(t, credit)
		assert.Equal(t, "r1", credit.ReferrerID)
		assert.Equal(t, 10.0, credit.ReferrerAmount)
		assert.Equal(t, "c1", credit.ReferredID)
		assert.Equal(t, 5.0, credit.ReferredAmount)
	})

	t.Run("nil settings yields nothing", func(t *testing.T) {
		assert.Nil(t, ComputeCredit(nil, client))
	})

	t.Run("disabled program yields nothing", func(t *testing.T) {
		off := *settings
		off.Enabled = false
		assert.Nil(t, ComputeCredit(&off, client))
	})

	t.Run("unreferred client yields nothing", func(t *testing.T) {
		assert.Nil(t, ComputeCredit(settings, &models.User{ID: "c2"}))
	})

	t.Run("one-time program skips a consumed welcome reward", func(t *testing.T) {
		once := *settings
		once.OneTimeOnly = true
		used := *client
		used.WelcomeRewardUsed = true
		assert.Nil(t, ComputeCredit(&once, &used))

		fresh := *client
		assert.NotNil(t, ComputeCredit(&once, &fresh))
	})

	t.Run("zero reward values yield nothing", func(t *testing.T) {
		zero := &models.ReferralSettings{Enabled: true}
		assert.Nil(t, ComputeCredit(zero, client))
	})
}
