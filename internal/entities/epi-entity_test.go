package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epi-tracker/pkg/constants"
)

var refDate = time.Date(2024, time.May, 28, 0, 0, 0, 0, time.UTC)

func dateAt(offsetDays int) *time.Time {
	d := refDate.AddDate(0, 0, offsetDays)
	return &d
}

func TestComputeStockStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		min      int
		severity string
		label    string
	}{
		{"below minimum", 5, 10, constants.StockSeverityLow, constants.StockLabelLow},
		{"equal to minimum", 10, 10, constants.StockSeverityLow, constants.StockLabelLow},
		{"above minimum", 11, 10, constants.StockSeverityOK, constants.StockLabelOK},
		{"empty with zero minimum", 0, 0, constants.StockSeverityLow, constants.StockLabelLow},
		{"one with zero minimum", 1, 0, constants.StockSeverityOK, constants.StockLabelOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status := ComputeStockStatus(EPI{Quantity: tc.quantity, MinQuantity: tc.min})
			assert.Equal(t, tc.severity, status.Severity)
			assert.Equal(t, tc.label, status.Label)
		})
	}
}

func TestComputeStockStatus_LowIffQuantityNotAboveMinimum(t *testing.T) {
	for q := 0; q <= 20; q++ {
		for m := 0; m <= 20; m++ {
			low := ComputeStockStatus(EPI{Quantity: q, MinQuantity: m}).Severity == constants.StockSeverityLow
			assert.Equal(t, q <= m, low, "quantity=%d min=%d", q, m)
		}
	}
}

func TestComputeExpirationProximity(t *testing.T) {
	cases := []struct {
		name string
		item EPI
		want bool
	}{
		{"untracked with stray date", EPI{HasExpiration: false, ExpirationDate: dateAt(1)}, false},
		{"untracked without date", EPI{HasExpiration: false}, false},
		{"tracked without date", EPI{HasExpiration: true}, false},
		{"already expired", EPI{HasExpiration: true, ExpirationDate: dateAt(-10)}, true},
		{"today", EPI{HasExpiration: true, ExpirationDate: dateAt(0)}, true},
		{"boundary 30 days", EPI{HasExpiration: true, ExpirationDate: dateAt(30)}, true},
		{"31 days", EPI{HasExpiration: true, ExpirationDate: dateAt(31)}, false},
		{"far future", EPI{HasExpiration: true, ExpirationDate: dateAt(365)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeExpirationProximity(tc.item, refDate))
		})
	}
}

func TestComputeExpirationProximity_IgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2024, time.May, 28, 23, 59, 0, 0, time.UTC)
	item := EPI{HasExpiration: true, ExpirationDate: dateAt(30)}
	assert.True(t, ComputeExpirationProximity(item, lateEvening))
}

func TestExpirationTier(t *testing.T) {
	cases := map[int]string{
		-30: constants.ExpirationStatusExpired,
		-1:  constants.ExpirationStatusExpired,
		0:   constants.ExpirationStatusCritical,
		7:   constants.ExpirationStatusCritical,
		8:   constants.ExpirationStatusApproaching,
		30:  constants.ExpirationStatusApproaching,
		31:  constants.ExpirationStatusNormal,
		400: constants.ExpirationStatusNormal,
	}
	for days, want := range cases {
		assert.Equal(t, want, ExpirationTier(days), "days=%d", days)
	}
}

func TestDaysToExpire(t *testing.T) {
	days, ok := DaysToExpire(EPI{HasExpiration: true, ExpirationDate: dateAt(18)}, refDate)
	require.True(t, ok)
	assert.Equal(t, 18, days)

	_, ok = DaysToExpire(EPI{HasExpiration: false, ExpirationDate: dateAt(18)}, refDate)
	assert.False(t, ok)
}

func TestEPI_Normalize(t *testing.T) {
	item := EPI{Code: "  cap001 ", HasExpiration: false, ExpirationDate: dateAt(5)}
	item.Normalize()
	assert.Equal(t, "CAP001", item.Code)
	assert.Nil(t, item.ExpirationDate)

	withTime := time.Date(2024, time.July, 15, 13, 45, 0, 0, time.UTC)
	tracked := EPI{Code: "luv001", HasExpiration: true, ExpirationDate: &withTime}
	tracked.Normalize()
	require.NotNil(t, tracked.ExpirationDate)
	assert.Equal(t, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), *tracked.ExpirationDate)
}

func TestEPI_StockValue(t *testing.T) {
	item := EPI{Quantity: 15, UnitPrice: decimal.RequireFromString("25.90")}
	assert.Equal(t, "388.50", item.StockValue().StringFixed(2))
}

func TestEPI_CloneDoesNotShareDate(t *testing.T) {
	original := EPI{HasExpiration: true, ExpirationDate: dateAt(3)}
	clone := original.Clone()
	*clone.ExpirationDate = refDate
	assert.Equal(t, *dateAt(3), *original.ExpirationDate)
}
