package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akbarovs/uybaho/internal/market"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

func TestLookup_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		city string
		want string
	}{
		{"capital", "Toshkent shahri", "Toshkent shahri"},
		{"capital english spelling", "Tashkent", "Toshkent shahri"},
		{"capital beats viloyat fallback", "Toshkent viloyati", "Toshkent shahri"},
		{"historic city", "Samarqand", "Samarqand"},
		{"russian spelling", "Bukhara", "Buxoro"},
		{"viloyat fallback", "Jizzax viloyati", "Viloyat"},
		{"unknown city", "Guliston", "Boshqa hudud"},
		{"case insensitive", "nukus", "Qoraqalpog'iston"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, market.Lookup(tt.city).Name)
		})
	}
}

func TestExpectedRate(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1128, market.ExpectedRate("Toshkent", domain.TransactionSale), 0.001)
	assert.InDelta(t, 8.0, market.ExpectedRate("Toshkent", domain.TransactionRent), 0.001)
	assert.InDelta(t, 550, market.ExpectedRate("Guliston", domain.TransactionSale), 0.001)
}

func TestVolatility_Bounded(t *testing.T) {
	t.Parallel()

	for _, r := range market.Regions() {
		assert.LessOrEqual(t, r.SaleVolatility, 0.3, r.Name)
		assert.GreaterOrEqual(t, r.SaleVolatility, -0.3, r.Name)
		assert.LessOrEqual(t, r.RentVolatility, 0.3, r.Name)
		assert.GreaterOrEqual(t, r.RentVolatility, -0.3, r.Name)
	}
}

func TestDistrictDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		city     string
		district string
		want     float64
	}{
		{"capital premium", "Toshkent shahri", "Chilonzor tumani", 1.0},
		{"capital mid tier", "Toshkent shahri", "Yunusobod tumani", 0.4},
		{"capital lower tier", "Toshkent shahri", "Sergeli", -0.6},
		{"historic center", "Samarqand", "Registon ko'chasi", 0.8},
		{"district without rule", "Toshkent shahri", "Qibray", 0},
		{"district of another city", "Samarqand", "Chilonzor", 0},
		{"empty district", "Toshkent shahri", "", 0},
		{"case insensitive", "TOSHKENT", "CHILONZOR", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, market.DistrictDelta(tt.city, tt.district), 0.001)
		})
	}
}

func TestAmenitySignals(t *testing.T) {
	t.Parallel()

	signals := market.AmenitySignals(
		"Yevroremont, konditsioner bor, metro yaqinida. Biroz shovqin bo'lishi mumkin.",
	)

	names := make([]string, 0, len(signals))
	for _, g := range signals {
		names = append(names, g.Name)
	}
	assert.ElementsMatch(t,
		[]string{"modern_renovation", "air_conditioning", "near_metro", "noisy"},
		names,
	)
}

func TestAmenitySignals_GroupFiresOnce(t *testing.T) {
	t.Parallel()

	// Two terms from the same group must not double the delta.
	signals := market.AmenitySignals("lift bor, elevator ishlaydi")
	assert.Len(t, signals, 1)
	assert.Equal(t, "elevator", signals[0].Name)
}

func TestAmenitySignals_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, market.AmenitySignals("uch xonali xonadon sotiladi"))
}

func TestAmenityGroups_DeltaMagnitudes(t *testing.T) {
	t.Parallel()

	for _, g := range market.AmenityGroups {
		mag := g.Delta
		if mag < 0 {
			mag = -mag
		}
		assert.GreaterOrEqual(t, mag, 0.3, g.Name)
		assert.LessOrEqual(t, mag, 1.2, g.Name)
	}
}

func TestTrend(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Narxlar tez o'sib bormoqda", market.Trend(0.8))
	assert.Equal(t, "Narxlar sekin o'sib bormoqda", market.Trend(0.2))
	assert.Equal(t, "Narxlar barqaror", market.Trend(0))
	assert.Equal(t, "Narxlar pasayish tendensiyasida", market.Trend(-0.4))
}
