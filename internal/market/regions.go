// Package market holds the static regional baseline tables the scorer
// works from: expected prices per square meter, location tiers, growth and
// volatility adjustments, district bonuses, amenity keyword weights, and
// the competitor platform definitions.
//
// All tables are ordered lists of (substring predicate, value) entries
// evaluated top to bottom; the first match wins. More specific entries must
// stay above generic ones — the capital is checked before the "viloyat"
// fallback, which is checked before the catch-all default.
package market

import (
	"strings"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

// Region holds every static baseline value for one city tier.
type Region struct {
	// Name is the canonical tier name used in logs and CLI output.
	Name string

	// Terms are lowercase substrings; a city matches the region when any
	// term occurs in the lowercased city string. Empty means catch-all.
	Terms []string

	// SaleRate and RentRate are the expected asking prices per m²
	// (monthly for rent).
	SaleRate float64
	RentRate float64

	// LocationBase is the city-tier contribution to the location
	// sub-score on the 1-10 scale, before district adjustments.
	LocationBase float64

	// Growth is the static market-trend adjustment added to the final
	// score, in [-0.4, +0.8].
	Growth float64

	// SaleVolatility and RentVolatility are the static market-volatility
	// adjustments for the quick variant, each within ±0.3.
	SaleVolatility float64
	RentVolatility float64

	// Competition is the localized competition blurb for market insights.
	Competition string
}

// regions is the master tier table. Order is significant.
var regions = []Region{
	{
		Name:           "Toshkent shahri",
		Terms:          []string{"toshkent", "tashkent"},
		SaleRate:       1128,
		RentRate:       8.0,
		LocationBase:   9.0,
		Growth:         0.8,
		SaleVolatility: 0.1,
		RentVolatility: 0.2,
		Competition:    "Raqobat juda yuqori: e'lonlar tez sotiladi",
	},
	{
		Name:           "Samarqand",
		Terms:          []string{"samarqand", "samarkand"},
		SaleRate:       820,
		RentRate:       5.5,
		LocationBase:   8.0,
		Growth:         0.5,
		SaleVolatility: 0.15,
		RentVolatility: 0.1,
		Competition:    "Raqobat yuqori: tarixiy markazga talab katta",
	},
	{
		Name:           "Buxoro",
		Terms:          []string{"buxoro", "bukhara"},
		SaleRate:       780,
		RentRate:       5.2,
		LocationBase:   7.5,
		Growth:         0.4,
		SaleVolatility: 0.15,
		RentVolatility: 0.1,
		Competition:    "Raqobat yuqori: tarixiy markazga talab katta",
	},
	{
		Name:           "Xiva va Urganch",
		Terms:          []string{"xiva", "khiva", "urganch", "urgench"},
		SaleRate:       700,
		RentRate:       4.8,
		LocationBase:   7.0,
		Growth:         0.3,
		SaleVolatility: 0.2,
		RentVolatility: 0.1,
		Competition:    "Raqobat o'rtacha: mavsumiy talab kuzatiladi",
	},
	{
		Name:           "Namangan",
		Terms:          []string{"namangan"},
		SaleRate:       650,
		RentRate:       4.2,
		LocationBase:   6.5,
		Growth:         0.2,
		SaleVolatility: 0.1,
		RentVolatility: 0.05,
		Competition:    "Raqobat o'rtacha",
	},
	{
		Name:           "Andijon",
		Terms:          []string{"andijon", "andijan"},
		SaleRate:       640,
		RentRate:       4.1,
		LocationBase:   6.5,
		Growth:         0.2,
		SaleVolatility: 0.1,
		RentVolatility: 0.05,
		Competition:    "Raqobat o'rtacha",
	},
	{
		Name:           "Farg'ona",
		Terms:          []string{"farg'ona", "fargona", "fergana"},
		SaleRate:       630,
		RentRate:       4.0,
		LocationBase:   6.5,
		Growth:         0.1,
		SaleVolatility: 0.1,
		RentVolatility: 0.05,
		Competition:    "Raqobat o'rtacha",
	},
	{
		Name:           "Navoiy va Zarafshon",
		Terms:          []string{"navoiy", "navoi", "zarafshon"},
		SaleRate:       600,
		RentRate:       3.8,
		LocationBase:   5.5,
		Growth:         0.3,
		SaleVolatility: 0.05,
		RentVolatility: 0.05,
		Competition:    "Raqobat past: sanoat shaharlarida talab barqaror",
	},
	{
		Name:           "Olmaliq, Angren va Chirchiq",
		Terms:          []string{"olmaliq", "angren", "chirchiq"},
		SaleRate:       560,
		RentRate:       3.5,
		LocationBase:   5.5,
		Growth:         0.0,
		SaleVolatility: 0.05,
		RentVolatility: 0.05,
		Competition:    "Raqobat past: sanoat shaharlarida talab barqaror",
	},
	{
		Name:           "Qoraqalpog'iston",
		Terms:          []string{"nukus", "qoraqalpog", "karakalpak"},
		SaleRate:       480,
		RentRate:       3.0,
		LocationBase:   5.0,
		Growth:         -0.4,
		SaleVolatility: -0.1,
		RentVolatility: -0.05,
		Competition:    "Raqobat past",
	},
	{
		Name:           "Viloyat",
		Terms:          []string{"viloyat"},
		SaleRate:       520,
		RentRate:       3.2,
		LocationBase:   4.5,
		Growth:         -0.1,
		SaleVolatility: 0.0,
		RentVolatility: 0.0,
		Competition:    "Raqobat past",
	},
	{
		Name:           "Boshqa hudud",
		Terms:          nil,
		SaleRate:       550,
		RentRate:       3.5,
		LocationBase:   5.0,
		Growth:         0.0,
		SaleVolatility: 0.0,
		RentVolatility: 0.0,
		Competition:    "Raqobat past",
	},
}

// Lookup resolves a free-text city name to its Region. The match is a
// case-insensitive substring check against each tier's terms in table
// order; an entry with no terms matches everything.
func Lookup(city string) Region {
	c := strings.ToLower(city)
	for _, r := range regions {
		if len(r.Terms) == 0 {
			return r
		}
		for _, term := range r.Terms {
			if strings.Contains(c, term) {
				return r
			}
		}
	}
	// Unreachable while the table ends with a catch-all entry.
	return regions[len(regions)-1]
}

// ExpectedRate returns the baseline price per m² for the city and
// transaction type.
func ExpectedRate(city string, t domain.TransactionType) float64 {
	r := Lookup(city)
	if t == domain.TransactionRent {
		return r.RentRate
	}
	return r.SaleRate
}

// Volatility returns the static market-volatility adjustment for the city
// and transaction type. Always within ±0.3.
func Volatility(city string, t domain.TransactionType) float64 {
	r := Lookup(city)
	if t == domain.TransactionRent {
		return r.RentVolatility
	}
	return r.SaleVolatility
}

// Trend renders the localized market-trend blurb for a growth adjustment.
func Trend(growth float64) string {
	switch {
	case growth >= 0.5:
		return "Narxlar tez o'sib bormoqda"
	case growth > 0:
		return "Narxlar sekin o'sib bormoqda"
	case growth < 0:
		return "Narxlar pasayish tendensiyasida"
	default:
		return "Narxlar barqaror"
	}
}

// Regions returns a copy of the tier table for CLI display.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}
