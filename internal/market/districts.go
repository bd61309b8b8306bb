package market

import "strings"

// districtRule adjusts the location sub-score when both the city and the
// district strings match. Like the region table, order is significant and
// the first matching rule wins.
type districtRule struct {
	cityTerm string   // lowercase substring of the city
	terms    []string // lowercase substrings of the district
	delta    float64
}

var districtRules = []districtRule{
	// Toshkent premium districts.
	{"toshkent", []string{"mirobod", "yakkasaroy", "mirzo ulug'bek", "mirzo-ulugbek", "mirzo ulugbek", "shayxontohur", "chilonzor"}, 1.0},
	{"tashkent", []string{"mirobod", "yakkasaroy", "mirzo ulug'bek", "mirzo-ulugbek", "mirzo ulugbek", "shayxontohur", "chilonzor"}, 1.0},
	// Toshkent mid-tier districts.
	{"toshkent", []string{"yunusobod", "olmazor", "uchtepa", "yashnobod"}, 0.4},
	{"tashkent", []string{"yunusobod", "olmazor", "uchtepa", "yashnobod"}, 0.4},
	// Toshkent lower-tier districts.
	{"toshkent", []string{"sergeli", "bektemir", "yangihayot"}, -0.6},
	{"tashkent", []string{"sergeli", "bektemir", "yangihayot"}, -0.6},
	// Historic-center bonuses.
	{"samarqand", []string{"registon", "eski shahar", "markaz", "center"}, 0.8},
	{"samarkand", []string{"registon", "eski shahar", "markaz", "center"}, 0.8},
	{"buxoro", []string{"labi hovuz", "ark", "eski shahar", "markaz", "center"}, 0.8},
	{"bukhara", []string{"labi hovuz", "ark", "eski shahar", "markaz", "center"}, 0.8},
	// City-center bonuses.
	{"namangan", []string{"markaz", "center"}, 0.5},
	{"andijon", []string{"markaz", "center"}, 0.5},
}

// DistrictDelta returns the location adjustment for a city/district pair,
// or 0 when no rule matches. Pure lookup; no randomness.
func DistrictDelta(city, district string) float64 {
	if district == "" {
		return 0
	}
	c := strings.ToLower(city)
	d := strings.ToLower(district)

	for _, rule := range districtRules {
		if !strings.Contains(c, rule.cityTerm) {
			continue
		}
		for _, term := range rule.terms {
			if strings.Contains(d, term) {
				return rule.delta
			}
		}
	}
	return 0
}
