package market

import "strings"

// KeywordGroup is one amenity (or defect) signal found in free-text
// descriptions. Delta is added to the amenity sub-score when any term
// matches; each group fires at most once.
type KeywordGroup struct {
	Name  string
	Delta float64
	Terms []string
}

// AmenityGroups lists the positive and negative description signals.
// Terms cover the Uzbek, Russian and English phrasings that show up in
// real ads. Magnitudes stay within 0.3–1.2.
var AmenityGroups = []KeywordGroup{
	// Positive signals.
	{"modern_renovation", 0.8, []string{"yevroremont", "евроремонт", "zamonaviy", "modern", "yangi remont"}},
	{"air_conditioning", 0.5, []string{"konditsioner", "кондиционер", "air conditioning"}},
	{"internet", 0.4, []string{"internet", "wi-fi", "wifi", "optik tola"}},
	{"balcony", 0.4, []string{"balkon", "балкон", "lodjiya", "balcony"}},
	{"parking", 0.6, []string{"parking", "avtoturargoh", "garaj", "парковка", "гараж"}},
	{"elevator", 0.5, []string{"lift", "лифт", "elevator"}},
	{"security", 0.5, []string{"qo'riqlanadigan", "soqchi", "охрана", "videokuzatuv", "security"}},
	{"gym", 0.3, []string{"sportzal", "trenajyor", "gym", "фитнес"}},
	{"pool", 0.7, []string{"basseyn", "бассейн", "pool"}},
	{"appliances", 0.6, []string{"maishiy texnika", "texnika bilan", "бытовая техника", "appliances"}},
	{"furnished", 0.5, []string{"mebel bilan", "mebellangan", "с мебелью", "furnished"}},
	{"near_metro", 1.2, []string{"metro yaqinida", "metroga yaqin", "метро рядом", "near metro"}},
	{"near_school", 0.4, []string{"maktab yaqinida", "maktabga yaqin", "школа рядом", "near school"}},
	{"near_hospital", 0.3, []string{"shifoxona yaqinida", "poliklinika", "больница рядом"}},
	{"near_market", 0.3, []string{"bozor yaqinida", "bozorga yaqin", "рынок рядом", "supermarket"}},

	// Negative signals.
	{"needs_work", -1.2, []string{"remont kerak", "ta'mir talab", "требует ремонта", "needs repair"}},
	{"noisy", -0.6, []string{"shovqin", "шумн", "noisy"}},
	{"cramped", -0.4, []string{"kichkina", "tor ", "тесн", "cramped"}},
	{"old_building", -0.5, []string{"eski uy", "eski bino", "старый дом", "old building"}},
	{"dirty", -0.7, []string{"iflos", "грязн", "dirty"}},
	{"broken", -0.8, []string{"buzilgan", "singan", "сломан", "broken"}},
}

// AmenitySignals returns the groups whose terms occur in the description
// (case-insensitive substring search).
func AmenitySignals(description string) []KeywordGroup {
	d := strings.ToLower(description)

	var matched []KeywordGroup
	for _, g := range AmenityGroups {
		for _, term := range g.Terms {
			if strings.Contains(d, term) {
				matched = append(matched, g)
				break
			}
		}
	}
	return matched
}
