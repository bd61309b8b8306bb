package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akbarovs/uybaho/internal/market"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

// quickTemplates holds three explanation templates per verdict for the
// quick variant. Placeholders: {city} and {rate} (expected price per m²).
var quickTemplates = map[domain.Verdict][3]string{
	domain.VerdictUnderpriced: {
		"Bu e'lon bozordagi o'xshash takliflardan arzon: {city} uchun o'rtacha narx m² uchun {rate} atrofida.",
		"Narx {city} bo'yicha kutilgan darajadan past — ko'rib chiqishga arziydi.",
		"Sotuvchi shoshayotganga o'xshaydi: m² narxi hudud o'rtachasidan sezilarli past.",
	},
	domain.VerdictFair: {
		"Narx {city} uchun bozor darajasida: m² uchun taxminan {rate}.",
		"Bu taklif o'z hududi uchun o'rtacha baholangan.",
		"Narx adolatli, ammo savdolashish uchun joy bo'lishi mumkin.",
	},
	domain.VerdictOverpriced: {
		"Narx {city} bo'yicha o'rtachadan yuqori: m² uchun {rate} kutiladi.",
		"Bu e'lon bozorga nisbatan qimmat baholangan.",
		"Xuddi shunday xonadonlarni {city} hududida arzonroq topish mumkin.",
	},
}

// quickExplanation picks one of the three verdict templates uniformly at
// random and fills in the placeholders.
func (s *Scorer) quickExplanation(v domain.Verdict, city string, expected float64) string {
	tmpl := quickTemplates[v][s.rnd.Intn(3)]
	out := strings.ReplaceAll(tmpl, "{city}", city)
	out = strings.ReplaceAll(out, "{rate}", strconv.FormatFloat(expected, 'f', -1, 64))
	return out
}

// verdictPhrases are the deterministic lead sentences for the detailed
// explanation.
var verdictPhrases = map[domain.Verdict]string{
	domain.VerdictUnderpriced: "Narx bozor darajasidan past — yaxshi taklif.",
	domain.VerdictFair:        "Narx bozor darajasiga mos.",
	domain.VerdictOverpriced:  "Narx bozor darajasidan yuqori.",
}

func detailedExplanation(score float64, v domain.Verdict, ratio float64) string {
	return fmt.Sprintf("Umumiy baho: %.1f/10. %s %s",
		score, verdictPhrases[v], priceReason(ratio))
}

// priceReason renders the price-ratio factor justification.
func priceReason(ratio float64) string {
	switch {
	case ratio < 0.75:
		return fmt.Sprintf("m² narxi hudud o'rtachasidan ancha past (nisbat %.2f).", ratio)
	case ratio < 0.95:
		return fmt.Sprintf("m² narxi hudud o'rtachasidan past (nisbat %.2f).", ratio)
	case ratio < 1.05:
		return fmt.Sprintf("m² narxi bozor darajasida (nisbat %.2f).", ratio)
	case ratio < 1.40:
		return fmt.Sprintf("m² narxi hudud o'rtachasidan yuqori (nisbat %.2f).", ratio)
	default:
		return fmt.Sprintf("m² narxi hudud o'rtachasidan ancha yuqori (nisbat %.2f).", ratio)
	}
}

func locationReason(r market.Region, l *domain.Listing) string {
	delta := market.DistrictDelta(l.City, l.District)
	switch {
	case delta > 0:
		return fmt.Sprintf("%s, %s — talab yuqori bo'lgan hudud.", r.Name, l.District)
	case delta < 0:
		return fmt.Sprintf("%s, %s — talab pastroq bo'lgan hudud.", r.Name, l.District)
	default:
		return fmt.Sprintf("%s — joylashuv o'rtacha baholandi.", r.Name)
	}
}

func buildingReason(l *domain.Listing, currentYear int) string {
	age := currentYear - l.YearBuilt
	return fmt.Sprintf("%d-yilda qurilgan (%d yoshda), holati: %s, %d/%d-qavat.",
		l.YearBuilt, age, conditionLabel(l.Condition), l.Floor, l.TotalFloors)
}

func conditionLabel(c domain.Condition) string {
	switch c {
	case domain.ConditionNew:
		return "yangi"
	case domain.ConditionRenovated:
		return "ta'mirlangan"
	case domain.ConditionGood:
		return "yaxshi"
	case domain.ConditionNeedsWork:
		return "ta'mir talab"
	default:
		return string(c)
	}
}

func sizeReason(area float64, rooms int) string {
	if rooms <= 0 {
		return "Xonalar soni ko'rsatilmagan."
	}
	return fmt.Sprintf("Har bir xonaga %.0f m² to'g'ri keladi.", area/float64(rooms))
}

func amenityReason(description string) string {
	var pos, neg int
	for _, g := range market.AmenitySignals(description) {
		if g.Delta > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 && neg == 0 {
		return "Tavsifda qo'shimcha qulayliklar qayd etilmagan."
	}
	return fmt.Sprintf("Tavsifda %d ijobiy va %d salbiy belgi topildi.", pos, neg)
}

// marketInsights builds the synthetic market summary for the listing's
// region. The price range is a fixed ±15% band around the baseline.
func (s *Scorer) marketInsights(r market.Region, t domain.TransactionType) *domain.MarketInsights {
	rate := regionRate(r, t)
	return &domain.MarketInsights{
		AveragePricePerArea: rate,
		PriceLow:            round1(rate * 0.85),
		PriceHigh:           round1(rate * 1.15),
		Trend:               market.Trend(r.Growth),
		Competition:         r.Competition,
	}
}

// Synthetic platform listing counts land in [20, 200).
const (
	platformCountMin  = 20
	platformCountSpan = 180
)

// platformPrices fabricates the four competitor comparison rows: the
// regional baseline scaled by each platform's fixed variance, with a
// random listing count. Decoration only, never sourced data.
func (s *Scorer) platformPrices(expected float64) []domain.PlatformPrice {
	out := make([]domain.PlatformPrice, 0, len(market.Platforms))
	for _, p := range market.Platforms {
		out = append(out, domain.PlatformPrice{
			Platform:            p.Name,
			AveragePricePerArea: round1(expected * p.Variance),
			ListingCount:        platformCountMin + s.rnd.Intn(platformCountSpan),
		})
	}
	return out
}
