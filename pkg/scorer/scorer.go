// Package score implements the deal-quality heuristic: a weighted sum of
// five sub-scores (price ratio, location, building quality, size
// efficiency, amenities) over the static regional baseline tables,
// thresholded into a three-way verdict.
package score

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/akbarovs/uybaho/internal/market"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

// Weights defines the relative importance of each scoring factor.
type Weights struct {
	Price     float64
	Location  float64
	Building  float64
	Size      float64
	Amenities float64
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Price:     0.45,
		Location:  0.30,
		Building:  0.15,
		Size:      0.08,
		Amenities: 0.02,
	}
}

// RandSource supplies the bounded randomness used by the quick variant
// (score jitter, template choice) and the synthetic platform listing
// counts. Implementations must be safe for concurrent use.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// globalRand delegates to the process-wide math/rand source, which is
// already mutex-protected.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// lockedRand wraps a seeded *rand.Rand for deterministic tests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Scorer computes listing analyses. The zero value is not usable; create
// one with New.
type Scorer struct {
	weights Weights
	rnd     RandSource
	now     func() time.Time
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights overrides the default factor weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) { s.weights = w }
}

// WithSeed installs a deterministic random source. Tests use this to pin
// the jitter and the template choice.
func WithSeed(seed int64) Option {
	return func(s *Scorer) {
		s.rnd = &lockedRand{r: rand.New(rand.NewSource(seed))} //nolint:gosec // non-cryptographic by design
	}
}

// WithRand installs a custom random source.
func WithRand(r RandSource) Option {
	return func(s *Scorer) { s.rnd = r }
}

// WithNowFunc overrides the clock used for building-age bracketing.
func WithNowFunc(f func() time.Time) Option {
	return func(s *Scorer) { s.now = f }
}

// New creates a Scorer with default weights, the shared random source,
// and the real clock.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights: DefaultWeights(),
		rnd:     globalRand{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Jitter bounds for the quick variant.
const maxJitter = 0.3

// overpricedGuard caps the detailed score for listings asking more than
// double the regional baseline, so an extreme price can never be talked
// back into "fair" by strong secondary factors.
const overpricedGuard = 3.9

// Quick computes the simple variant: score, verdict and one of three
// randomly chosen explanation templates. The score carries a bounded
// jitter term and the static market-volatility adjustment, so repeated
// calls on the same input may differ by up to 2*maxJitter.
func (s *Scorer) Quick(l *domain.Listing) domain.Analysis {
	region := market.Lookup(l.City)
	expected := regionRate(region, l.Transaction)
	ratio := l.PricePerArea() / expected

	loc := s.locationScore(l)
	bld := s.buildingScore(l)
	size := sizeEfficiencyScore(l.Area, l.Rooms)
	amen := amenityScore(l.Description)

	total := 5 +
		priceContribution(ratio) +
		(loc-5)*s.weights.Location +
		(bld-5)*s.weights.Building +
		(size-5)*s.weights.Size +
		(amen-5)*s.weights.Amenities +
		region.Growth +
		s.jitter() +
		volatility(region, l.Transaction)

	final := round1(clamp(total, 1, 10))
	verdict := verdictFor(final)

	return domain.Analysis{
		Score:       final,
		Verdict:     verdict,
		Explanation: s.quickExplanation(verdict, l.City, expected),
	}
}

// Detailed computes the extended variant: a fully deterministic score with
// the per-factor breakdown, market insights, and the synthetic platform
// comparison rows (whose listing counts are the only random element).
func (s *Scorer) Detailed(l *domain.Listing) domain.Analysis {
	region := market.Lookup(l.City)
	expected := regionRate(region, l.Transaction)
	ratio := l.PricePerArea() / expected

	price := priceBandScore(ratio)
	loc := s.locationScore(l)
	bld := s.buildingScore(l)
	size := sizeEfficiencyScore(l.Area, l.Rooms)
	amen := amenityScore(l.Description)

	total := 5 +
		(price-5)*s.weights.Price +
		(loc-5)*s.weights.Location +
		(bld-5)*s.weights.Building +
		(size-5)*s.weights.Size +
		(amen-5)*s.weights.Amenities +
		region.Growth

	if price < 2.0 {
		total = math.Min(total, overpricedGuard)
	}

	final := round1(clamp(total, 1, 10))
	verdict := verdictFor(final)

	factors := &domain.Factors{
		Price:     domain.FactorScore{Score: round1(price), Reason: priceReason(ratio)},
		Location:  domain.FactorScore{Score: round1(loc), Reason: locationReason(region, l)},
		Building:  domain.FactorScore{Score: round1(bld), Reason: buildingReason(l, s.currentYear())},
		Size:      domain.FactorScore{Score: round1(size), Reason: sizeReason(l.Area, l.Rooms)},
		Amenities: domain.FactorScore{Score: round1(amen), Reason: amenityReason(l.Description)},
	}

	return domain.Analysis{
		Score:          final,
		Verdict:        verdict,
		Explanation:    detailedExplanation(final, verdict, ratio),
		Factors:        factors,
		MarketInsights: s.marketInsights(region, l.Transaction),
		PlatformPrices: s.platformPrices(expected),
	}
}

func regionRate(r market.Region, t domain.TransactionType) float64 {
	if t == domain.TransactionRent {
		return r.RentRate
	}
	return r.SaleRate
}

func volatility(r market.Region, t domain.TransactionType) float64 {
	if t == domain.TransactionRent {
		return r.RentVolatility
	}
	return r.SaleVolatility
}

func (s *Scorer) jitter() float64 {
	return (s.rnd.Float64()*2 - 1) * maxJitter
}

func (s *Scorer) currentYear() int {
	return s.now().Year()
}

// priceBandScore maps the price ratio to the absolute 1-10 price sub-score
// used by the detailed variant. Nine fixed bands from deep discount to
// more than double the baseline.
func priceBandScore(ratio float64) float64 {
	switch {
	case ratio < 0.65:
		return 9.5
	case ratio < 0.75:
		return 8.5
	case ratio < 0.85:
		return 7.5
	case ratio < 0.95:
		return 6.5
	case ratio < 1.05:
		return 5.5
	case ratio < 1.20:
		return 4.5
	case ratio < 1.40:
		return 3.5
	case ratio <= 2.0:
		return 2.0
	default:
		return 1.0
	}
}

// priceContribution maps the price ratio to the direct score contribution
// used by the quick variant. Same nine bands as priceBandScore; the
// bottom band is punishing enough that no combination of other factors,
// growth, jitter and volatility can lift the result out of "overpriced".
func priceContribution(ratio float64) float64 {
	switch {
	case ratio < 0.65:
		return 3.5
	case ratio < 0.75:
		return 2.5
	case ratio < 0.85:
		return 1.8
	case ratio < 0.95:
		return 1.0
	case ratio < 1.05:
		return 0.2
	case ratio < 1.20:
		return -0.8
	case ratio < 1.40:
		return -2.0
	case ratio <= 2.0:
		return -3.5
	default:
		return -5.5
	}
}

// locationScore combines the city-tier base with the district adjustment.
// Pure table lookup.
func (s *Scorer) locationScore(l *domain.Listing) float64 {
	base := market.Lookup(l.City).LocationBase
	return clamp(base+market.DistrictDelta(l.City, l.District), 1, 10)
}

// buildingScore evaluates the physical quality of the building: dwelling
// type, declared condition, age bracket, floor position and building
// height preference.
func (s *Scorer) buildingScore(l *domain.Listing) float64 {
	v := 5.0

	switch l.PropertyType {
	case domain.PropertyPenthouse:
		v += 1.5
	case domain.PropertyHouse:
		v += 0.8
	case domain.PropertyApartment:
		v += 0.5
	case domain.PropertyStudio:
		v -= 0.5
	}

	switch l.Condition {
	case domain.ConditionNew:
		v += 1.5
	case domain.ConditionRenovated:
		v += 1.0
	case domain.ConditionGood:
		v += 0.3
	case domain.ConditionNeedsWork:
		v -= 1.5
	}

	v += ageAdjustment(s.currentYear() - l.YearBuilt)

	// Ground floor is unpopular, 3rd-5th floors sell best, towers above
	// the 12th floor lose value.
	switch {
	case l.Floor == 1:
		v -= 0.8
	case l.Floor >= 3 && l.Floor <= 5:
		v += 0.6
	case l.Floor > 12:
		v -= 0.5
	}

	switch {
	case l.TotalFloors >= 4 && l.TotalFloors <= 6:
		v += 0.5
	case l.TotalFloors > 15:
		v -= 0.6
	}

	return clamp(v, 1, 10)
}

// ageAdjustment maps building age to one of six brackets.
func ageAdjustment(age int) float64 {
	switch {
	case age <= 3:
		return 1.0
	case age <= 10:
		return 0.5
	case age <= 20:
		return 0.0
	case age <= 35:
		return -0.5
	case age <= 55:
		return -1.0
	default:
		return -1.5
	}
}

// amenityScore starts from the neutral midpoint and applies the keyword
// group deltas found in the description.
func amenityScore(description string) float64 {
	v := 5.0
	for _, g := range market.AmenitySignals(description) {
		v += g.Delta
	}
	return clamp(v, 1, 10)
}

// sizeEfficiencyScore is a non-decreasing step function of square meters
// per room. A zero room count cannot reach this code through the API
// (validation rejects it) but is still guarded.
func sizeEfficiencyScore(area float64, rooms int) float64 {
	if rooms <= 0 {
		return 3.0
	}

	perRoom := area / float64(rooms)
	switch {
	case perRoom < 9:
		return 2.0
	case perRoom < 12:
		return 3.5
	case perRoom < 16:
		return 5.0
	case perRoom < 22:
		return 6.5
	case perRoom < 30:
		return 8.0
	default:
		return 9.0
	}
}

// Verdict thresholds. Scores of 8.0 and above get no label of their own;
// everything from 6.5 up reads as underpriced.
const (
	underpricedThreshold = 6.5
	fairThreshold        = 4.0
)

func verdictFor(score float64) domain.Verdict {
	switch {
	case score >= underpricedThreshold:
		return domain.VerdictUnderpriced
	case score >= fairThreshold:
		return domain.VerdictFair
	default:
		return domain.VerdictOverpriced
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
