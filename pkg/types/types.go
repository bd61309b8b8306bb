// Package domain defines the core business types for uybaho.
package domain

import (
	"time"
)

// TransactionType says whether a listing is offered for rent or for sale.
type TransactionType string

// Transaction type constants.
const (
	TransactionRent TransactionType = "rent"
	TransactionSale TransactionType = "sale"
)

// PropertyType represents the kind of dwelling being offered.
type PropertyType string

// Property type constants.
const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyStudio    PropertyType = "studio"
	PropertyPenthouse PropertyType = "penthouse"
)

// Condition represents the declared state of the property.
type Condition string

// Condition constants.
const (
	ConditionNew       Condition = "new"
	ConditionRenovated Condition = "renovated"
	ConditionGood      Condition = "good"
	ConditionNeedsWork Condition = "needs_renovation"
)

// Verdict is the three-way classification of a listing's asking price.
type Verdict string

// Verdict constants.
const (
	VerdictUnderpriced Verdict = "underpriced"
	VerdictFair        Verdict = "fair"
	VerdictOverpriced  Verdict = "overpriced"
)

// Listing is a property advertisement as submitted for analysis.
// City and District are free text matched by case-insensitive substring
// against the regional baseline tables; Address is opaque.
type Listing struct {
	Transaction  TransactionType `json:"transaction_type"`
	Price        float64         `json:"price"`
	Area         float64         `json:"area"`
	City         string          `json:"city"`
	District     string          `json:"district"`
	Address      string          `json:"address,omitempty"`
	Rooms        int             `json:"rooms"`
	Floor        int             `json:"floor"`
	TotalFloors  int             `json:"total_floors"`
	PropertyType PropertyType    `json:"property_type"`
	Condition    Condition       `json:"condition"`
	YearBuilt    int             `json:"year_built"`
	Description  string          `json:"description"`
}

// PricePerArea returns the asking price per square meter.
// Callers must validate Area > 0 first.
func (l *Listing) PricePerArea() float64 {
	return l.Price / l.Area
}

// FactorScore is one named component of the composite score with its
// human-readable justification.
type FactorScore struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Factors holds the five sub-scores behind a detailed analysis.
type Factors struct {
	Price     FactorScore `json:"price"`
	Location  FactorScore `json:"location"`
	Building  FactorScore `json:"building"`
	Size      FactorScore `json:"size"`
	Amenities FactorScore `json:"amenities"`
}

// MarketInsights summarizes the synthetic market context for the listing's
// city. All values derive from the static baseline tables, not live data.
type MarketInsights struct {
	AveragePricePerArea float64 `json:"average_price_per_area"`
	PriceLow            float64 `json:"price_low"`
	PriceHigh           float64 `json:"price_high"`
	Trend               string  `json:"trend"`
	Competition         string  `json:"competition"`
}

// PlatformPrice is one synthetic competitor-platform comparison row.
// Prices are the regional baseline scaled by a fixed per-platform variance
// and listing counts are random; these are display decoration only.
type PlatformPrice struct {
	Platform            string  `json:"platform"`
	AveragePricePerArea float64 `json:"average_price_per_area"`
	ListingCount        int     `json:"listing_count"`
}

// Analysis is the result of scoring a listing. Factors, MarketInsights and
// PlatformPrices are only present in the detailed variant.
type Analysis struct {
	Score          float64         `json:"score"`
	Verdict        Verdict         `json:"verdict"`
	Explanation    string          `json:"explanation"`
	Factors        *Factors        `json:"factors,omitempty"`
	MarketInsights *MarketInsights `json:"market_insights,omitempty"`
	PlatformPrices []PlatformPrice `json:"platform_prices,omitempty"`
}

// SavedProperty is a listing the user bookmarked together with the analysis
// it had at save time. The saved list is unordered and capped.
type SavedProperty struct {
	ID        string    `json:"id"         db:"id"`
	Listing   Listing   `json:"listing"    db:"listing"`
	Analysis  Analysis  `json:"analysis"   db:"analysis"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MinYearBuilt is the oldest accepted construction year, exclusive.
const MinYearBuilt = 1900

// ValidationError reports a single invalid listing field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid listing: " + e.Field + " " + e.Reason
}

// Validation reason constants, used by the API layer to pick localized
// user-facing messages.
const (
	ReasonRequired    = "is required"
	ReasonNotPositive = "must be positive"
	ReasonOutOfRange  = "is out of range"
	ReasonUnknown     = "has an unrecognized value"
)

// Validate checks that all required fields are present and within range.
// Scoring assumes a validated listing; in particular Area and Rooms being
// positive rules out division by zero downstream.
func (l *Listing) Validate() error {
	switch l.Transaction {
	case TransactionRent, TransactionSale:
	case "":
		return &ValidationError{Field: "transaction_type", Reason: ReasonRequired}
	default:
		return &ValidationError{Field: "transaction_type", Reason: ReasonUnknown}
	}

	if l.Price <= 0 {
		return &ValidationError{Field: "price", Reason: ReasonNotPositive}
	}
	if l.Area <= 0 {
		return &ValidationError{Field: "area", Reason: ReasonNotPositive}
	}
	if l.City == "" {
		return &ValidationError{Field: "city", Reason: ReasonRequired}
	}
	if l.Rooms <= 0 {
		return &ValidationError{Field: "rooms", Reason: ReasonNotPositive}
	}
	if l.Floor <= 0 {
		return &ValidationError{Field: "floor", Reason: ReasonNotPositive}
	}
	if l.TotalFloors <= 0 {
		return &ValidationError{Field: "total_floors", Reason: ReasonNotPositive}
	}
	if l.Floor > l.TotalFloors {
		return &ValidationError{Field: "floor", Reason: ReasonOutOfRange}
	}

	switch l.PropertyType {
	case PropertyApartment, PropertyHouse, PropertyStudio, PropertyPenthouse:
	case "":
		return &ValidationError{Field: "property_type", Reason: ReasonRequired}
	default:
		return &ValidationError{Field: "property_type", Reason: ReasonUnknown}
	}

	switch l.Condition {
	case ConditionNew, ConditionRenovated, ConditionGood, ConditionNeedsWork:
	case "":
		return &ValidationError{Field: "condition", Reason: ReasonRequired}
	default:
		return &ValidationError{Field: "condition", Reason: ReasonUnknown}
	}

	if l.YearBuilt <= MinYearBuilt {
		return &ValidationError{Field: "year_built", Reason: ReasonOutOfRange}
	}
	if l.YearBuilt > time.Now().Year()+1 {
		return &ValidationError{Field: "year_built", Reason: ReasonOutOfRange}
	}

	if l.Description == "" {
		return &ValidationError{Field: "description", Reason: ReasonRequired}
	}

	return nil
}
