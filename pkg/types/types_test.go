package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

func validListing() domain.Listing {
	return domain.Listing{
		Transaction:  domain.TransactionSale,
		Price:        112800,
		Area:         100,
		City:         "Toshkent shahri",
		District:     "Chilonzor",
		Rooms:        3,
		Floor:        4,
		TotalFloors:  9,
		PropertyType: domain.PropertyApartment,
		Condition:    domain.ConditionGood,
		YearBuilt:    2015,
		Description:  "Yaxshi holatdagi kvartira",
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	l := validListing()
	require.NoError(t, l.Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*domain.Listing)
		wantField  string
		wantReason string
	}{
		{
			name:       "missing transaction",
			mutate:     func(l *domain.Listing) { l.Transaction = "" },
			wantField:  "transaction_type",
			wantReason: domain.ReasonRequired,
		},
		{
			name:       "unknown transaction",
			mutate:     func(l *domain.Listing) { l.Transaction = "lease" },
			wantField:  "transaction_type",
			wantReason: domain.ReasonUnknown,
		},
		{
			name:       "zero price",
			mutate:     func(l *domain.Listing) { l.Price = 0 },
			wantField:  "price",
			wantReason: domain.ReasonNotPositive,
		},
		{
			name:       "negative area",
			mutate:     func(l *domain.Listing) { l.Area = -1 },
			wantField:  "area",
			wantReason: domain.ReasonNotPositive,
		},
		{
			name:       "missing city",
			mutate:     func(l *domain.Listing) { l.City = "" },
			wantField:  "city",
			wantReason: domain.ReasonRequired,
		},
		{
			name:       "zero rooms",
			mutate:     func(l *domain.Listing) { l.Rooms = 0 },
			wantField:  "rooms",
			wantReason: domain.ReasonNotPositive,
		},
		{
			name:       "floor above total floors",
			mutate:     func(l *domain.Listing) { l.Floor = 12 },
			wantField:  "floor",
			wantReason: domain.ReasonOutOfRange,
		},
		{
			name:       "unknown property type",
			mutate:     func(l *domain.Listing) { l.PropertyType = "yurt" },
			wantField:  "property_type",
			wantReason: domain.ReasonUnknown,
		},
		{
			name:       "missing condition",
			mutate:     func(l *domain.Listing) { l.Condition = "" },
			wantField:  "condition",
			wantReason: domain.ReasonRequired,
		},
		{
			name:       "year built too old",
			mutate:     func(l *domain.Listing) { l.YearBuilt = 1900 },
			wantField:  "year_built",
			wantReason: domain.ReasonOutOfRange,
		},
		{
			name:       "year built in the future",
			mutate:     func(l *domain.Listing) { l.YearBuilt = time.Now().Year() + 2 },
			wantField:  "year_built",
			wantReason: domain.ReasonOutOfRange,
		},
		{
			name:       "missing description",
			mutate:     func(l *domain.Listing) { l.Description = "" },
			wantField:  "description",
			wantReason: domain.ReasonRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := validListing()
			tt.mutate(&l)

			err := l.Validate()
			require.Error(t, err)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantReason, ve.Reason)
		})
	}
}

func TestPricePerArea(t *testing.T) {
	t.Parallel()

	l := validListing()
	assert.InDelta(t, 1128.0, l.PricePerArea(), 0.001)
}
