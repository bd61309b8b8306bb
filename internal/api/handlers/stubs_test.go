package handlers_test

import (
	"context"
	"errors"
	"time"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

// errStoreDown simulates a backend outage in handler tests.
var errStoreDown = errors.New("store down")

// failingStore returns errStoreDown from every operation.
type failingStore struct{}

func (failingStore) SaveProperty(context.Context, *domain.SavedProperty) error {
	return errStoreDown
}

func (failingStore) GetSaved(context.Context, string) (*domain.SavedProperty, error) {
	return nil, errStoreDown
}

func (failingStore) ListSaved(context.Context) ([]domain.SavedProperty, error) {
	return nil, errStoreDown
}

func (failingStore) DeleteSaved(context.Context, string) error {
	return errStoreDown
}

func (failingStore) CountSaved(context.Context) (int, error) {
	return 0, errStoreDown
}

func (failingStore) DeleteOlderThan(context.Context, time.Time) (int, error) {
	return 0, errStoreDown
}

func (failingStore) Ping(context.Context) error { return errStoreDown }

func (failingStore) Close() {}

// validListing returns a listing that passes validation.
func validListing() domain.Listing {
	return domain.Listing{
		Transaction:  domain.TransactionSale,
		Price:        112800,
		Area:         100,
		City:         "Toshkent shahri",
		District:     "Chilonzor tumani",
		Rooms:        3,
		Floor:        4,
		TotalFloors:  9,
		PropertyType: domain.PropertyApartment,
		Condition:    domain.ConditionGood,
		YearBuilt:    2015,
		Description:  "Yangi ta'mirlangan, metro yaqinida, konditsioner bor",
	}
}
