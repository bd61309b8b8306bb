package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarovs/uybaho/internal/api/handlers"
	"github.com/akbarovs/uybaho/internal/store"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

func savedAPI(t *testing.T, s store.Store) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	handlers.RegisterSavedRoutes(api, handlers.NewSavedHandler(s))
	return api
}

func saveBody() map[string]any {
	return map[string]any{
		"listing": validListing(),
		"analysis": domain.Analysis{
			Score:       7.2,
			Verdict:     domain.VerdictUnderpriced,
			Explanation: "Narx bozor o'rtachasidan past",
		},
	}
}

func TestListSaved_Empty(t *testing.T) {
	t.Parallel()

	api := savedAPI(t, store.NewMemoryStore(10))

	resp := api.Get("/api/v1/saved")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestSaveProperty_RoundTrip(t *testing.T) {
	t.Parallel()

	api := savedAPI(t, store.NewMemoryStore(10))

	resp := api.Post("/api/v1/saved", saveBody())
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id"`)
	assert.Contains(t, resp.Body.String(), "underpriced")

	resp = api.Get("/api/v1/saved")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Toshkent shahri")
}

func TestSaveProperty_InvalidListing(t *testing.T) {
	t.Parallel()

	api := savedAPI(t, store.NewMemoryStore(10))

	body := saveBody()
	l := validListing()
	l.Price = 0
	body["listing"] = l

	resp := api.Post("/api/v1/saved", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSaveProperty_LimitReached(t *testing.T) {
	t.Parallel()

	api := savedAPI(t, store.NewMemoryStore(2))

	for i := 0; i < 2; i++ {
		resp := api.Post("/api/v1/saved", saveBody())
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := api.Post("/api/v1/saved", saveBody())
	require.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "ro'yxati to'lgan")
}

func TestGetSaved_NotFound(t *testing.T) {
	t.Parallel()

	api := savedAPI(t, store.NewMemoryStore(10))

	resp := api.Get("/api/v1/saved/nonexistent")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteSaved(t *testing.T) {
	t.Parallel()

	ms := store.NewMemoryStore(10)
	api := savedAPI(t, ms)

	resp := api.Post("/api/v1/saved", saveBody())
	require.Equal(t, http.StatusCreated, resp.Code)

	saved, err := ms.ListSaved(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)

	resp = api.Delete("/api/v1/saved/" + saved[0].ID)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = api.Delete("/api/v1/saved/" + saved[0].ID)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSaved_StoreFailure(t *testing.T) {
	t.Parallel()

	api := savedAPI(t, failingStore{})

	resp := api.Get("/api/v1/saved")
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	resp = api.Post("/api/v1/saved", saveBody())
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
