package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/akbarovs/uybaho/internal/metrics"
	"github.com/akbarovs/uybaho/internal/store"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

// limitReachedMessage is the localized 409 body when the saved list is full.
const limitReachedMessage = "Saqlanganlar ro'yxati to'lgan, avval birontasini o'chiring"

// SavedHandler handles saved-property CRUD operations.
type SavedHandler struct {
	store store.Store
}

// NewSavedHandler creates a new SavedHandler.
func NewSavedHandler(s store.Store) *SavedHandler {
	return &SavedHandler{store: s}
}

// --- Input/Output types ---

// ListSavedOutput is the response for listing saved properties.
type ListSavedOutput struct {
	Body []domain.SavedProperty
}

// SavePropertyInput is the input for saving a property.
type SavePropertyInput struct {
	Body struct {
		Listing  domain.Listing  `json:"listing"`
		Analysis domain.Analysis `json:"analysis"`
	}
}

// SavePropertyOutput is the response for saving a property.
type SavePropertyOutput struct {
	Body domain.SavedProperty
}

// GetSavedInput is the input for fetching a single saved property.
type GetSavedInput struct {
	ID string `path:"id" doc:"Saved property ID"`
}

// GetSavedOutput is the response for fetching a single saved property.
type GetSavedOutput struct {
	Body domain.SavedProperty
}

// DeleteSavedInput is the input for deleting a saved property.
type DeleteSavedInput struct {
	ID string `path:"id" doc:"Saved property ID"`
}

// --- Handlers ---

// ListSaved returns all saved properties, newest first.
func (h *SavedHandler) ListSaved(
	ctx context.Context,
	_ *struct{},
) (*ListSavedOutput, error) {
	saved, err := h.store.ListSaved(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list saved properties: " + err.Error())
	}

	if saved == nil {
		saved = []domain.SavedProperty{}
	}

	metrics.SavedOpsTotal.WithLabelValues("list").Inc()
	return &ListSavedOutput{Body: saved}, nil
}

// SaveProperty stores a listing together with its analysis.
func (h *SavedHandler) SaveProperty(
	ctx context.Context,
	input *SavePropertyInput,
) (*SavePropertyOutput, error) {
	if err := input.Body.Listing.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, huma.Error400BadRequest(validationMessage(ve))
		}
		return nil, huma.Error400BadRequest(genericValidationMessage)
	}

	sp := domain.SavedProperty{
		ID:       uuid.NewString(),
		Listing:  input.Body.Listing,
		Analysis: input.Body.Analysis,
	}

	if err := h.store.SaveProperty(ctx, &sp); err != nil {
		if errors.Is(err, store.ErrLimitReached) {
			return nil, huma.Error409Conflict(limitReachedMessage)
		}
		return nil, huma.Error500InternalServerError("failed to save property: " + err.Error())
	}

	metrics.SavedOpsTotal.WithLabelValues("save").Inc()
	return &SavePropertyOutput{Body: sp}, nil
}

// GetSaved returns a single saved property by ID.
func (h *SavedHandler) GetSaved(
	ctx context.Context,
	input *GetSavedInput,
) (*GetSavedOutput, error) {
	sp, err := h.store.GetSaved(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("saved property not found")
		}
		return nil, huma.Error500InternalServerError("failed to get saved property: " + err.Error())
	}

	return &GetSavedOutput{Body: *sp}, nil
}

// DeleteSaved removes a saved property by ID.
func (h *SavedHandler) DeleteSaved(
	ctx context.Context,
	input *DeleteSavedInput,
) (*struct{}, error) {
	if err := h.store.DeleteSaved(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("saved property not found")
		}
		return nil, huma.Error500InternalServerError("failed to delete saved property: " + err.Error())
	}

	metrics.SavedOpsTotal.WithLabelValues("delete").Inc()
	return nil, nil
}

// RegisterSavedRoutes registers saved-property endpoints with the Huma API.
func RegisterSavedRoutes(api huma.API, h *SavedHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-saved",
		Method:      http.MethodGet,
		Path:        "/api/v1/saved",
		Summary:     "List saved properties",
		Description: "Returns all saved properties, newest first.",
		Tags:        []string{"saved"},
	}, h.ListSaved)

	huma.Register(api, huma.Operation{
		OperationID:   "save-property",
		Method:        http.MethodPost,
		Path:          "/api/v1/saved",
		Summary:       "Save a property",
		Description:   "Stores a listing with its analysis. The list is capped; a full list yields 409.",
		Tags:          []string{"saved"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusConflict},
	}, h.SaveProperty)

	huma.Register(api, huma.Operation{
		OperationID: "get-saved",
		Method:      http.MethodGet,
		Path:        "/api/v1/saved/{id}",
		Summary:     "Get a saved property",
		Description: "Returns a single saved property by its ID.",
		Tags:        []string{"saved"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSaved)

	huma.Register(api, huma.Operation{
		OperationID: "delete-saved",
		Method:      http.MethodDelete,
		Path:        "/api/v1/saved/{id}",
		Summary:     "Delete a saved property",
		Description: "Removes a saved property by its ID.",
		Tags:        []string{"saved"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteSaved)
}
