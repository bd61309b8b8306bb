package client

import (
	"context"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

// savePropertyRequest is the body for saving a property.
type savePropertyRequest struct {
	Listing  domain.Listing  `json:"listing"`
	Analysis domain.Analysis `json:"analysis"`
}

// ListSaved returns all saved properties, newest first.
func (c *Client) ListSaved(ctx context.Context) ([]domain.SavedProperty, error) {
	var saved []domain.SavedProperty
	if err := c.get(ctx, "/api/v1/saved", &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// GetSaved returns a single saved property by ID.
func (c *Client) GetSaved(ctx context.Context, id string) (*domain.SavedProperty, error) {
	var sp domain.SavedProperty
	if err := c.get(ctx, "/api/v1/saved/"+id, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// SaveProperty stores a listing together with its analysis.
func (c *Client) SaveProperty(
	ctx context.Context,
	l *domain.Listing,
	a *domain.Analysis,
) (*domain.SavedProperty, error) {
	var sp domain.SavedProperty
	req := savePropertyRequest{Listing: *l, Analysis: *a}
	if err := c.post(ctx, "/api/v1/saved", req, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// DeleteSaved removes a saved property by ID.
func (c *Client) DeleteSaved(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/saved/"+id, nil)
}
