package client

import (
	"context"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

// Analyze scores a listing with the full factor breakdown.
func (c *Client) Analyze(ctx context.Context, l *domain.Listing) (*domain.Analysis, error) {
	var a domain.Analysis
	if err := c.post(ctx, "/api/v1/analyze", l, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AnalyzeQuick scores a listing and returns only the score, verdict and
// explanation.
func (c *Client) AnalyzeQuick(ctx context.Context, l *domain.Listing) (*domain.Analysis, error) {
	var a domain.Analysis
	if err := c.post(ctx, "/api/v1/analyze/quick", l, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
