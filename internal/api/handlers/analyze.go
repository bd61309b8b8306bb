package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akbarovs/uybaho/internal/metrics"
	score "github.com/akbarovs/uybaho/pkg/scorer"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

// AnalyzeHandler scores submitted listings.
type AnalyzeHandler struct {
	scorer *score.Scorer
	delay  time.Duration
}

// NewAnalyzeHandler creates a new AnalyzeHandler. A non-zero delay is
// applied before responding so clients can show a progress state.
func NewAnalyzeHandler(s *score.Scorer, delay time.Duration) *AnalyzeHandler {
	return &AnalyzeHandler{scorer: s, delay: delay}
}

// Detailed handles POST /api/v1/analyze.
//
// @Summary Analyze a listing
// @Description Scores a listing and returns the full factor breakdown,
// @Description market insights and platform comparison.
// @Tags analyze
// @Accept json
// @Produce json
// @Param listing body domain.Listing true "Listing to analyze"
// @Success 200 {object} domain.Analysis
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) Detailed(c echo.Context) error {
	return h.analyze(c, "detailed", h.scorer.Detailed)
}

// Quick handles POST /api/v1/analyze/quick.
//
// @Summary Quick-analyze a listing
// @Description Scores a listing and returns only the score, verdict and
// @Description a short explanation.
// @Tags analyze
// @Accept json
// @Produce json
// @Param listing body domain.Listing true "Listing to analyze"
// @Success 200 {object} domain.Analysis
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/analyze/quick [post]
func (h *AnalyzeHandler) Quick(c echo.Context) error {
	return h.analyze(c, "quick", h.scorer.Quick)
}

func (h *AnalyzeHandler) analyze(
	c echo.Context,
	variant string,
	fn func(*domain.Listing) domain.Analysis,
) error {
	var l domain.Listing
	if err := c.Bind(&l); err != nil {
		// Unparseable bodies surface as a server error, matching the
		// behavior the web form was built against.
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "so'rovni o'qib bo'lmadi",
		})
	}

	if err := l.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues(ve.Field).Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": validationMessage(ve),
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": genericValidationMessage,
		})
	}

	if err := h.wait(c); err != nil {
		return err
	}

	analysis := fn(&l)

	metrics.AnalysesTotal.WithLabelValues(variant, string(analysis.Verdict)).Inc()
	metrics.ScoreDistribution.Observe(analysis.Score)

	return c.JSON(http.StatusOK, analysis)
}

// wait sleeps for the configured delay, aborting early if the client
// disconnects.
func (h *AnalyzeHandler) wait(c echo.Context) error {
	if h.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(h.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-c.Request().Context().Done():
		return c.Request().Context().Err()
	}
}
