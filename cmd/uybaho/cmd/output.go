package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/akbarovs/uybaho/internal/market"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAnalysis(l *domain.Listing, a *domain.Analysis) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("City:\t%s\n", l.City)
	tw.writef("Price:\t$%.0f (%.0f/m²)\n", l.Price, l.PricePerArea())
	tw.writef("Score:\t%.1f/10\n", a.Score)
	tw.writef("Verdict:\t%s\n", a.Verdict)
	tw.writef("Explanation:\t%s\n", a.Explanation)

	if a.Factors != nil {
		tw.writef("\nFACTOR\tSCORE\tREASON\n")
		tw.writef("price\t%.1f\t%s\n", a.Factors.Price.Score, a.Factors.Price.Reason)
		tw.writef("location\t%.1f\t%s\n", a.Factors.Location.Score, a.Factors.Location.Reason)
		tw.writef("building\t%.1f\t%s\n", a.Factors.Building.Score, a.Factors.Building.Reason)
		tw.writef("size\t%.1f\t%s\n", a.Factors.Size.Score, a.Factors.Size.Reason)
		tw.writef("amenities\t%.1f\t%s\n", a.Factors.Amenities.Score, a.Factors.Amenities.Reason)
	}

	if a.MarketInsights != nil {
		tw.writef("\nMarket average:\t%.0f/m² (%.0f - %.0f)\n",
			a.MarketInsights.AveragePricePerArea,
			a.MarketInsights.PriceLow,
			a.MarketInsights.PriceHigh,
		)
		tw.writef("Trend:\t%s\n", a.MarketInsights.Trend)
		tw.writef("Competition:\t%s\n", a.MarketInsights.Competition)
	}

	if len(a.PlatformPrices) > 0 {
		tw.writef("\nPLATFORM\tAVG/m²\tLISTINGS\n")
		for _, p := range a.PlatformPrices {
			tw.writef("%s\t%.0f\t%d\n", p.Platform, p.AveragePricePerArea, p.ListingCount)
		}
	}

	return tw.finish()
}

func printRegionsTable(regions []market.Region) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("REGION\tSALE/m²\tRENT/m²\tLOCATION\tGROWTH\n")
	for i := range regions {
		tw.writef("%s\t$%.0f\t$%.1f\t%.1f\t%+.1f\n",
			regions[i].Name,
			regions[i].SaleRate,
			regions[i].RentRate,
			regions[i].LocationBase,
			regions[i].Growth,
		)
	}
	return tw.finish()
}

func printSavedTable(saved []domain.SavedProperty) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCITY\tPRICE\tSCORE\tVERDICT\tSAVED\n")
	for i := range saved {
		sp := &saved[i]
		tw.writef("%s\t%s\t$%.0f\t%.1f\t%s\t%s\n",
			sp.ID,
			sp.Listing.City,
			sp.Listing.Price,
			sp.Analysis.Score,
			sp.Analysis.Verdict,
			sp.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
