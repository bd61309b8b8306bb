package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akbarovs/uybaho/internal/api/client"
	score "github.com/akbarovs/uybaho/pkg/scorer"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

var (
	analyzeQuick  bool
	analyzeRemote bool
	analyzeJSON   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <listing.json>",
	Short: "Score a listing from a JSON file",
	Long: "Reads a listing from a JSON file (or stdin when the argument is " +
		"\"-\") and prints its score. By default scoring runs locally; " +
		"--remote sends the listing to a running API server instead.",
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeQuick, "quick", false, "skip the factor breakdown")
	analyzeCmd.Flags().BoolVar(&analyzeRemote, "remote", false, "score via the API server")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the raw analysis JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	l, err := readListing(args[0])
	if err != nil {
		return err
	}

	if err := l.Validate(); err != nil {
		return err
	}

	a, err := analyzeListing(cmd.Context(), l)
	if err != nil {
		return err
	}

	if analyzeJSON {
		return outputJSON(a)
	}
	return printAnalysis(l, a)
}

func readListing(path string) (*domain.Listing, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // listing path from CLI arg
	}
	if err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}

	var l domain.Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing listing JSON: %w", err)
	}
	return &l, nil
}

func analyzeListing(ctx context.Context, l *domain.Listing) (*domain.Analysis, error) {
	if analyzeRemote {
		c := client.New(apiURL)
		if analyzeQuick {
			return c.AnalyzeQuick(ctx, l)
		}
		return c.Analyze(ctx, l)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	s := score.New(score.WithWeights(score.Weights{
		Price:     cfg.Scoring.Weights.Price,
		Location:  cfg.Scoring.Weights.Location,
		Building:  cfg.Scoring.Weights.Building,
		Size:      cfg.Scoring.Weights.Size,
		Amenities: cfg.Scoring.Weights.Amenities,
	}))

	var a domain.Analysis
	if analyzeQuick {
		a = s.Quick(l)
	} else {
		a = s.Detailed(l)
	}
	return &a, nil
}
