package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akbarovs/uybaho/internal/market"
)

var ratesJSON bool

var ratesCmd = &cobra.Command{
	Use:   "rates [city]",
	Short: "Show regional price baselines",
	Long: "Without arguments, prints the full regional baseline table. With " +
		"a city name, prints the rates that city resolves to.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRates,
}

func init() {
	ratesCmd.Flags().BoolVar(&ratesJSON, "json", false, "print JSON")
	rootCmd.AddCommand(ratesCmd)
}

func runRates(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		regions := market.Regions()
		if ratesJSON {
			return outputJSON(regions)
		}
		return printRegionsTable(regions)
	}

	r := market.Lookup(args[0])

	if ratesJSON {
		return outputJSON(r)
	}

	tw := newTabWriter(os.Stdout)
	tw.writef("Region:\t%s\n", r.Name)
	tw.writef("Sale:\t$%.0f/m²\n", r.SaleRate)
	tw.writef("Rent:\t$%.1f/m²\n", r.RentRate)
	tw.writef("Trend:\t%s\n", market.Trend(r.Growth))
	tw.writef("Competition:\t%s\n", r.Competition)
	return tw.finish()
}
