package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akbarovs/uybaho/internal/api/client"
)

var savedJSON bool

func savedCmd() *cobra.Command {
	savedRoot := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved properties on a running server",
	}

	savedRoot.PersistentFlags().BoolVar(&savedJSON, "json", false, "print JSON")
	savedRoot.AddCommand(savedListCmd(), savedDeleteCmd())

	return savedRoot
}

func init() {
	rootCmd.AddCommand(savedCmd())
}

func savedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved properties",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := client.New(apiURL)
			saved, err := c.ListSaved(context.Background())
			if err != nil {
				return err
			}

			if savedJSON {
				return outputJSON(saved)
			}

			if len(saved) == 0 {
				fmt.Println("No saved properties.")
				return nil
			}

			return printSavedTable(saved)
		},
	}
}

func savedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved property",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := client.New(apiURL)
			if err := c.DeleteSaved(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Deleted.")
			return nil
		},
	}
}
