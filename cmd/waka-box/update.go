package main

import (
	"github.com/spf13/cobra"
)

var (
	updateDate  string
	updateForce bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the day's summary and merge the box into the daily note",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateDate, "date", "", "date to update (YYYY-MM-DD, default: today)")
	updateCmd.Flags().BoolVar(&updateForce, "force", false, "bypass the summary cache")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	date, err := resolveDate(updateDate)
	if err != nil {
		return err
	}

	return a.runner.Run(cmd.Context(), date, updateForce)
}
