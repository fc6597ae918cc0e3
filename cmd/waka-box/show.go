package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/render"
)

var (
	showDate  string
	showForce bool
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#874BFD")).
	Padding(0, 1)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the rendered box to stdout without touching any note",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDate, "date", "", "date to show (YYYY-MM-DD, default: today)")
	showCmd.Flags().BoolVar(&showForce, "force", false, "bypass the summary cache")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	date, err := resolveDate(showDate)
	if err != nil {
		return err
	}

	sum, fromCache, err := a.summaries.Get(cmd.Context(), date, showForce)
	if err != nil {
		return err
	}

	source := "fresh"
	if fromCache {
		source = "cached"
	}
	fmt.Println(boxStyle.Render(render.Render(sum, a.cfg.MaxRows)))
	fmt.Printf("%s (%s)\n", date, source)
	return nil
}
