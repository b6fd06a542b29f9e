package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"subtrack/internal/core"
	"subtrack/internal/preset"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in service catalog",
		Long:  `List the catalog entries usable with 'subtrack add --preset'.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			presets, err := preset.Catalog()
			if err != nil {
				return err
			}

			t := newTable(os.Stdout)
			t.AppendHeader(table.Row{"Name", "Default Cost", "Cycle", "Category"})
			for _, p := range presets {
				t.AppendRow(table.Row{
					p.Name,
					core.FormatCents(float64(p.DefaultCents), string(p.Currency)),
					p.BillingCycle.DisplayName(),
					p.Category.DisplayName(),
				})
			}
			t.Render()
			return nil
		},
	}
}
