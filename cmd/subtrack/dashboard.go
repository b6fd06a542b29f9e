package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"subtrack/internal/core"
	"subtrack/internal/services"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show spending totals and the cost per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			subs := store.List()
			currency := string(store.PreferredCurrency())
			summary := services.Summarize(subs)

			fmt.Printf("Active subscriptions: %d\n", summary.ActiveCount)
			fmt.Printf("Monthly total:        %s\n", core.FormatCents(summary.MonthlyCents, currency))
			fmt.Printf("Yearly total:         %s\n", core.FormatCents(summary.YearlyCents, currency))

			if next, ok := services.NextUpcomingPayment(subs, time.Now()); ok {
				fmt.Printf("Next payment:         %s on %s (%s)\n",
					next.Name,
					next.NextPaymentDate.Format("2006-01-02"),
					formatCost(next))
			}

			if len(summary.ByCategory) == 0 {
				return nil
			}

			fmt.Println()
			t := newTable(os.Stdout)
			t.AppendHeader(table.Row{"Category", "Monthly"})
			for _, cc := range summary.ByCategory {
				t.AppendRow(table.Row{
					cc.Category.DisplayName(),
					core.FormatCents(cc.MonthlyCents, currency),
				})
			}
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
			})
			t.Render()
			return nil
		},
	}
}
