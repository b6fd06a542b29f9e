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

func listCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  `Display subscriptions with their cost, billing cycle and next charge date.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			subs := store.List()
			if !all {
				subs = store.Active()
			}
			if len(subs) == 0 {
				fmt.Println("No subscriptions. Use 'subtrack add' to create one.")
				return nil
			}

			now := time.Now()
			currency := string(store.PreferredCurrency())

			t := newTable(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Name", "Cost", "Cycle", "Next Payment", "Category", "Status"})
			for _, s := range subs {
				status := text.FgGreen.Sprint("active")
				if !s.IsActive {
					status = text.FgHiBlack.Sprint("inactive")
				}
				t.AppendRow(table.Row{
					s.ID[:8],
					s.Name,
					formatCost(s),
					s.BillingCycle.DisplayName(),
					paymentCell(s, now),
					s.Category.DisplayName(),
					status,
				})
			}
			t.AppendSeparator()
			t.AppendFooter(table.Row{"", "", "", "", "", text.Bold.Sprint("Monthly"),
				text.Bold.Sprint(core.FormatCents(services.TotalMonthlyCents(subs), currency))})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 3, Align: text.AlignRight},
			})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include inactive subscriptions")
	return cmd
}
