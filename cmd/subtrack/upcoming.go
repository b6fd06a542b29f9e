package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"subtrack/internal/services"
)

func upcomingCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List payments due within a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 0 {
				return fmt.Errorf("days must be non-negative, got %d", days)
			}

			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			now := time.Now()
			upcoming := services.UpcomingPayments(store.List(), now, days)
			if len(upcoming) == 0 {
				fmt.Printf("No payments due in the next %d days.\n", days)
				return nil
			}

			t := newTable(os.Stdout)
			t.AppendHeader(table.Row{"Date", "Name", "Cost", "Cycle"})
			for _, s := range upcoming {
				t.AppendRow(table.Row{
					s.NextPaymentDate.Format("2006-01-02"),
					s.Name,
					formatCost(s),
					s.BillingCycle.DisplayName(),
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", services.DefaultUpcomingWindowDays, "window size in days")
	return cmd
}
