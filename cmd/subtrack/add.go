package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"subtrack/internal/core"
	"subtrack/internal/preset"
)

func addCmd() *cobra.Command {
	var (
		cost       string
		currency   string
		cycle      string
		date       string
		category   string
		desc       string
		inactive   bool
		fromPreset string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a subscription",
		Long: `Add a subscription by name. With --preset the cost, cycle and
category are prefilled from the built-in catalog and can still be
overridden with flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := core.Subscription{
				Currency:     core.USD,
				BillingCycle: core.Monthly,
				Category:     core.Other,
				IsActive:     !inactive,
			}
			if len(args) == 1 {
				draft.Name = args[0]
			}

			if fromPreset != "" {
				presets, err := preset.Catalog()
				if err != nil {
					return err
				}
				p, ok := preset.Find(presets, fromPreset)
				if !ok {
					return fmt.Errorf("unknown preset %q, see 'subtrack presets'", fromPreset)
				}
				if draft.Name == "" {
					draft.Name = p.Name
				}
				draft.Cost = core.Money{Cents: p.DefaultCents}
				draft.Currency = p.Currency
				draft.BillingCycle = p.BillingCycle
				draft.Category = p.Category
				draft.Description = p.Description
			}

			if cost != "" {
				cents, err := core.ParseDecimalToCents(cost)
				if err != nil {
					return fmt.Errorf("invalid cost %q: %w", cost, err)
				}
				draft.Cost = core.Money{Cents: cents}
			}
			if currency != "" {
				draft.Currency = core.Currency(currency)
			}
			if cycle != "" {
				draft.BillingCycle = core.BillingCycle(cycle)
			}
			if category != "" {
				draft.Category = core.Category(category)
			}
			if desc != "" {
				draft.Description = desc
			}

			draft.NextPaymentDate = time.Now().AddDate(0, 0, 7)
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
				}
				draft.NextPaymentDate = d
			}

			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			added, err := store.Add(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s, %s %s) id=%s\n",
				added.Name, formatCost(added), added.BillingCycle.DisplayName(),
				added.NextPaymentDate.Format("2006-01-02"), added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&cost, "cost", "", "cost per cycle, e.g. 9.99")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (USD, EUR, GBP, JPY, TWD)")
	cmd.Flags().StringVar(&cycle, "cycle", "", "billing cycle (weekly, monthly, quarterly, semiAnnually, annually)")
	cmd.Flags().StringVar(&date, "date", "", "next payment date, YYYY-MM-DD (default: one week out)")
	cmd.Flags().StringVar(&category, "category", "", "category tag")
	cmd.Flags().StringVar(&desc, "description", "", "free-form note")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create as inactive")
	cmd.Flags().StringVar(&fromPreset, "preset", "", "prefill from a catalog preset by name")
	return cmd
}
