package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subtrack/internal/core"
)

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or set the preferred display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if len(args) == 0 {
				fmt.Println(string(store.PreferredCurrency()))
				return nil
			}

			c := core.Currency(args[0])
			if err := store.SetPreferredCurrency(cmd.Context(), c); err != nil {
				return fmt.Errorf("set currency: %w (valid: %v)", err, core.AllCurrencies)
			}
			fmt.Printf("Preferred currency set to %s\n", string(c))
			return nil
		},
	}
}
