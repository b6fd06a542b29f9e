package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "subtrack",
	Short: "Track recurring subscriptions from the terminal",
	Long: `subtrack keeps a list of your recurring subscriptions and tells you
what they cost per month and per year, which category eats the most,
and which payments are coming up.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(upcomingCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(currencyCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
