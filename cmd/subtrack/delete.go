package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subtrack/internal/core"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subscription",
		Long:  `Delete a subscription by id. An unambiguous id prefix is enough.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			target, err := resolveID(store.List(), args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), target.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s (%s)\n", target.Name, target.ID)
			return nil
		},
	}
}

func resolveID(subs []core.Subscription, prefix string) (core.Subscription, error) {
	var matches []core.Subscription
	for _, s := range subs {
		if strings.HasPrefix(s.ID, prefix) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return core.Subscription{}, fmt.Errorf("no subscription with id %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return core.Subscription{}, fmt.Errorf("id prefix %q matches %d subscriptions", prefix, len(matches))
	}
}
