package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpvault/pkg/logger"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored TOTP secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			if err := store.Delete(args[0]); err != nil {
				return err
			}

			a.log.Debug("secret deleted", logger.SecretName(args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted secret %q.\n", args[0])
			return nil
		},
	}
}
