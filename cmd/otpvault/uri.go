package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpvault/pkg/totp"
)

func newURICmd(a *app) *cobra.Command {
	var (
		issuer  string
		account string
		digits  int
		period  int
	)

	cmd := &cobra.Command{
		Use:   "uri <name>",
		Short: "Print the otpauth:// provisioning URI for a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			secret, err := store.Load(args[0])
			if err != nil {
				return err
			}

			uri, err := totp.ProvisioningURI(totp.URIParams{
				Secret:      secret,
				Issuer:      issuer,
				AccountName: account,
				Digits:      digits,
				Period:      period,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		},
	}

	cmd.Flags().StringVar(&issuer, "issuer", "", "service name shown in authenticator apps (required)")
	cmd.Flags().StringVar(&account, "account", "", "account label, usually an email address (required)")
	cmd.Flags().IntVar(&digits, "digits", totp.DefaultDigits, "number of code digits")
	cmd.Flags().IntVar(&period, "period", totp.DefaultPeriod, "code validity window in seconds")
	return cmd
}
