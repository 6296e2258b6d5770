package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpvault/pkg/totp"
)

func newCodeCmd(a *app) *cobra.Command {
	var (
		digits int
		period int
	)

	cmd := &cobra.Command{
		Use:   "code <name>",
		Short: "Generate the current one-time code for a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			device, err := totp.NewDevice(store,
				totp.WithDigits(digits),
				totp.WithPeriod(period),
			)
			if err != nil {
				return err
			}

			code, err := device.Code(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}

	cmd.Flags().IntVar(&digits, "digits", totp.DefaultDigits, "number of code digits")
	cmd.Flags().IntVar(&period, "period", totp.DefaultPeriod, "code validity window in seconds")
	return cmd
}
