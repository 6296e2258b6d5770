package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpvault/pkg/totp"
	"github.com/dmitrymomot/otpvault/pkg/vault"
)

func newKeygenCmd(a *app) *cobra.Command {
	var master bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new Base32 TOTP secret",
		Long: `Keygen prints a freshly generated 160-bit TOTP secret in Base32, suitable
for enrolling a new account. With --master it instead prints a vault master
key in the form accepted by OTPVAULT_ENCRYPTION_KEY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if master {
				key, err := vault.GenerateEncodedEncryptionKey()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
				return nil
			}

			secret, err := totp.GenerateSecretKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}

	cmd.Flags().BoolVar(&master, "master", false, "generate a vault master key instead of a TOTP secret")
	return cmd
}
