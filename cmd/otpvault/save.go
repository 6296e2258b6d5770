package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpvault/pkg/logger"
	"github.com/dmitrymomot/otpvault/pkg/totp"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> [secret]",
		Short: "Encrypt and store a TOTP secret under a name",
		Long: `Save encrypts a Base32 TOTP secret and stores it under the given name,
overwriting any existing secret with that name. The secret is taken from the
second argument, or read from stdin when omitted so it stays out of shell
history.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			raw, err := readSecret(cmd, args)
			if err != nil {
				return err
			}

			// Reject undecodable input before it reaches storage; stored
			// secrets are always in canonical Base32 form.
			secret, err := totp.NormalizeSecret(raw)
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.Save(name, secret); err != nil {
				return err
			}

			a.log.Debug("secret saved", logger.SecretName(name))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved secret %q.\n", name)
			return nil
		},
	}
}

// readSecret returns the secret argument, or reads a single line from stdin
// when the argument is omitted.
func readSecret(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Secret: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
