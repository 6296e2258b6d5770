package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpvault/pkg/logger"
	"github.com/dmitrymomot/otpvault/pkg/vault"
)

// app carries state shared by all subcommands.
type app struct {
	log     *slog.Logger
	backend string
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "otpvault",
		Short: "Store TOTP secrets securely and generate one-time codes",
		Long: `otpvault stores TOTP secrets encrypted at rest and generates RFC 6238
one-time codes from them.

Secrets live in the OS keyring by default; a file-backed vault is available
for hosts without one (set OTPVAULT_BACKEND=file or pass --backend file).
Codes and secrets print to stdout, diagnostics to stderr, so output is safe
to pipe.`,
		Example: `  otpvault save github
  otpvault code github
  otpvault uri github --issuer GitHub --account me@example.com`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.New(
				logger.WithVerbose(a.verbose),
				logger.WithAttr(logger.Component("cli")),
			)
			logger.SetAsDefault(a.log)
		},
	}

	cmd.PersistentFlags().StringVar(&a.backend, "backend", "", `vault backend: "keyring" or "file" (overrides OTPVAULT_BACKEND)`)
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newSaveCmd(a),
		newShowCmd(a),
		newCodeCmd(a),
		newDeleteCmd(a),
		newKeygenCmd(a),
		newURICmd(a),
	)
	return cmd
}

// openStore builds the configured vault backend, honoring the --backend flag
// over the environment.
func (a *app) openStore() (vault.Store, error) {
	cfg, err := vault.LoadConfig()
	if err != nil {
		return nil, err
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}

	store, err := vault.New(cfg)
	if err != nil {
		return nil, err
	}
	a.log.Debug("vault opened", logger.Backend(cfg.Backend))
	return store, nil
}
