// Package cli provides the cobra command-line driving adapter.
// The CLI acts as a host: it drives the scan iterator protocol and
// projects the produced row for terminal or JSON output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gravatar-fdw/internal/adapters/driven/secrets"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driven"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driving"
	"github.com/custodia-labs/gravatar-fdw/internal/logger"
)

// Injected services. Set via SetServices before Execute.
var (
	newScanner  func() (driving.ProfileScanner, error)
	secretStore *secrets.Store
	configStore driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "gravatar-fdw",
	Short: "Look up Gravatar profiles by email address",
	Long: `A read-only adapter for the Gravatar profile directory.

Looks up a single profile per email address, addressing it by the
SHA-256 hash of the normalized address, and maps the response into a
fixed relational row shape.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the services the commands depend on.
// scannerFactory creates one scanner per scan invocation.
func SetServices(
	scannerFactory func() (driving.ProfileScanner, error),
	secretsStore *secrets.Store,
	config driven.ConfigStore,
) {
	newScanner = scannerFactory
	secretStore = secretsStore
	configStore = config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
