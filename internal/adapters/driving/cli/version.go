package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gravatar-fdw/internal/gravatar"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("gravatar-fdw version %s\n", gravatar.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
