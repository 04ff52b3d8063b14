package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/gravatar-fdw/internal/gravatar"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage stored API key secrets",
	Long: `Stores API keys in the local secret store and prints the reference ID
to configure as ` + gravatar.OptionAPIKeyID + `. Lookups then resolve the key by
reference instead of keeping it in the config file.`,
}

var secretAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Store an API key and print its reference ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runSecretAdd,
}

var secretListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored secrets (values are never shown)",
	RunE:  runSecretList,
}

var secretRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a stored secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runSecretRemove,
}

func init() {
	secretCmd.AddCommand(secretAddCmd)
	secretCmd.AddCommand(secretListCmd)
	secretCmd.AddCommand(secretRemoveCmd)
	rootCmd.AddCommand(secretCmd)
}

func runSecretAdd(cmd *cobra.Command, args []string) error {
	if secretStore == nil {
		return errors.New("secret store not configured")
	}

	cmd.Print("API key: ")
	value := readSecret()
	cmd.Println()

	if value == "" {
		return errors.New("empty API key")
	}

	id, err := secretStore.Put(cmd.Context(), args[0], value)
	if err != nil {
		return fmt.Errorf("storing secret: %w", err)
	}

	cmd.Printf("Stored. Configure with:\n  gravatar-fdw config set %s %s\n", gravatar.OptionAPIKeyID, id)
	return nil
}

func runSecretList(cmd *cobra.Command, _ []string) error {
	if secretStore == nil {
		return errors.New("secret store not configured")
	}

	refs, err := secretStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing secrets: %w", err)
	}

	if len(refs) == 0 {
		cmd.Println("No secrets stored.")
		return nil
	}

	for _, ref := range refs {
		cmd.Printf("  %s  %s  (added %s)\n", ref.ID, ref.Name, ref.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runSecretRemove(cmd *cobra.Command, args []string) error {
	if secretStore == nil {
		return errors.New("secret store not configured")
	}

	if err := secretStore.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("removing secret: %w", err)
	}

	cmd.Println("Removed.")
	return nil
}

// readSecret reads a secret without echo when stdin is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
