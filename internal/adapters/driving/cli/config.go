package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gravatar-fdw/internal/gravatar"
)

// configKeys are the keys the config command accepts.
var configKeys = map[string]string{
	gravatar.OptionAPIURL:   "profiles endpoint override",
	gravatar.OptionAPIKey:   "API key (prefer " + gravatar.OptionAPIKeyID + ")",
	gravatar.OptionAPIKeyID: "secret store reference for the API key",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage adapter configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func checkConfigKey(key string) error {
	if _, ok := configKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q (valid: %s, %s, %s)",
			key, gravatar.OptionAPIURL, gravatar.OptionAPIKey, gravatar.OptionAPIKeyID)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	if err := checkConfigKey(args[0]); err != nil {
		return err
	}

	if err := configStore.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	if err := checkConfigKey(args[0]); err != nil {
		return err
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		cmd.Println("(not set)")
		return nil
	}
	cmd.Println(val)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	if err := checkConfigKey(args[0]); err != nil {
		return err
	}

	if err := configStore.Delete(args[0]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
