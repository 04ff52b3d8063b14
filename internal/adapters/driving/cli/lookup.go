package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup [email]",
	Short: "Look up the profile for an email address",
	Long: `Fetches the Gravatar profile for a single email address and prints the
resulting row. A private or non-existent profile yields an empty result,
not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output the row as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if newScanner == nil {
		return errors.New("scanner not configured")
	}

	scanner, err := newScanner()
	if err != nil {
		return err
	}
	defer scanner.End()

	ctx := cmd.Context()
	quals := []domain.Qual{
		{Column: domain.KeyColumn, Operator: domain.OpEqual, Value: args[0]},
	}

	if err := scanner.Begin(ctx, quals, domain.Columns()); err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	row, err := scanner.Next(ctx)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if row == nil {
		cmd.Println("No profile found.")
		return nil
	}

	if lookupJSON {
		return outputLookupJSON(cmd, row)
	}
	return outputLookupTable(cmd, row)
}

func outputLookupJSON(cmd *cobra.Command, row *domain.Row) error {
	cells := make(map[string]any, len(domain.Columns()))
	for _, col := range domain.Columns() {
		val, _ := row.Cell(col)
		cells[col] = val
	}

	data, err := json.MarshalIndent(cells, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputLookupTable(cmd *cobra.Command, row *domain.Row) error {
	for _, col := range domain.Columns() {
		val, _ := row.Cell(col)
		if val == nil {
			continue
		}
		if raw, ok := val.(json.RawMessage); ok {
			val = string(raw)
		}
		cmd.Printf("  %-26s %v\n", col, val)
	}
	return nil
}
