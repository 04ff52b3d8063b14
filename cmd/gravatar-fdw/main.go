// Command gravatar-fdw looks up Gravatar profiles by email address,
// exposing the scan engine through a CLI and an MCP server.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/custodia-labs/gravatar-fdw/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gravatar-fdw/internal/adapters/driven/secrets"
	"github.com/custodia-labs/gravatar-fdw/internal/adapters/driven/transport"
	"github.com/custodia-labs/gravatar-fdw/internal/adapters/driving/cli"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driving"
	"github.com/custodia-labs/gravatar-fdw/internal/core/services"
	"github.com/custodia-labs/gravatar-fdw/internal/gravatar"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	secretStore, err := secrets.NewStore("")
	if err != nil {
		return fmt.Errorf("opening secret store: %w", err)
	}
	defer secretStore.Close()

	cfg := gravatar.Config{
		BaseURL:  configStore.GetString(gravatar.OptionAPIURL),
		APIKey:   configStore.GetString(gravatar.OptionAPIKey),
		APIKeyID: configStore.GetString(gravatar.OptionAPIKeyID),
	}

	// The fetcher is built lazily and memoized: credential resolution
	// happens once per session, and a resolution failure is fatal only
	// for commands that actually perform lookups.
	var (
		once    sync.Once
		fetcher *gravatar.Fetcher
		initErr error
	)
	newScanner := func() (driving.ProfileScanner, error) {
		once.Do(func() {
			builder, err := gravatar.NewRequestBuilder(context.Background(), cfg, secretStore)
			if err != nil {
				initErr = err
				return
			}
			policy := gravatar.NewRetryPolicy(cfg, builder.Authenticated())
			fetcher = gravatar.NewFetcher(builder, transport.New(0), policy)
		})
		if initErr != nil {
			return nil, initErr
		}
		return services.NewScanService(fetcher, services.ProfilesTable), nil
	}

	cli.SetServices(newScanner, secretStore, configStore)
	return cli.Execute()
}
