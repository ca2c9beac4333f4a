// Package cli provides the docsearch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driven/retrieval/httpapi"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/core/services"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	configDir  string
	serviceURL string
	verbose    bool
)

// Services wired by PersistentPreRunE. Commands read them; tests replace
// the factories below instead.
var (
	settingsService *services.SettingsService
	controller      *services.Controller
	searchService   driving.SearchService
	settings        domain.Settings
)

// openConfigStore opens the configuration store in dir.
var openConfigStore = func(dir string) (driven.ConfigStore, error) {
	return file.NewConfigStore(dir)
}

// newRetrieval builds the retrieval service client from resolved settings.
var newRetrieval = func(s domain.Settings) driven.RetrievalService {
	return httpapi.NewClientFromSettings(s)
}

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Search documents on a retrieval service",
	Long: `docsearch uploads plain-text documents to a retrieval service and runs
boolean or proximity queries against them.

Run "docsearch tui" for the interactive interface, or use the commands
below for one-shot operations.`,
	SilenceUsage:      true,
	PersistentPreRunE: wireServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/"+file.DefaultDirName+")")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "url", "", "retrieval service URL (overrides config and environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// wireServices resolves settings and builds the service graph.
func wireServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.Section("docsearch " + cmd.Name())
	log := logger.New("cli")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("ignoring .env file", "error", err)
	}

	store, err := openConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settingsService = services.NewSettingsService(store)
	settings = settingsService.Get()
	if serviceURL != "" {
		settings.ServiceURL = serviceURL
	}

	log.Debug("services wired", "command", cmd.Name(), "service_url", settings.ServiceURL)

	retrieval := newRetrieval(settings)
	controller = services.NewController(retrieval, settings)
	searchService = services.NewQueryService(retrieval, settings.ResultPageSize)
	return nil
}
