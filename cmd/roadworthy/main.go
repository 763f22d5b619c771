// Command roadworthy is the administrative CLI for the inspection scoring
// engine: score a checklist document, bulk-recalculate stored inspections,
// and export report tables.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DukeRupert/roadworthy/internal"
	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/registry"
	"github.com/DukeRupert/roadworthy/internal/service"
	"github.com/DukeRupert/roadworthy/internal/source"
)

var rootCmd = &cobra.Command{
	Use:   "roadworthy",
	Short: "Vehicle inspection scoring engine",
	Long: `roadworthy evaluates structured vehicle inspection checklists and turns
raw pass/fail findings into a weighted health index, a result code, and
prioritized maintenance recommendations.`,
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("checklist-dir", "", "directory of stored checklist documents (<id>.json)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("source.dir", rootCmd.PersistentFlags().Lookup("checklist-dir"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.SetEnvPrefix("ROADWORTHY")
	viper.AutomaticEnv()

	// Add commands
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(recalculateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(checklistsCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger from the global flags. Console output
// goes to stderr so command output stays pipeable.
func newLogger() *slog.Logger {
	env := "production"
	if viper.GetString("logging.format") == "console" {
		env = "development"
	}
	return internal.NewLogger(os.Stderr, env, viper.GetString("logging.level"))
}

// newEnvironment wires the catalog, checklist source, and scoring service
// shared by all commands.
func newEnvironment() (*registry.Catalog, *source.DirSource, service.ScoringService, *slog.Logger) {
	logger := newLogger()
	catalog := registry.Builtin()

	var (
		dirSource *source.DirSource
		src       domain.ChecklistSource
	)
	if dir := viper.GetString("source.dir"); dir != "" {
		dirSource = source.NewDirSource(dir, catalog)
		src = dirSource
	}

	svc := service.NewScoringService(catalog, src, logger, 0)
	return catalog, dirSource, svc, logger
}

// resolveIDs expands the positional IDs, or lists the whole source
// directory when --all is set.
func resolveIDs(args []string, all bool, dirSource *source.DirSource) ([]string, error) {
	if all {
		if dirSource == nil {
			return nil, fmt.Errorf("--all requires --checklist-dir")
		}
		return dirSource.IDs()
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("provide inspection IDs or use --all")
	}
	return args, nil
}
