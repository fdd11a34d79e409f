// Package cli implements the nyaya command line.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

// Options are the global flags that affect how services are built.
type Options struct {
	// ConfigDir holds config.toml. Empty means ~/.nyaya.
	ConfigDir string

	// DataDir overrides the configured data directory.
	DataDir string

	// Ephemeral keeps FIRs and the outbox in memory only.
	Ephemeral bool
}

// Services are the core services the commands drive.
type Services struct {
	Legal        driving.LegalService
	FIR          driving.FIRService
	Registration driving.RegistrationService
	Chat         driving.ChatService
	Settings     driving.SettingsService
}

// BootstrapFunc builds services for the given options. The returned
// cleanup runs after the command finishes.
type BootstrapFunc func(ctx context.Context, opts Options) (*Services, func(), error)

var (
	version = "dev"
	verbose bool
	options Options

	bootstrap BootstrapFunc
	cleanup   func()

	legalService        driving.LegalService
	firService          driving.FIRService
	registrationService driving.RegistrationService
	chatService         driving.ChatService
	settingsService     driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "nyaya",
	Short: "Legal reference, FIR tracker and assistant",
	Long: `nyaya is a citizen-facing companion for the digital FIR portal.

Browse and search the Indian Penal Code and the Code of Civil Procedure,
look up the status of a registered FIR, file a new FIR, or walk through
the legal assistant in your language.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) { runCleanup() },
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")
	flags.StringVar(&options.ConfigDir, "config-dir", "", "directory holding config.toml (default ~/.nyaya)")
	flags.StringVar(&options.DataDir, "data-dir", "", "directory for the local database and dataset overrides")
	flags.BoolVar(&options.Ephemeral, "ephemeral", false, "keep FIR records and the outbox in memory")
}

// Execute runs the root command.
func Execute() error {
	defer runCleanup()
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by the caller. Services built by bootstrap are released
// whether or not the command fails.
func ExecuteContext(ctx context.Context) error {
	defer runCleanup()
	return rootCmd.ExecuteContext(ctx)
}

// runCleanup releases bootstrapped services at most once. Cobra skips
// post-run hooks when RunE fails, so Execute calls it too.
func runCleanup() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services once flags
// are parsed.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	legalService = s.Legal
	firService = s.FIR
	registrationService = s.Registration
	chatService = s.Chat
	settingsService = s.Settings
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || !needsServices(cmd) {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	services, done, err := bootstrap(ctx, options)
	if err != nil {
		return err
	}
	SetServices(services)
	cleanup = done
	return nil
}

// needsServices is false for commands that only print static text.
func needsServices(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	}
	return true
}

// Sentinel errors for services missing at run time.
var (
	errNoLegal        = errors.New("legal service not configured")
	errNoFIR          = errors.New("fir service not configured")
	errNoRegistration = errors.New("registration service not configured")
	errNoChat         = errors.New("chat service not configured")
	errNoSettings     = errors.New("settings service not configured")
)

// currentPreferences falls back to defaults when settings are unavailable.
func currentPreferences() domain.Preferences {
	if settingsService == nil {
		return domain.DefaultPreferences()
	}
	return settingsService.Preferences()
}

// commandContext returns the command's context or a background one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
