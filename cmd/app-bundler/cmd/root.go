package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/app-bundler/internal/config"
	"github.com/oshokin/app-bundler/internal/logger"
	"github.com/oshokin/app-bundler/internal/service/builder"
	"github.com/oshokin/app-bundler/internal/version"
)

var (
	// configPath to the build configuration YAML file.
	configPath string
	// cleanRequested triggers removal of prior build output before packaging.
	cleanRequested bool
	// logLevel sets the logging verbosity.
	logLevel string

	// rootCmd represents the base command for building the application bundle.
	rootCmd = &cobra.Command{
		Use:   "app-bundler",
		Short: "Build a platform-native application bundle from one configuration.",
		Long: `Builds a finished, platform-native distributable (Windows executable,
macOS app bundle, Linux package) from a single declarative configuration.

The pipeline cleans prior output on request, resolves the configuration for
the host platform, invokes the packaging tool, writes platform metadata
(version resource, Info.plist or desktop entry) and signs the bundle on
macOS when a signing identity is available. The stage log is printed on
success and on failure.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			options := &builder.Options{
				ConfigPath: configPath,
				Clean:      cleanRequested,
			}

			_, err := builder.Run(ctx, options)

			return err
		},
	}
)

// Execute runs the app-bundler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "path to build configuration file")
	rootCmd.Flags().BoolVar(&cleanRequested, "clean", false, "remove build and dist directories before building")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level (debug, info, warn, error)")
}

// defaultConfigPath resolves the default configuration next to the
// executable rather than the working directory, so invoking the tool from
// anywhere finds the same file.
func defaultConfigPath() string {
	executable, err := os.Executable()
	if err != nil {
		return config.DefaultConfigFilename
	}

	return filepath.Join(filepath.Dir(executable), config.DefaultConfigFilename)
}
