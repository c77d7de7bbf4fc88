package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/savbell/xcproj/internal/process"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	logLevel string
	rootCmd  *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "xcproj",
		Short: "Resolve Xcode workspace and project models",
		Long: `xcproj turns an Xcode workspace into its flat project list and extracts
each project's build configurations and schemes.

Common workflows:
  xcproj projects           List the projects a workspace references
  xcproj schemes            List schemes per project
  xcproj configs            List build configurations per project
  xcproj devices            Show available simulator destinations`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			process.SetGlobalVerbose(verbose)
			slog.SetDefault(newLogger(logLevel))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show underlying commands")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// newLogger builds the process logger; resolver internals log skipped nodes
// and parser fallbacks at debug.
func newLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func Execute(ctx context.Context, version string) error {
	rootCmd.Version = version

	rootCmd.AddCommand(projectsCmd())
	rootCmd.AddCommand(schemesCmd())
	rootCmd.AddCommand(configsCmd())
	rootCmd.AddCommand(devicesCmd())

	return rootCmd.ExecuteContext(ctx)
}

func Verbose() bool { return verbose }
