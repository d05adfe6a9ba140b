// Command edumarket is the command-line client of the course marketplace.
// Every invocation restores the logged-in user from the store.
package main

import (
	"fmt"
	"os"

	"edumarket/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger      *zap.Logger
	application *app
)

var rootCmd = &cobra.Command{
	Use:   "edumarket",
	Short: "EduMarket - learn and teach in bite-sized course sections",
	Long: `EduMarket is a course marketplace: students buy course sections,
track their progress and earn badges; tutors qualify through a short
assessment and publish courses.

State is kept in a local store selected by STORAGE_BACKEND (bolt, sql or memory).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if logger == nil {
			zcfg := zap.NewProductionConfig()
			if verbose || cfg.Debug || cfg.LogLevel == "debug" {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}

		if application != nil {
			return nil
		}
		a, err := openApp(cmd.Context(), cfg, logger, cmd.Name() != seedCmd.Name())
		if err != nil {
			return err
		}
		application = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			if err := application.Close(); err != nil {
				logger.Warn("Failed to close store", zap.Error(err))
			}
			application = nil
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(purchaseCmd, completeCmd, progressCmd, reviewCmd, badgesCmd, dashboardCmd)
	rootCmd.AddCommand(tutorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
