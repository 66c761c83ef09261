// Package main provides the CLI entrypoint for microapp-routes.
//
// microapp-routes rewrites a host application's route table so that routes
// bound to a micro app delegate rendering to it:
//   - rewrite: apply the rewrite and write the resulting route table
//   - check: validate the config and route table without rewriting
//   - watch: re-run rewrite whenever the inputs change
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"microapp-routes/internal/config"
)

// app carries the state shared by all commands.
type app struct {
	verbose    bool
	configPath string
	routesPath string
	outPath    string
	genDir     string

	env    config.Env
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "microapp-routes",
		Short: "Attach micro apps to a host route table",
		Long: `microapp-routes rewrites the route table of a micro-frontend host.

Routes carrying the binding attribute (microApp by default) delegate rendering
to the named micro app. Apps declaring a base path get a catch-all route
registered on the host root layout when none exists yet.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			env, err := config.LoadEnv()
			if err != nil {
				return err
			}

			a.env = env

			cfg := zap.NewProductionConfig()
			if a.verbose || env.Debug {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yaml", "host config file")
	rootCmd.PersistentFlags().StringVarP(&a.routesPath, "routes", "r", "routes.yaml", "route table file")

	rootCmd.AddCommand(
		newRewriteCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
	)

	return rootCmd
}
