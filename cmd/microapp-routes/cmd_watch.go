package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"microapp-routes/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rewrite the route table whenever its inputs change",
		Long: `Runs rewrite once, then again every time the config or route table file
changes. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, cmd)
		},
	}

	cmd.Flags().StringVarP(&a.outPath, "out", "o", "", "output file for the rewritten route table")
	cmd.Flags().StringVar(&a.genDir, "gen-dir", "", "directory for the generated routes module")

	return cmd
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command) error {
	if err := a.rewrite(cmd.OutOrStdout()); err != nil {
		a.logger.Error("rewrite failed", zap.Error(err))
	}

	w, err := watch.New([]string{a.configPath, a.routesPath}, func(_ context.Context, changed []string) {
		a.logger.Info("inputs changed, rewriting", zap.Strings("files", changed))

		if err := a.rewrite(cmd.OutOrStdout()); err != nil {
			a.logger.Error("rewrite failed", zap.Error(err))
		}
	}, watch.WithLogger(a.logger))
	if err != nil {
		return err
	}

	w.Start(ctx)
	defer w.Stop()

	a.logger.Info("watching", zap.String("config", a.configPath), zap.String("routes", a.routesPath))

	<-w.Done()

	return nil
}
