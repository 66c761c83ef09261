package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"microapp-routes/internal/config"
	"microapp-routes/internal/gen"
	"microapp-routes/internal/rewrite"
	"microapp-routes/internal/route"
)

func newRewriteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite the route table and write the result",
		Long: `Loads the host config and route table, attaches micro apps to bound routes,
registers catch-all routes for apps with a base path and writes the rewritten
table as YAML (stdout unless --out is given).

With --gen-dir the table is also emitted as a JavaScript routes module.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.rewrite(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&a.outPath, "out", "o", "", "output file for the rewritten route table")
	cmd.Flags().StringVar(&a.genDir, "gen-dir", "", "directory for the generated routes module")

	return cmd
}

// load reads both inputs and runs validation. Validation errors abort.
func (a *app) load() (*config.Config, []*route.Route, error) {
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return nil, nil, err
	}

	routes, err := route.LoadFile(a.routesPath)
	if err != nil {
		return nil, nil, err
	}

	diags := config.Validate(cfg)
	diags.Merge(route.Validate(routes, cfg.Options().RouteBindingAlias))

	for _, d := range diags.All() {
		a.logger.Warn("validation", zap.String("diagnostic", d.String()))
	}

	if err := diags.Error(); err != nil {
		return nil, nil, err
	}

	return cfg, routes, nil
}

func (a *app) rewrite(stdout io.Writer) error {
	cfg, routes, err := a.load()
	if err != nil {
		return err
	}

	routes, err = rewrite.Modify(routes, cfg.Options(), rewrite.WithLogger(a.logger))
	if err != nil {
		return err
	}

	if a.env.Debug {
		a.logger.Debug("rewritten routes", zap.String("dump", spew.Sdump(routes)))
	}

	if a.outPath != "" {
		if err := route.WriteFile(routes, a.outPath); err != nil {
			return err
		}
	} else {
		data, err := route.Marshal(routes)
		if err != nil {
			return err
		}

		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing routes: %w", err)
		}
	}

	if a.genDir == "" {
		return nil
	}

	files, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(routes)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files, a.genDir)
	if err != nil {
		return err
	}

	a.logger.Info("routes module generated", zap.String("dir", a.genDir), zap.Strings("written", written))

	return nil
}
