package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"microapp-routes/internal/config"
	"microapp-routes/internal/route"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the host config and route table",
		Long: `Reports configuration problems and route table mistakes, such as a bound
route with children or a misspelled binding attribute. Exits non-zero when
any error is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(a.configPath)
			if err != nil {
				return err
			}

			routes, err := route.LoadFile(a.routesPath)
			if err != nil {
				return err
			}

			diags := config.Validate(cfg)
			diags.Merge(route.Validate(routes, cfg.Options().RouteBindingAlias))

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintln(out, d.String())
			}

			if err := diags.Error(); err != nil {
				return err
			}

			fmt.Fprintln(out, "ok")

			return nil
		},
	}
}
