package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/config"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/loader"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/plan"
)

type rootOptions struct {
	logLevel string
	envFile  string
	noColor  bool
	env      config.Env
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "dynplot",
		Short: "Plot PSSE dynamic simulation channels",
		Long: `dynplot reads channel tables exported from PSSE dynamic simulations
(.csv, .txt, .xlsx, .json), lists their channels and renders PNG charts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			env, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			opts.env = env
			level := opts.logLevel
			if level == "" {
				level = env.LogLevel
			}
			if level != "" && !logging.SetLevel(level) {
				return fmt.Errorf("unknown log level %q", level)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", config.DefaultEnvFile, "Optional dotenv file")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newChannelsCmd())
	cmd.AddCommand(newRenderCmd(opts))
	return cmd
}

// loadSession opens path into a fresh session.
func loadSession(ctx context.Context, path string) (*plan.Session, error) {
	s := plan.NewSession()
	if err := s.Load(ctx, loader.Default(), path); err != nil {
		return nil, err
	}
	return s, nil
}
