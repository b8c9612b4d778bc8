package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/gui"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/tui"
)

var (
	configFile string
	preset     string
	logLevel   string

	traceDt         float64
	traceSteps      int
	traceIntegrator string
)

// main runs the window by default; tui, trace and presets are subcommands.
// Errors from any command are logged once and exit with status 1.
func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pendulum",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd(logger)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logger.Error("exit", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pendulum",
		Short:         "real-time simple pendulum",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}
			return gui.Run(cfg, logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset initial conditions")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the pendulum in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}
			return tui.Run(cfg, logger)
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless with a fixed step and plot the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dt") {
				cfg.Trace.Dt = traceDt
			}
			if cmd.Flags().Changed("steps") {
				cfg.Trace.Steps = traceSteps
			}
			if cmd.Flags().Changed("integrator") {
				cfg.Physics.Integrator = traceIntegrator
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runTrace(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}
	traceCmd.Flags().Float64Var(&traceDt, "dt", config.DefaultTraceDt, "timestep in seconds")
	traceCmd.Flags().IntVar(&traceSteps, "steps", config.DefaultTraceSteps, "number of steps")
	traceCmd.Flags().StringVar(&traceIntegrator, "integrator", integrators.SemiImplicit, "semi-implicit, euler or rk4")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), presetTable())
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, traceCmd, presetsCmd)
	return rootCmd
}

// loadConfig starts from the file given by --config, or the defaults, and
// applies --preset on top.
func loadConfig(logger *log.Logger) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
		logger.Debug("applied preset", "name", preset)
	}
	return cfg, nil
}
