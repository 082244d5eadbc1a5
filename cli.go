package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docker-tui/internal/config"
	"docker-tui/internal/docker"
	"docker-tui/internal/logger"
	"docker-tui/internal/runner"
	"docker-tui/internal/types"
	"docker-tui/internal/ui"
)

const invalidModeText = "Invalid mode. Use 'menu', 'shell', 'log', 'restart', 'start' or 'stop'."

type rootOptions struct {
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	validArgs := make([]string, 0, len(types.Modes))
	for _, m := range types.Modes {
		validArgs = append(validArgs, string(m))
	}

	cmd := &cobra.Command{
		Use:   "docker-tui [mode]",
		Short: "Pick a container from a menu and shell into it, follow its logs, or restart, start or stop it",
		Long: `docker-tui lists containers in a terminal menu and runs the chosen action on them.

Modes:
  menu    - Open options Menu (default)
  shell   - Open a shell
  log     - Follow container logs
  restart - Restart a container
  start   - Start every container of a network
  stop    - Stop every container of a network`,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     validArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterface(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/docker-tui/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return reportError(err)
			}
			out, err := cfg.Dump()
			if err != nil {
				return reportError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(viper.New(), opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

func runInterface(cmd *cobra.Command, opts *rootOptions, args []string) error {
	mode := types.ModeMenu
	if len(args) == 1 {
		parsed, err := types.ParseMode(args[0])
		if err != nil {
			color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), invalidModeText)
			return nil
		}
		mode = parsed
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return reportError(err)
	}

	if err := logger.Setup(cfg.Log.File, cfg.Log.Level); err != nil {
		return reportError(fmt.Errorf("failed to open log file: %w", err))
	}
	defer logger.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return reportError(errors.New("docker-tui needs an interactive terminal"))
	}

	engine, err := docker.New(docker.Options{
		Binary:      cfg.Engine.Binary,
		Backend:     cfg.Engine.Backend,
		Shells:      cfg.Shell.Candidates,
		StopTimeout: cfg.StopTimeout(),
	})
	if err != nil {
		return reportError(err)
	}
	defer engine.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting", "mode", mode, "engine", cfg.Engine.Binary, "backend", cfg.Engine.Backend)
	if err := ui.Run(ctx, engine, runner.NewSpinner(cfg.Spinner.Interval), mode); err != nil {
		logger.Error("Exiting", "error", err)
		return reportError(err)
	}
	return nil
}

// reportError prints err once the terminal is back to normal and hands it to cobra for the
// exit status
func reportError(err error) error {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
