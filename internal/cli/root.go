package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/viewscale/viewscale/pkg/config"
	"github.com/viewscale/viewscale/pkg/log"
)

const (
	cmdName = "viewscale"
	cmdDesc = `Device-aware scaling engine for UI dimension values.`

	cmdExamples = `  # Open the interactive inspector in the current terminal:
  viewscale

  # Compute a width-scaled size at a given viewport:
  viewscale size 100 --axis width --width 375 --height 812

  # Compute with clamp bounds:
  viewscale size 100 --width 768 --height 1024 --min 90 --max 110

  # Show the token table on a tablet viewport:
  viewscale tokens --width 768 --height 1024

  # Watch the config file and reload the inspector on changes:
  viewscale inspect --watch`
)

type RootArgs struct {
	LogLevel  string
	LogFormat string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	sizeCmd := NewSizeCmd(NewSizeArgs(args))
	tokensCmd := NewTokensCmd(NewTokensArgs(args))

	inspectArgs := NewInspectArgs(args)
	inspectCmd := NewInspectCmd(inspectArgs)

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		Args:              inspectCmd.Args,
		RunE:              inspectCmd.RunE,
	}

	args.AddFlags(cmd)
	inspectArgs.AddFlags(cmd)
	cmd.AddCommand(sizeCmd, tokensCmd, inspectCmd)

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(rc *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), rc.LogLevel, rc.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))

		return nil
	}
}

// loadConfig reads the configuration file. A missing file falls back to
// defaults with a warning; an unreadable or invalid file is an error.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = config.GetPath()

		err := config.WriteDefault(configPath)
		if err != nil {
			slog.Debug("could not write default config", slog.Any("err", err))
		}
	}

	cl, err := config.NewLoaderFromFile(configPath)
	if err != nil {
		slog.Warn("could not read config, using defaults",
			slog.String("path", configPath), slog.Any("err", err))

		return config.New(), nil
	}

	err = cl.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	return cfg, nil
}
