package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/viewscale/viewscale/pkg/config"
	"github.com/viewscale/viewscale/pkg/engine"
	"github.com/viewscale/viewscale/pkg/log"
	"github.com/viewscale/viewscale/pkg/ui"
)

type InspectArgs struct {
	*RootArgs

	ConfigPath string
	Watch      bool
}

func NewInspectArgs(rootArgs *RootArgs) *InspectArgs {
	return &InspectArgs{
		RootArgs: rootArgs,
	}
}

func (ia *InspectArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ia.ConfigPath, "config", "", "Path to the viewscale configuration file")
	cmd.Flags().BoolVarP(&ia.Watch, "watch", "w", false, "Watch the config file and reload on changes")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewInspectCmd(ia *InspectArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Interactively inspect scaling behavior as the terminal resizes",
		Long: `Inspect opens a TUI that treats the terminal cell grid as the viewport.
Every resize is pushed into the scaling engine, and the current tier, scale
factors, and resolved token table are rendered live.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInspect(ia)
		},
	}

	ia.AddFlags(cmd)
	bindEnvVars(cmd)

	return cmd
}

func runInspect(ia *InspectArgs) error {
	cfg, err := loadConfig(ia.ConfigPath)
	if err != nil {
		return err
	}

	scaleCfg, err := cfg.ScaleConfig()
	if err != nil {
		return err
	}

	tokens, err := cfg.ScaleTokens()
	if err != nil {
		return err
	}

	e := engine.New()
	e.Configure(scaleCfg)

	// The TUI owns the terminal; keep log lines in a ring instead.
	logRing := log.NewRing(100)

	logHandler, err := log.CreateHandlerWithStrings(logRing, ia.LogLevel, ia.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	p := ui.NewProgram(e, tokens)

	if ia.Watch {
		configPath := ia.ConfigPath
		if configPath == "" {
			configPath = config.GetPath()
		}

		w, err := config.NewWatcher(configPath, func(next *config.Config) {
			nextCfg, cfgErr := next.ScaleConfig()
			if cfgErr != nil {
				slog.Warn("reloaded config rejected", slog.Any("err", cfgErr))

				return
			}

			nextTokens, tokErr := next.ScaleTokens()
			if tokErr != nil {
				slog.Warn("reloaded config rejected", slog.Any("err", tokErr))

				return
			}

			p.Send(ui.ConfigReloadedMsg{Config: nextCfg, Tokens: nextTokens})
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}

		w.Start()
		defer func() {
			err := w.Close()
			if err != nil {
				slog.Warn("close config watcher", slog.Any("err", err))
			}
		}()
	}

	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	// Surface anything logged while the TUI held the terminal.
	for _, entry := range logRing.Entries() {
		fmt.Print(string(entry)) //nolint:forbidigo // Replaying captured log output.
	}

	return nil
}
