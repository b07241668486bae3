package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/viewscale/viewscale/pkg/scale"
)

type SizeArgs struct {
	*RootArgs

	ConfigPath string
	Axis       string
	Width      float64
	Height     float64
	Min        float64
	Max        float64
}

func NewSizeArgs(rootArgs *RootArgs) *SizeArgs {
	return &SizeArgs{
		RootArgs: rootArgs,
	}
}

func (sa *SizeArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sa.ConfigPath, "config", "", "Path to the viewscale configuration file")
	cmd.Flags().StringVar(&sa.Axis, "axis", "general", fmt.Sprintf("Axis to scale on, one of: %s", scale.AllAxes))
	cmd.Flags().Float64Var(&sa.Width, "width", 0, "Current viewport width")
	cmd.Flags().Float64Var(&sa.Height, "height", 0, "Current viewport height")
	cmd.Flags().Float64Var(&sa.Min, "min", 0, "Lower clamp bound, requires --max")
	cmd.Flags().Float64Var(&sa.Max, "max", 0, "Upper clamp bound, requires --min")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}

	err = cmd.MarkFlagRequired("width")
	if err != nil {
		panic(fmt.Errorf("mark width flag: %w", err))
	}

	err = cmd.RegisterFlagCompletionFunc("axis",
		cobra.FixedCompletions(scale.AllAxes, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewSizeCmd(sa *SizeArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size <base>",
		Short: "Compute a scaled size for a base value at a viewport",
		Example: `  # A 100-wide element on a small phone:
  viewscale size 100 --axis width --width 375 --height 812

  # A height on the same phone:
  viewscale size 50 --axis height --width 375 --height 812

  # Clamped general size on a tablet:
  viewscale size 16 --width 768 --height 1024 --min 15 --max 17`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse base size %q: %w", args[0], err)
			}

			axis, err := scale.ParseAxis(sa.Axis)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(sa.ConfigPath)
			if err != nil {
				return err
			}

			scaleCfg, err := cfg.ScaleConfig()
			if err != nil {
				return err
			}

			s := scale.NewScaler(scaleCfg, scale.Viewport{Width: sa.Width, Height: sa.Height})

			hasMin := cmd.Flags().Changed("min")
			hasMax := cmd.Flags().Changed("max")

			var result float64

			switch {
			case hasMin && hasMax:
				result = s.SizeClamped(base, axis, sa.Min, sa.Max)
			case hasMin || hasMax:
				// Clamping is all-or-nothing; a single bound is ignored.
				slog.Warn("ignoring partial clamp bounds, provide both --min and --max")

				fallthrough
			default:
				result = s.Size(base, axis)
			}

			slog.Debug("computed size",
				slog.String("tier", s.Tier().String()),
				slog.Float64("factor", s.Factor()),
			)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
			if err != nil {
				return fmt.Errorf("write result: %w", err)
			}

			return nil
		},
	}

	sa.AddFlags(cmd)
	bindEnvVars(cmd)

	return cmd
}
