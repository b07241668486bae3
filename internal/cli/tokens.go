package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/viewscale/viewscale/pkg/scale"
)

type TokensArgs struct {
	*RootArgs

	ConfigPath string
	Width      float64
	Height     float64
}

func NewTokensArgs(rootArgs *RootArgs) *TokensArgs {
	return &TokensArgs{
		RootArgs: rootArgs,
	}
}

func (ta *TokensArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ta.ConfigPath, "config", "", "Path to the viewscale configuration file")
	cmd.Flags().Float64Var(&ta.Width, "width", 0, "Current viewport width")
	cmd.Flags().Float64Var(&ta.Height, "height", 0, "Current viewport height")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}

	err = cmd.MarkFlagRequired("width")
	if err != nil {
		panic(fmt.Errorf("mark width flag: %w", err))
	}
}

func NewTokensCmd(ta *TokensArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Show the resolved size token table at a viewport",
		Example: `  # Tokens on a small phone:
  viewscale tokens --width 375 --height 812

  # Tokens on a desktop viewport:
  viewscale tokens --width 1920 --height 1080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(ta.ConfigPath)
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

			s := scale.NewScaler(scaleCfg, scale.Viewport{Width: ta.Width, Height: ta.Height})

			out := cmd.OutOrStdout()

			_, err = fmt.Fprintf(out, "tier: %s  factor: %.4f\n",
				s.Tier(), s.Factor())
			if err != nil {
				return fmt.Errorf("write summary: %w", err)
			}

			_, err = fmt.Fprintln(out, renderTokenTable(s, tokens))
			if err != nil {
				return fmt.Errorf("write table: %w", err)
			}

			return nil
		},
	}

	ta.AddFlags(cmd)
	bindEnvVars(cmd)

	return cmd
}

func renderTokenTable(s scale.Scaler, tokens []scale.Token) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers("TOKEN", "BASE", "MIN", "MAX", "RESOLVED")

	for _, tok := range tokens {
		tbl.Row(
			tok.Name,
			fmt.Sprintf("%g", tok.Base),
			fmt.Sprintf("%g", tok.Min),
			fmt.Sprintf("%g", tok.Max),
			fmt.Sprintf("%.2f", s.Token(tok)),
		)
	}

	return tbl.Render()
}
