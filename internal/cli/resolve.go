package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/nexus/internal/logging"
	"github.com/opencode-ai/nexus/internal/store"
	"github.com/opencode-ai/nexus/internal/tui/binding"
	"github.com/opencode-ai/nexus/internal/tui/styles"
)

var (
	resolveSelected bool
	resolveDark     string
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&resolveSelected, "selected", false, "resolve interactive tokens for a selected element")
	resolveCmd.Flags().StringVar(&resolveDark, "dark", "auto", "dark mode override (on, off, auto)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <theme>",
	Short: "Print the colors a theme resolves to",
	Long: `Print every color token resolved against a theme.

Interactive tokens (text, timestamp) depend on --selected; placeholder
depends on the effective dark mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := store.ParseDarkMode(resolveDark)
		if err != nil {
			return err
		}

		s := store.New(styles.DefaultCatalog(), store.WithLogger(logging.Component("resolve")))
		if err := s.SetActiveTheme(args[0]); err != nil {
			return err
		}
		s.SetDarkModeOverride(override)

		tokens := styles.Tokens()
		colors := binding.UseResolvedColors(s, tokens, styles.Interaction{Selected: resolveSelected})

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]any{
				"theme":    args[0],
				"dark":     s.Scheme().Dark,
				"selected": resolveSelected,
				"colors":   colors,
			})
		}

		rows := make([][]string, 0, len(tokens))
		for _, token := range tokens {
			rows = append(rows, []string{string(token), string(colors[token])})
		}
		return writeTable(cmd.OutOrStdout(), []string{"token", "color"}, rows)
	},
}
