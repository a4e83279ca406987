package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

type themeSummary struct {
	ID      string                        `json:"id"`
	Dark    bool                          `json:"dark"`
	Default bool                          `json:"default"`
	Tokens  map[styles.Token]styles.Color `json:"tokens"`
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := styles.DefaultCatalog()
		defaultID := catalog.Default().ID

		summaries := make([]themeSummary, 0, catalog.Len())
		for _, id := range catalog.IDs() {
			theme := catalog.Lookup(id)
			summaries = append(summaries, themeSummary{
				ID:      id,
				Dark:    theme.IsDark,
				Default: id == defaultID,
				Tokens:  styles.SchemeFor(theme).Resolve(staticTokens(), styles.Interaction{}),
			})
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), summaries)
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{
				s.ID,
				yesNo(s.Dark),
				yesNo(s.Default),
				string(s.Tokens[styles.TokenBackground]),
				string(s.Tokens[styles.TokenAccent]),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"id", "dark", "default", "background", "accent"}, rows)
	},
}

func staticTokens() []styles.Token {
	var out []styles.Token
	for _, token := range styles.Tokens() {
		if !token.Interactive() && token != styles.TokenPlaceholder {
			out = append(out, token)
		}
	}
	return out
}
