package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/nexus/internal/config"
	"github.com/opencode-ai/nexus/internal/logging"
	"github.com/opencode-ai/nexus/internal/store"
	"github.com/opencode-ai/nexus/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the chat TUI",
	Long:  "Launch the Nexus terminal chat interface.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "nexus --help",
		}
	}

	tuiConfig, err := tuiConfigFrom(GetConfig())
	if err != nil {
		return err
	}
	return tui.RunWithConfig(tuiConfig)
}

// tuiConfigFrom maps file configuration onto the TUI.
func tuiConfigFrom(cfg *config.Config) (tui.Config, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := logging.Component("tui")
	out := tui.Config{
		Theme:       cfg.TUI.Theme,
		MaxMessages: cfg.TUI.MaxMessages,
		Logger:      &logger,
	}

	override, err := store.ParseDarkMode(strings.ToLower(cfg.TUI.DarkMode))
	if err != nil {
		return tui.Config{}, err
	}
	out.DarkMode = override

	switch strings.ToLower(cfg.TUI.Device) {
	case "desktop":
		device := store.DeviceDesktop
		out.Device = &device
	case "mobile":
		device := store.DeviceMobile
		out.Device = &device
	}
	return out, nil
}

// IsNonInteractive reports whether the TUI must not be started.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("NEXUS_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
