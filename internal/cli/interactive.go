package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todomvc/internal/tui"
	"github.com/idilsaglam/todomvc/internal/ui"
)

func runTUI(cmd *cobra.Command, a *App) error {
	s, err := openSession(cmd, a, true)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	s.logger.Info("starting tui", "route", s.ctrl.NowShowing().Route(), "todos", s.todos.Len())
	return tui.Run(cmd.Context(), s.ctrl)
}

func newKeysCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the TUI key reference",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, a)
			if err != nil {
				return err
			}
			style := glamour.WithAutoStyle()
			if strings.EqualFold(cfg.Theme, "mono") {
				style = glamour.WithStandardStyle("notty")
			}
			r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
			if err != nil {
				return fmt.Errorf("keys: %w", err)
			}
			out, err := r.Render(tui.KeysMarkdown())
			if err != nil {
				return fmt.Errorf("keys: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newConfigCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, a)
			if err != nil {
				return err
			}
			if err := ui.SetTheme(cfg.Theme); err != nil {
				return err
			}
			out, err := cfg.Encode()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
