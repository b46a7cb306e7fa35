package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todomvc/internal/ui"
)

// App carries root flag values into every subcommand.
type App struct {
	ConfigPath string
	Store      string
	DataDir    string
	Route      string
	Theme      string
	LogLevel   string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A tiny todo list: interactive TUI plus scriptable commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Scriptable commands
  todo add "Buy milk"
  todo ls --route /active
  todo toggle 2
  todo edit 1 "Buy oat milk"
  todo clear-completed
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", "", "Path to config.toml (default: $XDG_CONFIG_HOME/todo/config.toml)")
	pf.StringVar(&app.Store, "store", "", "Storage backend (json|sqlite|memory)")
	pf.StringVar(&app.DataDir, "data-dir", "", "Directory holding the todo list")
	pf.StringVar(&app.Route, "route", "", "View to open or to index rows in (/, /active, /completed)")
	pf.StringVar(&app.Theme, "theme", "", "Theme (classic|neon|mono)")
	pf.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newToggleAllCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newClearCompletedCmd(app))
	cmd.AddCommand(newKeysCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		ui.Fail(root.ErrOrStderr(), err.Error())
	}
	return exitCode(err)
}
