package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/format"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// withSession opens the list, runs fn and closes it again.
func withSession(cmd *cobra.Command, a *App, fn func(s *session) error) error {
	s, err := openSession(cmd, a, false)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}

// rowIndex turns a 1-based position in the current view into a row index.
func rowIndex(s *session, arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, usagef("not a number: %s", arg)
	}
	shown := len(s.ctrl.Shown())
	if n < 1 || n > shown {
		return 0, usagef("index out of range: have %d, got %d\nHint: run `todo ls --route %s` to see valid indexes",
			shown, n, s.ctrl.NowShowing().Route())
	}
	return n - 1, nil
}

func newAddCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new todo (title can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return usagef("add: empty title")
			}
			return withSession(cmd, a, func(s *session) error {
				if err := s.ctrl.Add(cmd.Context(), title); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "added")
				return nil
			})
		},
	}
}

func newListCmd(a *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos in the selected view",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, a, func(s *session) error {
				switch output {
				case "", "text":
					fmt.Fprintln(cmd.OutOrStdout(), renderListing(s.ctrl.Render()))
					return nil
				case "json", "yaml", "yml":
					return format.Write(cmd.OutOrStdout(), s.ctrl.Shown(), output)
				}
				return usagef("unknown output %q (want text, json or yaml)", output)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")
	return cmd
}

func newToggleCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <n>",
		Short: "Toggle completed for the todo at 1-based position n",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, a, func(s *session) error {
				i, err := rowIndex(s, args[0])
				if err != nil {
					return err
				}
				if err := s.ctrl.Toggle(cmd.Context(), i); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "toggled")
				return nil
			})
		},
	}
}

func newToggleAllCmd(a *App) *cobra.Command {
	var done bool
	cmd := &cobra.Command{
		Use:   "toggle-all",
		Short: "Mark every todo completed, or active again if all are completed",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, a, func(s *session) error {
				checked := s.todos.ActiveTodoCount() > 0
				if cmd.Flags().Changed("done") {
					checked = done
				}
				if err := s.ctrl.ToggleAll(cmd.Context(), checked); err != nil {
					return err
				}
				if checked {
					ui.OK(cmd.OutOrStdout(), "all completed")
				} else {
					ui.OK(cmd.OutOrStdout(), "all active")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&done, "done", true, "Completed state to set (default: flip the toggle-all checkbox)")
	return cmd
}

func newEditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <n> <title...>",
		Short: "Retitle the todo at position n (a blank title deletes it)",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, a, func(s *session) error {
				i, err := rowIndex(s, args[0])
				if err != nil {
					return err
				}
				title := strings.Join(args[1:], " ")
				s.ctrl.Edit(i)
				if err := s.ctrl.Save(cmd.Context(), i, title); err != nil {
					return err
				}
				if strings.TrimSpace(title) == "" {
					ui.OK(cmd.OutOrStdout(), "removed")
				} else {
					ui.OK(cmd.OutOrStdout(), "saved")
				}
				return nil
			})
		},
	}
}

func newRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"destroy"},
		Short:   "Remove the todo at 1-based position n",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, a, func(s *session) error {
				i, err := rowIndex(s, args[0])
				if err != nil {
					return err
				}
				if err := s.ctrl.Destroy(cmd.Context(), i); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "removed")
				return nil
			})
		},
	}
}

func newClearCompletedCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove every completed todo",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, a, func(s *session) error {
				n := s.todos.CompletedCount()
				if err := s.ctrl.ClearCompleted(cmd.Context()); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "cleared "+ui.Pluralize(n, "todo"))
				return nil
			})
		},
	}
}

// -------------- rendering helpers --------------

// renderListing is the non-interactive counterpart of the TUI frame.
func renderListing(v app.View) string {
	t := ui.Current()
	var lines []string

	active, completed := 0, 0
	if v.Footer != nil {
		active, completed = v.Footer.Count, v.Footer.CompletedCount
	}
	lines = append(lines, fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), completed,
		t.Pending.Render(t.SymPending), active,
		t.Accent.Render("Total"), active+completed,
	))
	lines = append(lines, t.Muted.Render(ui.ProgressBar(completed, active+completed, 28)))
	lines = append(lines, "")

	if v.List == nil {
		lines = append(lines, t.Muted.Render("no items"))
	} else {
		lines = append(lines, rowLines(v.List.Rows)...)
	}

	if v.Footer != nil {
		lines = append(lines, "", footerLine(v.Footer))
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	return ui.Panel(lines)
}

func rowLines(rows []app.RowView) []string {
	t := ui.Current()
	if len(rows) == 0 {
		return []string{t.Muted.Render("nothing to show")}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.Index+1)
		box := t.Muted.Render(t.BoxUnchecked)
		title := ui.Truncate(r.Title, 80)
		if r.Completed {
			box = t.Success.Render(t.BoxChecked)
			title = t.Done.Render(title)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, title))
	}
	return out
}

func footerLine(fv *app.FooterView) string {
	t := ui.Current()
	var links []string
	for _, f := range model.Filters {
		label := f.Label() + " " + f.Route()
		if f == fv.NowShowing {
			links = append(links, t.LinkSelected.Render("["+label+"]"))
		} else {
			links = append(links, t.Link.Render(label))
		}
	}
	line := t.Pending.Render(ui.Pluralize(fv.Count, "item")+" left") + "  " + strings.Join(links, "  ")
	if fv.CompletedCount > 0 {
		line += "  " + t.Accent.Render("clear-completed")
	}
	return line
}
