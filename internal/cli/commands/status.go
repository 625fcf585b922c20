package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/form"
)

var (
	statusDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	statusPending = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	statusTitle   = lipgloss.NewStyle().Bold(true)
)

func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show section completion and overall progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			out := cmd.OutOrStdout()
			name := state.ProjectName
			if name == "" {
				name = "Untitled Project"
			}
			progress := form.Evaluate(state)
			fmt.Fprintf(out, "%s  %d%%\n\n", statusTitle.Render(name), progress.Percent)
			for _, report := range form.CheckAll(state) {
				if report.Complete {
					fmt.Fprintf(out, "  %s %s\n", statusDone.Render("✓"), report.Section)
					continue
				}
				fmt.Fprintf(out, "  %s %s (missing: %s)\n",
					statusPending.Render("·"), report.Section, strings.Join(report.Missing, ", "))
			}
			if errs := form.FieldErrors(state); len(errs) > 0 {
				fmt.Fprintln(out)
				for _, fe := range errs {
					fmt.Fprintf(out, "  ! %s: %s\n", fe.Field, fe.Message)
				}
			}
			return nil
		},
	}
}
