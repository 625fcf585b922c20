// Package cli wires the prdgen commands. Running the bare binary opens the
// guided form.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/cli/commands"
	"github.com/jerops/prd-generator/internal/tui"
)

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(root string) error {
	return tui.Run(root)
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "prdgen",
		Short: "Guided PRD generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			return runTUI(cwd)
		},
	}
	root.AddCommand(
		commands.InitCmd(),
		commands.ShowCmd(),
		commands.StatusCmd(),
		commands.SetCmd(),
		commands.AddCmd(),
		commands.RemoveCmd(),
		commands.SuggestCmd(),
		commands.RenderCmd(),
		commands.PreviewCmd(),
		commands.ExportCmd(),
		commands.DeployCmd(),
		commands.ServeCmd(),
		commands.ResetCmd(),
	)
	return root
}
