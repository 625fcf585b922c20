package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/deploy"
	"github.com/jerops/prd-generator/internal/render"
)

func DeployCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Write a GitHub Pages bundle for the generated document",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			bundle := deploy.New(state.ProjectName, render.Document(state))
			if err := bundle.WriteTo(dir); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wrote bundle for %s to %s\n\n", bundle.RepoName, dir)
			fmt.Fprintln(out, bundle.Instructions())
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "deploy", "Bundle output directory")
	return cmd
}
