package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/config"
	"github.com/jerops/prd-generator/internal/project"
	"github.com/jerops/prd-generator/internal/render"
)

func RenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the generated document as raw markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			fmt.Fprintln(cmd.OutOrStdout(), render.Document(state))
			return nil
		},
	}
}

func PreviewCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the document for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			cfg, err := config.LoadFromRoot(root)
			if err != nil {
				return err
			}
			renderer, err := glamour.NewTermRenderer(
				glamour.WithWordWrap(width),
				glamour.WithStandardStyle(cfg.Theme),
			)
			if err != nil {
				return err
			}
			out, err := renderer.Render(render.Document(state))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 100, "Wrap width")
	return cmd
}

func ExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the document to a markdown file",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			dest := out
			if dest == "" {
				cfg, err := config.LoadFromRoot(root)
				if err != nil {
					return err
				}
				dir := cfg.ExportDir
				if dir == "" {
					dir = project.ExportsDir(root)
				}
				if err := os.MkdirAll(dir, 0755); err != nil {
					return err
				}
				dest = filepath.Join(dir, render.Filename(state.ProjectName))
			}
			if err := os.WriteFile(dest, []byte(render.Document(state)), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file path")
	return cmd
}
