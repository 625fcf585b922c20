package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/config"
	"github.com/jerops/prd-generator/internal/project"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a prdgen workspace in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := project.EnsureInitialized(root); err != nil {
				return err
			}
			if err := config.WriteDefault(root); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", project.RootDir(root))
			return nil
		},
	}
}
