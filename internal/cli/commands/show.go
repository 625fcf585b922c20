package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current form state as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			out, err := yaml.Marshal(state)
			if err != nil {
				return fmt.Errorf("encode state: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
