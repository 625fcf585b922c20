package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/form"
	"github.com/jerops/prd-generator/internal/suggest"
)

func SuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "suggest <rule>",
		Short:     "Apply a suggestion rule: projecttype, platform, techstack, technical",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"projecttype", "platform", "techstack", "technical"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			var next form.State
			switch args[0] {
			case "projecttype":
				if _, ok := suggest.ProjectType(state); !ok {
					return fmt.Errorf("no suggestion: pick target users first")
				}
				next = suggest.ApplyProjectType(state)
			case "platform":
				next = suggest.ApplyPlatform(state)
			case "techstack":
				next = suggest.ApplyTechStack(state)
			case "technical":
				next = suggest.Technical(state)
			default:
				return fmt.Errorf("unknown rule %q", args[0])
			}
			if err := st.Save(next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", args[0])
			return nil
		},
	}
}
