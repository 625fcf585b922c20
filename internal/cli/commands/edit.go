package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/form"
)

func SetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a scalar field by name (e.g. set projectName \"My App\")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			next, err := form.SetField(state, args[0], args[1])
			if err != nil {
				return err
			}
			if err := st.Save(next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", args[0], args[1])
			return nil
		},
	}
}

func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <field> <value>",
		Short: "Append to a collection field (metrics use name:target:unit)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			next, err := form.AddItem(state, args[0], args[1])
			if err != nil {
				return err
			}
			if err := st.Save(next); err != nil {
				return err
			}
			items, _ := form.Items(next, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d items\n", args[0], len(items))
			return nil
		},
	}
}

func RemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <field> <index>",
		Short: "Remove an item from a collection field by zero-based index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index must be an integer: %w", err)
			}
			_, st, err := workspace()
			if err != nil {
				return err
			}
			state := loadState(st)
			next, err := form.RemoveItemAt(state, args[0], index)
			if err != nil {
				return err
			}
			if err := st.Save(next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s[%d]\n", args[0], index)
			return nil
		},
	}
}
