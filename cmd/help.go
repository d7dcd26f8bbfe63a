package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:     "help [command]",
	Aliases: []string{"h"},
	Short:   "Help about any command",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _, err := cmd.Root().Find(args)
		if err != nil || target == nil {
			return fmt.Errorf("unknown help topic %q", args)
		}

		return target.Help()
	},
}
