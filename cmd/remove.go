package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"r"},
	Short:   "Remove a link from the registry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid link id %q", args[0])
		}

		link, err := app.links.Remove(uint32(id))
		if err != nil {
			return err
		}

		if err := app.links.Save(app.store); err != nil {
			return err
		}

		if err := app.runLog.Log(fmt.Sprintf("Removed link with ID %d", link.ID)); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed link %d (%s).\n", link.ID, link.OriginalPath)
		return nil
	},
}
