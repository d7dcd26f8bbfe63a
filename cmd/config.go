package cmd

import (
	"fmt"

	"github.com/jamesbehr/symlinker/config"
	"github.com/jamesbehr/symlinker/registry"
	"github.com/jamesbehr/symlinker/runlog"
	"github.com/jamesbehr/symlinker/store"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.config)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where configuration and data are stored",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := store.New(storageRoots())
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "config:   %s\n", s.Path(store.RoleConfig, config.FileName))
		fmt.Fprintf(out, "registry: %s\n", s.Path(store.RoleData, registry.FileName))
		fmt.Fprintf(out, "run log:  %s\n", s.Path(store.RoleData, runlog.FileName))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
