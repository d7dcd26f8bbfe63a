package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jamesbehr/symlinker/logging"
	"github.com/jamesbehr/symlinker/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errMissingAction = errors.New("missing action")

// storageRoots is replaced in tests.
var storageRoots = store.DefaultRoots

var verbosity int

var (
	app    *application
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "symlinker",
	Short: "Registry of managed symbolic links",
	Long: `symlinker keeps a catalog of directories that are replaced by symbolic links.

Valid arguments:
	- add <original_path> [symlink_path]
		Creates a symbolic link from the original path to the symlink path
		If no symlink path is provided, the default symlink directory is used
	- remove <id>
		Removes a link from the registry
	- list
		Lists every managed link
	- help
		Shows this help`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errMissingAction
	},
}

func needsApplication(cmd *cobra.Command) bool {
	switch cmd {
	case rootCmd, helpCmd, configPathCmd:
		return false
	}

	return cmd.Name() != "completion" && cmd.Name() != cobra.ShellCompRequestCmd
}

// setup runs before every command. It is assigned in init because it refers
// back to the command tree.
func setup(cmd *cobra.Command, args []string) error {
	logging.SetupLogger(verbosity)
	logger = logging.GetLogger("cmd")
	logger.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Executing command")

	if !needsApplication(cmd) {
		return nil
	}

	var err error
	app, err = loadApplication(storageRoots(), newPrompter(cmd))
	return err
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase diagnostic output (repeatable)")

	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Run 'symlinker help' for usage.")
		os.Exit(1)
	}
}
