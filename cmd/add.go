package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jamesbehr/symlinker/filesystem"
	"github.com/jamesbehr/symlinker/workflow"
	"github.com/spf13/cobra"
)

var (
	ErrOriginalMissing = errors.New("original path does not exist")
	ErrAlreadySymlink  = errors.New("original path is already a symbolic link")
)

// checkOriginal resolves the original path and rejects paths that cannot be
// linked.
func checkOriginal(name string) (filesystem.Path, error) {
	original, err := filesystem.AbsPath(name)
	if err != nil {
		return "", err
	}

	exists, err := original.Exists()
	if err != nil {
		return "", err
	}

	if !exists {
		return "", fmt.Errorf("%w: %s", ErrOriginalMissing, original)
	}

	symlink, err := original.IsSymlink()
	if err != nil {
		return "", err
	}

	if symlink {
		return "", fmt.Errorf("%w: %s", ErrAlreadySymlink, original)
	}

	return original, nil
}

var addCmd = &cobra.Command{
	Use:     "add <original_path> [symlink_path]",
	Aliases: []string{"a"},
	Short:   "Register a new managed link",
	Long: `Creates a symbolic link from the original path to the symlink path.
If no symlink path is provided, the default symlink directory is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		original, err := checkOriginal(args[0])
		if err != nil {
			return err
		}

		target := ""
		if len(args) == 2 {
			target, err = filepath.Abs(args[1])
			if err != nil {
				return err
			}
		}

		creator := workflow.NewCreator(app.store, &app.links, app.config, cmd.OutOrStdout())
		creator.RunLog = app.runLog

		state, err := creator.Run(app.prompter, original.String(), target)
		if err != nil {
			return err
		}

		logger.Debug().Stringer("state", state).Msg("Add finished")
		return nil
	},
}
