package cmd

import (
	"os"

	"github.com/jamesbehr/symlinker/config"
	"github.com/jamesbehr/symlinker/prompt"
	"github.com/jamesbehr/symlinker/registry"
	"github.com/jamesbehr/symlinker/runlog"
	"github.com/jamesbehr/symlinker/store"
	"github.com/spf13/cobra"
)

type application struct {
	store    *store.Store
	config   config.Config
	links    registry.ManagedLinkList
	runLog   *runlog.Logger
	prompter prompt.Prompter
}

// loadApplication reads the configuration, resets the run log and loads the
// registry, in that order. A configuration the operator refuses to replace
// stops everything before the registry is touched.
func loadApplication(roots store.Roots, p prompt.Prompter) (*application, error) {
	s := store.New(roots)

	cfg, err := config.Load(s, p)
	if err != nil {
		return nil, err
	}

	log := runlog.New(s)
	if err := log.Reset(); err != nil {
		return nil, err
	}

	links, err := registry.Load(s)
	if err != nil {
		return nil, err
	}

	return &application{
		store:    s,
		config:   cfg,
		links:    links,
		runLog:   log,
		prompter: p,
	}, nil
}

func newPrompter(cmd *cobra.Command) prompt.Prompter {
	in, inFile := cmd.InOrStdin().(*os.File)
	out, outFile := cmd.OutOrStdout().(*os.File)

	if inFile && outFile {
		return prompt.New(in, out)
	}

	return prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout())
}
