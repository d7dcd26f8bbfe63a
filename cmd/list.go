package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jamesbehr/symlinker/registry"
	"github.com/jamesbehr/symlinker/store"
	"github.com/spf13/cobra"
)

var listFormat string

func printLinks(w io.Writer, links registry.ManagedLinkList) error {
	switch listFormat {
	case "json", "toml":
		codec := store.JSON
		if listFormat == "toml" {
			codec = store.TOML
		}

		data, err := codec.Marshal(links)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))
		return err
	case "table", "":
	default:
		return fmt.Errorf("unknown format %q (want table, json or toml)", listFormat)
	}

	if links.Len() == 0 {
		fmt.Fprintln(w, "No managed links.")
		return nil
	}

	header := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	for i, link := range links.ManagedLinks {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, header.Render(fmt.Sprintf("Link %d, created %s", link.ID, humanize.Time(link.CreationDate))))
		fmt.Fprintln(w, link)
	}

	return nil
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List managed links",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLinks(cmd.OutOrStdout(), app.links)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format: table, json or toml")
}
