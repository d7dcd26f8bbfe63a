// Package workflow walks a new managed link from a request to a committed
// registry entry. Every operator decision is an explicit transition, so the
// whole procedure can be driven without a console.
package workflow

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jamesbehr/symlinker/config"
	"github.com/jamesbehr/symlinker/filesystem"
	"github.com/jamesbehr/symlinker/logging"
	"github.com/jamesbehr/symlinker/prompt"
	"github.com/jamesbehr/symlinker/registry"
	"github.com/jamesbehr/symlinker/runlog"
	"github.com/jamesbehr/symlinker/store"
	"github.com/rs/zerolog"
)

type State int

const (
	Idle State = iota
	Prepared
	PreviewOffered
	AwaitingFinalConfirmation
	Committed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Prepared:
		return "prepared"
	case PreviewOffered:
		return "preview offered"
	case AwaitingFinalConfirmation:
		return "awaiting final confirmation"
	case Committed:
		return "committed"
	case Aborted:
		return "aborted"
	}

	return "unknown"
}

var ErrInvalidState = errors.New("workflow: invalid state transition")

const (
	QuestionListFiles  = "List files to move?"
	QuestionCreateLink = "Create link?"
)

// Creator registers one new managed link. A Creator is single use: once it
// reaches Committed or Aborted it stays there.
type Creator struct {
	Store     *store.Store
	Links     *registry.ManagedLinkList
	Config    config.Config
	Inspector filesystem.Inspector
	RunLog    *runlog.Logger
	Out       io.Writer
	Now       func() time.Time

	state     State
	link      registry.ManagedLink
	files     []filesystem.Path
	available uint64
	total     uint64

	logger zerolog.Logger
	styles styles
}

type styles struct {
	available lipgloss.Style
	total     lipgloss.Style
	file      lipgloss.Style
}

func NewCreator(s *store.Store, links *registry.ManagedLinkList, cfg config.Config, out io.Writer) *Creator {
	renderer := lipgloss.NewRenderer(out)

	return &Creator{
		Store:     s,
		Links:     links,
		Config:    cfg,
		Inspector: filesystem.OS{},
		RunLog:    runlog.New(s),
		Out:       out,
		Now:       time.Now,
		logger:    logging.GetLogger("workflow"),
		styles: styles{
			available: renderer.NewStyle().Foreground(lipgloss.Color("6")),
			total:     renderer.NewStyle().Foreground(lipgloss.Color("4")),
			file:      renderer.NewStyle().Foreground(lipgloss.Color("4")),
		},
	}
}

func (c *Creator) State() State {
	return c.state
}

// Link is the candidate record, valid from Prepared on.
func (c *Creator) Link() registry.ManagedLink {
	return c.link
}

// Files are the files below the original path, valid from PreviewOffered on.
func (c *Creator) Files() []filesystem.Path {
	return c.files
}

func (c *Creator) expect(want State) error {
	if c.state != want {
		return fmt.Errorf("%w: %s, expected %s", ErrInvalidState, c.state, want)
	}

	return nil
}

// Prepare builds the candidate record. An empty target means the configured
// default symlink directory.
func (c *Creator) Prepare(original, target string) error {
	if err := c.expect(Idle); err != nil {
		return err
	}

	if target == "" {
		target = c.Config.SymlinkDir()
	}

	now := c.Now().Round(0)
	c.link = registry.ManagedLink{
		ID:           c.Links.NextID(),
		OriginalPath: original,
		SymlinkPath:  SymlinkPath(target, original),
		CreationDate: now,
		LastModified: now,
	}

	c.logger.Debug().
		Uint32("id", c.link.ID).
		Str("original", c.link.OriginalPath).
		Str("symlink", c.link.SymlinkPath).
		Msg("Prepared link")

	c.state = Prepared
	return nil
}

// Preview inspects the original tree and the destination drive and shows the
// operator what is about to happen. The preview is written to the run log
// whatever the operator decides later.
func (c *Creator) Preview() error {
	if err := c.expect(Prepared); err != nil {
		return err
	}

	files, err := c.Inspector.EnumerateFiles(filesystem.Path(c.link.OriginalPath))
	if err != nil {
		return err
	}

	drive, err := DriveOf(c.link.SymlinkPath)
	if err != nil {
		return err
	}

	available, total, err := c.Inspector.DiskSpace(drive)
	if err != nil {
		return err
	}

	c.files, c.available, c.total = files, available, total

	fmt.Fprintf(c.Out,
		"About to create symbolic link:\n\n%s\n\nThis will move %d files.\nThe symlink drive has %s of %s space left.\n\n",
		c.link,
		len(c.files),
		c.styles.available.Render(filesystem.BytesToHumanReadable(c.available)),
		c.styles.total.Render(filesystem.BytesToHumanReadable(c.total)),
	)

	indented := strings.ReplaceAll(c.link.String(), "\n", "\n\t")
	if err := c.RunLog.Log("About to create link:\n\t" + indented); err != nil {
		return err
	}

	c.state = PreviewOffered
	return nil
}

// ListFiles answers the first gate. When list is set every affected file is
// printed relative to the original path.
func (c *Creator) ListFiles(list bool) error {
	if err := c.expect(PreviewOffered); err != nil {
		return err
	}

	if list {
		fmt.Fprint(c.Out, "\nThese files will be moved:\n\n")

		for _, file := range c.files {
			rel := filesystem.PathToRelative(file.String(), c.link.OriginalPath)
			fmt.Fprintln(c.Out, c.styles.file.Render(rel))
		}

		fmt.Fprintln(c.Out)
	}

	c.state = AwaitingFinalConfirmation
	return nil
}

// Confirm answers the second gate. Declining aborts and leaves the registry
// untouched; accepting appends the link and saves the whole registry.
func (c *Creator) Confirm(create bool) error {
	if err := c.expect(AwaitingFinalConfirmation); err != nil {
		return err
	}

	if !create {
		fmt.Fprintln(c.Out, "Aborted.")
		c.logger.Info().Uint32("id", c.link.ID).Msg("Link creation aborted")
		c.state = Aborted
		return c.RunLog.Log("Link creation aborted")
	}

	if err := c.Links.Add(c.link); err != nil {
		return err
	}

	if err := c.Links.Save(c.Store); err != nil {
		// Keep memory in line with what is on disk
		c.Links.ManagedLinks = c.Links.ManagedLinks[:len(c.Links.ManagedLinks)-1]
		return err
	}

	c.state = Committed
	c.logger.Info().Uint32("id", c.link.ID).Msg("Created link")

	// The registry is already persisted, so a run log failure must not
	// report the link as failed.
	if err := c.RunLog.Log(fmt.Sprintf("Created link with ID %d", c.link.ID)); err != nil {
		c.logger.Warn().Err(err).Uint32("id", c.link.ID).Msg("Could not write run log")
	}

	fmt.Fprintln(c.Out, "Link created successfully.")
	return nil
}

// Run drives the whole procedure, asking p at both gates, and returns the
// state it ended in.
func (c *Creator) Run(p prompt.Prompter, original, target string) (State, error) {
	if err := c.Prepare(original, target); err != nil {
		return c.state, err
	}

	if err := c.Preview(); err != nil {
		return c.state, err
	}

	list, err := p.Confirm(QuestionListFiles)
	if err != nil {
		return c.state, err
	}

	if err := c.ListFiles(list); err != nil {
		return c.state, err
	}

	create, err := p.Confirm(QuestionCreateLink)
	if err != nil {
		return c.state, err
	}

	if err := c.Confirm(create); err != nil {
		return c.state, err
	}

	return c.state, nil
}
