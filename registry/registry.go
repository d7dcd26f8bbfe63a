package registry

import (
	"errors"
	"fmt"
	"time"

	"github.com/jamesbehr/symlinker/store"
)

const FileName = "managed_links.json"

// TimeFormat is used when a link is rendered for people.
const TimeFormat = "2006-01-02 15:04:05 -0700"

var (
	ErrDuplicateID  = errors.New("registry: duplicate link id")
	ErrLinkNotFound = errors.New("registry: link not found")
)

// ManagedLink records one original directory and the symlink that stands in
// for it.
type ManagedLink struct {
	ID           uint32    `json:"id" toml:"id"`
	OriginalPath string    `json:"original_path" toml:"original_path"`
	SymlinkPath  string    `json:"symlink_path" toml:"symlink_path"`
	CreationDate time.Time `json:"creation_date" toml:"creation_date"`

	// LastModified equals CreationDate; nothing updates it yet
	LastModified time.Time `json:"last_modified" toml:"last_modified"`
}

func (l ManagedLink) String() string {
	return fmt.Sprintf(
		"Id: %d\nOriginal path: %s\nSymlink path: %s\nCreation date: %s\nLast modified: %s",
		l.ID,
		l.OriginalPath,
		l.SymlinkPath,
		l.CreationDate.Format(TimeFormat),
		l.LastModified.Format(TimeFormat),
	)
}

// ManagedLinkList is the registry of every managed link, in the order the
// links were added.
type ManagedLinkList struct {
	ManagedLinks []ManagedLink `json:"managed_links" toml:"managed_links"`

	// RetiredID is the highest id ever removed from the list. Ids at or below
	// it are never handed out again.
	RetiredID uint32 `json:"retired_id,omitempty" toml:"retired_id,omitempty"`
}

func (ManagedLinkList) Default() ManagedLinkList {
	return ManagedLinkList{ManagedLinks: []ManagedLink{}}
}

func Load(s *store.Store) (ManagedLinkList, error) {
	return store.Load[ManagedLinkList](s, store.RoleData, FileName)
}

// Save writes the whole list, replacing what was stored before.
func (l *ManagedLinkList) Save(s *store.Store) error {
	return store.Save(s, store.RoleData, FileName, *l)
}

// LastID is the highest id in the list, or 0 when it is empty.
func (l *ManagedLinkList) LastID() uint32 {
	var last uint32
	for _, link := range l.ManagedLinks {
		if link.ID > last {
			last = link.ID
		}
	}

	return last
}

// NextID is the id the next added link gets.
func (l *ManagedLinkList) NextID() uint32 {
	last := l.LastID()
	if l.RetiredID > last {
		last = l.RetiredID
	}

	return last + 1
}

func (l *ManagedLinkList) Add(link ManagedLink) error {
	if _, ok := l.Find(link.ID); ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, link.ID)
	}

	l.ManagedLinks = append(l.ManagedLinks, link)
	return nil
}

func (l *ManagedLinkList) Find(id uint32) (ManagedLink, bool) {
	for _, link := range l.ManagedLinks {
		if link.ID == id {
			return link, true
		}
	}

	return ManagedLink{}, false
}

// Remove drops the link with the given id and keeps the order of the others.
func (l *ManagedLinkList) Remove(id uint32) (ManagedLink, error) {
	for i, link := range l.ManagedLinks {
		if link.ID != id {
			continue
		}

		if last := l.LastID(); last > l.RetiredID {
			l.RetiredID = last
		}

		l.ManagedLinks = append(l.ManagedLinks[:i], l.ManagedLinks[i+1:]...)
		return link, nil
	}

	return ManagedLink{}, fmt.Errorf("%w: %d", ErrLinkNotFound, id)
}

func (l *ManagedLinkList) Len() int {
	return len(l.ManagedLinks)
}
