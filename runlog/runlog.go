// Package runlog keeps a plain text record of what the last invocation did.
package runlog

import (
	"github.com/jamesbehr/symlinker/store"
)

const FileName = "lastRun.log"

type Logger struct {
	store *store.Store
}

func New(s *store.Store) *Logger {
	return &Logger{store: s}
}

// Reset empties the log, creating it if needed.
func (l *Logger) Reset() error {
	return l.store.Write(store.RoleData, FileName, "")
}

// Log appends message as its own line.
func (l *Logger) Log(message string) error {
	return l.store.Append(store.RoleData, FileName, message+"\n")
}
