// Package selection defines the value a terminal interface hands back to
// the invoking `rad` command when it exits. The caller performs the actual
// operation; the TUI only ever selects.
package selection

import (
	"encoding/json"
	"fmt"
	"io"
)

// Mode controls what a selection interface returns.
type Mode string

const (
	// ModeOperation returns an object id together with an operation.
	ModeOperation Mode = "operation"
	// ModeID returns an object id only.
	ModeID Mode = "id"
)

// ParseMode validates a --mode flag value.
func ParseMode(value string) (Mode, error) {
	switch value {
	case string(ModeOperation):
		return ModeOperation, nil
	case string(ModeID):
		return ModeID, nil
	default:
		return "", fmt.Errorf("unknown mode %q", value)
	}
}

// Selection is the output of a selection interface. Operation is null
// in id mode, where only the id is returned.
type Selection struct {
	Operation *string  `json:"operation"`
	IDs       []string `json:"ids"`
	Args      []string `json:"args"`
}

// New creates a selection for a single object id.
func New(operation string, id string) *Selection {
	return &Selection{Operation: &operation, IDs: []string{id}}
}

// WithArg appends an argument for the operation.
func (s *Selection) WithArg(arg string) *Selection {
	s.Args = append(s.Args, arg)
	return s
}

// Write serializes the selection as a single JSON line. The terminal owns
// stdout, so callers pass stderr.
func (s *Selection) Write(w io.Writer) error {
	// Emit empty arrays, not null: the consuming CLI indexes into them.
	if s.IDs == nil {
		s.IDs = []string{}
	}
	if s.Args == nil {
		s.Args = []string{}
	}
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}
	return nil
}
