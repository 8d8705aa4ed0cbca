package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSpace indicates a space entry that does not fit its filter type.
	ErrInvalidSpace = errors.New("invalid space entry")
	// ErrInvalidTaxon indicates a taxon reference without source or nuid.
	ErrInvalidTaxon = errors.New("invalid taxon reference")
	// ErrInvalidUUID indicates an id that is not a UUID (strict mode only).
	ErrInvalidUUID = errors.New("invalid uuid")
	// ErrUndeclaredFilter indicates a space entry whose filter id has no type (strict mode only).
	ErrUndeclaredFilter = errors.New("undeclared filter")
	// ErrTypeConflict indicates a filter definition whose type differs from the declared one.
	ErrTypeConflict = errors.New("filter type conflict")
	// ErrNodeNotFound is returned when a guide has no node with the requested uuid.
	ErrNodeNotFound = errors.New("node not found")
	// ErrEmptyDocument is returned for documents without items or tree.
	ErrEmptyDocument = errors.New("empty catalog document")
)

// ValidationError describes one invalid part of a catalog document.
type ValidationError struct {
	Node     string
	Item     string
	FilterID string
	Reason   string
	Err      error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("catalog")
	if e.Node != "" {
		fmt.Fprintf(&b, ": node %s", e.Node)
	}
	if e.Item != "" {
		fmt.Fprintf(&b, ": item %s", e.Item)
	}
	if e.FilterID != "" {
		fmt.Fprintf(&b, ": filter %s", e.FilterID)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }
