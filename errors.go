package networth

import "errors"

// ErrNoActiveSnapshot is returned by item mutations when no snapshot is
// active. Callers must create or switch to a snapshot first.
var ErrNoActiveSnapshot = errors.New("no active snapshot")

// ValidationError reports user input rejected at the create/update boundary,
// like an empty item name or an empty snapshot label.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid input: " + e.Reason }

// NotFoundError reports an operation referencing a snapshot id or an item
// index that does not exist in the document.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string { return e.Ref + " not found" }

// MalformedDocumentError reports an import payload that failed structural
// validation. Rule names the violated structural rule.
type MalformedDocumentError struct {
	Rule string
}

func (e *MalformedDocumentError) Error() string { return "malformed document: " + e.Rule }
