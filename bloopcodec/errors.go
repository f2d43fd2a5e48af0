package bloopcodec

import (
	"errors"
	"fmt"
	"strings"

	jsonv2 "encoding/json/v2"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

// Decode error taxonomy
var (
	// ErrStructural marks malformed JSON or a value whose shape does not fit
	// the field it was found in.
	ErrStructural       = errors.New("structural decode error")
	ErrUnexpectedKind   = errors.New("unexpected JSON kind")
	ErrTrailingData     = errors.New("unexpected data after top-level value")
	ErrUnknownEnumValue = errors.New("unknown enumeration value")
	ErrUnknownPlatform  = errors.New("unknown platform")
	ErrCardinality      = errors.New("too many values for optional field")
	ErrMissingField     = errors.New("missing required field")
	ErrUnknownField     = errors.New("unknown field")
	ErrConflictingField = errors.New("conflicting fields")
	ErrNoProjects       = bloopmodel.ErrNoProjects
)

// Encode errors; none can occur for values built from the exported
// constants and constructors.
var (
	ErrInvalidEnumValue = errors.New("enumeration value not declared")
	ErrNilPlatform      = errors.New("project has no platform")
)

// EnumError reports a value outside a closed string enumeration.
type EnumError struct {
	TypeName string
	// Got is the offending input as it appeared in the document.
	Got   string
	IDs   []string
	Names []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("unknown %s %s; expected one of (%s) for %s",
		e.TypeName,
		e.Got,
		quoteList(e.IDs),
		strings.Join(e.Names, ", "),
	)
}

func (e *EnumError) Unwrap() error {
	return ErrUnknownEnumValue
}

// DiscriminatorError reports a platform tag that selects no variant.
type DiscriminatorError struct {
	Tag      string
	Accepted []string
}

func (e *DiscriminatorError) Error() string {
	return fmt.Sprintf("unknown platform %q; expected one of (%s)", e.Tag, quoteList(e.Accepted))
}

func (e *DiscriminatorError) Unwrap() error {
	return ErrUnknownPlatform
}

// CardinalityError reports a list-shaped optional field holding more than
// one element.
type CardinalityError struct {
	What   string
	Values []string
}

func (e *CardinalityError) Error() string {
	literal, err := jsonv2.Marshal(e.Values)
	if err != nil {
		literal = []byte(fmt.Sprintf("%q", e.Values))
	}
	return fmt.Sprintf("Expected only one %s, obtained %s", e.What, literal)
}

func (e *CardinalityError) Unwrap() error {
	return ErrCardinality
}

// PathError locates a decode failure inside the document, e.g.
// /projects/0/platform/config/mode.
type PathError struct {
	Segments []string
	Err      error
}

func (e *PathError) Pointer() string {
	return "/" + strings.Join(e.Segments, "/")
}

func (e *PathError) Error() string {
	return fmt.Sprintf("at %s: %v", e.Pointer(), e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// withSegment prefixes the location of err with seg.
func withSegment(err error, seg string) error {
	if err == nil {
		return nil
	}
	pe, ok := err.(*PathError)
	if ok {
		return &PathError{
			Segments: append([]string{seg}, pe.Segments...),
			Err:      pe.Err,
		}
	}
	return &PathError{Segments: []string{seg}, Err: err}
}

func quoteList(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}
