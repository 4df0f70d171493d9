// Package core implements the tag-resolution and keyword-normalization
// engine for Media Tag Surgery: it wraps an external exiftool-style
// command-line tool, parses its textual tag dump, and exposes typed,
// fallback-aware accessors for the common embedded metadata fields.
package core

import (
	"errors"
	"strings"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrToolNotConfigured means the external tool location is unset or
	// the binary cannot be found. Raised before any invocation attempt.
	ErrToolNotConfigured = errors.New("metadata tool not configured")

	// ErrUnsupportedExt means the file's extension is outside the closed
	// allow-list. Raised before any invocation attempt.
	ErrUnsupportedExt = errors.New("unsupported file extension")

	// ErrUnknownMIME means the tool reported no MIME Type tag, or one
	// that maps to no known file type.
	ErrUnknownMIME = errors.New("unrecognized MIME type")
)

// TagRecord is a single (container, name, value) fact reported by the
// external tool. Records are immutable; they are only ever replaced
// wholesale when the file is re-read.
type TagRecord struct {
	Container string // Schema/namespace label (e.g. "EXIF", "IPTC", "XMP", "File")
	Name      string // Tag name within the container
	Value     string // Raw textual value
}

// Is reports whether the record matches the given container and name.
// Both comparisons are case-insensitive.
func (t TagRecord) Is(container, name string) bool {
	return strings.EqualFold(t.Container, container) && strings.EqualFold(t.Name, name)
}

// tagKey identifies one concrete lookup candidate for a logical field.
type tagKey struct {
	container string
	name      string
}

// UpdateRequest holds proposed new values for the writable fields.
// A nil pointer (or nil Keywords slice) leaves that field untouched.
type UpdateRequest struct {
	Title       *string
	Caption     *string
	Copyright   *string
	Description *string
	Rating      *int
	Label       *string
	Keywords    []string

	// DeleteOtherTags clears every existing tag before the per-field
	// writes, so the final state equals exactly the written fields.
	DeleteOtherTags bool

	// Force writes every provided field even when its value matches the
	// currently resolved one.
	Force bool
}

// Str returns a pointer to s, for building an UpdateRequest inline.
func Str(s string) *string { return &s }

// Int returns a pointer to n, for building an UpdateRequest inline.
func Int(n int) *int { return &n }
