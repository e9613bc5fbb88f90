package resource

import (
	"fmt"
	"strings"
)

// UnsupportedExtensionError reports a resource file whose extension the
// collector cannot handle. Always fatal: the run aborts before any output is
// written.
type UnsupportedExtensionError struct {
	Path      string
	Extension string
	Supported []string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("unsupported resource extension %q for %s (supported: %s)",
		e.Extension, e.Path, strings.Join(e.Supported, ", "))
}

// ParseError reports a required input that could not be parsed. Always fatal.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
