package bandforge

import "fmt"

// ConfigError reports an out-of-range or otherwise invalid configuration
// value. A ConfigError fails the whole request before any geometry is
// generated.
type ConfigError struct {
	// Field is the configuration field name, e.g. "CircumferenceMM".
	Field string

	// Reason describes why the value was rejected.
	Reason string
}

func (e *ConfigError) Error() string {
	return "bandforge: invalid config: " + e.Field + ": " + e.Reason
}

// GeometryError reports a derived polygon that remained degenerate after
// the single repair attempt. The affected band is skipped; sibling bands
// in a grid are unaffected.
type GeometryError struct {
	// Reason describes the degeneracy, e.g. "zero-area glyph contour".
	Reason string
}

func (e *GeometryError) Error() string {
	return "bandforge: degenerate geometry: " + e.Reason
}

// CellError wraps a per-cell failure with its grid position. Returned
// inside [CellResult]; Assemble itself does not fail on cell errors.
type CellError struct {
	Index int
	Row   int
	Col   int
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("bandforge: cell %d (row %d, col %d): %v", e.Index, e.Row, e.Col, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
