package depstats

import(
	"errors"
	"fmt"
)

// A missing input file is recoverable: the loader soft-fails to an
// empty record set, and the caller reports it. Bad fields inside a
// file are not recoverable; they fail the whole pass. The two kinds
// stay distinct because callers recover from them differently.

var(
	ErrSourceNotFound = errors.New("source not found")
	ErrUnknownAirline = errors.New("airline code not in the allow-list")
)

// {{{ MalformedRecordError{}

// A row in the source that lacks one of the expected header fields.
type MalformedRecordError struct {
	Field string
	Row   int
}

func (e MalformedRecordError)Error() string {
	return fmt.Sprintf("row %d: missing field '%s'", e.Row, e.Field)
}

// }}}
// {{{ FieldParseError{}

// A field value that failed to parse as its semantic type (numeric
// distance, HH:MM departure time).
type FieldParseError struct {
	Field string
	Row   int
	Value string
}

func (e FieldParseError)Error() string {
	return fmt.Sprintf("row %d: bad value '%s' for field '%s'", e.Row, e.Value, e.Field)
}

// }}}
// {{{ ReportWriteError{}

// The results file could not be appended to. Reported, but never
// aborts a run.
type ReportWriteError struct {
	Name string
	Err  error
}

func (e ReportWriteError)Error() string {
	return fmt.Sprintf("could not write report to %s: %v", e.Name, e.Err)
}
func (e ReportWriteError)Unwrap() error { return e.Err }

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
