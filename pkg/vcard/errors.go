package vcard

import "fmt"

// MalformedRecordError reports a block whose END marker is missing before
// the next BEGIN marker or the end of the file. The block is skipped; the
// tokenizer resumes at the next BEGIN marker.
type MalformedRecordError struct {
	Line int // 1-based line of the BEGIN marker
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: block starting at line %d has no end marker", e.Line)
}

// EmptyRecordError reports a block that decoded to zero recognized fields.
// Skippable; callers accumulate it into the run Report.
type EmptyRecordError struct {
	Line int // 1-based line of the BEGIN marker
}

func (e *EmptyRecordError) Error() string {
	return fmt.Sprintf("empty record: block starting at line %d has no fields", e.Line)
}
