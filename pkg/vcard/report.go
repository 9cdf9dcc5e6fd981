package vcard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SkippedBlock records one block that was dropped during parsing.
type SkippedBlock struct {
	Line   int
	Reason string
}

// Report accumulates the outcome of one pipeline run: how many blocks
// were read, how many parsed, which were skipped and why, and how many
// contacts matched the filter. It is a value threaded through the run,
// never shared state.
type Report struct {
	RunID      string
	BlocksSeen int
	Parsed     int
	Skips      []SkippedBlock
	Matched    int

	// Suggestions maps requested filter tags that matched no contact to
	// the closest tags actually present in the file. Hints only.
	Suggestions map[string][]string
}

// NewReport starts a report with a fresh run ID.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// AddSkip records a skipped block.
func (r *Report) AddSkip(line int, reason string) {
	r.Skips = append(r.Skips, SkippedBlock{Line: line, Reason: reason})
}

// Skipped returns the number of skipped blocks.
func (r *Report) Skipped() int {
	return len(r.Skips)
}

// Summary renders the user-facing run summary.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d blocks read, %d parsed, %d skipped, %d matched",
		r.RunID, r.BlocksSeen, r.Parsed, r.Skipped(), r.Matched)
	for _, s := range r.Skips {
		fmt.Fprintf(&b, "\n  skipped block at line %d: %s", s.Line, s.Reason)
	}
	for tag, closest := range r.Suggestions {
		fmt.Fprintf(&b, "\n  tag %q matched no contact; closest in file: %s",
			tag, strings.Join(closest, ", "))
	}
	return b.String()
}
