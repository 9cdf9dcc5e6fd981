// Package filter decides which contacts an export keeps, based on a
// boolean combination of category tags. Tag comparison is exact string
// equality — never case-insensitive, never fuzzy.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"vcfsheet/pkg/vcard"
)

// ErrInvalidOperator rejects any combinator other than AND and OR. It is
// raised at configuration-validation time, before any contact is parsed.
var ErrInvalidOperator = errors.New("invalid operator")

// Operator is the boolean combinator applied across the requested tags.
type Operator int

const (
	OpAnd Operator = iota + 1 // every requested tag must be present
	OpOr                      // at least one requested tag must be present
)

func (o Operator) String() string {
	switch o {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// ParseOperator validates an operator token. Accepted are the symbols
// "&" and "|" plus the word forms "and" / "or" in any case; anything
// else fails with ErrInvalidOperator.
func ParseOperator(tok string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "&", "and":
		return OpAnd, nil
	case "|", "or":
		return OpOr, nil
	}
	return 0, fmt.Errorf("%w: %q (want \"&\" or \"|\")", ErrInvalidOperator, tok)
}

// Spec is the requested tag filter. An empty Tags list matches every
// contact regardless of the operator — explicit policy, not a degenerate
// AND/OR case.
type Spec struct {
	Tags []string
	Op   Operator
}

// Matches reports whether a contact carrying tags passes the filter.
func (s Spec) Matches(tags []string) bool {
	if len(s.Tags) == 0 {
		return true
	}

	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}

	switch s.Op {
	case OpAnd:
		for _, want := range s.Tags {
			if _, ok := set[want]; !ok {
				return false
			}
		}
		return true
	case OpOr:
		for _, want := range s.Tags {
			if _, ok := set[want]; ok {
				return true
			}
		}
	}
	return false
}

// Apply returns the contacts passing s, preserving source order. With an
// empty tag list the input is returned as is.
func Apply(contacts []vcard.Contact, s Spec) []vcard.Contact {
	if len(s.Tags) == 0 {
		return contacts
	}
	out := make([]vcard.Contact, 0, len(contacts))
	for _, c := range contacts {
		if s.Matches(c.Tags) {
			out = append(out, c)
		}
	}
	return out
}
