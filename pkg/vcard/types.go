// Package vcard decodes vCard (VCF) contact files into typed Contact
// entities. Parsing is a single pass: the tokenizer splits the raw text
// into record blocks, the field decoder maps recognized property lines
// onto attributes, and the builder assembles one Contact per block.
// Broken blocks are skipped and accumulated into a run Report instead of
// aborting the pass.
package vcard

import "strings"

// Labeled is a value paired with its optional TYPE label ("CELL", "HOME", ...).
type Labeled struct {
	Label string
	Value string
}

// Contact is one decoded record. Contacts are immutable after build and
// carry no global identity beyond their position in the source file.
type Contact struct {
	Index int // 0-based position in source order

	Name       string // formatted name (FN), or assembled from N parts
	FirstName  string
	MiddleName string
	LastName   string
	Nickname   string

	Organization string
	Title        string
	Birthday     string // normalized YYYY-MM-DD, or MM-DD when the year is unknown

	Phones    []Labeled
	Emails    []Labeled
	Addresses []Labeled
	URLs      []Labeled

	// Tags keeps first-seen order with duplicates dropped; comparison
	// against filters is exact and case-sensitive.
	Tags []string

	Note  string
	Photo []byte // decoded image bytes, nil when the record has none
}

// HasTag reports whether the contact carries tag (exact match).
func (c *Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DisplayName returns the best available human-readable name.
func (c *Contact) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return c.Organization
}

// CollectTags returns every distinct tag across contacts with its
// occurrence count.
func CollectTags(contacts []Contact) map[string]int {
	counts := make(map[string]int)
	for _, c := range contacts {
		for _, t := range c.Tags {
			counts[t]++
		}
	}
	return counts
}
