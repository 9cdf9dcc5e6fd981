// Package export shapes filtered contacts into tabular rows and writes
// them out as an Excel workbook and a JSON dump. The projector fixes the
// column schema; the writers own every format detail.
package export

import (
	"strconv"
	"strings"

	"vcfsheet/pkg/vcard"
)

// TagSeparator joins a contact's tags inside the Tags column.
const TagSeparator = ", "

// Schema is the ordered list of output column names.
type Schema []string

// SummaryRow is one flattened contact, aligned to the Schema.
type SummaryRow []string

// Photo carries decoded image bytes destined for one row's photo cell.
type Photo struct {
	Row  int // 0-based index into Rows
	Data []byte
}

// Projection is the tabular form of a filtered contact list.
type Projection struct {
	Schema Schema
	Rows   []SummaryRow

	Photos   []Photo
	PhotoCol int // 1-based column of the Photo column, 0 when absent
}

// column extracts one scalar cell from a contact.
type column struct {
	name string
	get  func(c vcard.Contact) string
}

// multiColumn extracts one repeated multi-valued group.
type multiColumn struct {
	name string
	get  func(c vcard.Contact) []vcard.Labeled
}

// Project flattens contacts into rows. Row order preserves source order
// (no sort). Multi-valued fields become repeated indexed columns
// ("Phone 1", "Phone 2", ...) sized to the widest contact of the run, so
// values never need separator escaping; tags are joined with ", " in a
// single Tags column. Scalar columns that are empty for every contact
// are dropped. The result is identical across runs for the same input.
func Project(contacts []vcard.Contact) Projection {
	scalars := []column{
		{"Index", func(c vcard.Contact) string { return strconv.Itoa(c.Index + 1) }},
		{"First Name", func(c vcard.Contact) string { return c.FirstName }},
		{"Middle Name", func(c vcard.Contact) string { return c.MiddleName }},
		{"Last Name", func(c vcard.Contact) string { return c.LastName }},
		{"Name", func(c vcard.Contact) string { return c.Name }},
		{"Nickname", func(c vcard.Contact) string { return c.Nickname }},
		{"Organization", func(c vcard.Contact) string { return c.Organization }},
		{"Title", func(c vcard.Contact) string { return c.Title }},
		{"Birthday", func(c vcard.Contact) string { return c.Birthday }},
		{"Tags", func(c vcard.Contact) string { return strings.Join(c.Tags, TagSeparator) }},
		{"Note", func(c vcard.Contact) string { return c.Note }},
	}
	multis := []multiColumn{
		{"Phone", func(c vcard.Contact) []vcard.Labeled { return c.Phones }},
		{"Email", func(c vcard.Contact) []vcard.Labeled { return c.Emails }},
		{"Address", func(c vcard.Contact) []vcard.Labeled { return c.Addresses }},
		{"URL", func(c vcard.Contact) []vcard.Labeled { return c.URLs }},
	}

	// The Index column always stays; other scalars only when some
	// contact fills them.
	kept := make([]column, 0, len(scalars))
	kept = append(kept, scalars[0])
	for _, col := range scalars[1:] {
		for _, c := range contacts {
			if col.get(c) != "" {
				kept = append(kept, col)
				break
			}
		}
	}

	counts := make([]int, len(multis))
	for i, mc := range multis {
		for _, c := range contacts {
			if n := len(mc.get(c)); n > counts[i] {
				counts[i] = n
			}
		}
	}

	hasPhoto := false
	for _, c := range contacts {
		if len(c.Photo) > 0 {
			hasPhoto = true
			break
		}
	}

	schema := make(Schema, 0, len(kept)+8)
	for _, col := range kept {
		schema = append(schema, col.name)
	}
	for i, mc := range multis {
		for n := 1; n <= counts[i]; n++ {
			schema = append(schema, mc.name+" "+strconv.Itoa(n))
		}
	}
	photoCol := 0
	if hasPhoto {
		schema = append(schema, "Photo")
		photoCol = len(schema)
	}

	p := Projection{Schema: schema, PhotoCol: photoCol}
	for _, c := range contacts {
		row := make(SummaryRow, 0, len(schema))
		for _, col := range kept {
			row = append(row, col.get(c))
		}
		for i, mc := range multis {
			vals := mc.get(c)
			for n := 0; n < counts[i]; n++ {
				if n < len(vals) {
					row = append(row, labeledString(vals[n]))
				} else {
					row = append(row, "")
				}
			}
		}
		if hasPhoto {
			row = append(row, "")
			if len(c.Photo) > 0 {
				p.Photos = append(p.Photos, Photo{Row: len(p.Rows), Data: c.Photo})
			}
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}

// labeledString renders a labeled value as "LABEL: value", or just the
// value when no label is present.
func labeledString(v vcard.Labeled) string {
	if v.Label == "" {
		return v.Value
	}
	return v.Label + ": " + v.Value
}
