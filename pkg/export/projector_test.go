package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcfsheet/pkg/vcard"
)

func sampleContacts() []vcard.Contact {
	return []vcard.Contact{
		{
			Index:        0,
			Name:         "Ada Lovelace",
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Organization: "Analytical Engines Ltd",
			Phones: []vcard.Labeled{
				{Label: "CELL", Value: "111"},
				{Label: "HOME", Value: "222"},
				{Label: "", Value: "333"},
			},
			Emails: []vcard.Labeled{{Label: "WORK", Value: "ada@example.org"}},
			Tags:   []string{"friend", "math"},
		},
		{
			Index:  1,
			Name:   "Charles Babbage",
			Phones: []vcard.Labeled{{Label: "", Value: "444"}},
			Tags:   []string{"work"},
		},
	}
}

func columnIndex(t *testing.T, s Schema, name string) int {
	t.Helper()
	for i, n := range s {
		if n == name {
			return i
		}
	}
	t.Fatalf("column %q not in schema %v", name, s)
	return -1
}

func TestProjectSchemaAndRows(t *testing.T) {
	p := Project(sampleContacts())

	assert.Equal(t, "Index", p.Schema[0])
	require.Len(t, p.Rows, 2)

	nameCol := columnIndex(t, p.Schema, "Name")
	assert.Equal(t, "Ada Lovelace", p.Rows[0][nameCol])
	assert.Equal(t, "Charles Babbage", p.Rows[1][nameCol])

	// Row order follows source order, no sort.
	idxCol := columnIndex(t, p.Schema, "Index")
	assert.Equal(t, "1", p.Rows[0][idxCol])
	assert.Equal(t, "2", p.Rows[1][idxCol])
}

func TestProjectRepeatedIndexedColumns(t *testing.T) {
	p := Project(sampleContacts())

	// Widest contact has three phones, so three Phone columns exist.
	p1 := columnIndex(t, p.Schema, "Phone 1")
	p3 := columnIndex(t, p.Schema, "Phone 3")
	assert.Equal(t, "CELL: 111", p.Rows[0][p1])
	assert.Equal(t, "333", p.Rows[0][p3])

	// The narrower contact is padded with empty cells.
	assert.Equal(t, "444", p.Rows[1][p1])
	assert.Equal(t, "", p.Rows[1][p3])
}

func TestProjectTagsJoined(t *testing.T) {
	p := Project(sampleContacts())

	tagsCol := columnIndex(t, p.Schema, "Tags")
	assert.Equal(t, "friend, math", p.Rows[0][tagsCol])
	assert.Equal(t, "work", p.Rows[1][tagsCol])
}

func TestProjectDropsAllEmptyColumns(t *testing.T) {
	p := Project(sampleContacts())

	// No contact has a nickname, birthday or URL.
	assert.NotContains(t, p.Schema, "Nickname")
	assert.NotContains(t, p.Schema, "Birthday")
	assert.NotContains(t, p.Schema, "URL 1")
	assert.NotContains(t, p.Schema, "Photo")
	assert.Zero(t, p.PhotoCol)
}

func TestProjectDeterministic(t *testing.T) {
	first := Project(sampleContacts())
	second := Project(sampleContacts())
	assert.Equal(t, first, second)
}

func TestProjectEmptyInput(t *testing.T) {
	p := Project(nil)
	assert.Equal(t, Schema{"Index"}, p.Schema)
	assert.Empty(t, p.Rows)
}

func TestProjectPhotoColumn(t *testing.T) {
	contacts := sampleContacts()
	contacts[1].Photo = []byte("img-bytes")

	p := Project(contacts)
	require.NotZero(t, p.PhotoCol)
	assert.Equal(t, "Photo", p.Schema[p.PhotoCol-1])
	require.Len(t, p.Photos, 1)
	assert.Equal(t, 1, p.Photos[0].Row)
	assert.Equal(t, []byte("img-bytes"), p.Photos[0].Data)

	// Every row is padded to the full schema width.
	for _, row := range p.Rows {
		assert.Len(t, row, len(p.Schema))
	}
}
