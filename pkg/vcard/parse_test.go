package vcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVCF = "BEGIN:VCARD\n" +
	"VERSION:3.0\n" +
	"FN:Ada Lovelace\n" +
	"TEL;TYPE=CELL:111\n" +
	"CATEGORIES:friend,math\n" +
	"END:VCARD\n" +
	"BEGIN:VCARD\n" +
	"FN:Broken Record\n" +
	"BEGIN:VCARD\n" +
	"FN:Charles Babbage\n" +
	"CATEGORIES:work\n" +
	"END:VCARD\n"

func TestParseSkipsMalformedBlockAndContinues(t *testing.T) {
	contacts, report := Parse([]byte(sampleVCF), nil)

	require.Len(t, contacts, 2)
	assert.Equal(t, "Ada Lovelace", contacts[0].Name)
	assert.Equal(t, "Charles Babbage", contacts[1].Name)

	assert.Equal(t, 3, report.BlocksSeen)
	assert.Equal(t, 2, report.Parsed)
	require.Equal(t, 1, report.Skipped())
	assert.Equal(t, 7, report.Skips[0].Line)
	assert.Equal(t, "missing end marker", report.Skips[0].Reason)
	assert.NotEmpty(t, report.RunID)
}

func TestParseEmptyRecordSkipped(t *testing.T) {
	input := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"END:VCARD\n" +
		"BEGIN:VCARD\n" +
		"FN:Kept\n" +
		"END:VCARD\n"

	contacts, report := Parse([]byte(input), nil)
	require.Len(t, contacts, 1)
	assert.Equal(t, 1, report.Skipped())
	assert.Equal(t, "no decodable fields", report.Skips[0].Reason)
	assert.Equal(t, 1, report.Skips[0].Line)
}

func TestParseAssignsSourceOrderIndexes(t *testing.T) {
	contacts, _ := Parse([]byte(sampleVCF), nil)
	require.Len(t, contacts, 2)
	assert.Equal(t, 0, contacts[0].Index)
	assert.Equal(t, 1, contacts[1].Index)
}

func TestParseIdempotent(t *testing.T) {
	first, _ := Parse([]byte(sampleVCF), nil)
	second, _ := Parse([]byte(sampleVCF), nil)
	assert.Equal(t, first, second)
}

func TestParseEmptyInput(t *testing.T) {
	contacts, report := Parse(nil, nil)
	assert.Empty(t, contacts)
	assert.Equal(t, 0, report.BlocksSeen)
	assert.Equal(t, 0, report.Skipped())
}

func TestCollectTags(t *testing.T) {
	contacts, _ := Parse([]byte(sampleVCF), nil)
	counts := CollectTags(contacts)
	assert.Equal(t, map[string]int{"friend": 1, "math": 1, "work": 1}, counts)
}

func TestReportSummary(t *testing.T) {
	_, report := Parse([]byte(sampleVCF), nil)
	report.Matched = 1

	s := report.Summary()
	assert.Contains(t, s, "3 blocks read")
	assert.Contains(t, s, "2 parsed")
	assert.Contains(t, s, "1 skipped")
	assert.Contains(t, s, "1 matched")
	assert.Contains(t, s, "missing end marker")
}
