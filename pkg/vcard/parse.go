package vcard

import (
	"errors"

	"go.uber.org/zap"
)

// Parse decodes every well-formed block in data into Contacts, in source
// order. Broken and empty blocks are skipped and recorded in the Report;
// they never abort the run. The returned Report has Matched and
// Suggestions still unset — the filtering stage fills those in.
func Parse(data []byte, log *zap.Logger) ([]Contact, *Report) {
	if log == nil {
		log = zap.NewNop()
	}

	report := NewReport()
	var contacts []Contact

	tok := NewTokenizer(data)
	for blk, err := range tok.Blocks() {
		report.BlocksSeen++
		if err != nil {
			var malformed *MalformedRecordError
			if errors.As(err, &malformed) {
				report.AddSkip(malformed.Line, "missing end marker")
				log.Warn("skipping malformed record", zap.Int("line", malformed.Line))
			} else {
				report.AddSkip(0, err.Error())
				log.Warn("skipping unreadable record", zap.Error(err))
			}
			continue
		}

		c, err := buildContact(blk, len(contacts))
		if err != nil {
			var empty *EmptyRecordError
			if errors.As(err, &empty) {
				report.AddSkip(empty.Line, "no decodable fields")
				log.Warn("skipping empty record", zap.Int("line", empty.Line))
			} else {
				report.AddSkip(blk.Line, err.Error())
				log.Warn("skipping record", zap.Int("line", blk.Line), zap.Error(err))
			}
			continue
		}

		report.Parsed++
		contacts = append(contacts, c)
	}

	return contacts, report
}
