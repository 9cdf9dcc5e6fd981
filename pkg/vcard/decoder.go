package vcard

import (
	"encoding/base64"
	"io"
	"mime/quotedprintable"
	"strings"
)

// fieldKey identifies a recognized vCard property. The dispatch is a
// closed mapping: anything not listed here decodes to keyUnknown and is
// ignored, so new properties in future exports cannot silently change
// behavior.
type fieldKey int

const (
	keyUnknown fieldKey = iota
	keyFN
	keyN
	keyNickname
	keyOrg
	keyTitle
	keyBday
	keyTel
	keyEmail
	keyAdr
	keyURL
	keyCategories
	keyNote
	keyPhoto
)

var fieldKeys = map[string]fieldKey{
	"FN":         keyFN,
	"N":          keyN,
	"NICKNAME":   keyNickname,
	"ORG":        keyOrg,
	"TITLE":      keyTitle,
	"BDAY":       keyBday,
	"TEL":        keyTel,
	"EMAIL":      keyEmail,
	"ADR":        keyAdr,
	"URL":        keyURL,
	"CATEGORIES": keyCategories,
	"NOTE":       keyNote,
	"PHOTO":      keyPhoto,
}

// lookupKey resolves a raw property name case-insensitively.
func lookupKey(raw string) fieldKey {
	return fieldKeys[strings.ToUpper(raw)]
}

// lineParams is the decoded parameter set of one raw line.
type lineParams struct {
	label    string // TYPE values or bare legacy tokens, joined with ","
	encoding string // "QUOTED-PRINTABLE", "B" or "BASE64", normalized upper-case
}

// parseParams interprets the parameter tokens of a property line.
// TYPE=x and bare legacy tokens (e.g. "HOME" on vCard 2.1 lines) become
// the label; ENCODING selects the value transfer decoding; CHARSET is
// accepted and ignored (values are treated as UTF-8).
func parseParams(params []string) lineParams {
	var p lineParams
	for _, raw := range params {
		name, val, found := strings.Cut(raw, "=")
		name = strings.ToUpper(strings.TrimSpace(name))
		switch {
		case name == "":
		case found && name == "TYPE":
			p.addLabel(val)
		case found && name == "ENCODING":
			p.encoding = strings.ToUpper(strings.TrimSpace(val))
		case found:
			// CHARSET and other name=value params carry no field data
		case name == "PREF":
		default:
			p.addLabel(name)
		}
	}
	return p
}

func (p *lineParams) addLabel(val string) {
	val = strings.TrimSpace(val)
	if val == "" {
		return
	}
	if p.label == "" {
		p.label = val
		return
	}
	p.label += "," + val
}

// decodeValue normalizes a raw text value to plain text per the line's
// encoding parameters. Undecodable input falls back to the raw value.
func decodeValue(raw string, p lineParams) string {
	if p.encoding == "QUOTED-PRINTABLE" {
		r := quotedprintable.NewReader(strings.NewReader(raw))
		if out, err := io.ReadAll(r); err == nil {
			return string(out)
		}
	}
	return raw
}

// decodeBinary decodes a base64 value (PHOTO and friends), tolerating
// embedded whitespace left over from unfolding.
func decodeBinary(raw string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, raw)
	// Data URIs ("data:image/jpeg;base64,...") keep only the payload.
	if i := strings.LastIndexByte(clean, ','); i >= 0 {
		clean = clean[i+1:]
	}
	return base64.StdEncoding.DecodeString(clean)
}

// unescapeText decodes vCard backslash escapes (\n, \,, \;, \\) in a
// text value.
func unescapeText(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// splitUnescaped splits s on any of seps, honoring backslash escapes.
// The parts are returned still escaped.
func splitUnescaped(s string, seps ...byte) []string {
	isSep := func(c byte) bool {
		for _, sep := range seps {
			if c == sep {
				return true
			}
		}
		return false
	}
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if isSep(s[i]) {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// SplitTags splits a CATEGORIES value on commas and semicolons, trims
// whitespace and drops empty entries. Escaped separators stay part of
// the tag.
func SplitTags(v string) []string {
	var tags []string
	for _, part := range splitUnescaped(v, ',', ';') {
		tag := strings.TrimSpace(unescapeText(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// normalizeBirthday rewrites the common BDAY layouts to dashed form:
// "19820316" becomes "1982-03-16" and the year-less "--0316" becomes
// "03-16". Anything else passes through unchanged.
func normalizeBirthday(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "--") && len(v) >= 6 && allDigits(v[2:6]) {
		return v[2:4] + "-" + v[4:6]
	}
	if len(v) == 8 && allDigits(v) {
		return v[:4] + "-" + v[4:6] + "-" + v[6:8]
	}
	return v
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
