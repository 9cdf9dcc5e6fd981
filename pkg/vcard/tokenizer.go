package vcard

import (
	"iter"
	"strings"
)

const (
	beginMarker = "BEGIN:VCARD"
	endMarker   = "END:VCARD"
)

// RawLine is one unfolded content line split at the first unescaped colon.
type RawLine struct {
	Key    string   // upper-cased property name, e.g. "TEL"
	Params []string // raw parameter tokens between key and value, e.g. "TYPE=CELL"
	Value  string
}

// RawBlock is the sequence of unfolded lines between a BEGIN:VCARD marker
// and its END:VCARD marker, plus the line number of the BEGIN marker.
type RawBlock struct {
	Line  int // 1-based line of the BEGIN marker
	Lines []RawLine
}

// logicalLine is a physical line with its continuations joined on.
type logicalLine struct {
	n    int // 1-based number of the first physical line
	text string
}

// Tokenizer splits raw VCF content into RawBlocks. The whole input is
// held in memory; the Blocks iterator is the only streaming hook.
type Tokenizer struct {
	lines []logicalLine
}

// NewTokenizer prepares tokenization of data. Folded lines (continuations
// starting with a space or tab) are joined to their previous logical line
// here, before any key/value splitting.
func NewTokenizer(data []byte) *Tokenizer {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	physical := strings.Split(text, "\n")

	logical := make([]logicalLine, 0, len(physical))
	for i, line := range physical {
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') && len(logical) > 0 {
			logical[len(logical)-1].text += line[1:]
			continue
		}
		logical = append(logical, logicalLine{n: i + 1, text: line})
	}
	return &Tokenizer{lines: logical}
}

// Blocks returns a single-use iterator over the blocks in the input.
// A block missing its END marker yields a *MalformedRecordError in the
// error position; the tokenizer does not recover mid-block, it resumes
// at the BEGIN marker that interrupted it. Content outside blocks is
// ignored.
func (t *Tokenizer) Blocks() iter.Seq2[RawBlock, error] {
	return func(yield func(RawBlock, error) bool) {
		inBlock := false
		begin := 0
		var lines []RawLine

		for _, ll := range t.lines {
			trimmed := strings.TrimSpace(ll.text)
			isBegin := strings.EqualFold(trimmed, beginMarker)
			isEnd := strings.EqualFold(trimmed, endMarker)

			if !inBlock {
				if isBegin {
					inBlock = true
					begin = ll.n
					lines = nil
				}
				continue
			}

			switch {
			case isBegin:
				if !yield(RawBlock{}, &MalformedRecordError{Line: begin}) {
					return
				}
				begin = ll.n
				lines = nil
			case isEnd:
				if !yield(RawBlock{Line: begin, Lines: lines}, nil) {
					return
				}
				inBlock = false
			default:
				if rl, ok := splitContentLine(ll.text); ok {
					lines = append(lines, rl)
				}
			}
		}

		if inBlock {
			yield(RawBlock{}, &MalformedRecordError{Line: begin})
		}
	}
}

// splitContentLine splits a logical line into key, params and value at
// the first unescaped colon. Lines without a separator carry no field
// and are dropped.
func splitContentLine(line string) (RawLine, bool) {
	sep := -1
	for i := 0; i < len(line); i++ {
		if line[i] == '\\' {
			i++
			continue
		}
		if line[i] == ':' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return RawLine{}, false
	}

	keyPart := strings.Split(line[:sep], ";")
	key := strings.ToUpper(strings.TrimSpace(keyPart[0]))
	if key == "" {
		return RawLine{}, false
	}
	return RawLine{
		Key:    key,
		Params: keyPart[1:],
		Value:  line[sep+1:],
	}, true
}
