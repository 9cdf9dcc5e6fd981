package filter

import (
	"sort"

	"github.com/agext/levenshtein"

	"vcfsheet/pkg/vcard"
)

// suggestMaxDistance bounds how far a near-miss hint may be from the
// requested tag.
const suggestMaxDistance = 2

// Suggest returns, for every requested tag that occurs in no contact,
// the closest tags that do occur in the file. Suggestions are hints for
// the run report only; they never influence matching.
func Suggest(requested []string, contacts []vcard.Contact) map[string][]string {
	if len(requested) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	for _, c := range contacts {
		for _, t := range c.Tags {
			seen[t] = struct{}{}
		}
	}

	pool := make([]string, 0, len(seen))
	for t := range seen {
		pool = append(pool, t)
	}
	sort.Strings(pool)

	var out map[string][]string
	for _, want := range requested {
		if _, ok := seen[want]; ok {
			continue
		}
		var hits []string
		for _, have := range pool {
			if levenshtein.Distance(want, have, nil) <= suggestMaxDistance {
				hits = append(hits, have)
			}
		}
		if len(hits) > 0 {
			if out == nil {
				out = make(map[string][]string)
			}
			out[want] = hits
		}
	}
	return out
}
