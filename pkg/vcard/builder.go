package vcard

import "strings"

// buildContact assembles one Contact from a RawBlock. Multi-valued keys
// (TEL, EMAIL, ADR, URL, CATEGORIES) accumulate in source order;
// single-valued keys keep their first non-empty occurrence. A block with
// no name and no organization still builds; only a block with zero
// recognized fields fails with *EmptyRecordError.
func buildContact(blk RawBlock, index int) (Contact, error) {
	c := Contact{Index: index}
	fields := 0

	for _, ln := range blk.Lines {
		key := lookupKey(ln.Key)
		if key == keyUnknown {
			continue
		}
		fields++
		p := parseParams(ln.Params)
		v := decodeValue(ln.Value, p)

		switch key {
		case keyFN:
			setFirst(&c.Name, strings.TrimSpace(unescapeText(v)))
		case keyN:
			applyStructuredName(&c, v)
		case keyNickname:
			setFirst(&c.Nickname, strings.TrimSpace(unescapeText(v)))
		case keyOrg:
			// ORG is structured (org;unit1;unit2); the organization
			// name is the first component.
			parts := splitUnescaped(v, ';')
			setFirst(&c.Organization, strings.TrimSpace(unescapeText(parts[0])))
		case keyTitle:
			setFirst(&c.Title, strings.TrimSpace(unescapeText(v)))
		case keyBday:
			setFirst(&c.Birthday, normalizeBirthday(v))
		case keyTel:
			c.Phones = append(c.Phones, Labeled{Label: p.label, Value: strings.TrimSpace(v)})
		case keyEmail:
			c.Emails = append(c.Emails, Labeled{Label: p.label, Value: strings.TrimSpace(v)})
		case keyAdr:
			c.Addresses = append(c.Addresses, Labeled{Label: p.label, Value: flattenAddress(v)})
		case keyURL:
			c.URLs = append(c.URLs, Labeled{Label: p.label, Value: strings.TrimSpace(v)})
		case keyCategories:
			for _, tag := range SplitTags(v) {
				if !c.HasTag(tag) {
					c.Tags = append(c.Tags, tag)
				}
			}
		case keyNote:
			setFirst(&c.Note, unescapeText(v))
		case keyPhoto:
			if c.Photo == nil {
				if data, err := decodeBinary(ln.Value); err == nil && len(data) > 0 {
					c.Photo = data
				}
			}
		}
	}

	if fields == 0 {
		return Contact{}, &EmptyRecordError{Line: blk.Line}
	}
	if c.Name == "" {
		c.Name = assembledName(c)
	}
	return c, nil
}

// setFirst assigns val to dst unless dst already holds a value; repeated
// single-valued keys never overwrite.
func setFirst(dst *string, val string) {
	if *dst == "" {
		*dst = val
	}
}

// applyStructuredName decodes the N property (last;first;middle;...).
func applyStructuredName(c *Contact, v string) {
	parts := splitUnescaped(v, ';')
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(unescapeText(parts[i]))
		}
		return ""
	}
	setFirst(&c.LastName, get(0))
	setFirst(&c.FirstName, get(1))

	var middle []string
	for i := 2; i < len(parts) && i < 4; i++ {
		if m := get(i); m != "" {
			middle = append(middle, m)
		}
	}
	setFirst(&c.MiddleName, strings.Join(middle, " "))
}

// assembledName builds a display name from the structured parts when FN
// is absent.
func assembledName(c Contact) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// flattenAddress turns a structured ADR value into one display string:
// components split on unescaped semicolons, empties dropped, the rest
// joined with ", ".
func flattenAddress(v string) string {
	var parts []string
	for _, part := range splitUnescaped(v, ';') {
		part = strings.TrimSpace(unescapeText(part))
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
