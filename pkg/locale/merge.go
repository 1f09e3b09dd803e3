package locale

// MergeDescriptors merges records that describe the same locale.
// Records are given in precedence order, highest first: for every attribute
// the first non-nil value wins, and attributes missing from a record are
// filled from the records after it. An attribute that is nil in every record
// declaring it is kept as nil. The code is taken from the first record.
func MergeDescriptors(records ...Descriptor) Descriptor {
	if len(records) == 0 {
		return Descriptor{Attrs: map[string]any{}}
	}

	merged := Descriptor{Code: records[0].Code, Attrs: make(map[string]any)}
	for _, r := range records {
		for k, v := range r.Attrs {
			if cur, set := merged.Attrs[k]; set && (cur != nil || v == nil) {
				continue
			}
			merged.Attrs[k] = v
		}
	}
	return merged
}
