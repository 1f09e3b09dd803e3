// Package locale models the locale lists declared by configuration layers.
//
// A layer may declare its locales either as bare codes or as descriptor
// records with a required code and free-form attributes:
//
//	locales: [en, fr]
//
//	locales:
//	  - code: en
//	    name: English
//	    file: en.json
//
// Each list item decodes into an [Entry], which keeps track of its own shape.
// Merged output is carried as a [List], a tagged value that is either all
// codes or all descriptors, never a mix.
//
// # Record Merging
//
// [MergeDescriptors] merges descriptors that share a code. Records are passed
// in precedence order and, attribute by attribute, the first non-nil value wins:
//
//	project := locale.NewDescriptor("en", map[string]any{"name": "English"})
//	base := locale.NewDescriptor("en", map[string]any{"name": "EN", "file": "en.json"})
//
//	merged := locale.MergeDescriptors(project, base)
//	// {code: en, name: English, file: en.json}
//
// Inputs are never modified; the result owns a fresh attribute map.
package locale
