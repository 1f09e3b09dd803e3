// Package localefiles merges lazily loaded locale declarations from several
// layers into one list of locale descriptors with project-relative files.
//
// Every layer contributes its locales together with its absolute langDir.
// Resource files named by a descriptor's file or files attribute are resolved
// against that langDir and rewritten relative to the project's langDir, so the
// result can be consumed from the project alone:
//
//	merged := localefiles.Merge([]localefiles.Config{
//		{I18n: projectI18n, ProjectLangDir: "/app/lang"},
//		{I18n: baseI18n, ProjectLangDir: "/app/lang"},
//	})
//	// [{code: en, files: [../../base/lang/en.json, en.json]}]
//
// Files of lower-precedence layers are listed first, so messages from layers
// closer to the project are loaded last and take effect.
package localefiles

import (
	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/locale"
	"github.com/dmitrymomot/i18nlayers/pkg/pathutil"
)

// Attribute names read and written on descriptors.
const (
	AttrISO   = "iso"
	AttrFile  = "file"
	AttrFiles = "files"
)

// Config is one layer's i18n configuration prepared for merging.
type Config struct {
	// LangDir must be absolute.
	I18n layer.I18nConfig

	// Absolute langDir of the project layer.
	ProjectLangDir string
}

// Merger merges per-layer locale configs into locale descriptors.
type Merger interface {
	MergeLocales(configs []Config) []locale.Descriptor
}

// MergerFunc adapts a plain function to the Merger interface.
type MergerFunc func(configs []Config) []locale.Descriptor

func (f MergerFunc) MergeLocales(configs []Config) []locale.Descriptor {
	return f(configs)
}

// Default merges with Merge.
var Default Merger = MergerFunc(Merge)

// Merge merges configs in precedence order, highest first.
//
// Locales keep the position of their first appearance. A bare code becomes
// {code, iso: code} unless the code is already known. A descriptor is merged
// into an existing entry with the existing attributes winning; its files are
// resolved and placed before the files already collected. The file attribute
// is folded into files.
func Merge(configs []Config) []locale.Descriptor {
	var order []string
	merged := make(map[string]locale.Descriptor)

	for _, cfg := range configs {
		for _, entry := range cfg.I18n.Locales {
			code := entry.Code()
			existing, known := merged[code]
			if !known {
				order = append(order, code)
			}

			d, ok := entry.Descriptor()
			if !ok {
				if !known {
					merged[code] = locale.NewDescriptor(code, map[string]any{AttrISO: code})
				}
				continue
			}

			files := resolveFiles(d, cfg.I18n.LangDir, cfg.ProjectLangDir)
			if known {
				files = append(files, Files(existing)...)
			}

			next := locale.MergeDescriptors(d)
			if known {
				next = locale.MergeDescriptors(existing, d)
			}
			delete(next.Attrs, AttrFile)
			next.Attrs[AttrFiles] = files
			merged[code] = next
		}
	}

	out := make([]locale.Descriptor, 0, len(order))
	for _, code := range order {
		out = append(out, merged[code])
	}
	return out
}

// Files returns the resource files declared on a descriptor, file first.
func Files(d locale.Descriptor) []string {
	var files []string
	if f := d.StringAttr(AttrFile); f != "" {
		files = append(files, f)
	}

	v, _ := d.Get(AttrFiles)
	switch fs := v.(type) {
	case []string:
		files = append(files, fs...)
	case []any:
		for _, f := range fs {
			if s, ok := f.(string); ok && s != "" {
				files = append(files, s)
			}
		}
	}
	return files
}

func resolveFiles(d locale.Descriptor, langDir, projectLangDir string) []string {
	files := Files(d)
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, pathutil.Rel(projectLangDir, pathutil.Resolve(langDir, f)))
	}
	return out
}
