package i18nlayers

import (
	"log/slog"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/locale"
	"github.com/dmitrymomot/i18nlayers/pkg/localefiles"
)

// MergeLayerLocales returns the locales merged across all layers.
//
// The project layer decides everything global: without a project i18n block
// the result is empty, and its lazy flag selects the algorithm. Eager merging
// keeps the shape of the first non-empty locales list and drops entries of
// the other shape. Lazy merging hands every layer declaring both locales and
// langDir to the locale file merger and requires the project to declare a
// langDir. Configuration shape problems never fail: they yield empty results.
func (m *Merger) MergeLayerLocales(layers layer.Stack) locale.List {
	project := layers.Project()
	if project.I18n == nil {
		m.debug(siteMergeLayerLocales, "project layer i18n configuration is required")
		return locale.List{}
	}

	m.debug(siteMergeLayerLocales, "project layer lazy option", slog.Bool("lazy", project.I18n.Lazy))
	if project.I18n.Lazy {
		return m.mergeLazyLocales(layers)
	}
	return m.mergeEagerLocales(layers)
}

func (m *Merger) mergeEagerLocales(layers layer.Stack) locale.List {
	if !layers.Project().I18n.HasLocales() {
		return locale.List{}
	}

	shape := locale.ShapeNone
	for _, l := range layers {
		if l.I18n != nil && len(l.I18n.Locales) > 0 {
			shape = locale.ShapeOf(l.I18n.Locales)
			break
		}
	}

	sources := make([][]locale.Entry, 0, len(layers))
	for _, l := range layers {
		if l.I18n.HasLocales() {
			sources = append(sources, l.I18n.Locales)
		}
	}

	merged, skipped := mergeEntries(shape, sources)
	if skipped > 0 {
		m.debug(siteMergeLayerLocales, "skipped locales of mismatched shape",
			slog.String("shape", shape.String()),
			slog.Int("skipped", skipped),
		)
	}
	return merged
}

func (m *Merger) mergeLazyLocales(layers layer.Stack) locale.List {
	project := layers.Project()
	if !project.I18n.HasLangDir() {
		m.debug(siteMergeLayerLocales, "project layer i18n langDir is required")
		return locale.List{}
	}

	projectLangDir := m.paths.Resolve(project.RootDir, project.I18n.LangDir)
	m.debug(siteMergeLayerLocales, "project lang dir", slog.String("path", projectLangDir))

	configs := make([]localefiles.Config, 0, len(layers))
	for _, l := range layers {
		if !l.I18n.HasLocales() || !l.I18n.HasLangDir() {
			continue
		}
		cfg := l.I18n.Clone()
		cfg.LangDir = m.paths.Resolve(l.RootDir, l.I18n.LangDir)
		configs = append(configs, localefiles.Config{I18n: *cfg, ProjectLangDir: projectLangDir})
	}

	return locale.NewDescriptorList(m.localeFiles.MergeLocales(configs)...)
}

// mergeEntries merges locale lists given in precedence order into a list of
// the given shape, returning the number of entries dropped for not matching it.
// Codes keep their first occurrence; descriptors sharing a code are merged
// attribute by attribute with earlier ones winning.
func mergeEntries(shape locale.Shape, sources [][]locale.Entry) (locale.List, int) {
	skipped := 0

	switch shape {
	case locale.ShapeCodes:
		var codes []string
		seen := make(map[string]bool)
		for _, entries := range sources {
			for _, e := range entries {
				if e.Shape() != locale.ShapeCodes {
					skipped++
					continue
				}
				if seen[e.Code()] {
					continue
				}
				seen[e.Code()] = true
				codes = append(codes, e.Code())
			}
		}
		return locale.NewCodeList(codes...), skipped

	case locale.ShapeDescriptors:
		var descriptors []locale.Descriptor
		index := make(map[string]int)
		for _, entries := range sources {
			for _, e := range entries {
				d, ok := e.Descriptor()
				if !ok {
					skipped++
					continue
				}
				if i, exists := index[d.Code]; exists {
					descriptors[i] = locale.MergeDescriptors(descriptors[i], d)
					continue
				}
				index[d.Code] = len(descriptors)
				descriptors = append(descriptors, d)
			}
		}
		return locale.NewDescriptorList(descriptors...), skipped

	default:
		return locale.List{}, 0
	}
}
