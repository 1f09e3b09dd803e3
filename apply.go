package i18nlayers

import (
	"log/slog"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/locale"
)

// Options is the effective i18n configuration handed to the host pipeline.
type Options struct {
	Locales       locale.List `json:"locales" yaml:"locales"`
	DefaultLocale string      `json:"defaultLocale,omitempty" yaml:"defaultLocale,omitempty"`
	LangDir       string      `json:"langDir,omitempty" yaml:"langDir,omitempty"`
	VueI18n       string      `json:"vueI18n,omitempty" yaml:"vueI18n,omitempty"`
	Lazy          bool        `json:"lazy" yaml:"lazy"`
}

// ProjectOptions seeds Options from the project layer alone.
// The project's locales are kept in the shape of their first entry.
func ProjectOptions(layers layer.Stack) Options {
	cfg := layers.Project().I18n
	if cfg == nil {
		return Options{}
	}

	locales, _ := mergeEntries(locale.ShapeOf(cfg.Locales), [][]locale.Entry{cfg.Locales})
	return Options{
		Locales:       locales,
		DefaultLocale: cfg.DefaultLocale,
		LangDir:       cfg.LangDir,
		VueI18n:       cfg.VueI18n,
		Lazy:          cfg.Lazy,
	}
}

// ApplyLayerOptions overwrites opts.Locales with the locales merged across
// layers. A stack without extended layers leaves opts untouched.
func (m *Merger) ApplyLayerOptions(opts *Options, layers layer.Stack) {
	if opts == nil || layers.Single() {
		return
	}

	if m.debugEnabled() {
		project := layers.Project()
		paths := make([]string, 0, len(layers))
		for _, l := range layers {
			paths = append(paths, m.paths.Resolve(project.RootDir, l.RootDir))
		}
		m.debug(siteApplyLayerOptions, "using layers at paths", slog.Any("paths", paths))
	}

	merged := m.MergeLayerLocales(layers)
	m.debug(siteApplyLayerOptions, "merged locales", slog.Any("locales", merged.Codes()))

	opts.Locales = merged
}

// MergeLayerPages calls analyze with the absolute pages directory of every
// layer, project first. A stack without extended layers is skipped entirely.
func (m *Merger) MergeLayerPages(analyze func(pagesDir string), layers layer.Stack) {
	if analyze == nil || layers.Single() {
		return
	}

	project := layers.Project()
	for _, l := range layers {
		p := m.paths.Resolve(project.RootDir, l.RootDir, l.PagesDir())
		m.debug(siteMergeLayerPages, "pages path", slog.String("path", p))
		analyze(p)
	}
}
