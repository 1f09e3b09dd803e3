package layer

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/i18nlayers/pkg/locale"
)

// DefaultPagesDir is used when a layer does not override dir.pages.
const DefaultPagesDir = "pages"

// I18nConfig is the optional per-layer i18n block.
type I18nConfig struct {
	// Keys not modelled here are kept verbatim.
	Extra map[string]any `yaml:",inline" json:"-"`

	// Nil means the layer does not declare locales; an empty slice is a declaration.
	Locales []locale.Entry `yaml:"locales,omitempty" json:"locales,omitempty"`

	// Directory of per-locale resource files, relative to the layer.
	LangDir string `yaml:"langDir,omitempty" json:"langDir,omitempty"`

	DefaultLocale string `yaml:"defaultLocale,omitempty" json:"defaultLocale,omitempty"`

	// Runtime configuration file name, without extension by default.
	VueI18n string `yaml:"vueI18n,omitempty" json:"vueI18n,omitempty"`

	// Only read from the project layer.
	Lazy bool `yaml:"lazy,omitempty" json:"lazy,omitempty"`
}

// HasLocales reports whether the config declares a locales list, even an empty one.
func (c *I18nConfig) HasLocales() bool {
	return c != nil && c.Locales != nil
}

// HasLangDir reports whether the config declares a language directory.
func (c *I18nConfig) HasLangDir() bool {
	return c != nil && c.LangDir != ""
}

// Clone returns a copy that shares no slices or maps with c.
func (c *I18nConfig) Clone() *I18nConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Locales = slices.Clone(c.Locales)
	out.Extra = maps.Clone(c.Extra)
	return &out
}

// Dirs holds directory overrides of a layer.
type Dirs struct {
	Pages string `yaml:"pages,omitempty" json:"pages,omitempty"`
}

// Layer is one configuration source of the stack.
type Layer struct {
	I18n *I18nConfig `yaml:"i18n,omitempty" json:"i18n,omitempty"`

	// Absolute path of the layer directory.
	RootDir string `yaml:"-" json:"rootDir"`

	// Absolute source directory; defaults to RootDir.
	SrcDir string `yaml:"srcDir,omitempty" json:"srcDir"`

	Dir     Dirs     `yaml:"dir,omitempty" json:"dir"`
	Extends []string `yaml:"extends,omitempty" json:"extends,omitempty"`
}

// PagesDir returns the layer's pages directory, relative to RootDir.
func (l Layer) PagesDir() string {
	if l.Dir.Pages != "" {
		return l.Dir.Pages
	}
	return DefaultPagesDir
}

// Stack is an ordered list of layers, project layer first.
type Stack []Layer

// Project returns the project layer, or the zero Layer for an empty stack.
func (s Stack) Project() Layer {
	if len(s) == 0 {
		return Layer{}
	}
	return s[0]
}

// Extended returns every layer except the project layer.
func (s Stack) Extended() Stack {
	if len(s) < 2 {
		return nil
	}
	return s[1:]
}

// Single reports whether the stack has no extended layers.
func (s Stack) Single() bool {
	return len(s) <= 1
}

// RootDirs returns the root directory of every layer in order.
func (s Stack) RootDirs() []string {
	dirs := make([]string, 0, len(s))
	for _, l := range s {
		dirs = append(dirs, l.RootDir)
	}
	return dirs
}
