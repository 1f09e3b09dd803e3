package i18nlayers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nlayers"
	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/locale"
	"github.com/dmitrymomot/i18nlayers/pkg/localefiles"
)

func TestMergeLayerLocalesEager(t *testing.T) {
	t.Parallel()

	m := i18nlayers.New()

	t.Run("string locales keep first occurrence", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Locales: locale.Codes("en", "fr")}),
			i18nLayer("/base", &layer.I18nConfig{Locales: locale.Codes("fr", "de")}),
		})
		require.Equal(t, locale.ShapeCodes, got.Shape())
		require.Equal(t, []string{"en", "fr", "de"}, got.Codes())
	})

	t.Run("descriptor fields from project win, extended fills gaps", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Locales: []locale.Entry{desc("en", map[string]any{"name": "English"})}}),
			i18nLayer("/base", &layer.I18nConfig{Locales: []locale.Entry{desc("en", map[string]any{"name": "EN", "file": "en.json"})}}),
		})
		ds, ok := got.Descriptors()
		require.True(t, ok)
		require.Len(t, ds, 1)
		require.Equal(t, map[string]any{"code": "en", "name": "English", "file": "en.json"}, ds[0].Map())
	})

	t.Run("closer layer wins across three layers", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Locales: []locale.Entry{desc("en", nil)}}),
			i18nLayer("/base", &layer.I18nConfig{Locales: []locale.Entry{desc("en", map[string]any{"name": "Base"}), desc("fr", nil)}}),
			i18nLayer("/core", &layer.I18nConfig{Locales: []locale.Entry{desc("en", map[string]any{"name": "Core", "dir": "ltr"})}}),
		})
		ds, _ := got.Descriptors()
		require.Equal(t, []string{"en", "fr"}, got.Codes())
		require.Equal(t, "Base", ds[0].StringAttr("name"))
		require.Equal(t, "ltr", ds[0].StringAttr("dir"))
	})

	t.Run("mismatched shape contributes nothing", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Locales: locale.Codes("en")}),
			i18nLayer("/base", &layer.I18nConfig{Locales: []locale.Entry{desc("de", map[string]any{"name": "Deutsch"})}}),
			i18nLayer("/core", &layer.I18nConfig{Locales: locale.Codes("fr")}),
		})
		require.Equal(t, locale.ShapeCodes, got.Shape())
		require.Equal(t, []string{"en", "fr"}, got.Codes())
	})

	t.Run("shape comes from first non-empty layer", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Locales: []locale.Entry{}}),
			i18nLayer("/base", &layer.I18nConfig{Locales: []locale.Entry{desc("de", nil)}}),
			i18nLayer("/core", &layer.I18nConfig{Locales: locale.Codes("fr")}),
		})
		require.Equal(t, locale.ShapeDescriptors, got.Shape())
		require.Equal(t, []string{"de"}, got.Codes())
	})

	t.Run("project without i18n disables merging", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", nil),
			i18nLayer("/base", &layer.I18nConfig{Locales: locale.Codes("fr")}),
		})
		require.True(t, got.IsEmpty())
	})

	t.Run("project without locales yields empty list", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{DefaultLocale: "en"}),
			i18nLayer("/base", &layer.I18nConfig{Locales: locale.Codes("fr")}),
		})
		require.True(t, got.IsEmpty())
	})

	t.Run("no layer with locales", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Locales: []locale.Entry{}}),
			i18nLayer("/base", nil),
		})
		require.True(t, got.IsEmpty())
	})

	t.Run("idempotent and input is not mutated", func(t *testing.T) {
		t.Parallel()
		stack := layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Locales: []locale.Entry{desc("en", map[string]any{"name": "English"}), desc("pl", nil)}}),
			i18nLayer("/base", &layer.I18nConfig{Locales: []locale.Entry{desc("en", map[string]any{"file": "en.json"}), desc("de", nil)}}),
		}

		first, _ := m.MergeLayerLocales(stack).Descriptors()
		second, _ := m.MergeLayerLocales(stack).Descriptors()
		require.Empty(t, cmp.Diff(first, second))

		projectEN, _ := stack[0].I18n.Locales[0].Descriptor()
		require.Equal(t, map[string]any{"name": "English"}, projectEN.Attrs)
	})
}

func TestMergeLayerLocalesLazy(t *testing.T) {
	t.Parallel()

	m := i18nlayers.New()

	t.Run("requires project lang dir", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{Lazy: true, Locales: locale.Codes("en")}),
			i18nLayer("/base", &layer.I18nConfig{LangDir: "lang", Locales: locale.Codes("fr")}),
		})
		require.True(t, got.IsEmpty())
	})

	t.Run("merges layers declaring locales and lang dir", func(t *testing.T) {
		t.Parallel()
		got := m.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", &layer.I18nConfig{
				Lazy:    true,
				LangDir: "lang",
				Locales: []locale.Entry{desc("en", map[string]any{"name": "English", "file": "en.json"})},
			}),
			i18nLayer("/base", &layer.I18nConfig{
				LangDir: "locales",
				Locales: []locale.Entry{desc("en", map[string]any{"file": "en.yaml"}), desc("fr", map[string]any{"file": "fr.yaml"})},
			}),
			i18nLayer("/core", &layer.I18nConfig{Locales: locale.Codes("de")}),
			i18nLayer("/theme", &layer.I18nConfig{LangDir: "lang"}),
		})

		require.Equal(t, locale.ShapeDescriptors, got.Shape())
		require.Equal(t, []string{"en", "fr"}, got.Codes())

		ds, _ := got.Descriptors()
		require.Equal(t, "English", ds[0].StringAttr("name"))
		require.Equal(t, []string{"../../base/locales/en.yaml", "en.json"}, localefiles.Files(ds[0]))
		require.Equal(t, []string{"../../base/locales/fr.yaml"}, localefiles.Files(ds[1]))
	})

	t.Run("passes absolute lang dirs to the locale file merger", func(t *testing.T) {
		t.Parallel()
		var got []localefiles.Config
		lm := i18nlayers.New(i18nlayers.WithLocaleFileMerger(localefiles.MergerFunc(func(configs []localefiles.Config) []locale.Descriptor {
			got = configs
			return nil
		})))

		project := &layer.I18nConfig{Lazy: true, LangDir: "lang", Locales: locale.Codes("en"), Extra: map[string]any{"strategy": "prefix"}}
		list := lm.MergeLayerLocales(layer.Stack{
			i18nLayer("/app", project),
			i18nLayer("/base", &layer.I18nConfig{LangDir: "../shared/lang", Locales: []locale.Entry{}}),
		})
		require.True(t, list.IsEmpty())
		require.Len(t, got, 2)
		require.Equal(t, "/app/lang", got[0].I18n.LangDir)
		require.Equal(t, "/app/lang", got[0].ProjectLangDir)
		require.Equal(t, "prefix", got[0].I18n.Extra["strategy"])
		require.Equal(t, "/shared/lang", got[1].I18n.LangDir)
		require.Equal(t, "/app/lang", got[1].ProjectLangDir)
		require.Equal(t, "lang", project.LangDir)
	})
}
