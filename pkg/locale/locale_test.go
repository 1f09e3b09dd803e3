package locale_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nlayers/pkg/locale"
)

func TestEntryYAML(t *testing.T) {
	t.Parallel()

	t.Run("decodes bare codes", func(t *testing.T) {
		t.Parallel()
		var entries []locale.Entry
		require.NoError(t, yaml.Unmarshal([]byte("[en, fr]"), &entries))
		require.Len(t, entries, 2)
		require.Equal(t, locale.ShapeCodes, entries[0].Shape())
		require.Equal(t, "en", entries[0].Code())
		require.Equal(t, "fr", entries[1].Code())
	})

	t.Run("decodes descriptors with extra attributes", func(t *testing.T) {
		t.Parallel()
		src := `
- code: en
  name: English
  file: en.json
- code: fr
  dir: ltr
`
		var entries []locale.Entry
		require.NoError(t, yaml.Unmarshal([]byte(src), &entries))
		require.Len(t, entries, 2)
		require.Equal(t, locale.ShapeDescriptors, entries[0].Shape())

		d, ok := entries[0].Descriptor()
		require.True(t, ok)
		require.Equal(t, "en", d.Code)
		require.Equal(t, "English", d.StringAttr("name"))
		require.Equal(t, "en.json", d.StringAttr("file"))
		_, hasCode := d.Attrs["code"]
		require.False(t, hasCode)
	})

	t.Run("keeps mixed shapes per element", func(t *testing.T) {
		t.Parallel()
		var entries []locale.Entry
		require.NoError(t, yaml.Unmarshal([]byte("[en, {code: fr}]"), &entries))
		require.Equal(t, locale.ShapeCodes, entries[0].Shape())
		require.Equal(t, locale.ShapeDescriptors, entries[1].Shape())
	})

	t.Run("rejects descriptor without code", func(t *testing.T) {
		t.Parallel()
		var entries []locale.Entry
		err := yaml.Unmarshal([]byte("[{name: English}]"), &entries)
		require.ErrorIs(t, err, locale.ErrMissingCode)
	})

	t.Run("rejects nested sequences", func(t *testing.T) {
		t.Parallel()
		var entries []locale.Entry
		err := yaml.Unmarshal([]byte("[[en]]"), &entries)
		require.ErrorIs(t, err, locale.ErrInvalidEntry)
	})

	t.Run("null items are caught by CheckEntries", func(t *testing.T) {
		t.Parallel()
		for _, doc := range []string{"[en, ~]", "[null]", "- en\n-\n", `[en, ""]`} {
			var entries []locale.Entry
			require.NoError(t, yaml.Unmarshal([]byte(doc), &entries), doc)
			require.ErrorIs(t, locale.CheckEntries(entries), locale.ErrInvalidEntry, doc)
		}
		require.NoError(t, locale.CheckEntries(locale.Codes("en", "fr")))
	})
}

func TestEntryJSON(t *testing.T) {
	t.Parallel()

	var entries []locale.Entry
	require.NoError(t, json.Unmarshal([]byte(`["en", {"code": "de", "name": "Deutsch"}]`), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "en", entries[0].Code())
	require.Equal(t, "de", entries[1].Code())

	out, err := json.Marshal(entries)
	require.NoError(t, err)
	require.JSONEq(t, `["en", {"code": "de", "name": "Deutsch"}]`, string(out))

	err = json.Unmarshal([]byte(`[42]`), &entries)
	require.ErrorIs(t, err, locale.ErrInvalidEntry)

	err = json.Unmarshal([]byte(`["en", null]`), &entries)
	require.ErrorIs(t, err, locale.ErrInvalidEntry)
}

func TestDescriptor(t *testing.T) {
	t.Parallel()

	t.Run("ignores code inside attributes", func(t *testing.T) {
		t.Parallel()
		d := locale.NewDescriptor("en", map[string]any{"code": "xx", "name": "English"})
		require.Equal(t, "en", d.Code)
		require.Equal(t, map[string]any{"name": "English"}, d.Attrs)
		require.Equal(t, map[string]any{"code": "en", "name": "English"}, d.Map())
	})

	t.Run("clone does not share attributes", func(t *testing.T) {
		t.Parallel()
		d := locale.NewDescriptor("en", map[string]any{"name": "English"})
		c := d.Clone()
		c.Attrs["name"] = "changed"
		require.Equal(t, "English", d.StringAttr("name"))
	})

	t.Run("entry does not alias the source descriptor", func(t *testing.T) {
		t.Parallel()
		d := locale.NewDescriptor("en", map[string]any{"name": "English"})
		e := locale.FromDescriptor(d)
		d.Attrs["name"] = "changed"
		got, _ := e.Descriptor()
		require.Equal(t, "English", got.StringAttr("name"))
	})
}
