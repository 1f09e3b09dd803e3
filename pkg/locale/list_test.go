package locale_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nlayers/pkg/locale"
)

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()
		var l locale.List
		require.True(t, l.IsEmpty())
		require.Equal(t, locale.ShapeNone, l.Shape())

		out, err := json.Marshal(l)
		require.NoError(t, err)
		require.JSONEq(t, `[]`, string(out))
	})

	t.Run("code list", func(t *testing.T) {
		t.Parallel()
		l := locale.NewCodeList("en", "fr")
		require.Equal(t, locale.ShapeCodes, l.Shape())
		require.Equal(t, []string{"en", "fr"}, l.Codes())

		_, ok := l.Descriptors()
		require.False(t, ok)

		out, err := yaml.Marshal(l)
		require.NoError(t, err)
		require.Equal(t, "- en\n- fr\n", string(out))
	})

	t.Run("descriptor list", func(t *testing.T) {
		t.Parallel()
		l := locale.NewDescriptorList(
			locale.NewDescriptor("en", map[string]any{"name": "English"}),
			locale.NewDescriptor("de", nil),
		)
		require.Equal(t, locale.ShapeDescriptors, l.Shape())
		require.Equal(t, []string{"en", "de"}, l.Codes())

		ds, ok := l.Descriptors()
		require.True(t, ok)
		require.Len(t, ds, 2)

		out, err := json.Marshal(l)
		require.NoError(t, err)
		require.JSONEq(t, `[{"code":"en","name":"English"},{"code":"de"}]`, string(out))
	})

	t.Run("entries round trip", func(t *testing.T) {
		t.Parallel()
		l := locale.NewDescriptorList(locale.NewDescriptor("en", map[string]any{"name": "English"}))
		entries := l.Entries()
		require.Len(t, entries, 1)
		require.Equal(t, locale.ShapeDescriptors, locale.ShapeOf(entries))
	})

	t.Run("equal", func(t *testing.T) {
		t.Parallel()
		require.True(t, locale.NewCodeList("en").Equal(locale.NewCodeList("en")))
		require.False(t, locale.NewCodeList("en").Equal(locale.NewCodeList("fr")))
		require.False(t, locale.NewCodeList("en").Equal(locale.NewDescriptorList(locale.NewDescriptor("en", nil))))
		require.True(t, locale.List{}.Equal(locale.NewCodeList()))
	})
}

func TestShapeOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, locale.ShapeNone, locale.ShapeOf(nil))
	require.Equal(t, locale.ShapeCodes, locale.ShapeOf(locale.Codes("en")))
	require.Equal(t, "descriptors", locale.ShapeDescriptors.String())
}
