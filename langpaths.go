package i18nlayers

import (
	"iter"
	"slices"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
)

// LayerLangPaths yields the absolute langDir of every layer declaring one,
// resolved against the layer's source directory, in layer order.
func (m *Merger) LayerLangPaths(layers layer.Stack) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range layers {
			if !l.I18n.HasLangDir() {
				continue
			}
			if !yield(m.paths.Resolve(l.SrcDir, l.I18n.LangDir)) {
				return
			}
		}
	}
}

// GetLayerLangPaths collects LayerLangPaths into a slice.
func (m *Merger) GetLayerLangPaths(layers layer.Stack) []string {
	return slices.Collect(m.LayerLangPaths(layers))
}
