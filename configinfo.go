package i18nlayers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/runtimeconfig"
)

// ResolveLayerConfigInfo resolves the runtime config file of every extended
// layer concurrently. The project layer is skipped. Results follow layer
// order. The first failure fails the whole call; resolutions already in
// flight are left to finish and their results are discarded.
func (m *Merger) ResolveLayerConfigInfo(ctx context.Context, layers layer.Stack, buildDir string) ([]runtimeconfig.Info, error) {
	if layers.Single() {
		return []runtimeconfig.Info{}, nil
	}

	extended := layers.Extended()
	results := make([]runtimeconfig.Info, len(extended))

	var g errgroup.Group
	for i, l := range extended {
		g.Go(func() error {
			var cfg layer.I18nConfig
			if l.I18n != nil {
				cfg = *l.I18n.Clone()
			}

			info, err := m.configs.Resolve(ctx, cfg, buildDir, l.RootDir)
			if err != nil {
				return fmt.Errorf("%w: layer %s: %w", ErrConfigResolution, l.RootDir, err)
			}
			results[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.debug(siteResolveLayerConfigs, "resolved layer runtime configs", slog.Int("count", len(results)))
	return results, nil
}
