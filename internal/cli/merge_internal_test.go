package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/logger"
	"github.com/dmitrymomot/i18nlayers/pkg/runtimeconfig"
)

type countingResolver struct {
	next  runtimeconfig.ConfigResolver
	calls atomic.Int32
}

func (r *countingResolver) Resolve(ctx context.Context, cfg layer.I18nConfig, buildDir, rootDir string) (runtimeconfig.Info, error) {
	r.calls.Add(1)
	return r.next.Resolve(ctx, cfg, buildDir, rootDir)
}

func writeLayer(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, layer.DefaultConfigFile), []byte(content), 0o644))
}

func TestSessionMergeReusesRuntimeConfigs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	app, base, core := filepath.Join(root, "app"), filepath.Join(root, "base"), filepath.Join(root, "core")
	writeLayer(t, app, "extends: [../base, ../core]\n")
	writeLayer(t, base, "i18n:\n  langDir: locales\n  locales: [en]\n")
	writeLayer(t, core, "i18n: {}\n")
	baseConfig := filepath.Join(base, "i18n.config.yaml")
	require.NoError(t, os.WriteFile(baseConfig, []byte("fallbackLocale: en\n"), 0o644))

	next := &countingResolver{next: runtimeconfig.NewResolver()}
	s := newSessionWith(Config{
		Root:       app,
		ConfigFile: layer.DefaultConfigFile,
		Format:     FormatJSON,
		Log:        logger.Config{Output: io.Discard, Level: "error"},
	}, next)
	defer s.close()
	ctx := context.Background()

	dirs, err := s.merge(ctx, io.Discard, nil)
	require.NoError(t, err)
	require.Contains(t, dirs, filepath.Join(base, "locales"))
	require.Equal(t, int32(2), next.calls.Load())

	t.Run("language file change keeps the cache", func(t *testing.T) {
		_, err := s.merge(ctx, io.Discard, []string{filepath.Join(base, "locales", "en.json")})
		require.NoError(t, err)
		require.Equal(t, int32(2), next.calls.Load())
	})

	t.Run("runtime config change resolves that layer again", func(t *testing.T) {
		require.NoError(t, os.WriteFile(baseConfig, []byte("fallbackLocale: fr\n"), 0o644))

		var out bytes.Buffer
		_, err := s.merge(ctx, &out, []string{baseConfig})
		require.NoError(t, err)
		require.Equal(t, int32(3), next.calls.Load())
		require.Contains(t, out.String(), `"fallbackLocale": "fr"`)
	})
}
