package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/i18nlayers"
	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/logger"
	"github.com/dmitrymomot/i18nlayers/pkg/runtimeconfig"
)

// session wires the merger and its collaborators for one command run.
type session struct {
	log      *slog.Logger
	merger   *i18nlayers.Merger
	resolver *runtimeconfig.CachedResolver
	cfg      Config
}

func newSession(cmd *cobra.Command, v *viper.Viper) *session {
	return newSessionWith(configFrom(v, cmd.ErrOrStderr()), runtimeconfig.NewResolver())
}

func newSessionWith(cfg Config, next runtimeconfig.ConfigResolver) *session {
	log := logger.New(cfg.Log, logger.ProjectExtractor)
	resolver := runtimeconfig.NewCachedResolver(next, nil)

	return &session{
		log:      log,
		resolver: resolver,
		cfg:      cfg,
		merger: i18nlayers.New(
			i18nlayers.WithLogger(log),
			i18nlayers.WithConfigResolver(resolver),
		),
	}
}

func (s *session) close() {
	_ = s.resolver.Close()
}

func (s *session) context(ctx context.Context) context.Context {
	return logger.WithProject(ctx, s.cfg.Root)
}

func (s *session) loadStack(ctx context.Context) (layer.Stack, error) {
	stack, err := layer.Load(ctx, s.cfg.Root,
		layer.WithConfigFile(s.cfg.ConfigFile),
		layer.WithLogger(s.log),
	)
	if err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "layer stack loaded", slog.Int("layers", len(stack)))
	return stack, nil
}

// forgetChanged drops the cached runtime config of every extended layer
// with a changed file directly in its root directory.
func (s *session) forgetChanged(ctx context.Context, stack layer.Stack, buildDir string, changed []string) {
	if len(changed) == 0 {
		return
	}
	dirs := make([]string, 0, len(changed))
	for _, p := range changed {
		dirs = append(dirs, filepath.Dir(p))
	}

	for _, l := range stack.Extended() {
		if !slices.Contains(dirs, l.RootDir) {
			continue
		}
		var cfg layer.I18nConfig
		if l.I18n != nil {
			cfg = *l.I18n
		}
		if err := s.resolver.Forget(ctx, cfg, buildDir, l.RootDir); err != nil {
			s.log.WarnContext(ctx, "cannot drop cached runtime config", slog.String("layer", l.RootDir), slog.String("error", err.Error()))
			continue
		}
		s.log.DebugContext(ctx, "runtime config cache dropped", slog.String("layer", l.RootDir))
	}
}
