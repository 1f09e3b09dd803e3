package i18nlayers

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/i18nlayers/pkg/localefiles"
	"github.com/dmitrymomot/i18nlayers/pkg/pathutil"
	"github.com/dmitrymomot/i18nlayers/pkg/runtimeconfig"
)

// Call sites reported with every debug message.
const (
	siteApplyLayerOptions   = "applyLayerOptions"
	siteMergeLayerPages     = "mergeLayerPages"
	siteMergeLayerLocales   = "mergeLayerLocales"
	siteResolveLayerConfigs = "resolveLayerConfigInfo"
)

// ConfigResolver resolves the runtime config file of a single layer.
type ConfigResolver = runtimeconfig.ConfigResolver

// Merger merges i18n configuration across a layer stack.
// It holds no mutable state and is safe for concurrent use.
type Merger struct {
	log         *slog.Logger
	paths       pathutil.Resolver
	localeFiles localefiles.Merger
	configs     ConfigResolver
}

// Option configures a Merger.
type Option func(*Merger)

// New creates a Merger. Without options it resolves paths against the local
// file system, merges lazy locales with localefiles.Merge, resolves runtime
// config files with runtimeconfig.NewResolver and does not log.
func New(opts ...Option) *Merger {
	m := &Merger{
		log:         slog.New(slog.DiscardHandler),
		paths:       pathutil.Default,
		localeFiles: localefiles.Default,
		configs:     runtimeconfig.NewResolver(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithLogger sets the logger receiving debug instrumentation.
// If nil, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(m *Merger) {
		if l != nil {
			m.log = l
		}
	}
}

// WithPathResolver replaces the resolver used to build absolute paths.
func WithPathResolver(r pathutil.Resolver) Option {
	return func(m *Merger) {
		if r != nil {
			m.paths = r
		}
	}
}

// WithLocaleFileMerger replaces the collaborator merging lazy locale configs.
func WithLocaleFileMerger(lm localefiles.Merger) Option {
	return func(m *Merger) {
		if lm != nil {
			m.localeFiles = lm
		}
	}
}

// WithConfigResolver replaces the collaborator resolving runtime config files.
func WithConfigResolver(r ConfigResolver) Option {
	return func(m *Merger) {
		if r != nil {
			m.configs = r
		}
	}
}

func (m *Merger) debugEnabled() bool {
	return m.log.Enabled(context.Background(), slog.LevelDebug)
}

func (m *Merger) debug(site, msg string, attrs ...slog.Attr) {
	if !m.debugEnabled() {
		return
	}
	m.log.LogAttrs(context.Background(), slog.LevelDebug, msg, append([]slog.Attr{slog.String("site", site)}, attrs...)...)
}
