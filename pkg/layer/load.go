package layer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nlayers/pkg/locale"
	"github.com/dmitrymomot/i18nlayers/pkg/pathutil"
)

// DefaultConfigFile is the layer configuration file name looked up in every layer directory.
const DefaultConfigFile = "layer.yaml"

// LoadOption configures Load.
type LoadOption func(*loader)

// WithConfigFile overrides the layer configuration file name.
func WithConfigFile(name string) LoadOption {
	return func(l *loader) {
		if name != "" {
			l.fileName = name
		}
	}
}

// WithLogger sets the logger used to report loaded layers.
func WithLogger(log *slog.Logger) LoadOption {
	return func(l *loader) {
		if log != nil {
			l.log = log
		}
	}
}

type loader struct {
	log      *slog.Logger
	seen     map[string]bool
	fileName string
	stack    Stack
}

// Load composes the layer stack rooted at rootDir.
// The project layer comes first, followed by its extends entries depth-first.
func Load(ctx context.Context, rootDir string, opts ...LoadOption) (Stack, error) {
	if rootDir == "" {
		return nil, ErrEmptyRootDir
	}

	l := &loader{
		log:      slog.New(slog.DiscardHandler),
		seen:     make(map[string]bool),
		fileName: DefaultConfigFile,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.load(ctx, pathutil.Resolve(rootDir), nil); err != nil {
		return nil, err
	}
	return l.stack, nil
}

func (l *loader) load(ctx context.Context, dir string, chain []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if slices.Contains(chain, dir) {
		return fmt.Errorf("%w: %s", ErrCircularExtends, strings.Join(append(slices.Clone(chain), dir), " -> "))
	}
	if l.seen[dir] {
		return nil
	}

	layer, err := l.read(dir)
	if err != nil {
		return err
	}
	l.seen[dir] = true
	l.stack = append(l.stack, layer)
	l.log.DebugContext(ctx, "layer loaded",
		slog.String("root_dir", dir),
		slog.Int("position", len(l.stack)-1),
		slog.Bool("i18n", layer.I18n != nil),
	)

	chain = append(slices.Clone(chain), dir)
	for _, ext := range layer.Extends {
		if err := l.load(ctx, pathutil.Resolve(dir, ext), chain); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) read(dir string) (Layer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Layer{}, fmt.Errorf("%w: %s", ErrLayerNotFound, dir)
		}
		return Layer{}, fmt.Errorf("stat layer %q: %w", dir, err)
	}
	if !info.IsDir() {
		return Layer{}, fmt.Errorf("%w: %s is not a directory", ErrLayerNotFound, dir)
	}

	var layer Layer
	data, err := os.ReadFile(filepath.Join(dir, l.fileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Layer{}, fmt.Errorf("reading layer config in %q: %w", dir, err)
	default:
		if err := yaml.Unmarshal(data, &layer); err != nil {
			return Layer{}, fmt.Errorf("%w: %s: %s", ErrInvalidConfig, filepath.Join(dir, l.fileName), err)
		}
		if layer.I18n != nil {
			if err := locale.CheckEntries(layer.I18n.Locales); err != nil {
				return Layer{}, fmt.Errorf("%w: %s: locales: %w", ErrInvalidConfig, filepath.Join(dir, l.fileName), err)
			}
		}
	}

	layer.RootDir = dir
	layer.SrcDir = pathutil.Resolve(dir, layer.SrcDir)
	return layer, nil
}
