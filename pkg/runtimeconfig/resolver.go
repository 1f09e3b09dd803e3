package runtimeconfig

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/pathutil"
)

// hashLen is the number of hex characters kept from the path digest.
const hashLen = 8

// Resolver resolves runtime config files from the local file system.
// It holds no state and is safe for concurrent use.
type Resolver struct {
	readFile func(name string) ([]byte, error)
	stat     func(name string) (fs.FileInfo, error)
}

// NewResolver creates a resolver backed by the operating system.
func NewResolver() *Resolver {
	return &Resolver{readFile: os.ReadFile, stat: os.Stat}
}

// Resolve describes the runtime config file of the layer rooted at rootDir.
// Only read and parse failures are returned as errors; a missing file yields
// an Info with a nil Meta.
func (r *Resolver) Resolve(ctx context.Context, cfg layer.I18nConfig, buildDir, rootDir string) (Info, error) {
	if rootDir == "" {
		return Info{}, ErrEmptyRootDir
	}
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}

	relative := cfg.VueI18n
	if relative == "" {
		relative = DefaultFileName
	}

	info := Info{
		RootDir:      rootDir,
		RelativeBase: pathutil.Rel(buildDir, rootDir),
		Relative:     relative,
	}

	abs, found, err := r.lookup(pathutil.Resolve(rootDir, relative))
	if err != nil {
		return Info{}, err
	}
	if !found {
		return info, nil
	}

	meta := &Meta{
		Path:     abs,
		LoadPath: path.Join(info.RelativeBase, pathutil.Rel(rootDir, abs)),
		Hash:     hashPath(abs),
		Type:     FileTypeOf(abs),
	}

	if meta.Type == FileTypeStatic {
		data, err := r.readFile(abs)
		if err != nil {
			return Info{}, fmt.Errorf("reading runtime config %q: %w", abs, err)
		}
		if err := yaml.Unmarshal(data, &meta.Config); err != nil {
			return Info{}, fmt.Errorf("%w: %s: %s", ErrInvalidConfigFile, abs, err)
		}
	}

	info.Meta = meta
	return info, nil
}

// lookup returns the first existing regular file among name and, when name
// has no extension, name with each of Extensions appended.
func (r *Resolver) lookup(name string) (string, bool, error) {
	candidates := []string{name}
	if filepath.Ext(name) == "" || FileTypeOf(name) == FileTypeUnknown {
		for _, ext := range Extensions {
			candidates = append(candidates, name+ext)
		}
	}

	for _, c := range candidates {
		fi, err := r.stat(c)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("stat runtime config %q: %w", c, err)
		}
		if fi.Mode().IsRegular() {
			return c, true, nil
		}
	}
	return "", false, nil
}

func hashPath(p string) string {
	sum := sha256.Sum256([]byte(filepath.ToSlash(p)))
	return hex.EncodeToString(sum[:])[:hashLen]
}
