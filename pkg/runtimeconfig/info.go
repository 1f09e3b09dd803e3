package runtimeconfig

import (
	"path/filepath"
	"strings"
)

// DefaultFileName is the runtime config file looked up when a layer sets none.
const DefaultFileName = "i18n.config"

// Extensions probed, in order, when the configured file name has no extension.
var Extensions = []string{".yaml", ".yml", ".json", ".js", ".mjs", ".ts"}

// FileType classifies a runtime config file by how it can be consumed.
type FileType string

const (
	// Parsed at resolve time.
	FileTypeStatic FileType = "static"
	// Evaluated by the host at runtime.
	FileTypeDynamic FileType = "dynamic"
	FileTypeUnknown FileType = "unknown"
)

// FileTypeOf returns the type of a runtime config file from its extension.
func FileTypeOf(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FileTypeStatic
	case ".js", ".mjs", ".ts":
		return FileTypeDynamic
	default:
		return FileTypeUnknown
	}
}

// Info describes the runtime config of one layer.
type Info struct {
	// Meta is nil when the layer has no runtime config file.
	Meta *Meta `json:"meta,omitempty" yaml:"meta,omitempty"`

	RootDir string `json:"rootDir" yaml:"rootDir"`

	// Layer root relative to the build directory.
	RelativeBase string `json:"relativeBase" yaml:"relativeBase"`

	// Configured file name, relative to RootDir.
	Relative string `json:"relative" yaml:"relative"`
}

// Meta describes a runtime config file that exists on disk.
type Meta struct {
	// Parsed content; only set for static files.
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`

	// Absolute file path.
	Path string `json:"path" yaml:"path"`

	// Path relative to the build directory, used by generated code to load the file.
	LoadPath string `json:"loadPath" yaml:"loadPath"`

	Hash string   `json:"hash" yaml:"hash"`
	Type FileType `json:"type" yaml:"type"`
}

// Clone returns a deep copy of i.
func (i Info) Clone() Info {
	if i.Meta != nil {
		meta := *i.Meta
		meta.Config = cloneValue(i.Meta.Config).(map[string]any)
		i.Meta = &meta
	}
	return i
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		if v == nil {
			return v
		}
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
