package cli

import (
	"io"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/i18nlayers/pkg/logger"
	"github.com/dmitrymomot/i18nlayers/pkg/pathutil"
)

// DefaultBuildDir is the build directory used when none is configured, relative to the project root.
const DefaultBuildDir = ".i18nlayers"

// Config holds the command settings. Every field comes from a flag or from
// the matching I18NLAYERS_ variable, e.g. --build-dir and I18NLAYERS_BUILD_DIR.
// Defaults live on the flags in RootCmd and MergeCmd.
type Config struct {
	Root       string
	BuildDir   string // empty means <Root>/DefaultBuildDir
	ConfigFile string
	Format     string
	Log        logger.Config
	Watch      bool
}

func configFrom(v *viper.Viper, logOutput io.Writer) Config {
	return Config{
		Root:       v.GetString("root"),
		BuildDir:   v.GetString("build-dir"),
		ConfigFile: v.GetString("config-file"),
		Format:     v.GetString("format"),
		Watch:      v.GetBool("watch"),
		Log: logger.Config{
			Output: logOutput,
			Level:  v.GetString("log-level"),
			Format: v.GetString("log-format"),
			Sentry: logger.SentryConfig{
				DSN:         v.GetString("sentry-dsn"),
				Environment: v.GetString("sentry-environment"),
			},
		},
	}
}

// ResolvedBuildDir returns the absolute build directory.
func (c Config) ResolvedBuildDir() string {
	if c.BuildDir != "" {
		return pathutil.Resolve(c.BuildDir)
	}
	return pathutil.Resolve(c.Root, DefaultBuildDir)
}
