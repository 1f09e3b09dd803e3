// Package cli implements the i18nlayers command line tool.
package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
)

// RootCmd builds the command tree. Each call gets its own viper instance.
func RootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "i18nlayers",
		Short:         "Merge i18n configuration across layered project directories",
		Long:          "Loads a project layer and every layer it extends, then reports the effective i18n configuration.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("root", ".", "project layer directory")
	flags.String("build-dir", "", "build directory runtime config load paths are relative to (default <root>/"+DefaultBuildDir+")")
	flags.String("config-file", layer.DefaultConfigFile, "layer configuration file name")
	flags.StringP("format", "o", FormatYAML, "output format: yaml or json")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("sentry-dsn", "", "forward warnings and errors to Sentry")
	flags.String("sentry-environment", "development", "Sentry environment")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix("I18NLAYERS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(MergeCmd(v))
	cmd.AddCommand(PagesCmd(v))
	cmd.AddCommand(LangDirsCmd(v))
	cmd.AddCommand(ConfigInfoCmd(v))

	return cmd
}

// InitAndExecute runs the root command until it finishes or the process is interrupted.
func InitAndExecute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := RootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cmd.PrintErrln("Error:", err)
		cancel()
		os.Exit(1)
	}
}
