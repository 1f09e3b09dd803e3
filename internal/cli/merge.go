package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/i18nlayers"
	"github.com/dmitrymomot/i18nlayers/pkg/layer"
	"github.com/dmitrymomot/i18nlayers/pkg/runtimeconfig"
)

// MergeReport is the output of the merge command.
type MergeReport struct {
	Layers   []string             `json:"layers" yaml:"layers"`
	LangDirs []string             `json:"langDirs" yaml:"langDirs"`
	Pages    []string             `json:"pages" yaml:"pages"`
	Options  i18nlayers.Options   `json:"options" yaml:"options"`
	Configs  []runtimeconfig.Info `json:"configs" yaml:"configs"`
}

func MergeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Print the i18n options merged across all layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, v)
			defer s.close()
			ctx := s.context(cmd.Context())

			if !s.cfg.Watch {
				_, err := s.merge(ctx, cmd.OutOrStdout(), nil)
				return err
			}
			return watch(ctx, s.log, func(ctx context.Context, changed []string) ([]string, error) {
				return s.merge(ctx, cmd.OutOrStdout(), changed)
			})
		},
	}

	cmd.Flags().Bool("watch", false, "re-run whenever a layer config or language directory changes")
	_ = v.BindPFlag("watch", cmd.Flags().Lookup("watch"))

	return cmd
}

// merge prints one report and returns the directories worth watching.
// Cached runtime configs of layers owning a changed file are resolved again.
func (s *session) merge(ctx context.Context, w io.Writer, changed []string) ([]string, error) {
	stack, err := s.loadStack(ctx)
	if err != nil {
		return nil, err
	}

	buildDir := s.cfg.ResolvedBuildDir()
	s.forgetChanged(ctx, stack, buildDir, changed)

	report, err := buildMergeReport(ctx, s.merger, stack, buildDir)
	if err != nil {
		s.log.ErrorContext(ctx, "runtime config resolution failed", slog.String("error", err.Error()))
		return nil, err
	}
	s.log.InfoContext(ctx, "layers merged",
		slog.Int("layers", len(stack)),
		slog.Int("locales", report.Options.Locales.Len()),
	)

	if err := encode(w, s.cfg.Format, report); err != nil {
		return nil, err
	}
	return watchDirs(stack, report.LangDirs), nil
}

func buildMergeReport(ctx context.Context, m *i18nlayers.Merger, stack layer.Stack, buildDir string) (MergeReport, error) {
	opts := i18nlayers.ProjectOptions(stack)
	m.ApplyLayerOptions(&opts, stack)

	pages := []string{}
	m.MergeLayerPages(func(dir string) { pages = append(pages, dir) }, stack)

	langDirs := m.GetLayerLangPaths(stack)
	if langDirs == nil {
		langDirs = []string{}
	}

	configs, err := m.ResolveLayerConfigInfo(ctx, stack, buildDir)
	if err != nil {
		return MergeReport{}, err
	}

	return MergeReport{
		Layers:   stack.RootDirs(),
		LangDirs: langDirs,
		Pages:    pages,
		Options:  opts,
		Configs:  configs,
	}, nil
}
