package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func ConfigInfoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config-info",
		Short: "Print the runtime config file descriptor of every extended layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, v)
			defer s.close()
			ctx := s.context(cmd.Context())

			stack, err := s.loadStack(ctx)
			if err != nil {
				return err
			}

			infos, err := s.merger.ResolveLayerConfigInfo(ctx, stack, s.cfg.ResolvedBuildDir())
			if err != nil {
				s.log.ErrorContext(ctx, "runtime config resolution failed", slog.String("error", err.Error()))
				return err
			}
			return encode(cmd.OutOrStdout(), s.cfg.Format, infos)
		},
	}
}
