package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func LangDirsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "langdirs",
		Short: "Print the absolute language directory of every layer declaring one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, v)
			stack, err := s.loadStack(s.context(cmd.Context()))
			if err != nil {
				return err
			}

			dirs := []string{}
			for dir := range s.merger.LayerLangPaths(stack) {
				dirs = append(dirs, dir)
			}
			return encode(cmd.OutOrStdout(), s.cfg.Format, dirs)
		},
	}
}
