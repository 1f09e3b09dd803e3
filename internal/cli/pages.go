package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func PagesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "Print the pages directory of every layer, project first",
		Long:  "Prints nothing when the project extends no layers: the host scans the project pages on its own.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, v)
			stack, err := s.loadStack(s.context(cmd.Context()))
			if err != nil {
				return err
			}

			pages := []string{}
			s.merger.MergeLayerPages(func(dir string) { pages = append(pages, dir) }, stack)
			return encode(cmd.OutOrStdout(), s.cfg.Format, pages)
		},
	}
}
