package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/viewgraph/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	var touch bool
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Re-resolve the view's references and record them in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ConfigPath: c.configPath,
				StatePath:  c.statePath,
				Touch:      touch,
			})
			if err != nil {
				return err
			}
			return c.reporter(cmd.OutOrStdout()).Resolve(rep)
		},
	}
	cmd.Flags().BoolVar(&touch, "touch", false, "Fully resolve node targets and read their content")
	return cmd
}
