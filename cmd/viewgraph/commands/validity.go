package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newValidityCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "validity",
		Short: "Print the window over which the view can be executed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			instant, err := parseInstant(at)
			if err != nil {
				return err
			}
			rep, err := c.app.Validity(cmd.Context(), c.configPath, instant)
			if err != nil {
				return err
			}
			return c.reporter(cmd.OutOrStdout()).Validity(rep)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC 3339 instant to check (default now)")
	return cmd
}
