package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/viewgraph/internal/app"
	"go.trai.ch/viewgraph/internal/core/domain"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	var (
		invalid    []string
		objects    []string
		fromLedger bool
		at         string
	)
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove invalidated nodes and their dependents from every graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.PruneOptions{
				ConfigPath: c.configPath,
				StatePath:  c.statePath,
				FromLedger: fromLedger,
			}
			for _, s := range invalid {
				id, err := domain.ParseUniqueID(s)
				if err != nil {
					return err
				}
				opts.Invalid = append(opts.Invalid, id)
			}
			for _, s := range objects {
				id, err := domain.ParseUniqueID(s)
				if err != nil {
					return err
				}
				opts.InvalidObjects = append(opts.InvalidObjects, id.ObjectID())
			}
			instant, err := parseInstant(at)
			if err != nil {
				return err
			}
			opts.At = instant

			rep, err := c.app.Prune(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return c.reporter(cmd.OutOrStdout()).Prune(rep)
		},
	}
	cmd.Flags().StringArrayVar(&invalid, "invalid", nil, "Identifier to invalidate, matched exactly (repeatable)")
	cmd.Flags().StringArrayVar(&objects, "invalid-object", nil, "Object whose every version is invalid (repeatable)")
	cmd.Flags().BoolVar(&fromLedger, "from-ledger", false, "Also invalidate identifiers the ledger has expired, and drain them")
	cmd.Flags().StringVar(&at, "at", "", "Also remove nodes whose function cannot run at this RFC 3339 instant")
	return cmd
}
