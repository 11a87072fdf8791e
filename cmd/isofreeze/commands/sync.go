package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/isofreeze/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [file]",
		Short: "Make the interpreter's environment match the resolved requirements",
		Long: "Uninstall packages not in the resolved set, then install every resolved " +
			"package at its pinned version.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isolated, _ := cmd.Flags().GetBool("isolated")
			resolve, err := resolveOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Sync(cmd.Context(), app.SyncOptions{
				ResolveOptions: resolve,
				Isolated:       isolated,
			})
		},
	}
	addResolveFlags(cmd)
	cmd.Flags().Bool("isolated", false, "Unsupported: sync always targets the given interpreter")
	return cmd
}
