package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/isofreeze/internal/app"
)

func (c *CLI) newPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin [file]",
		Short: "Write pinned requirements for a requirements.in or pyproject.toml",
		Long: "Resolve the input with pip's installation report and write every package " +
			"with its exact version, separating top level requirements from their dependencies.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			hashes, _ := cmd.Flags().GetBool("hashes")
			isolated, _ := cmd.Flags().GetBool("isolated")
			watch, _ := cmd.Flags().GetBool("watch")

			resolve, err := resolveOptions(cmd, args)
			if err != nil {
				return err
			}

			opts := app.PinOptions{
				ResolveOptions: resolve,
				Output:         output,
				Hashes:         hashes,
				Isolated:       isolated,
			}
			if watch {
				return c.app.Watch(cmd.Context(), opts)
			}
			return c.app.Pin(cmd.Context(), opts)
		},
	}
	addResolveFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Output file (default \"requirements.txt\")")
	cmd.Flags().Bool("hashes", false, "Add hashes to the output file")
	cmd.Flags().Bool("isolated", false, "Resolve in a temporary virtual environment with an up-to-date pip")
	cmd.Flags().BoolP("watch", "w", false, "Pin again whenever the input or settings file changes")
	return cmd
}
