package commands

import (
	"github.com/anmitsu/go-shlex"
	"github.com/spf13/cobra"
	"go.trai.ch/isofreeze/internal/app"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
)

func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("dependency", "d", nil, "Optional dependency group from pyproject.toml to include (repeatable)")
	cmd.Flags().StringP("python", "p", "", "Python interpreter to use (default \"python3\")")
	cmd.Flags().String("pip-args", "", "Arguments passed to pip install, as one quoted string")
}

func resolveOptions(cmd *cobra.Command, args []string) (app.ResolveOptions, error) {
	var opts app.ResolveOptions
	if len(args) > 0 {
		opts.Input = args[0]
	}
	opts.Dependencies, _ = cmd.Flags().GetStringSlice("dependency")
	opts.Python, _ = cmd.Flags().GetString("python")

	// An explicitly empty --pip-args clears the configured arguments.
	if cmd.Flags().Changed("pip-args") {
		raw, _ := cmd.Flags().GetString("pip-args")
		words, err := shlex.Split(raw, true)
		if err != nil {
			return app.ResolveOptions{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidPipArgs.Error()), "pip_args", raw)
		}
		opts.PipArgs = words
	}
	return opts, nil
}
