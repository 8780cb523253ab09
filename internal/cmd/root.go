package cmd

import (
	_ "embed"
	"io"
	"os"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

// Execute runs the mdcallout command line and exits with a non-zero status on
// failure.
func Execute(args []string, stdout, stderr io.Writer) {
	root := rootCmd()

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{ //nolint:exhaustruct
		Use:           "mdcallout",
		Short:         "Render and maintain Markdown notes with callout containers",
		Long:          rootHelp,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.createStatus(cmd.ErrOrStderr())
		},

		DisableAutoGenTag: true,
	}

	quietFlag(root, opts)

	root.AddCommand(
		renderCmd(opts),
		listCmd(opts),
		processCmd(opts),
	)

	return root
}
