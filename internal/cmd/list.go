package cmd

import (
	_ "embed"
	"fmt"

	"github.com/ezerfernandes/mdcallout/internal/callout"
	"github.com/gobwas/glob"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

type filterFunc func(c *callout.Callout) bool

func listCmd(opts *options) *cobra.Command {
	var match string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List the callout containers of a Markdown document",
		Long:    listHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := kindFilter(match)
			if err != nil {
				return err
			}

			return listRun(cmd, source(args), opts, filter)
		},

		DisableAutoGenTag: true,
	}

	kindFlag(cmd, opts)

	cmd.Flags().StringVarP(&match, "match", "m", "*", "glob pattern selecting container kinds")

	return cmd
}

func kindFilter(pattern string) (filterFunc, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid --match pattern %q: %w", pattern, err)
	}

	return func(c *callout.Callout) bool {
		return g.Match(c.Kind)
	}, nil
}

func displayName(filename string) string {
	if filename == stdinName {
		return "stdin"
	}

	return filename
}

func listRun(cmd *cobra.Command, filename string, opts *options, filter filterFunc) error {
	src, err := readSource(cmd, filename)
	if err != nil {
		return err
	}

	tbl := table.New("KIND", "TITLE", "LINES", "DEPTH").WithWriter(cmd.OutOrStdout())
	count := 0

	err = callout.Walk(src, func(c *callout.Callout) error {
		if !filter(c) {
			return nil
		}

		tbl.AddRow(c.Kind, c.Title, fmt.Sprintf("%d-%d", c.StartLine, c.EndLine), c.Depth)
		count++

		return nil
	}, opts.calloutOptions()...)
	if err != nil {
		return err
	}

	if count == 0 {
		opts.status("no containers found in %s\n", displayName(filename))

		return nil
	}

	tbl.Print()

	return nil
}
