package cmd

import (
	_ "embed"
	"os"

	"github.com/ezerfernandes/mdcallout/internal/markdown"
	"github.com/spf13/cobra"
)

//go:embed help/render.md
var renderHelp string

func renderCmd(opts *options) *cobra.Command {
	var (
		engineOpts markdown.Options
		output     string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "render [flags] [filename]",
		Aliases: []string{"r"},
		Short:   "Render Markdown with callout containers to HTML",
		Long:    renderHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engineOpts.Kinds = opts.calloutKinds()

			return renderRun(cmd, source(args), output, engineOpts)
		},

		DisableAutoGenTag: true,
	}

	kindFlag(cmd, opts)

	cmd.Flags().StringSliceVar(&engineOpts.Extensions, "ext", nil, "goldmark extensions to enable (default gfm)")
	cmd.Flags().BoolVar(&engineOpts.HardWraps, "hard-wraps", false, "render soft line breaks as <br>")
	cmd.Flags().BoolVar(&engineOpts.Unsafe, "unsafe", false, "pass raw HTML through")
	cmd.Flags().BoolVar(&engineOpts.EscapeTitles, "escape-titles", false, "HTML-escape container titles")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to file instead of stdout")

	return cmd
}

func renderRun(cmd *cobra.Command, filename, output string, engineOpts markdown.Options) error {
	src, err := readSource(cmd, filename)
	if err != nil {
		return err
	}

	engine, err := markdown.New(engineOpts)
	if err != nil {
		return err
	}

	html, err := engine.Render(src)
	if err != nil {
		return err
	}

	if len(output) != 0 {
		return os.WriteFile(output, html, fileMode)
	}

	_, err = cmd.OutOrStdout().Write(html)

	return err
}
