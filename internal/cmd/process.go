package cmd

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/ezerfernandes/mdcallout/internal/batch"
	"github.com/ezerfernandes/mdcallout/internal/permalink"
	"github.com/ezerfernandes/mdcallout/internal/rewrite"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/process.md
var processHelp string

type processOptions struct {
	rewrite   bool
	rules     []string
	permalink string
	include   []string
	exclude   []string
}

func processCmd(opts *options) *cobra.Command {
	var popts processOptions

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "process [flags] directory",
		Aliases: []string{"p"},
		Short:   "Rewrite image links and permalinks of every note in a directory",
		Long:    processHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return processRun(cmd, args[0], opts, &popts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&popts.rewrite, "rewrite", false, "apply the built-in image link rewrite rules")
	cmd.Flags().StringArrayVar(&popts.rules, "rule", nil, "extra rewrite rule as a quoted 'PATTERN' 'REPLACEMENT' pair")
	cmd.Flags().StringVar(&popts.permalink, "permalink", "", "set front matter permalinks under this prefix")
	cmd.Flags().StringArrayVar(&popts.include, "include", nil, "glob for file names to process (default *.md)")
	cmd.Flags().StringArrayVar(&popts.exclude, "exclude", []string{"README.md"}, "glob for file names to skip")

	return cmd
}

func processors(popts *processOptions) ([]batch.Processor, error) {
	var (
		procs []batch.Processor
		rules []*rewrite.Rule
	)

	if popts.rewrite {
		rules = append(rules, rewrite.DefaultRules()...)
	}

	for _, spec := range popts.rules {
		rule, err := rewrite.ParseRule(spec)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	if len(rules) != 0 {
		procs = append(procs, rewrite.NewProcessor(rules...))
	}

	if len(popts.permalink) != 0 {
		procs = append(procs, permalink.New(popts.permalink))
	}

	if len(procs) == 0 {
		return nil, errNothingToDo
	}

	return procs, nil
}

func processRun(cmd *cobra.Command, dir string, opts *options, popts *processOptions) error {
	procs, err := processors(popts)
	if err != nil {
		return err
	}

	filter, err := batch.NewFilter(popts.include, popts.exclude)
	if err != nil {
		return err
	}

	b := &batch.Batch{
		FS:         batch.DirFS(dir),
		Processors: procs,
		Filter:     filter,
		Status:     batch.StatusFunc(opts.status),
	}

	summary, err := b.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "processed %d file(s) in %s\n", summary.Files, dir)

	tbl := table.New("PROCESSOR", "CHANGED", "EDITS").WithWriter(out)
	for _, stats := range summary.Stats {
		tbl.AddRow(stats.Name, stats.Changed, stats.Edits)
	}

	tbl.Print()

	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", summary.Failed)
	}

	return nil
}

var errNothingToDo = errors.New("nothing to do: use --rewrite, --rule or --permalink")
