package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ezerfernandes/mdcallout/internal/callout"
	"github.com/spf13/cobra"
)

const (
	stdinName = "-"
	fileMode  = 0o600
)

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	status statusFunc
	kinds  map[string]string
}

func (opts *options) createStatus(w io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

// calloutKinds returns the kinds added with --kind, sorted by name.
func (opts *options) calloutKinds() []callout.Kind {
	kinds := make([]callout.Kind, 0, len(opts.kinds))

	for name, title := range opts.kinds {
		kinds = append(kinds, callout.Kind{Name: name, DefaultTitle: title})
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Name < kinds[j].Name })

	return kinds
}

func (opts *options) calloutOptions() []callout.Option {
	var res []callout.Option

	for _, kind := range opts.calloutKinds() {
		res = append(res, callout.WithKind(kind))
	}

	return res
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
}

func kindFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringToStringVar(&opts.kinds, "kind", nil, "register an extra container as name=default title")
}

func source(args []string) string {
	if len(args) == 0 {
		return stdinName
	}

	return args[0]
}

func readSource(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == stdinName {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(filename)
}
