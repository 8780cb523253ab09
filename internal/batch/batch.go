// Package batch runs Markdown processors over every matching file of a tree.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

const fileMode = 0o600

// Processor transforms one document. It returns the new content and the
// number of edits made; zero edits means the document is left as is.
type Processor interface {
	Name() string
	Process(name string, source []byte) ([]byte, int, error)
}

// StatusFunc reports progress and per-file problems.
type StatusFunc func(format string, args ...interface{})

// Stats counts what one processor did during a run.
type Stats struct {
	Name    string
	Changed int
	Edits   int
}

// Summary is the outcome of [Batch.Run].
type Summary struct {
	Files  int
	Failed int
	Stats  []Stats
}

// Batch walks FS and runs Processors, in order, on each file accepted by
// Filter.
type Batch struct {
	FS         FS
	Processors []Processor
	Filter     *Filter
	Status     StatusFunc
}

// Run processes the whole tree. Errors on individual files are reported
// through Status and counted in the summary; only walk errors abort the run.
func (b *Batch) Run() (*Summary, error) {
	if len(b.Processors) == 0 {
		return nil, ErrNoProcessors
	}

	filter := b.Filter
	if filter == nil {
		filter = DefaultFilter()
	}

	status := b.Status
	if status == nil {
		status = func(string, ...interface{}) {}
	}

	summary := &Summary{Stats: make([]Stats, len(b.Processors))}
	for i, p := range b.Processors {
		summary.Stats[i].Name = p.Name()
	}

	err := fs.WalkDir(b.FS, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !filter.Match(path.Base(name)) {
			return nil
		}

		if perr := b.processFile(name, summary); perr != nil {
			summary.Failed++

			status("error: %s: %v\n", name, perr)

			return nil
		}

		summary.Files++

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (b *Batch) processFile(name string, summary *Summary) error {
	source, err := fs.ReadFile(b.FS, name)
	if err != nil {
		return err
	}

	result := source
	edits := make([]int, len(b.Processors))

	for i, p := range b.Processors {
		out, n, err := p.Process(name, result)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}

		if n > 0 {
			result = out
			edits[i] = n
		}
	}

	changed := false

	for i, n := range edits {
		if n > 0 {
			summary.Stats[i].Changed++
			summary.Stats[i].Edits += n
			changed = true
		}
	}

	if !changed {
		return nil
	}

	mode := fs.FileMode(fileMode)
	if info, err := fs.Stat(b.FS, name); err == nil {
		mode = info.Mode().Perm()
	}

	return b.FS.WriteFile(name, result, mode)
}

// ErrNoProcessors is returned by [Batch.Run] when there is nothing to run.
var ErrNoProcessors = errors.New("no processors configured")
