// Package process applies filename-derived timestamps to every supported
// media file directly inside a directory, keeping a success/failure tally.
package process

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bvdwalt/mediastamp-go/pkg/nametime"
	"github.com/bvdwalt/mediastamp-go/pkg/scan"
	"github.com/bvdwalt/mediastamp-go/pkg/touch"
)

// Tally holds the counters for one directory run.
type Tally struct {
	Success int
	Failure int
}

// Options configures Process.
type Options struct {
	// Verbosity controls per-file narration only, never the counts:
	// 0 prints nothing per file, 1 also reports skipped files,
	// 2 reports every file before and after the update attempt.
	Verbosity int

	// Out receives per-file narration. If nil, os.Stdout is used.
	Out io.Writer

	// ErrOut receives update-failure reports. If nil, os.Stderr is used.
	ErrOut io.Writer

	Scan scan.Options
}

func DefaultOptions() Options {
	return Options{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Scan:   scan.DefaultOptions(),
	}
}

// Process visits every supported media file directly inside directory and
// sets its access and modification time from the timestamp embedded in its
// filename.
//
// Files whose name carries no recognized token are counted as failures and
// left untouched. A failing timestamp update is reported and counted, but
// never aborts the run. Only a failure to enumerate the directory itself
// returns an error.
func Process(directory string, opts Options) (Tally, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	if len(opts.Scan.Extensions) == 0 {
		opts.Scan = scan.DefaultOptions()
	}

	names, err := scan.Scan(os.DirFS(directory), ".", opts.Scan)
	if err != nil {
		return Tally{}, err
	}

	var tally Tally
	for _, name := range names {
		if opts.Verbosity >= 2 {
			fmt.Fprintf(opts.Out, "Processing %s...\n", name)
		}

		ts, ok := nametime.Parse(name)
		if !ok {
			if opts.Verbosity >= 1 {
				fmt.Fprintf(opts.Out, "  Skipped: %s (doesn't match expected pattern)\n", name)
			}
			tally.Failure++
			continue
		}

		path := filepath.Join(directory, name)
		if err := touch.SetModifiedTime(path, ts); err != nil {
			fmt.Fprintf(opts.ErrOut, "Error updating %s: %v\n", path, err)
			tally.Failure++
			continue
		}

		tally.Success++
		if opts.Verbosity >= 2 {
			fmt.Fprintf(opts.Out, "  Updated: %s -> %s\n", name, ts.Format("2006-01-02 15:04:05 MST"))
		}
	}

	return tally, nil
}
