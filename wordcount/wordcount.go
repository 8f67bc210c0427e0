// Package wordcount times reading a text file, splitting it on spaces and
// counting how often each word occurs.
package wordcount

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/charlieparkes/wordbench/app"
	"github.com/charlieparkes/wordbench/store"
)

// ErrInputUnavailable wraps every failure to open the input.
var ErrInputUnavailable = errors.New("input unavailable")

type Options struct {
	// Path is a local file or a gs:// object. Defaults to app.DefaultFile.
	Path         string
	MaxTokenSize int
	// Progress draws a byte progress bar on stderr while reading.
	Progress bool
}

func (o Options) withDefaults() Options {
	if o.Path == "" {
		o.Path = app.DefaultFile
	}
	if o.MaxTokenSize <= 0 {
		o.MaxTokenSize = app.DefaultMaxTokenSize
	}
	return o
}

// Report holds the two aggregates printed for a table.
type Report struct {
	Distinct int
	Total    int
}

func (t *Table) Report() Report {
	return Report{Distinct: t.Distinct(), Total: t.Total()}
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%d\n%d\n", r.Distinct, r.Total)
	return int64(n), err
}

// Count tokenizes r and counts every token. A maxTokenSize of zero or less
// means app.DefaultMaxTokenSize.
func Count(r io.Reader, maxTokenSize int) (*Table, error) {
	table := NewTable()
	tok := NewTokenizer(r, maxTokenSize)
	for tok.Next() {
		table.Add(tok.Token())
	}
	if err := tok.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func CountString(s string) *Table {
	// A strings.Reader never fails and s bounds every token.
	table, _ := Count(strings.NewReader(s), len(s))
	return table
}

// CountFile opens the input, counts it and releases the input again.
func CountFile(ctx context.Context, opts Options) (*Table, error) {
	opts = opts.withDefaults()

	in, err := store.Open(ctx, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer in.Close()

	var r io.Reader = in
	if opts.Progress {
		bar := progressbar.DefaultBytes(in.Size(), opts.Path)
		defer bar.Close()
		r = io.TeeReader(in, bar)
	}

	table, err := Count(r, opts.MaxTokenSize)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.Path, err)
	}
	return table, nil
}

// Run counts the input and writes the distinct and total counts to w.
// Nothing is written when the input cannot be read.
func Run(ctx context.Context, opts Options, w io.Writer) (*Table, error) {
	table, err := CountFile(ctx, opts)
	if err != nil {
		return nil, err
	}
	report := table.Report()
	app.Log.Debug("counted", zap.Int("distinct", report.Distinct), zap.Int("total", report.Total))
	if _, err := report.WriteTo(w); err != nil {
		return nil, err
	}
	return table, nil
}

// Benchmark times Run and writes the elapsed milliseconds as a third line.
func Benchmark(ctx context.Context, opts Options, w io.Writer) (*Table, time.Duration, error) {
	start := time.Now()
	table, err := Run(ctx, opts, w)
	if err != nil {
		return nil, 0, err
	}
	elapsed := time.Since(start)

	if _, err := fmt.Fprintln(w, elapsed.Milliseconds()); err != nil {
		return nil, elapsed, err
	}
	app.Log.Info("benchmark finished", zap.String("path", opts.withDefaults().Path), zap.Duration("elapsed", elapsed))
	return table, elapsed, nil
}

// Dump writes one "word<TAB>count" line per entry in Entries order. Words are
// Go-quoted since tokens may hold newlines or tabs. A limit of 0 writes every
// entry.
func Dump(w io.Writer, table *Table, limit int) error {
	entries := table.Entries()
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%q\t%d\n", e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}
