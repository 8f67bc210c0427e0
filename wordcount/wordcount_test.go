package wordcount

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func benchmarkLines(t *testing.T, opts Options) []string {
	t.Helper()
	var out bytes.Buffer
	if _, _, err := Benchmark(context.Background(), opts, &out); err != nil {
		t.Fatalf("Benchmark() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Benchmark() wrote %d lines: %q", len(lines), out.String())
	}
	ms, err := strconv.ParseInt(lines[2], 10, 64)
	if err != nil || ms < 0 {
		t.Fatalf("elapsed line %q is not a non-negative integer", lines[2])
	}
	return lines[:2]
}

func TestBenchmark(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"simple", "a a b", []string{"2", "3"}},
		{"empty file", "", []string{"0", "0"}},
		{"one word", "word", []string{"1", "1"}},
		{"case sensitive", "Word word", []string{"2", "2"}},
		{"double space counts empty token", "x  y", []string{"3", "3"}},
		{"sentence", "the quick brown fox jumps over the lazy dog", []string{"8", "9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := benchmarkLines(t, Options{Path: writeInput(t, tt.content)})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Benchmark(%q) mismatch (-want +got):\n%s", tt.content, diff)
			}
		})
	}
}

func TestBenchmarkIdempotent(t *testing.T) {
	opts := Options{Path: writeInput(t, "to be or not to be that is the question")}
	first := benchmarkLines(t, opts)
	second := benchmarkLines(t, opts)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestBenchmarkMissingFile(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Benchmark(context.Background(), Options{Path: filepath.Join(t.TempDir(), "words.txt")}, &out)
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("error = %v, want ErrInputUnavailable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q on failure", out.String())
	}
}

func TestBenchmarkTokenTooLong(t *testing.T) {
	var out bytes.Buffer
	opts := Options{Path: writeInput(t, "a "+strings.Repeat("b", 64)), MaxTokenSize: 16}
	_, _, err := Benchmark(context.Background(), opts, &out)
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("error = %v, want bufio.ErrTooLong", err)
	}
	if errors.Is(err, ErrInputUnavailable) {
		t.Errorf("read error reported as ErrInputUnavailable: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q on failure", out.String())
	}
}

func TestRunDefaultPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte("one two two"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	var out bytes.Buffer
	table, err := Run(context.Background(), Options{}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "2\n3\n" {
		t.Errorf("Run() wrote %q", got)
	}
	if n, _ := table.Lookup("two"); n != 2 {
		t.Errorf("Lookup(two) = %d", n)
	}
}

func TestDump(t *testing.T) {
	table := CountString("b a b c b a")

	var all bytes.Buffer
	if err := Dump(&all, table, 0); err != nil {
		t.Fatal(err)
	}
	if got, want := all.String(), "\"b\"\t3\n\"a\"\t2\n\"c\"\t1\n"; got != want {
		t.Errorf("Dump(0) = %q, want %q", got, want)
	}

	var top bytes.Buffer
	if err := Dump(&top, table, 2); err != nil {
		t.Fatal(err)
	}
	if got, want := top.String(), "\"b\"\t3\n\"a\"\t2\n"; got != want {
		t.Errorf("Dump(2) = %q, want %q", got, want)
	}
}

func TestDumpQuotesWords(t *testing.T) {
	table := CountString("b\n b\tc  b\n")

	var out bytes.Buffer
	if err := Dump(&out, table, 0); err != nil {
		t.Fatal(err)
	}
	want := "\"b\\n\"\t2\n\"\"\t1\n\"b\\tc\"\t1\n"
	if got := out.String(); got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
	if lines := strings.Count(out.String(), "\n"); lines != table.Distinct() {
		t.Errorf("Dump() wrote %d lines for %d words", lines, table.Distinct())
	}
}

func TestCountFileProgress(t *testing.T) {
	path := writeInput(t, "the fox and the dog and the cat")

	plain, err := CountFile(context.Background(), Options{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	withBar, err := CountFile(context.Background(), Options{Path: path, Progress: true})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(plain.Map(), withBar.Map()); diff != "" {
		t.Errorf("progress changed the counts (-plain +progress):\n%s", diff)
	}
	if withBar.Distinct() != 5 || withBar.Total() != 8 {
		t.Errorf("CountFile() = %d/%d, want 5/8", withBar.Distinct(), withBar.Total())
	}
}
