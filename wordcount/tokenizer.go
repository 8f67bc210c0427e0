package wordcount

import (
	"bufio"
	"bytes"
	"io"

	"github.com/charlieparkes/wordbench/app"
)

const delimiter = ' '

// spaceSplitter is a bufio.SplitFunc that cuts tokens at every space byte.
// One leading space is consumed before the first token and the trailing
// space of the last token produces nothing, but two adjacent spaces yield
// an empty token.
type spaceSplitter struct {
	started bool
}

func (s *spaceSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if !s.started && len(data) > 0 {
		s.started = true
		if data[0] == delimiter {
			return 1, nil, nil
		}
	}
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, delimiter); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Tokenizer yields the space separated tokens of a reader, once.
type Tokenizer struct {
	scanner *bufio.Scanner
}

// NewTokenizer accepts tokens of up to maxTokenSize bytes. A size of zero or
// less means app.DefaultMaxTokenSize.
func NewTokenizer(r io.Reader, maxTokenSize int) *Tokenizer {
	if maxTokenSize <= 0 {
		maxTokenSize = app.DefaultMaxTokenSize
	}
	// one extra byte so a full size token still fits its delimiter or the EOF read
	bufSize := maxTokenSize + 1
	initial := 64 * 1024
	if bufSize < initial {
		initial = bufSize
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initial), bufSize)
	s.Split((&spaceSplitter{}).split)
	return &Tokenizer{scanner: s}
}

func (t *Tokenizer) Next() bool { return t.scanner.Scan() }

// Token returns the current token. The string is a copy and stays valid
// after the next call to Next.
func (t *Tokenizer) Token() string { return t.scanner.Text() }

func (t *Tokenizer) Err() error { return t.scanner.Err() }
