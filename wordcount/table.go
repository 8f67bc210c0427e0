package wordcount

import "sort"

// Table maps each word to the number of times it was seen.
type Table struct {
	counts map[string]int
}

func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

func (t *Table) Lookup(word string) (int, bool) {
	n, ok := t.counts[word]
	return n, ok
}

// Add records one more occurrence of word.
func (t *Table) Add(word string) {
	n, ok := t.Lookup(word)
	if !ok {
		n = 0
	}
	t.counts[word] = n + 1
}

// Distinct is the number of unique words.
func (t *Table) Distinct() int { return len(t.counts) }

// Total sums every count, which is the number of tokens added.
func (t *Table) Total() int {
	sum := 0
	for _, n := range t.counts {
		sum += n
	}
	return sum
}

// Map returns a copy of the underlying counts.
func (t *Table) Map() map[string]int {
	m := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		m[k] = v
	}
	return m
}

type Entry struct {
	Word  string
	Count int
}

// Entries lists the table by descending count, ties broken by word.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for w, n := range t.counts {
		entries = append(entries, Entry{Word: w, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}
