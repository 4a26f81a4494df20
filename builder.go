package kanaize

import (
	"fmt"
)

// Mapping maps a romaji sequence to one output symbol.
type Mapping struct {
	Sequence string
	Symbol   string
}

// Builder collects mappings for a trie. It does not touch a trie until Build
// is called; every call to Build creates a new, independent trie from the
// mappings collected so far.
//
// A Builder is meant to be filled by a single goroutine.
type Builder struct {
	mappings []Mapping
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Put adds a mapping. sequence must not be empty.
func (b *Builder) Put(sequence, symbol string) error {
	if sequence == "" {
		return fmt.Errorf("%w: cannot put empty sequence (symbol %q)", ErrConfiguration, symbol)
	}
	b.mappings = append(b.mappings, Mapping{Sequence: sequence, Symbol: symbol})
	return nil
}

// Mappings returns a copy of the mappings collected so far, in the order they
// were put.
func (b *Builder) Mappings() []Mapping {
	mm := make([]Mapping, len(b.mappings))
	copy(mm, b.mappings)
	return mm
}

// Len returns the number of mappings collected so far.
func (b *Builder) Len() int {
	return len(b.mappings)
}

// Build creates a frozen trie holding all mappings put so far, inserted in
// the order they were put.
func (b *Builder) Build() (*Trie, error) {
	trie := NewTrie()
	for _, m := range b.mappings {
		if err := trie.Insert(m.Sequence, m.Symbol); err != nil {
			return nil, err
		}
	}
	trie.Freeze()
	stats := trie.Stats()
	tracer().Infof("trie stats backend=%s sequences=%d used=%d total=%d fill=%.2f maxStateID=%d",
		stats.Backend, stats.Sequences, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
	return trie, nil
}
