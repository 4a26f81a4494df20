package kanaize

import (
	"fmt"
	"sort"

	"github.com/npillmayer/kanaize/dat"
)

// Match is the result of a trie lookup.
//
// Symbols are the symbols registered for the longest sequence found at the
// start position, in registration order. They are empty if the walk ended in
// a position without symbols, which means the input is invalid there (or
// the lookup started at the end of the text). Next is the index of the first
// rune not consumed by the lookup.
type Match struct {
	Symbols []string
	Next    int
}

// Valid reports whether the lookup found at least one symbol.
func (m Match) Valid() bool {
	return len(m.Symbols) > 0
}

type buildNode struct {
	state    uint32
	symbols  []string
	children map[uint16]*buildNode
}

func newBuildNode() *buildNode {
	return &buildNode{children: make(map[uint16]*buildNode)}
}

// Trie maps rune sequences to one or more output symbols.
//
// A trie is mutable until Freeze is called. Freezing compiles the node graph
// into a double-array trie and drops the graph; afterwards the trie is
// read-only and may be shared between goroutines.
type Trie struct {
	frozen    bool
	root      *buildNode // nil after freeze
	nodes     int
	nextDense uint16
	compiled  *dat.DAT
	symbols   *symbolStore // nil before freeze
}

// NewTrie creates an empty, mutable trie.
func NewTrie() *Trie {
	return &Trie{
		root:  newBuildNode(),
		nodes: 1,
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

// Frozen reports whether the trie has been frozen.
func (t *Trie) Frozen() bool {
	return t.frozen
}

// Insert registers symbol for sequence. Inserting the same sequence more than
// once collects all symbols at that sequence; the first one inserted is the
// default reading.
//
// The empty sequence cannot be inserted. This keeps the symbol list of the
// root empty, so an empty lookup result always means "end of input" or
// "no match".
func (t *Trie) Insert(sequence string, symbol string) error {
	if sequence == "" {
		return fmt.Errorf("%w: cannot insert empty sequence into trie", ErrConfiguration)
	}
	if t.frozen {
		return fmt.Errorf("%w: cannot insert %q into frozen trie", ErrConfiguration, sequence)
	}
	key, err := t.encodeKey(sequence)
	if err != nil {
		return err
	}
	n := t.root
	for _, c := range key {
		child := n.children[c]
		if child == nil {
			child = newBuildNode()
			n.children[c] = child
			t.nodes++
		}
		n = child
	}
	n.symbols = append(n.symbols, symbol)
	return nil
}

// encodeKey maps the runes of s to dense alphabet IDs, extending the alphabet
// as needed.
func (t *Trie) encodeKey(s string) ([]uint16, error) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		dense := t.compiled.Dense(r)
		if dense == 0 {
			if t.nextDense == ^uint16(0) {
				return nil, fmt.Errorf("%w: alphabet exhausted at rune %q", ErrConfiguration, r)
			}
			t.nextDense++
			dense = t.nextDense
			t.compiled.Alphabet.Set(r, dense)
		}
		key = append(key, dense)
	}
	return key, nil
}

// Lookup finds the longest registered sequence in text starting at index
// start. The walk follows the text as long as the trie has a matching child,
// regardless of whether intermediate positions carry symbols, and never
// backtracks. It stops at the end of text or at the first rune without a
// matching child and returns the symbols found there.
//
// Lookup does not know about whitespace, punctuation or disambiguators.
func (t *Trie) Lookup(text []rune, start int) Match {
	start = max(start, 0)
	if start >= len(text) {
		return Match{Next: len(text)}
	}
	if !t.frozen {
		return t.lookupGraph(text, start)
	}
	state := t.compiled.Root
	i := start
	for ; i < len(text); i++ {
		next, ok := t.compiled.Transition(state, t.compiled.Dense(text[i]))
		if !ok {
			break
		}
		state = next
	}
	return Match{Symbols: t.symbols.Symbols(int(state)), Next: i}
}

func (t *Trie) lookupGraph(text []rune, start int) Match {
	n := t.root
	i := start
	for ; i < len(text); i++ {
		c := t.compiled.Dense(text[i])
		if c == 0 {
			break
		}
		child := n.children[c]
		if child == nil {
			break
		}
		n = child
	}
	if len(n.symbols) == 0 {
		return Match{Next: i}
	}
	return Match{Symbols: n.symbols[:len(n.symbols):len(n.symbols)], Next: i}
}

// Freeze compiles the trie into its read-only form. Calling Freeze more than
// once has no effect.
func (t *Trie) Freeze() {
	if t.frozen {
		return
	}
	assert(len(t.root.symbols) == 0, "root of trie carries symbols")
	d := t.compiled
	d.Sigma = t.nextDense
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	t.root.state = d.Root
	store := newSymbolStore(t.nodes + 1)
	queue := []*buildNode{t.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.symbols) > 0 {
			err := store.Put(int(n.state), n.symbols)
			assert(err == nil, "cannot store symbols of trie state")
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels)
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			s := base + int(label)
			child := n.children[label]
			child.state = uint32(s)
			d.Check[s] = int32(n.state)
			queue = append(queue, child)
		}
	}
	t.symbols = store
	t.root = nil
	t.frozen = true
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase returns the smallest base at which all labels land in free slots.
func findBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			s := base + int(label)
			if s < len(check) && check[s] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

// TrieStats reports size and density of a trie.
type TrieStats struct {
	Backend    string // "graph" before freeze, "dat" after
	UsedSlots  int
	TotalSlots int
	MaxStateID int
	Sequences  int // number of distinct sequences carrying symbols
}

// FillRatio is the share of used slots.
func (s TrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats reports density metrics for the trie.
func (t *Trie) Stats() TrieStats {
	if !t.frozen {
		return TrieStats{
			Backend:    "graph",
			UsedSlots:  t.nodes,
			TotalSlots: t.nodes,
			Sequences:  countSequences(t.root),
		}
	}
	used, maxState := t.compiled.Used()
	return TrieStats{
		Backend:    "dat",
		UsedSlots:  used,
		TotalSlots: t.compiled.NStates(),
		MaxStateID: maxState,
		Sequences:  t.symbols.Filled(),
	}
}

func countSequences(n *buildNode) int {
	cnt := 0
	if len(n.symbols) > 0 {
		cnt++
	}
	for _, child := range n.children {
		cnt += countSequences(child)
	}
	return cnt
}

func (t *Trie) String() string {
	return fmt.Sprintf("Trie(states=%d,sigma=%d,frozen=%v)", t.compiled.NStates(), t.nextDense, t.frozen)
}
