package kanaize

import "fmt"

const absentSymbols = ^uint16(0)
const initialSymbolStoreSlots = 2 // include slot 0 + root slot

// symbolStore keeps the symbol lists of trie states, directly indexed by state.
// All symbols live in one flat slice; a state refers to its run of symbols by
// offset and count.
type symbolStore struct {
	offset  []uint32
	count   []uint16 // absentSymbols for states without symbols
	symbols []string
	filled  int // number of states carrying symbols
}

func newSymbolStore(states int) *symbolStore {
	states = max(states, initialSymbolStoreSlots)
	s := &symbolStore{
		offset: make([]uint32, states),
		count:  make([]uint16, states),
	}
	for i := range s.count {
		s.count[i] = absentSymbols
	}
	return s
}

func (s *symbolStore) ensure(state int) {
	if state < len(s.count) {
		return
	}
	grow := state + 1 - len(s.count)
	old := len(s.count)
	s.offset = append(s.offset, make([]uint32, grow)...)
	s.count = append(s.count, make([]uint16, grow)...)
	for i := old; i < len(s.count); i++ {
		s.count[i] = absentSymbols
	}
}

// Put stores the symbol list of a trie state. An existing list for the same
// state is replaced.
func (s *symbolStore) Put(state int, symbols []string) error {
	if state < 0 {
		return fmt.Errorf("negative trie state: %d", state)
	}
	if len(symbols) >= int(absentSymbols) {
		return fmt.Errorf("too many symbols for one sequence: %d", len(symbols))
	}
	s.ensure(state)
	if s.count[state] == absentSymbols {
		s.filled++
	}
	s.offset[state] = uint32(len(s.symbols))
	s.count[state] = uint16(len(symbols))
	s.symbols = append(s.symbols, symbols...)
	return nil
}

// Symbols returns the symbols registered for a trie state, in registration
// order, or nil. The returned slice must not be modified.
func (s *symbolStore) Symbols(state int) []string {
	if state < 0 || state >= len(s.count) {
		return nil
	}
	n := s.count[state]
	if n == absentSymbols || n == 0 {
		return nil
	}
	from := int(s.offset[state])
	to := from + int(n)
	return s.symbols[from:to:to]
}

// Filled returns the number of states carrying symbols.
func (s *symbolStore) Filled() int {
	return s.filled
}
