package dat

// DAT is a frozen double-array trie over runes.
//   - States are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// The trie itself carries no payload. Owners keep per-state data in side
// tables indexed by state.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Alphabet maps runes to dense IDs [0..Sigma].
	Alphabet Alphabet
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 { return d.Alphabet.Dense(r) }

// Used counts the slots occupied by states, including the root, and returns
// the highest occupied index as well.
func (d *DAT) Used() (used, maxState int) {
	maxState = int(d.Root)
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
			maxState = max(maxState, i)
		}
	}
	return used, maxState
}
