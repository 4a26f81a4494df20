package dat

// Alphabet maps runes to dense alphabet IDs (uint16).
//
// Code points of the Basic Multilingual Plane are looked up in a two-level
// page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Romaji and kana live in two or three pages, so a typical alphabet needs
// about 2 KB. Code points above the BMP (emoji, rare CJK) are kept in a
// small map instead.
type Alphabet struct {
	Top    [256]uint16 // page index (1-based); 0 means none
	Pages  []uint16    // flat: NumPages*256
	Astral map[rune]uint16
}

// Dense returns the dense alphabet ID for a rune.
// Returns 0 if absent.
func (a *Alphabet) Dense(r rune) uint16 {
	if r < 0 {
		return 0
	}
	if r > 0xFFFF {
		return a.Astral[r] // nil map reads are fine
	}
	pi := a.Top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return a.Pages[base+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (a *Alphabet) NumPages() int { return len(a.Pages) >> 8 }

// ensurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (a *Alphabet) ensurePage(hi rune) uint16 {
	pi := a.Top[hi]
	if pi != 0 {
		return pi
	}
	a.Pages = append(a.Pages, make([]uint16, 256)...)
	pi = uint16(len(a.Pages) >> 8) // number of pages, 1-based index
	a.Top[hi] = pi
	return pi
}

// Set sets mapping r -> dense (dense may be 0 to clear).
func (a *Alphabet) Set(r rune, dense uint16) {
	if r < 0 {
		return
	}
	if r > 0xFFFF {
		if dense == 0 {
			delete(a.Astral, r)
			return
		}
		if a.Astral == nil {
			a.Astral = make(map[rune]uint16)
		}
		a.Astral[r] = dense
		return
	}
	hi := r >> 8
	pi := a.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		pi = a.ensurePage(hi)
	}
	base := int(pi-1) << 8
	a.Pages[base+int(r&0xFF)] = dense
}
