package kanaize

import (
	"fmt"
	"unicode/utf8"
)

// Flags select the variants KanaBuilder.PutVariants derives from an entry.
type Flags uint8

const (
	// DoubleConsonant additionally maps the sequence with its first letter
	// doubled to the symbol prefixed by the sokuon:
	//
	//	PutVariants("ku", "く", DoubleConsonant)
	//
	// puts "ku" → "く" and "kku" → "っく".
	DoubleConsonant Flags = 1 << iota

	// LongVowel additionally maps the sequence with its last letter doubled
	// to the symbol followed by the chōonpu:
	//
	//	PutVariants("ne", "ネ", LongVowel)
	//
	// puts "ne" → "ネ" and "nee" → "ネー".
	LongVowel

	NoFlags Flags = 0
)

// Has reports whether all flags in f are set.
func (flags Flags) Has(f Flags) bool {
	return flags&f == f
}

func (flags Flags) String() string {
	switch flags {
	case NoFlags:
		return "none"
	case DoubleConsonant:
		return "double"
	case LongVowel:
		return "long"
	case DoubleConsonant | LongVowel:
		return "double|long"
	}
	return fmt.Sprintf("Flags(%d)", uint8(flags))
}

// ExpandVariants returns base followed by the variants selected by flags.
//
// Doubling is applied first, then lengthening is applied to everything
// produced so far. With both flags set the result is
//
//	base, doubled(base), long(base), long(doubled(base))
//
// DoubleConsonant needs a non-empty sokuon, LongVowel a non-empty chōonpu.
func ExpandVariants(base Mapping, flags Flags, sokuon, choonpu string) ([]Mapping, error) {
	if base.Sequence == "" {
		return nil, fmt.Errorf("%w: cannot expand empty sequence (symbol %q)", ErrConfiguration, base.Symbol)
	}
	mappings := []Mapping{base}
	if flags.Has(DoubleConsonant) {
		if sokuon == "" {
			return nil, fmt.Errorf("%w: double consonant for %q needs a sokuon", ErrConfiguration, base.Sequence)
		}
		mappings = append(mappings, doubledConsonants(mappings, sokuon)...)
	}
	if flags.Has(LongVowel) {
		if choonpu == "" {
			return nil, fmt.Errorf("%w: long vowel for %q needs a choonpu", ErrConfiguration, base.Sequence)
		}
		mappings = append(mappings, longVowels(mappings, choonpu)...)
	}
	return mappings, nil
}

func doubledConsonants(mappings []Mapping, sokuon string) []Mapping {
	doubled := make([]Mapping, 0, len(mappings))
	for _, m := range mappings {
		first, _ := utf8.DecodeRuneInString(m.Sequence)
		doubled = append(doubled, Mapping{
			Sequence: string(first) + m.Sequence,
			Symbol:   sokuon + m.Symbol,
		})
	}
	return doubled
}

func longVowels(mappings []Mapping, choonpu string) []Mapping {
	long := make([]Mapping, 0, len(mappings))
	for _, m := range mappings {
		last, _ := utf8.DecodeLastRuneInString(m.Sequence)
		long = append(long, Mapping{
			Sequence: m.Sequence + string(last),
			Symbol:   m.Symbol + choonpu,
		})
	}
	return long
}

// KanaBuilder is a Builder which can derive the mappings for doubled
// consonants (sokuon, e.g. っ) and long vowels (chōonpu, e.g. ー) from a
// base entry.
type KanaBuilder struct {
	Builder
	Sokuon  string // marker for doubled consonants
	Choonpu string // marker for long vowels; may be empty
}

// NewKanaBuilder creates a builder for kana. choonpu may be empty if no entry
// will ask for LongVowel variants.
func NewKanaBuilder(sokuon, choonpu string) *KanaBuilder {
	return &KanaBuilder{Sokuon: sokuon, Choonpu: choonpu}
}

// PutVariants puts a mapping together with the variants selected by flags.
// Either all of them are put or, on error, none.
func (kb *KanaBuilder) PutVariants(sequence, symbol string, flags Flags) error {
	mappings, err := ExpandVariants(Mapping{Sequence: sequence, Symbol: symbol}, flags, kb.Sokuon, kb.Choonpu)
	if err != nil {
		return err
	}
	for _, m := range mappings {
		err = kb.Put(m.Sequence, m.Symbol)
		assert(err == nil, "expanded variant has empty sequence")
	}
	return nil
}
