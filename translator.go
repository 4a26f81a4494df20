package kanaize

import (
	"strings"
)

// DefaultPunctuation is the set of characters passed through unchanged by
// default: blanks, common separators and sentence terminators, both latin and
// Japanese.
const DefaultPunctuation = " \t.,?!;:。、？！「」"

// Config configures a Translator.
type Config struct {
	// Disambiguator ends a token without producing output, e.g. "pan'ya".
	Disambiguator rune
	// Punctuation lists the characters copied to the output as they are.
	Punctuation string
	// ShowAmbiguity renders sequences with more than one symbol as
	// "[X|Y]" instead of picking the first symbol.
	ShowAmbiguity bool
}

// DefaultConfig returns the configuration used if nothing else is requested:
// apostrophe as disambiguator, DefaultPunctuation, no ambiguity display.
func DefaultConfig() Config {
	return Config{
		Disambiguator: '\'',
		Punctuation:   DefaultPunctuation,
	}
}

// Translator converts romaji to kana using a trie built from a dictionary.
// A Translator holds no per-call state and may be used concurrently if its
// trie is frozen.
type Translator struct {
	trie          *Trie
	disambiguator rune
	punctuation   map[rune]struct{}
	showAmbiguity bool
}

// NewTranslator creates a translator for trie.
func NewTranslator(trie *Trie, config Config) *Translator {
	assert(trie != nil, "translator needs a trie")
	punct := make(map[rune]struct{}, len(config.Punctuation))
	for _, r := range config.Punctuation {
		punct[r] = struct{}{}
	}
	return &Translator{
		trie:          trie,
		disambiguator: config.Disambiguator,
		punctuation:   punct,
		showAmbiguity: config.ShowAmbiguity,
	}
}

// stepKind classifies the input at the current position.
type stepKind int

const (
	stepDisambiguator stepKind = iota // consume one rune, emit nothing
	stepPunctuation                   // consume one rune, emit it
	stepSymbols                       // emit symbols of a trie match
	stepInvalid                       // no symbols: fail
)

func (k stepKind) String() string {
	switch k {
	case stepDisambiguator:
		return "disambiguator"
	case stepPunctuation:
		return "punctuation"
	case stepSymbols:
		return "symbols"
	case stepInvalid:
		return "invalid"
	}
	return "?"
}

// step is one classified token. next is the index after the token; r is set
// for disambiguators and punctuation, symbols for trie matches.
type step struct {
	kind    stepKind
	start   int
	next    int
	r       rune
	symbols []string
}

func (tr *Translator) classify(text []rune, i int) step {
	r := text[i]
	if r == tr.disambiguator {
		return step{kind: stepDisambiguator, start: i, next: i + 1, r: r}
	}
	if _, ok := tr.punctuation[r]; ok {
		return step{kind: stepPunctuation, start: i, next: i + 1, r: r}
	}
	m := tr.trie.Lookup(text, i)
	if !m.Valid() {
		return step{kind: stepInvalid, start: i, next: m.Next}
	}
	return step{kind: stepSymbols, start: i, next: m.Next, symbols: m.Symbols}
}

// Translate converts text to kana. If some part of text does not match the
// dictionary, Translate returns an *InvalidTokenError and no output.
func (tr *Translator) Translate(text string) (string, error) {
	input := []rune(text)
	var out strings.Builder
	out.Grow(len(text) * 2)
	for i := 0; i < len(input); {
		st := tr.classify(input, i)
		switch st.kind {
		case stepDisambiguator:
		case stepPunctuation:
			out.WriteRune(st.r)
		case stepSymbols:
			tr.writeSymbols(&out, st.symbols)
		case stepInvalid:
			err := newInvalidTokenError(input, st.start, st.next)
			tracer().Debugf("translate: %v", err)
			return "", err
		}
		assert(st.next > i, "translation does not advance")
		i = st.next
	}
	return out.String(), nil
}

func (tr *Translator) writeSymbols(out *strings.Builder, symbols []string) {
	if len(symbols) == 1 || !tr.showAmbiguity {
		out.WriteString(symbols[0])
		return
	}
	out.WriteByte('[')
	out.WriteString(strings.Join(symbols, "|"))
	out.WriteByte(']')
}
