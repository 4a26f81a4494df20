/*
Package kanadict reads romaji→kana dictionaries from a simple text format.

A dictionary file is UTF-8 text. Lines starting with '%' are comments,
lines starting with '\' are header directives, every other non-blank line
is an entry:

	% Hiragana
	\name{hiragana}
	\sokuon{っ}
	\choonpu{ー}

	a    あ
	ka   か   double
	kyo  きょ double long
	zu   ず
	zu   づ

Entries are put in file order; repeating a sequence makes it ambiguous, with
the first symbol as default reading. Flag "double" adds the doubled-consonant
variant (kka → っか), flag "long" the long-vowel variant (kaa → かー); both
need the corresponding header directive.
*/
package kanadict

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/kanaize"
)

// LoadBuilder reads a dictionary and returns a builder holding all of its
// entries, together with the dictionary header.
//
// The data is read into memory once, as the header has to be known before
// the first entry can be expanded.
func LoadBuilder(reader io.Reader) (*kanaize.KanaBuilder, Header, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, Header{}, err
	}
	header, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		return nil, header, err
	}
	kb := kanaize.NewKanaBuilder(header.Sokuon, header.Choonpu)
	r := NewReader(bytes.NewReader(data))
	if _, err = kanaize.LoadMappings(kb, r); err != nil {
		return nil, header, fmt.Errorf("dictionary %q: %w", header.Name, err)
	}
	return kb, header, nil
}

// Load reads a dictionary and builds a frozen trie from it.
//
// Example usage:
//
//	f, _ := os.Open("path/to/romaji.dict")
//	defer f.Close()
//
//	trie, err := kanadict.Load(f)
//	tr := kanaize.NewTranslator(trie, kanaize.DefaultConfig())
func Load(reader io.Reader) (*kanaize.Trie, error) {
	kb, _, err := LoadBuilder(reader)
	if err != nil {
		return nil, err
	}
	return kb.Build()
}
