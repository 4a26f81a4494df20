/*
Package kana bundles romaji dictionaries for hiragana and katakana.

The dictionaries are in the format of package kanadict. Tries are built on
first use and shared afterwards; they are frozen and safe for concurrent
translators.

	trie, _ := kana.Hiragana()
	tr := kanaize.NewTranslator(trie, kanaize.DefaultConfig())
	s, _ := tr.Translate("konnichiha")   // こんにちは
*/
package kana

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/kanaize"
	"github.com/npillmayer/kanaize/kanadict"
)

//go:embed hiragana.dict
var hiraganaDict []byte

//go:embed katakana.dict
var katakanaDict []byte

// Mode selects a bundled dictionary.
type Mode int

const (
	HiraganaMode Mode = iota
	KatakanaMode
)

func (m Mode) String() string {
	switch m {
	case HiraganaMode:
		return "hiragana"
	case KatakanaMode:
		return "katakana"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "hiragana" or "katakana", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hiragana", "":
		return HiraganaMode, nil
	case "katakana":
		return KatakanaMode, nil
	}
	return HiraganaMode, fmt.Errorf("invalid kana mode %q (expected hiragana|katakana)", s)
}

// Source returns the dictionary source of a mode.
func Source(m Mode) ([]byte, error) {
	switch m {
	case HiraganaMode:
		return hiraganaDict, nil
	case KatakanaMode:
		return katakanaDict, nil
	}
	return nil, fmt.Errorf("no dictionary for %s", m)
}

// Builder returns a fresh builder holding all entries of the dictionary of
// mode m. Callers may add their own entries before building.
func Builder(m Mode) (*kanaize.KanaBuilder, error) {
	src, err := Source(m)
	if err != nil {
		return nil, err
	}
	kb, _, err := kanadict.LoadBuilder(bytes.NewReader(src))
	return kb, err
}

var hiraganaTrie = sync.OnceValues(func() (*kanaize.Trie, error) {
	return build(HiraganaMode)
})

var katakanaTrie = sync.OnceValues(func() (*kanaize.Trie, error) {
	return build(KatakanaMode)
})

func build(m Mode) (*kanaize.Trie, error) {
	kb, err := Builder(m)
	if err != nil {
		return nil, err
	}
	return kb.Build()
}

// Hiragana returns the shared trie of the bundled hiragana dictionary.
func Hiragana() (*kanaize.Trie, error) {
	return hiraganaTrie()
}

// Katakana returns the shared trie of the bundled katakana dictionary.
func Katakana() (*kanaize.Trie, error) {
	return katakanaTrie()
}

// Trie returns the shared trie for mode m.
func Trie(m Mode) (*kanaize.Trie, error) {
	switch m {
	case HiraganaMode:
		return Hiragana()
	case KatakanaMode:
		return Katakana()
	}
	return nil, fmt.Errorf("no dictionary for %s", m)
}
