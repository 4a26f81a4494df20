/*
Package kanaize converts romanized Japanese (romaji) into kana.

Conversion is driven by a dictionary of sequence→symbol mappings. Mappings are
collected with a Builder (or a KanaBuilder, which derives doubled-consonant
and long-vowel variants of an entry) and compiled into a frozen double-array
trie (DAT). A Translator walks the input once from left to right and replaces
the longest registered sequence at each position by its symbol.

Longest match is strict: lookup never backtracks. If a registered sequence is
a strict prefix of another one, every path in between must end in a
registered sequence as well, otherwise input stopping in the middle of such a
path is reported as invalid although a shorter token would have matched.
Package audit reports these dead ends for a set of mappings.

Apostrophes (or another configured disambiguator) force a token boundary:

	pan'ya  => ぱんや
	panya   => ぱにゃ

Dictionaries may be supplied from code, from files in the format of package
kanadict, or from the bundled tables in package kana.

Further Reading

	https://en.wikipedia.org/wiki/Romanization_of_Japanese
	https://en.wikipedia.org/wiki/Sokuon
	https://en.wikipedia.org/wiki/Ch%C5%8Donpu

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package kanaize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'kanaize'
func tracer() tracing.Trace {
	return tracing.Select("kanaize")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
