/*
Package audit finds sequences in a dictionary which the greedy lookup of
package kanaize can never fall back to.

Lookup in a kanaize.Trie follows the input as far as the trie has children
and does not backtrack. If "n" and "nya" are registered but "ny" is not,
input "ny…" not followed by "a" ends in the symbol-less position "ny" and is
reported as invalid, although "n" alone would have matched. Check reports
every such dead end; whether to add the missing sequence, rely on a
disambiguator in the input, or accept the error is left to the dictionary
author.
*/
package audit

import (
	"fmt"
	"io"
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/kanaize"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'kanaize.audit'
func tracer() tracing.Trace {
	return tracing.Select("kanaize.audit")
}

// Hazard is a dead end between a registered sequence and a longer one.
//
// Key is registered, Extension is registered and has Key as a prefix,
// DeadEnd lies in between and is not registered.
type Hazard struct {
	Key       string
	DeadEnd   string
	Extension string
}

func (h Hazard) String() string {
	return fmt.Sprintf("%q is shadowed at %q (on the way to %q)", h.Key, h.DeadEnd, h.Extension)
}

// Check returns the dead ends of a set of mappings, sorted by key and dead
// end. For each pair (Key, DeadEnd) one example extension is reported, the
// shortest (then lexically first) one.
func Check(mappings []kanaize.Mapping) []Hazard {
	index := trie.New()
	for _, m := range mappings {
		if m.Sequence == "" {
			continue
		}
		index.Add(m.Sequence, nil)
	}
	type pos struct{ key, deadEnd string }
	found := make(map[pos]string)
	for _, key := range index.Keys() {
		klen := len([]rune(key))
		for _, ext := range index.PrefixSearch(key) {
			runes := []rune(ext)
			for l := klen + 1; l < len(runes); l++ {
				p := string(runes[:l])
				if _, ok := index.Find(p); ok {
					break // the rest of the path is reported for p
				}
				at := pos{key, p}
				if prev, ok := found[at]; !ok || shorter(ext, prev) {
					found[at] = ext
				}
			}
		}
	}
	hazards := make([]Hazard, 0, len(found))
	for at, ext := range found {
		hazards = append(hazards, Hazard{Key: at.key, DeadEnd: at.deadEnd, Extension: ext})
	}
	sort.Slice(hazards, func(i, j int) bool {
		if hazards[i].Key != hazards[j].Key {
			return hazards[i].Key < hazards[j].Key
		}
		return hazards[i].DeadEnd < hazards[j].DeadEnd
	})
	tracer().Infof("audit of %d mappings found %d dead ends", len(mappings), len(hazards))
	return hazards
}

func shorter(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Report writes one line per hazard to w.
func Report(w io.Writer, hazards []Hazard) error {
	for _, h := range hazards {
		if _, err := fmt.Fprintln(w, h.String()); err != nil {
			return err
		}
	}
	return nil
}
