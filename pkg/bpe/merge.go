package bpe

import "strings"

// MergePair returns a new Vocabulary in which every adjacent occurrence of
// the pair, in every entry, is collapsed into the single merged symbol.
// Frequencies carry over unchanged per source entry; when two distinct
// source entries collapse to the same output key their frequencies are
// summed, never overwritten.
//
// Entries are rewritten by splitting the key into its symbol slice and
// collapsing by index, not by raw substring replacement, so a pair can only
// ever match at a true symbol boundary and never inside a merged symbol's
// characters.
func MergePair(pair Pair, vocab Vocabulary) Vocabulary {
	merged := pair.Merged()
	out := make(Vocabulary, len(vocab))
	for key, freq := range vocab {
		syms := collapsePair(Symbols(key), pair, merged)
		out[strings.Join(syms, SymbolSeparator)] += freq
	}
	return out
}

// collapsePair replaces adjacent (First, Second) with the merged symbol,
// scanning greedily left to right. A matched pair is consumed whole, so
// overlapping candidates resolve to the leftmost match.
func collapsePair(syms []string, pair Pair, merged string) []string {
	out := make([]string, 0, len(syms))
	i := 0
	for i < len(syms) {
		if i+1 < len(syms) && syms[i] == pair.First && syms[i+1] == pair.Second {
			out = append(out, merged)
			i += 2
		} else {
			out = append(out, syms[i])
			i++
		}
	}
	return out
}
