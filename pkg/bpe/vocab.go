// Package bpe trains a Byte Pair Encoding (BPE) vocabulary over a token
// corpus by iteratively merging the most frequent adjacent symbol pairs.
//
// This is an educational implementation focusing on clarity and understanding
// of the BPE training algorithm. It operates at the surface-token level: each
// vocabulary entry starts out as a single whole-token symbol, and every merge
// round glues the most frequent adjacent pair of symbols into one. The
// character-level variant (BuildCharVocabulary) splits tokens into runes
// first, which is the classic Sennrich et al. (2016) setup.
//
// The trainer is single-threaded and synchronous: each round fully recomputes
// pair statistics and fully rewrites the vocabulary before the next round
// begins.
package bpe

import (
	"sort"
	"strings"
)

// SymbolSeparator joins the symbols of a vocabulary entry into its map key.
// Surface tokens never contain whitespace, so the separator can never occur
// inside a symbol and a separator-delimited match is always a true
// adjacent-symbol boundary.
const SymbolSeparator = " "

// Vocabulary maps a separator-joined symbol sequence to the number of times
// the underlying surface token occurred in the corpus.
//
// Invariants:
//   - Joining an entry's symbols without the separator reconstructs the
//     surface token the entry derives from.
//   - Every frequency is >= 1.
//   - Merging only changes segmentation, never total frequency mass.
type Vocabulary map[string]int

// BuildVocabulary counts occurrences of each distinct token. Each distinct
// token becomes one entry whose initial symbol sequence is the whole token as
// a single symbol. An empty token sequence yields an empty Vocabulary.
func BuildVocabulary(tokens []string) Vocabulary {
	vocab := make(Vocabulary, len(tokens))
	for _, tok := range tokens {
		vocab[tok]++
	}
	return vocab
}

// BuildCharVocabulary is BuildVocabulary with each token split into its
// constituent runes as the initial symbol sequence. With whole-token symbols
// most corpora contain no adjacent pairs at all (every entry is a single
// symbol), so training stops immediately; rune-level initialization is what
// makes the classic merge cascade possible.
func BuildCharVocabulary(tokens []string) Vocabulary {
	vocab := make(Vocabulary, len(tokens))
	for _, tok := range tokens {
		vocab[splitRunes(tok)]++
	}
	return vocab
}

// Symbols splits a vocabulary key into its ordered symbol sequence.
func Symbols(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, SymbolSeparator)
}

// TotalFrequency returns the summed frequency mass of all entries. For a
// vocabulary built from a token sequence this equals the sequence length,
// and it is conserved exactly across merges.
func (v Vocabulary) TotalFrequency() int {
	total := 0
	for _, freq := range v {
		total += freq
	}
	return total
}

// Keys returns the distinct entry keys in lexicographic order. Key order
// carries no meaning; sorting just makes output reproducible.
func (v Vocabulary) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func splitRunes(tok string) string {
	runes := []rune(tok)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, SymbolSeparator)
}
