package bpe

// Pair is an ordered pair of adjacent symbols within a vocabulary entry.
// Order matters: (a, b) and (b, a) are distinct pairs.
type Pair struct {
	First  string
	Second string
}

// Merged returns the single symbol produced by collapsing the pair.
func (p Pair) Merged() string {
	return p.First + p.Second
}

func (p Pair) String() string {
	return p.First + "+" + p.Second
}

// PairStats maps each adjacent symbol pair to its aggregate frequency across
// the whole vocabulary. Each occurrence of a pair inside an entry contributes
// that entry's frequency, not 1.
type PairStats map[Pair]int

// ComputePairStats walks every vocabulary entry and counts its adjacent
// symbol pairs, weighted by entry frequency. Entries with fewer than two
// symbols contribute nothing, so the result is empty exactly when every
// entry is a single symbol — the terminal state of training.
func ComputePairStats(vocab Vocabulary) PairStats {
	stats := make(PairStats)
	for key, freq := range vocab {
		syms := Symbols(key)
		for i := 0; i+1 < len(syms); i++ {
			stats[Pair{syms[i], syms[i+1]}] += freq
		}
	}
	return stats
}

// Best returns the pair with the highest aggregate frequency. Ties are
// broken by the lexicographically smaller First symbol, then the smaller
// Second symbol, so selection is a documented total order rather than
// map-iteration luck. ok is false when the stats are empty.
func (s PairStats) Best() (best Pair, count int, ok bool) {
	for p, c := range s {
		if !ok || c > count || (c == count && (p.First < best.First || (p.First == best.First && p.Second < best.Second))) {
			best = p
			count = c
			ok = true
		}
	}
	return best, count, ok
}
