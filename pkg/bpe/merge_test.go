package bpe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergePair(t *testing.T) {
	t.Run("collapses every occurrence", func(t *testing.T) {
		vocab := Vocabulary{
			"l o w":     5,
			"l o w e r": 2,
		}
		out := MergePair(Pair{"l", "o"}, vocab)
		require.Equal(t, Vocabulary{
			"lo w":     5,
			"lo w e r": 2,
		}, out)
	})

	t.Run("absent pair returns equivalent vocabulary", func(t *testing.T) {
		vocab := Vocabulary{"l o w": 5, "the": 3}
		out := MergePair(Pair{"x", "y"}, vocab)
		require.Equal(t, vocab, out)
	})

	t.Run("conserves frequency mass", func(t *testing.T) {
		vocab := Vocabulary{"e s t": 9, "w e s": 4, "e s": 2}
		out := MergePair(Pair{"e", "s"}, vocab)
		require.Equal(t, vocab.TotalFrequency(), out.TotalFrequency())
	})

	t.Run("colliding entries sum frequencies", func(t *testing.T) {
		// "ab c" and "a bc" both become "abc" once their pair collapses,
		// so the naive overwrite would silently lose frequency mass.
		vocab := Vocabulary{
			"ab c": 4,
			"abc":  3,
		}
		out := MergePair(Pair{"ab", "c"}, vocab)
		require.Equal(t, Vocabulary{"abc": 7}, out)
		require.Equal(t, vocab.TotalFrequency(), out.TotalFrequency())
	})

	t.Run("matches only at symbol boundaries", func(t *testing.T) {
		// The pair (x, yz) occurs in the first entry only; "xy z" must not
		// be touched even though its characters contain "xyz".
		vocab := Vocabulary{
			"x yz": 2,
			"xy z": 3,
		}
		out := MergePair(Pair{"x", "yz"}, vocab)
		require.Equal(t, Vocabulary{
			"xyz":  2,
			"xy z": 3,
		}, out)
	})

	t.Run("overlapping candidates resolve leftmost first", func(t *testing.T) {
		// In "a a a" the pair (a, a) matches at index 0 and consumes both
		// symbols, leaving the trailing "a" unmerged.
		out := MergePair(Pair{"a", "a"}, Vocabulary{"a a a": 1})
		require.Equal(t, Vocabulary{"aa a": 1}, out)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		vocab := Vocabulary{"l o": 1}
		MergePair(Pair{"l", "o"}, vocab)
		require.Equal(t, Vocabulary{"l o": 1}, vocab)
	})
}
