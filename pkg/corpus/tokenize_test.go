package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases alphabetic runs",
			text: "The CAT Sat",
			want: []string{"the", "cat", "sat"},
		},
		{
			name: "contractions and possessives stay joined",
			text: "Don't touch the cat's mat",
			want: []string{"don't", "touch", "the", "cat's", "mat"},
		},
		{
			name: "hyphenated forms stay joined",
			text: "a one-shot state-of-the-art run",
			want: []string{"a", "one-shot", "state-of-the-art", "run"},
		},
		{
			name: "punctuation becomes single-character tokens",
			text: "well, yes... no!",
			want: []string{"well", ",", "yes", ".", ".", ".", "no", "!"},
		},
		{
			name: "numeric runs are single tokens",
			text: "room 404 on floor 12",
			want: []string{"room", "404", "on", "floor", "12"},
		},
		{
			name: "whitespace never survives",
			text: "  a\tb\nc  ",
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "unicode letters",
			text: "Über café",
			want: []string{"über", "café"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Tokenize(tc.text))
		})
	}
}
