// Package corpus loads raw text and splits it into the surface tokens the
// BPE trainer consumes: lowercased words (with contractions, possessives,
// and hyphenated forms kept whole), numeric runs, and single-character
// punctuation.
package corpus

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// tokenPattern matches one surface token per alternative, first match wins:
//   - a letter run, optionally continued by apostrophe or hyphen joined
//     suffixes ("don't", "cat's", "one-shot")
//   - a digit run
//   - any single remaining non-space character (punctuation)
const tokenPattern = `\p{L}+(?:['’-]\p{L}+)*|\p{N}+|[^\s\p{L}\p{N}]`

var tokenRe = regexp2.MustCompile(tokenPattern, regexp2.None)

// Tokenize splits raw text into surface tokens. Alphabetic tokens are
// lowercased; digits and punctuation pass through ToLower unchanged, so the
// whole match is lowercased unconditionally. Whitespace never appears in a
// token, which is what lets the trainer use a space as its symbol separator.
func Tokenize(text string) []string {
	var tokens []string
	m, err := tokenRe.FindStringMatch(text)
	for err == nil && m != nil {
		tokens = append(tokens, strings.ToLower(m.String()))
		m, err = tokenRe.FindNextMatch(m)
	}
	return tokens
}
