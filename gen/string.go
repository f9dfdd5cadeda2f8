package gen

import (
	"math/rand"
	"strings"
)

// ASCIIAlphabet is the default alphabet used by ASCIIString: printable
// ASCII, space through tilde.
const ASCIIAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ASCIIString generates a string of length SmallN(size) drawn from
// ASCIIAlphabet.
func ASCIIString() Generator[string] {
	return ASCIIStringFrom(ASCIIAlphabet)
}

// ASCIIStringFrom generates a string of length SmallN(size) drawn from
// the given alphabet; an empty alphabet falls back to ASCIIAlphabet.
func ASCIIStringFrom(alphabet string) Generator[string] {
	if alphabet == "" {
		alphabet = ASCIIAlphabet
	}
	return From(func(r *rand.Rand, size int) string {
		g := rng(r)
		n := int(SmallN(g, size))
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[g.Intn(len(alphabet))]
		}
		return string(b)
	})
}

// UnicodeString generates a string whose byte length approaches
// SmallN(size) by concatenating whitespace-separated "words" drawn
// uniformly from a deterministic multilingual corpus (see
// unicode_corpus.go). This biases toward valid UTF-8 containing
// multi-byte runs, combining marks, and codepoints outside the Basic
// Latin block, without risking invalid encodings the way sampling raw
// codepoints would.
func UnicodeString() Generator[string] {
	return From(func(r *rand.Rand, size int) string {
		g := rng(r)
		target := int(SmallN(g, size))
		if target == 0 {
			return ""
		}
		var b strings.Builder
		for b.Len() < target {
			w := unicodeCorpusWords[g.Intn(len(unicodeCorpusWords))]
			b.WriteString(w)
			if b.Len() >= target {
				break
			}
			if g.Intn(5) == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		return b.String()
	})
}
