package shrink

import "github.com/lucaskalb/qcgo/lazy"

// ASCIIString derives its shrink from the byte-sequence shrink rule:
// v is viewed as []byte, shrunk via Slice, and rebuilt into a string.
// Each byte is treated as atomic (Empty), matching rune's atomic
// treatment in the generate contract — ASCIIString only ever generates
// single-byte characters, so shrinking a byte toward 0 would produce
// unprintable/control characters with no useful "simpler" meaning;
// shortening and removing characters already does the productive work.
func ASCIIString(v string) *lazy.Stream[string] {
	bs := []byte(v)
	byteSeq := Slice(bs, Empty[byte])
	out := lazy.New[string]()
	lazy.PushMap(out, lazy.Pull[[]byte](byteSeq.Next), func(cand []byte) string {
		return string(cand)
	})
	return out
}
