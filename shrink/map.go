package shrink

import (
	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/lazy"
)

// Pair shrinks a key/value pair coordinate-wise: key shrinks with the
// value held fixed, then value shrinks with the key held fixed.
func Pair[K, V any](p gen.Pair[K, V], sk Func[K], sv Func[V]) *lazy.Stream[gen.Pair[K, V]] {
	s := lazy.New[gen.Pair[K, V]]()
	lazy.PushMap(s, lazy.Pull[K](sk(p.Key).Next), func(k K) gen.Pair[K, V] {
		return gen.Pair[K, V]{Key: k, Value: p.Value}
	})
	lazy.PushMap(s, lazy.Pull[V](sv(p.Value).Next), func(v V) gen.Pair[K, V] {
		return gen.Pair[K, V]{Key: p.Key, Value: v}
	})
	return s
}

// Map resolves the map-shrinking question via a derived pair-sequence
// rule: a map shrinks exactly as its []Pair[K,V] view shrinks (Slice's
// four-stage rule, with Pair's coordinate-wise rule for element
// substitution), rebuilt into a map afterward. The empty map yields
// nothing.
func Map[K comparable, V any](m map[K]V, sk Func[K], sv Func[V]) *lazy.Stream[map[K]V] {
	if len(m) == 0 {
		return lazy.New[map[K]V]()
	}
	pairs := make([]gen.Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, gen.Pair[K, V]{Key: k, Value: v})
	}

	pairShrink := func(p gen.Pair[K, V]) *lazy.Stream[gen.Pair[K, V]] { return Pair(p, sk, sv) }
	seq := Slice(pairs, pairShrink)

	out := lazy.New[map[K]V]()
	lazy.PushMap(out, lazy.Pull[[]gen.Pair[K, V]](seq.Next), func(ps []gen.Pair[K, V]) map[K]V {
		m2 := make(map[K]V, len(ps))
		for _, p := range ps {
			m2[p.Key] = p.Value
		}
		return m2
	})
	return out
}
