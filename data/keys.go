package data

import (
	"errors"
	"fmt"
	"math/rand"
	"path"
	"sort"

	"github.com/sirupsen/logrus"
)

// ErrNoMatchingKey reports that a key pattern matched nothing.
var ErrNoMatchingKey = errors.New("no matching key")

// MatchKeys returns the keys matching a glob pattern (path.Match semantics:
// '*', '?', character classes). A malformed pattern matches nothing.
func MatchKeys(pattern string, keys []string) []string {
	var out []string
	for _, key := range keys {
		if ok, err := path.Match(pattern, key); err == nil && ok {
			out = append(out, key)
		}
	}
	return out
}

// SampleMatchKeys samples uniformly from the values of m whose keys match
// the glob pattern. Candidate keys are sorted first so the choice depends
// only on the rng state, not map iteration order.
func SampleMatchKeys[V any](rng *rand.Rand, m map[string]V, pattern string) (V, error) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	matched := MatchKeys(pattern, keys)
	if len(matched) == 0 {
		var zero V
		return zero, fmt.Errorf("%w for pattern %q, keys: %v", ErrNoMatchingKey, pattern, keys)
	}
	if len(matched) == 1 {
		return m[matched[0]], nil
	}
	logrus.Infof("Sampling uniformly across keys: %v", matched)
	return m[matched[rng.Intn(len(matched))]], nil
}
