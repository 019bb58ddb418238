package data

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchKeys(t *testing.T) {
	keys := []string{"image_primary", "image_wrist", "depth_primary", "state"}
	assert.Equal(t, []string{"image_primary", "image_wrist"}, MatchKeys("image_*", keys))
	assert.Equal(t, []string{"state"}, MatchKeys("state", keys))
	assert.Empty(t, MatchKeys("proprio_*", keys))
	assert.Empty(t, MatchKeys("[", keys), "malformed pattern matches nothing")
}

func TestSampleMatchKeys_SingleMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got, err := SampleMatchKeys(rng, map[string]int{"image_primary": 7, "state": 9}, "state")
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestSampleMatchKeys_UniformAcrossMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := map[string]int{"image_primary": 1, "image_wrist": 2, "state": 3}

	seen := map[int]int{}
	for i := 0; i < 200; i++ {
		got, err := SampleMatchKeys(rng, m, "image_*")
		require.NoError(t, err)
		seen[got]++
	}
	// Both matching keys get drawn; the non-matching value never does. The
	// final matching key is reachable (exclusive-bound sampling would skip it).
	assert.Positive(t, seen[1])
	assert.Positive(t, seen[2])
	assert.Zero(t, seen[3])
}

func TestSampleMatchKeys_NoMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := SampleMatchKeys(rng, map[string]int{"state": 1}, "image_*")
	assert.ErrorIs(t, err, ErrNoMatchingKey)
}
