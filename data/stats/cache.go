package stats

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/omeryagmurlu/crossformer/data"
)

// ErrInfiniteDataset reports an attempt to compute statistics over an
// unbounded stream. Precondition violation, never retried.
var ErrInfiniteDataset = errors.New("cannot compute dataset statistics for infinite datasets")

// Cache memoizes dataset statistics on disk, keyed by a fingerprint of the
// inputs that affect the result. The key is derived from caller-supplied hash
// dependencies only, never from the data itself: a stale or mismatched hash
// silently returns the cached record. The hash IS the validity check.
type Cache struct {
	// SaveDir is the preferred cache location, typically next to the dataset.
	// May be empty.
	SaveDir string
	// LocalDir is the per-user fallback location, e.g. ~/.cache/crossformer.
	// Resolved by the caller and injected; never looked up implicitly.
	LocalDir string
}

// HashKey derives the cache key: the hex SHA-256 of the concatenated hash
// dependencies.
func HashKey(hashDependencies []string) string {
	sum := sha256.Sum256([]byte(strings.Join(hashDependencies, "")))
	return hex.EncodeToString(sum[:])
}

func cacheFileName(key string) string {
	return fmt.Sprintf("dataset_statistics_%s.json", key)
}

// Load parses a statistics cache file.
func Load(path string) (*DatasetStatistics, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset statistics: %w", err)
	}
	var s DatasetStatistics
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing dataset statistics %s: %w", path, err)
	}
	return &s, nil
}

// Get returns the statistics for a dataset, loading them from the cache when
// a file for the same hash dependencies exists and computing them otherwise.
// A cache hit never touches the dataset. The full-dataset scan on a miss is
// sequential and blocks until done, a one-off cost amortized by the cache.
func (c Cache) Get(src data.Source, proprioKeys, hashDependencies []string, forceRecompute bool) (*DatasetStatistics, error) {
	filename := cacheFileName(HashKey(hashDependencies))
	localPath := filepath.Join(c.LocalDir, filename)
	path := localPath
	if c.SaveDir != "" {
		path = filepath.Join(c.SaveDir, filename)
	}

	if !forceRecompute {
		for _, candidate := range []string{path, localPath} {
			if _, err := os.Stat(candidate); err == nil {
				logrus.Infof("Loading existing dataset statistics from %s.", candidate)
				return Load(candidate)
			}
		}
	}

	if src.Cardinality() == data.CardinalityInfinite {
		return nil, ErrInfiniteDataset
	}

	logrus.Info("Computing dataset statistics. This may take a while, but should only need to happen once per dataset.")
	computed, err := Compute(src, proprioKeys)
	if err != nil {
		return nil, err
	}
	if err := c.persist(computed, path, localPath); err != nil {
		return nil, err
	}
	return computed, nil
}

// persist writes the cache entry to the primary path. Only a permission
// failure there triggers the per-user fallback; any other write error, and
// any fallback error, propagates. No locking: concurrent writers racing on
// one key both write identical content.
func (c Cache) persist(s *DatasetStatistics, path, localPath string) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding dataset statistics: %w", err)
	}
	if path == localPath {
		if err := os.MkdirAll(c.LocalDir, 0o755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
		return os.WriteFile(localPath, payload, 0o644)
	}
	err = os.WriteFile(path, payload, 0o644)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("writing dataset statistics: %w", err)
	}
	logrus.Warnf("Could not write dataset statistics to %s. Writing to %s instead.", path, localPath)
	if err := os.MkdirAll(c.LocalDir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	return os.WriteFile(localPath, payload, 0o644)
}
