package stats

import (
	"fmt"

	"github.com/omeryagmurlu/crossformer/data"
)

// NormalizationType selects which statistics drive normalization and which
// formula applies.
type NormalizationType string

const (
	// NormalizationNormal rescales to mean 0, std 1.
	NormalizationNormal NormalizationType = "normal"
	// NormalizationBounds rescales to [-1, 1] using the 1st/99th percentiles.
	NormalizationBounds NormalizationType = "bounds"
)

// ParseNormalizationType rejects unknown scheme names at the boundary.
func ParseNormalizationType(s string) (NormalizationType, error) {
	switch NormalizationType(s) {
	case NormalizationNormal, NormalizationBounds:
		return NormalizationType(s), nil
	}
	return "", fmt.Errorf("unknown normalization type %q; valid: normal, bounds", s)
}

const normEpsilon = 1e-8

// Normalize rescales a trajectory's action field and the listed proprio
// fields in place using previously computed statistics. Fields named in
// skipNormKeys pass through untouched. A per-dimension mask in a field's
// statistics gates the transform; absent means all dimensions.
func Normalize(t *data.Trajectory, s *DatasetStatistics, ntype NormalizationType, proprioKeys, skipNormKeys []string) error {
	return transform(t, s, ntype, proprioKeys, skipNormKeys, false)
}

// Denormalize applies the exact inverse of Normalize, recovering original
// values within floating tolerance. For the bounds scheme only values that
// were inside [p01, p99] survive the round trip; the clamp is lossy outside.
func Denormalize(t *data.Trajectory, s *DatasetStatistics, ntype NormalizationType, proprioKeys, skipNormKeys []string) error {
	return transform(t, s, ntype, proprioKeys, skipNormKeys, true)
}

func transform(t *data.Trajectory, s *DatasetStatistics, ntype NormalizationType, proprioKeys, skipNormKeys []string, inverse bool) error {
	if ntype != NormalizationNormal && ntype != NormalizationBounds {
		return fmt.Errorf("unknown normalization type %q", ntype)
	}

	skip := make(map[string]bool, len(skipNormKeys))
	for _, key := range skipNormKeys {
		skip[key] = true
	}

	apply := func(key string, mat [][]float64) error {
		if skip[key] {
			return nil
		}
		fs, ok := s.Fields[key]
		if !ok {
			return fmt.Errorf("no statistics for field %q", key)
		}
		return applyField(key, mat, fs, ntype, inverse)
	}

	if err := apply("action", t.Action); err != nil {
		return err
	}
	for _, key := range proprioKeys {
		mat, ok := t.Observation[key]
		if !ok {
			return fmt.Errorf("trajectory has no observation field %q", key)
		}
		if err := apply(key, mat); err != nil {
			return err
		}
	}
	return nil
}

func applyField(key string, mat [][]float64, fs FieldStatistics, ntype NormalizationType, inverse bool) error {
	ref := fs.Mean
	if ntype == NormalizationBounds {
		ref = fs.P01
	}
	mask := fs.Mask
	if mask == nil {
		mask = make([]bool, len(ref))
		for d := range mask {
			mask[d] = true
		}
	}
	if len(mask) != len(ref) {
		return fmt.Errorf("field %q: mask has %d dims, statistics have %d", key, len(mask), len(ref))
	}
	for i, row := range mat {
		if len(row) != len(ref) {
			return fmt.Errorf("field %q: row %d has %d dims, statistics have %d", key, i, len(row), len(ref))
		}
		for d, x := range row {
			if !mask[d] {
				continue
			}
			switch ntype {
			case NormalizationNormal:
				if inverse {
					row[d] = x*(fs.Std[d]+normEpsilon) + fs.Mean[d]
				} else {
					row[d] = (x - fs.Mean[d]) / (fs.Std[d] + normEpsilon)
				}
			case NormalizationBounds:
				span := fs.P99[d] - fs.P01[d] + normEpsilon
				if inverse {
					row[d] = (x+1)/2*span + fs.P01[d]
				} else {
					v := 2*(x-fs.P01[d])/span - 1
					if v < -1 {
						v = -1
					} else if v > 1 {
						v = 1
					}
					row[d] = v
				}
			}
		}
	}
	return nil
}
