package stats

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/omeryagmurlu/crossformer/data"
)

// columns accumulates one field's values column-wise across trajectories.
type columns struct {
	name string
	cols [][]float64
}

func (c *columns) add(rows [][]float64) error {
	for _, row := range rows {
		if c.cols == nil {
			c.cols = make([][]float64, len(row))
		}
		if len(row) != len(c.cols) {
			return fmt.Errorf("field %q: ragged row of width %d, expected %d", c.name, len(row), len(c.cols))
		}
		for d, v := range row {
			c.cols[d] = append(c.cols[d], v)
		}
	}
	return nil
}

func (c *columns) reduce() (FieldStatistics, error) {
	if len(c.cols) == 0 || len(c.cols[0]) == 0 {
		return FieldStatistics{}, fmt.Errorf("field %q: no transitions to aggregate", c.name)
	}
	dims := len(c.cols)
	fs := FieldStatistics{
		Mean: make([]float64, dims),
		Std:  make([]float64, dims),
		Max:  make([]float64, dims),
		Min:  make([]float64, dims),
		P99:  make([]float64, dims),
		P01:  make([]float64, dims),
	}
	for d, col := range c.cols {
		fs.Mean[d] = stat.Mean(col, nil)
		fs.Std[d] = stat.PopStdDev(col, nil)
		fs.Max[d] = floats.Max(col)
		fs.Min[d] = floats.Min(col)
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		fs.P99[d] = percentile(sorted, 99)
		fs.P01[d] = percentile(sorted, 1)
	}
	return fs, nil
}

// percentile computes the p-th percentile of pre-sorted data using linear
// interpolation at rank p/100*(n-1).
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(rank-float64(lower))
}

// Compute scans the full dataset once and reduces the action field and every
// listed proprioceptive field to per-timestep statistics. Purely the
// computation; caching lives in Cache.Get.
func Compute(src data.Source, proprioKeys []string) (*DatasetStatistics, error) {
	action := &columns{name: "action"}
	proprios := make(map[string]*columns, len(proprioKeys))
	for _, key := range proprioKeys {
		proprios[key] = &columns{name: key}
	}

	var numTransitions, numTrajectories int64
	for {
		t, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating dataset: %w", err)
		}
		if err := action.add(t.Action); err != nil {
			return nil, err
		}
		for _, key := range proprioKeys {
			mat, ok := t.Observation[key]
			if !ok {
				return nil, fmt.Errorf("trajectory has no observation field %q", key)
			}
			if err := proprios[key].add(mat); err != nil {
				return nil, err
			}
		}
		numTransitions += int64(len(t.Action))
		numTrajectories++
	}

	result := &DatasetStatistics{
		Fields:          make(map[string]FieldStatistics, 1+len(proprioKeys)),
		NumTransitions:  numTransitions,
		NumTrajectories: numTrajectories,
	}
	fs, err := action.reduce()
	if err != nil {
		return nil, err
	}
	result.Fields["action"] = fs
	for _, key := range proprioKeys {
		fs, err := proprios[key].reduce()
		if err != nil {
			return nil, err
		}
		result.Fields[key] = fs
	}
	return result, nil
}
