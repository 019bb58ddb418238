// Package stats computes per-dataset aggregate statistics over trajectories,
// caches them under a content-addressed key, and applies them to normalize
// action and proprio fields.
package stats

import (
	"encoding/json"
	"fmt"
)

// FieldStatistics holds the per-dimension aggregates for one logical field
// ("action" or a proprioceptive key), each vector over the field's last
// dimension, aggregated across every timestep of every trajectory.
type FieldStatistics struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
	Max  []float64 `json:"max"`
	Min  []float64 `json:"min"`
	P99  []float64 `json:"p99"`
	P01  []float64 `json:"p01"`
	// Mask optionally gates normalization per dimension; absent means all
	// dimensions are normalized.
	Mask []bool `json:"mask,omitempty"`
}

// DatasetStatistics is the cached record for one dataset. Immutable once
// computed; the cache key stands in for validity.
type DatasetStatistics struct {
	Fields          map[string]FieldStatistics
	NumTransitions  int64
	NumTrajectories int64
}

// MarshalJSON flattens the record into the cache file shape: field names at
// the top level alongside the two scalar counts.
func (s DatasetStatistics) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Fields)+2)
	for key, fs := range s.Fields {
		if key == "num_transitions" || key == "num_trajectories" {
			return nil, fmt.Errorf("field name %q collides with a reserved statistics key", key)
		}
		out[key] = fs
	}
	out["num_transitions"] = s.NumTransitions
	out["num_trajectories"] = s.NumTrajectories
	return json.Marshal(out)
}

// UnmarshalJSON parses the flat cache file shape.
func (s *DatasetStatistics) UnmarshalJSON(raw []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(raw, &flat); err != nil {
		return err
	}
	s.Fields = make(map[string]FieldStatistics, len(flat))
	for key, msg := range flat {
		switch key {
		case "num_transitions":
			if err := json.Unmarshal(msg, &s.NumTransitions); err != nil {
				return fmt.Errorf("parsing num_transitions: %w", err)
			}
		case "num_trajectories":
			if err := json.Unmarshal(msg, &s.NumTrajectories); err != nil {
				return fmt.Errorf("parsing num_trajectories: %w", err)
			}
		default:
			var fs FieldStatistics
			if err := json.Unmarshal(msg, &fs); err != nil {
				return fmt.Errorf("parsing statistics for %q: %w", key, err)
			}
			s.Fields[key] = fs
		}
	}
	return nil
}
