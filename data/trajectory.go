// Package data holds the trajectory model and the plumbing shared by the
// preprocessing pipeline: dataset sources, tree helpers over nested metadata,
// key sampling, padding, and success filtering.
package data

import (
	"fmt"
)

// Trajectory is one episode of robot experience, time-major: every field
// shares the same leading (time) dimension length.
type Trajectory struct {
	// Action is timesteps x action dims. The last dimension is conventionally
	// the gripper command.
	Action [][]float64 `json:"action"`
	// Observation maps field names ("state" plus proprioceptive keys) to
	// timesteps x dims matrices.
	Observation map[string][][]float64 `json:"observation,omitempty"`
	// Metadata is a nested tree of episode metadata. Leaves are []string with
	// one entry per timestep, e.g. episode_metadata -> file_path.
	Metadata map[string]any `json:"traj_metadata,omitempty"`
}

// Steps returns the number of timesteps, taken from the action field.
func (t *Trajectory) Steps() int {
	return len(t.Action)
}

// Validate checks that every field shares the action's leading dimension.
func (t *Trajectory) Validate() error {
	steps := t.Steps()
	for key, mat := range t.Observation {
		if len(mat) != steps {
			return fmt.Errorf("observation %q has %d timesteps, action has %d", key, len(mat), steps)
		}
	}
	var walk func(path string, tree map[string]any) error
	walk = func(path string, tree map[string]any) error {
		for key, v := range tree {
			p := path + "/" + key
			switch leaf := v.(type) {
			case map[string]any:
				if err := walk(p, leaf); err != nil {
					return err
				}
			case []string:
				if len(leaf) != steps {
					return fmt.Errorf("metadata %q has %d timesteps, action has %d", p, len(leaf), steps)
				}
			default:
				return fmt.Errorf("metadata %q has unsupported leaf type %T", p, v)
			}
		}
		return nil
	}
	return walk("traj_metadata", t.Metadata)
}

// Clone deep-copies the trajectory.
func (t *Trajectory) Clone() *Trajectory {
	out := &Trajectory{Action: cloneMatrix(t.Action)}
	if t.Observation != nil {
		out.Observation = make(map[string][][]float64, len(t.Observation))
		for key, mat := range t.Observation {
			out.Observation[key] = cloneMatrix(mat)
		}
	}
	if t.Metadata != nil {
		out.Metadata = TreeMap(func(leaf any) any {
			if s, ok := leaf.([]string); ok {
				return append([]string(nil), s...)
			}
			return leaf
		}, t.Metadata)
	}
	return out
}

// Padding returns a same-shape trajectory with numeric fields zeroed and
// string leaves emptied. Metadata leaves of any other type are an error.
func (t *Trajectory) Padding() (*Trajectory, error) {
	out := &Trajectory{Action: zeroMatrix(t.Action)}
	if t.Observation != nil {
		out.Observation = make(map[string][][]float64, len(t.Observation))
		for key, mat := range t.Observation {
			out.Observation[key] = zeroMatrix(mat)
		}
	}
	if t.Metadata != nil {
		var padErr error
		out.Metadata = TreeMap(func(leaf any) any {
			s, ok := leaf.([]string)
			if !ok {
				if padErr == nil {
					padErr = fmt.Errorf("cannot generate padding for leaf of type %T", leaf)
				}
				return leaf
			}
			return make([]string, len(s))
		}, t.Metadata)
		if padErr != nil {
			return nil, padErr
		}
	}
	return out, nil
}

func cloneMatrix(mat [][]float64) [][]float64 {
	if mat == nil {
		return nil
	}
	out := make([][]float64, len(mat))
	for i, row := range mat {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func zeroMatrix(mat [][]float64) [][]float64 {
	if mat == nil {
		return nil
	}
	out := make([][]float64, len(mat))
	for i, row := range mat {
		out[i] = make([]float64, len(row))
	}
	return out
}
