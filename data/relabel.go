package data

import "fmt"

// movementDims is the number of leading action dimensions recomputed from
// proprio state (xyz position, xyz rotation).
const movementDims = 6

// RelabelActionsFromProprio rewrites the first 6 action dimensions as the
// finite difference of observation.state between consecutive timesteps and
// keeps the original last action dimension (the gripper command). The final
// timestep is dropped from every field, since it has no next state to diff
// against. A trajectory with fewer than 2 timesteps yields a valid empty
// trajectory, not an error.
func RelabelActionsFromProprio(t *Trajectory) (*Trajectory, error) {
	state, ok := t.Observation["state"]
	if !ok {
		return nil, fmt.Errorf("relabeling actions: trajectory has no observation.state")
	}
	steps := t.Steps()
	for i := 0; i < steps; i++ {
		if len(state[i]) < movementDims {
			return nil, fmt.Errorf("relabeling actions: state has %d dims, need at least %d", len(state[i]), movementDims)
		}
		if len(t.Action[i]) == 0 {
			return nil, fmt.Errorf("relabeling actions: empty action row at timestep %d", i)
		}
	}

	truncated := steps - 1
	if truncated < 0 {
		truncated = 0
	}

	action := make([][]float64, truncated)
	for i := 0; i < truncated; i++ {
		row := make([]float64, movementDims+1)
		for d := 0; d < movementDims; d++ {
			row[d] = state[i+1][d] - state[i][d]
		}
		row[movementDims] = t.Action[i][len(t.Action[i])-1]
		action[i] = row
	}

	out := &Trajectory{Action: action}
	if t.Observation != nil {
		out.Observation = make(map[string][][]float64, len(t.Observation))
		for key, mat := range t.Observation {
			out.Observation[key] = cloneMatrix(mat[:truncated])
		}
	}
	if t.Metadata != nil {
		out.Metadata = TreeMap(func(leaf any) any {
			if s, ok := leaf.([]string); ok && len(s) >= truncated {
				return append([]string(nil), s[:truncated]...)
			}
			return leaf
		}, t.Metadata)
	}
	return out, nil
}
