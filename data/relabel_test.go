package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relabelTrajectory() *Trajectory {
	return &Trajectory{
		Action: [][]float64{
			{9, 9, 9, 9, 9, 9, 0.0},
			{9, 9, 9, 9, 9, 9, 0.5},
			{9, 9, 9, 9, 9, 9, 1.0},
		},
		Observation: map[string][][]float64{
			"state": {
				{0, 0, 0, 0, 0, 0, 7},
				{1, 2, 3, 4, 5, 6, 7},
				{2, 4, 6, 8, 10, 12, 7},
			},
		},
		Metadata: map[string]any{
			"episode_metadata": map[string]any{
				"file_path": []string{"a", "b", "c"},
			},
		},
	}
}

func TestRelabelActionsFromProprio(t *testing.T) {
	got, err := RelabelActionsFromProprio(relabelTrajectory())
	require.NoError(t, err)

	// One timestep dropped everywhere.
	require.Equal(t, 2, got.Steps())
	require.Len(t, got.Observation["state"], 2)
	assert.Equal(t, []string{"a", "b"}, got.Metadata["episode_metadata"].(map[string]any)["file_path"])

	// First 6 dims are state[t+1] - state[t]; the extra state column is ignored.
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 0.0}, got.Action[0])
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 0.5}, got.Action[1])
}

func TestRelabelActionsFromProprio_GripperFromPreTruncationIndices(t *testing.T) {
	got, err := RelabelActionsFromProprio(relabelTrajectory())
	require.NoError(t, err)

	// The last action dim comes from the original actions at indices [0, 1],
	// not shifted to [1, 2].
	assert.Equal(t, 0.0, got.Action[0][6])
	assert.Equal(t, 0.5, got.Action[1][6])
}

func TestRelabelActionsFromProprio_ShortTrajectoryYieldsEmpty(t *testing.T) {
	traj := relabelTrajectory()
	traj.Action = traj.Action[:1]
	traj.Observation["state"] = traj.Observation["state"][:1]
	traj.Metadata["episode_metadata"].(map[string]any)["file_path"] = []string{"a"}

	got, err := RelabelActionsFromProprio(traj)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Steps())
	assert.Empty(t, got.Observation["state"])
}

func TestRelabelActionsFromProprio_Preconditions(t *testing.T) {
	traj := relabelTrajectory()
	delete(traj.Observation, "state")
	_, err := RelabelActionsFromProprio(traj)
	assert.ErrorContains(t, err, "no observation.state")

	traj = relabelTrajectory()
	traj.Observation["state"] = [][]float64{{1, 2}, {3, 4}, {5, 6}}
	_, err = RelabelActionsFromProprio(traj)
	assert.ErrorContains(t, err, "need at least 6")

	traj = relabelTrajectory()
	traj.Action[1] = []float64{}
	_, err = RelabelActionsFromProprio(traj)
	assert.ErrorContains(t, err, "empty action row")
}

func TestRelabelActionsFromProprio_InputUntouched(t *testing.T) {
	traj := relabelTrajectory()
	want := traj.Clone()
	_, err := RelabelActionsFromProprio(traj)
	require.NoError(t, err)
	assert.Equal(t, want, traj)
}
