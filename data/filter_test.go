package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pathTrajectory(paths ...string) *Trajectory {
	return &Trajectory{
		Action: make([][]float64, len(paths)),
		Metadata: map[string]any{
			"episode_metadata": map[string]any{"file_path": paths},
		},
	}
}

func TestFilterSuccess(t *testing.T) {
	assert.True(t, FilterSuccess(pathTrajectory("/droid/success/ep1", "/droid/success/ep1")))
	assert.False(t, FilterSuccess(pathTrajectory("/droid/failure/ep1")))
	assert.False(t, FilterSuccess(pathTrajectory("success")), "bare segment without directory separators")

	// Only the first entry decides.
	assert.True(t, FilterSuccess(pathTrajectory("/droid/success/ep1", "/droid/failure/ep1")))
	assert.False(t, FilterSuccess(pathTrajectory("/droid/failure/ep1", "/droid/success/ep1")))
}

func TestFilterSuccess_MissingMetadata(t *testing.T) {
	assert.False(t, FilterSuccess(&Trajectory{}))
	assert.False(t, FilterSuccess(&Trajectory{Metadata: map[string]any{"episode_metadata": map[string]any{}}}))
	assert.False(t, FilterSuccess(pathTrajectory()))
}
