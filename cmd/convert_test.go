package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeryagmurlu/crossformer/data"
)

func runCLI(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func writeDataset(t *testing.T, trajectories []*data.Trajectory) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.jsonl")
	require.NoError(t, data.WriteJSONL(path, trajectories))
	return path
}

func readDataset(t *testing.T, path string) []*data.Trajectory {
	t.Helper()
	src, err := data.OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()
	trajectories, err := data.ReadAll(src)
	require.NoError(t, err)
	return trajectories
}

func TestConvertGripper_InvertRewritesLastActionDim(t *testing.T) {
	in := writeDataset(t, []*data.Trajectory{
		{Action: [][]float64{{9, 0}, {9, 1}}},
	})
	out := filepath.Join(t.TempDir(), "out.jsonl")

	runCLI(t, "convert", "gripper", "--data", in, "--out", out, "--mode", "invert")

	got := readDataset(t, out)
	require.Len(t, got, 1)
	assert.Equal(t, [][]float64{{9, 1}, {9, 0}}, got[0].Action)
}

func TestConvertGripper_BinarizeUsesBoundaries(t *testing.T) {
	in := writeDataset(t, []*data.Trajectory{
		{Action: [][]float64{{0, 0.1}, {0, 0.5}, {0, 0.9}}},
	})
	out := filepath.Join(t.TempDir(), "out.jsonl")

	runCLI(t, "convert", "gripper", "--data", in, "--out", out, "--mode", "binarize",
		"--open-boundary", "0.8", "--close-boundary", "0.2")

	got := readDataset(t, out)
	require.Len(t, got, 1)
	assert.Equal(t, [][]float64{{0, 0}, {0, 1}, {0, 1}}, got[0].Action)
}

func TestConvertRelabel_DropsFinalTimestep(t *testing.T) {
	in := writeDataset(t, []*data.Trajectory{
		{
			Action: [][]float64{{9, 9, 9, 9, 9, 9, 0.5}, {9, 9, 9, 9, 9, 9, 1}},
			Observation: map[string][][]float64{
				"state": {{0, 0, 0, 0, 0, 0}, {1, 1, 1, 1, 1, 1}},
			},
		},
	})
	out := filepath.Join(t.TempDir(), "out.jsonl")

	runCLI(t, "convert", "relabel", "--data", in, "--out", out)

	got := readDataset(t, out)
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].Steps())
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 0.5}, got[0].Action[0])
}
