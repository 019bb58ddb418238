package gripper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarize_AmbiguousCopiesFollowingState(t *testing.T) {
	// closed, ambiguous, ambiguous, open: the ambiguous middle inherits the
	// trailing open state via the backward scan.
	got := Binarize([]float64{0.0, 0.5, 0.5, 1.0}, DefaultOpenBoundary, DefaultCloseBoundary)
	assert.Equal(t, []float64{0, 1, 1, 1}, got)
}

func TestBinarize_TrailingAmbiguousRunInheritsRawValue(t *testing.T) {
	// No crisp state is ever established after the trailing run, so it keeps
	// the raw final action value.
	got := Binarize([]float64{1.0, 0.5, 0.5}, DefaultOpenBoundary, DefaultCloseBoundary)
	assert.Equal(t, []float64{1, 0.5, 0.5}, got)
}

func TestBinarize_CrispSequencesPassThrough(t *testing.T) {
	got := Binarize([]float64{1.0, 0.0, 1.0}, DefaultOpenBoundary, DefaultCloseBoundary)
	assert.Equal(t, []float64{1, 0, 1}, got)
}

func TestBinarize_Empty(t *testing.T) {
	assert.Empty(t, Binarize(nil, DefaultOpenBoundary, DefaultCloseBoundary))
}

func TestRelativeToAbsolute_StartInferredFromFirstEvent(t *testing.T) {
	// First event is a close at index 2, so the gripper must have started
	// open; it reopens at index 4.
	got := RelativeToAbsolute([]float64{0, 0, 1, 0, -1, 0})
	assert.Equal(t, []float64{1, 1, 0, 0, 1, 1}, got)
}

func TestRelativeToAbsolute_FirstEventOpeningImpliesClosedStart(t *testing.T) {
	got := RelativeToAbsolute([]float64{-1, 0, 1})
	assert.Equal(t, []float64{1, 1, 0}, got)
}

func TestRelativeToAbsolute_NoEventDefaultsOpen(t *testing.T) {
	got := RelativeToAbsolute([]float64{0, 0, 0})
	assert.Equal(t, []float64{1, 1, 1}, got)
}

func TestRelativeOpenOrClosed_NoEventDefaultsClosed(t *testing.T) {
	// Asymmetric with RelativeToAbsolute's open default. Kept as-is.
	assert.Equal(t, 0.0, RelativeOpenOrClosed([]float64{0, 0, 0}))
}

func TestRelativeOpenOrClosed_EventReportsClosed(t *testing.T) {
	// Opening and closing share the same state-mask value, so any event
	// resolves to closed.
	assert.Equal(t, 0.0, RelativeOpenOrClosed([]float64{0, 1, 0}))
	assert.Equal(t, 0.0, RelativeOpenOrClosed([]float64{-1, 0}))
}

func TestInvert(t *testing.T) {
	got := Invert([]float64{0, 0.3, 1})
	require.Len(t, got, 3)
	assert.InDelta(t, 1.0, got[0], 1e-12)
	assert.InDelta(t, 0.7, got[1], 1e-12)
	assert.InDelta(t, 0.0, got[2], 1e-12)
}
