// Package gripper converts between gripper-action representations: continuous
// to binary, relative to absolute, and open/closed complements. All functions
// are pure scans over a single action column.
package gripper

// Default classification boundaries for continuous gripper signals in [0, 1].
const (
	DefaultOpenBoundary  = 0.95
	DefaultCloseBoundary = 0.05
)

// Binarize converts continuous gripper actions to binary open (1) / closed
// (0) values. Most of the time the gripper is fully open or fully closed; as
// it transitions it passes through intermediate values, which are relabeled
// from the state reached after them via a backward scan.
//
// If the trajectory ends in a run of intermediate values, no crisp state is
// ever established for that run and it inherits the raw final action value.
// Known limitation, no recovery attempted.
func Binarize(actions []float64, openBoundary, closeBoundary float64) []float64 {
	out := make([]float64, len(actions))
	if len(actions) == 0 {
		return out
	}
	carry := actions[len(actions)-1]
	for i := len(actions) - 1; i >= 0; i-- {
		open := actions[i] > openBoundary
		closed := actions[i] < closeBoundary
		if open || closed {
			if open {
				carry = 1
			} else {
				carry = 0
			}
		}
		out[i] = carry
	}
	return out
}

// RelativeToAbsolute converts relative gripper actions (> 0.1 closing,
// < -0.1 opening) to absolute ones (0 closed, 1 open). The starting state is
// inferred from the first thresholded action: if the gripper's first move is
// to close, it must have been open before, and vice versa. With no
// thresholded action anywhere, the whole trajectory is assumed open.
func RelativeToAbsolute(actions []float64) []float64 {
	out := make([]float64, len(actions))
	if len(actions) == 0 {
		return out
	}

	// Intentionally inverted relative to the raw signal: opening maps to +1
	// and closing to -1 so that negating the first event gives the prior
	// absolute state (-1 closed, +1 open).
	thresholded := make([]float64, len(actions))
	for i, a := range actions {
		switch {
		case a < -0.1:
			thresholded[i] = 1
		case a > 0.1:
			thresholded[i] = -1
		}
	}

	first := 0
	for i, v := range thresholded {
		if v != 0 {
			first = i
			break
		}
	}
	start := -thresholded[first]
	if start == 0 {
		start = 1
	}

	carry := start
	for i, v := range thresholded {
		if v != 0 {
			carry = v
		}
		out[i] = carry/2 + 0.5
	}
	return out
}

// RelativeOpenOrClosed returns the initial absolute gripper state implied by
// a relative-action sequence (1 open, 0 closed), via a backward scan for the
// earliest gripper event. When no event exists the carry stays at its zero
// seed, i.e. closed. Asymmetric with RelativeToAbsolute's open default;
// both behaviors are kept as-is.
func RelativeOpenOrClosed(actions []float64) float64 {
	// Both opening and closing map to -1 in the state mask; only "no change"
	// is 0. The scan therefore reports closed for any trajectory containing
	// an event.
	carry := 0.0
	for i := len(actions) - 1; i >= 0; i-- {
		mask := 0.0
		if actions[i] > 1e-3 || actions[i] < -1e-3 {
			mask = -1
		}
		if mask != 0 {
			carry = (mask + 1) / 2
		}
	}
	return carry
}

// Invert flips open/closed conventions elementwise: x -> 1 - x.
func Invert(actions []float64) []float64 {
	out := make([]float64, len(actions))
	for i, a := range actions {
		out[i] = 1 - a
	}
	return out
}
