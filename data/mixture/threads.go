// Package mixture describes dataset mixtures: the YAML spec listing datasets
// and sampling weights, the thread allocation handed to the parallel loader,
// and the banner summarizing a mixture before loading.
package mixture

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/klauspost/cpuid/v2"
)

// Auto marks a thread count to be chosen dynamically by the loading pipeline.
const Auto = -1

// AllocateThreads distributes an integer thread budget across datasets
// proportionally to non-negative weights, guaranteeing every nonzero-weight
// dataset at least one thread. With n == Auto every dataset gets the Auto
// sentinel instead. The result sums exactly to n; entries with zero weight
// may receive 0. Pure function; the values are advisory degrees of
// parallelism, no threads are spawned here.
func AllocateThreads(n int, weights []float64) ([]int, error) {
	if n == Auto {
		allocation := make([]int, len(weights))
		for i := range allocation {
			allocation[i] = Auto
		}
		return allocation, nil
	}

	var sum float64
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weights must be non-negative, got %v", weights)
		}
		sum += w
	}
	if n < len(weights) {
		return nil, fmt.Errorf("thread budget %d is smaller than the number of datasets %d", n, len(weights))
	}
	if sum <= 0 {
		return nil, fmt.Errorf("weights must have a positive sum, got %v", weights)
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / sum
	}

	allocation := make([]int, len(weights))
	remaining := n
	// Entries whose proportional share would round below one thread get
	// exactly one, leave the pool, and the rest is re-split among survivors.
	// Repeats until every surviving share is at least one.
	for {
		forced := 0
		for i, w := range normalized {
			if w > 0 && w*float64(remaining) < 1 {
				allocation[i] = 1
				normalized[i] = 0
				forced++
			}
		}
		if forced == 0 {
			break
		}
		remaining -= forced
		var rest float64
		for _, w := range normalized {
			rest += w
		}
		if rest <= 0 {
			break
		}
		for i := range normalized {
			normalized[i] /= rest
		}
	}

	// Floor the surviving shares, then hand the leftover whole threads to the
	// largest fractional remainders, ties broken by lower index.
	fractional := make([]float64, len(normalized))
	floored := 0
	for i, w := range normalized {
		share := w * float64(remaining)
		whole := int(share)
		allocation[i] += whole
		fractional[i] = share - float64(whole)
		floored += whole
	}
	leftover := remaining - floored
	order := make([]int, len(fractional))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fractional[order[a]] > fractional[order[b]]
	})
	for _, i := range order[:leftover] {
		allocation[i]++
	}
	return allocation, nil
}

// ResolveAuto replaces Auto entries with the machine's logical core count,
// for display or for consumers that cannot autotune themselves.
func ResolveAuto(allocation []int) []int {
	cores := cpuid.CPU.LogicalCores
	if cores <= 0 {
		cores = runtime.NumCPU()
	}
	out := make([]int, len(allocation))
	for i, v := range allocation {
		if v == Auto {
			out[i] = cores
		} else {
			out[i] = v
		}
	}
	return out
}
