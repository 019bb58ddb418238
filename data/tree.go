package data

// TreeMap applies fn to every leaf of a nested map, rebuilding the nesting.
// Sub-maps are recursed into; everything else is a leaf.
func TreeMap(fn func(leaf any) any, tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for key, v := range tree {
		if sub, ok := v.(map[string]any); ok {
			out[key] = TreeMap(fn, sub)
		} else {
			out[key] = fn(v)
		}
	}
	return out
}

// TreeMerge merges nested maps, with later trees overriding earlier ones.
// Sub-maps are merged recursively; leaves are replaced wholesale.
func TreeMerge(trees ...map[string]any) map[string]any {
	merged := map[string]any{}
	for _, tree := range trees {
		for key, v := range tree {
			if sub, ok := v.(map[string]any); ok {
				prev, _ := merged[key].(map[string]any)
				merged[key] = TreeMerge(prev, sub)
			} else {
				merged[key] = v
			}
		}
	}
	return merged
}
