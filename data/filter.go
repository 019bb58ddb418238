package data

import "regexp"

var successPath = regexp.MustCompile(`^.*/success/.*$`)

// FilterSuccess reports whether a trajectory's first file-path metadata entry
// contains a "success" path segment. Trajectories without file-path metadata
// are rejected.
func FilterSuccess(t *Trajectory) bool {
	episode, ok := t.Metadata["episode_metadata"].(map[string]any)
	if !ok {
		return false
	}
	paths, ok := episode["file_path"].([]string)
	if !ok || len(paths) == 0 {
		return false
	}
	return successPath.MatchString(paths[0])
}
