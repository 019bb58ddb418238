package data

import "io"

// Cardinality sentinels, mirroring the upstream dataset runtime's values.
const (
	CardinalityInfinite int64 = -1
	CardinalityUnknown  int64 = -2
)

// Source is an iterable stream of trajectories with a cardinality query.
// Next returns io.EOF once the stream is exhausted.
type Source interface {
	Next() (*Trajectory, error)
	Cardinality() int64
}

// SliceSource iterates an in-memory slice of trajectories once.
type SliceSource struct {
	trajectories []*Trajectory
	pos          int
}

func NewSliceSource(trajectories []*Trajectory) *SliceSource {
	return &SliceSource{trajectories: trajectories}
}

func (s *SliceSource) Next() (*Trajectory, error) {
	if s.pos >= len(s.trajectories) {
		return nil, io.EOF
	}
	t := s.trajectories[s.pos]
	s.pos++
	return t, nil
}

func (s *SliceSource) Cardinality() int64 {
	return int64(len(s.trajectories))
}

// RepeatSource cycles over a slice of trajectories forever. It reports
// infinite cardinality, so statistics computation must refuse it.
type RepeatSource struct {
	trajectories []*Trajectory
	pos          int
}

func NewRepeatSource(trajectories []*Trajectory) *RepeatSource {
	return &RepeatSource{trajectories: trajectories}
}

func (s *RepeatSource) Next() (*Trajectory, error) {
	if len(s.trajectories) == 0 {
		return nil, io.EOF
	}
	t := s.trajectories[s.pos%len(s.trajectories)]
	s.pos++
	return t.Clone(), nil
}

func (s *RepeatSource) Cardinality() int64 {
	return CardinalityInfinite
}

// ReadAll drains a source into memory.
func ReadAll(src Source) ([]*Trajectory, error) {
	var out []*Trajectory
	for {
		t, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
}
