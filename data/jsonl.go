package data

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single JSONL record. Long trajectories with image
// paths in metadata stay well under this.
const maxLineBytes = 64 << 20

// JSONLSource streams trajectories from a line-delimited JSON file, one
// trajectory object per line. Cardinality is unknown without a full read.
type JSONLSource struct {
	file    *os.File
	scanner *bufio.Scanner
	line    int
}

// OpenJSONL opens a JSONL trajectory file for streaming.
func OpenJSONL(path string) (*JSONLSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trajectory file: %w", err)
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1<<20), maxLineBytes)
	return &JSONLSource{file: file, scanner: scanner}, nil
}

func (s *JSONLSource) Next() (*Trajectory, error) {
	for s.scanner.Scan() {
		s.line++
		raw := s.scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var t Trajectory
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.file.Name(), s.line, err)
		}
		t.Metadata = coerceMetadata(t.Metadata)
		return &t, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (s *JSONLSource) Cardinality() int64 {
	return CardinalityUnknown
}

func (s *JSONLSource) Close() error {
	return s.file.Close()
}

// coerceMetadata rewrites JSON-decoded []any leaves into the []string leaves
// the trajectory model uses.
func coerceMetadata(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}
	return TreeMap(func(leaf any) any {
		items, ok := leaf.([]any)
		if !ok {
			return leaf
		}
		strs := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return leaf
			}
			strs = append(strs, s)
		}
		return strs
	}, tree)
}

// WriteJSONL writes trajectories to path as line-delimited JSON.
func WriteJSONL(path string, trajectories []*Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trajectory file: %w", err)
	}
	writer := bufio.NewWriter(file)
	enc := json.NewEncoder(writer)
	for _, t := range trajectories {
		if err := enc.Encode(t); err != nil {
			file.Close()
			return fmt.Errorf("encoding trajectory: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
