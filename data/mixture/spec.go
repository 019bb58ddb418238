package mixture

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/omeryagmurlu/crossformer/data"
	"github.com/omeryagmurlu/crossformer/data/stats"
)

// Spec is the top-level mixture configuration: the datasets to load, their
// sampling weights, and an optional thread budget for the parallel loader.
// Loaded from YAML via LoadSpec(path).
type Spec struct {
	Version  string        `yaml:"version"`
	Datasets []DatasetSpec `yaml:"datasets"`
	// Threads is the total budget split across datasets; 0 or absent means
	// every dataset gets the Auto sentinel.
	Threads int `yaml:"threads,omitempty"`
}

// DatasetSpec configures one dataset in the mixture.
type DatasetSpec struct {
	Name             string   `yaml:"name"`
	Path             string   `yaml:"path"`
	Weight           float64  `yaml:"weight"`
	Normalization    string   `yaml:"normalization,omitempty"`
	ProprioKeys      []string `yaml:"proprio_keys,omitempty"`
	SkipNormKeys     []string `yaml:"skip_norm_keys,omitempty"`
	HashDependencies []string `yaml:"hash_dependencies,omitempty"`
}

// rawSpec defers per-dataset decoding so the shared defaults tree can be
// merged under each dataset entry first.
type rawSpec struct {
	Version  string           `yaml:"version"`
	Defaults map[string]any   `yaml:"defaults,omitempty"`
	Datasets []map[string]any `yaml:"datasets"`
	Threads  int              `yaml:"threads,omitempty"`
}

// LoadSpec reads and parses a YAML mixture specification file. The optional
// defaults tree is merged under every dataset entry, with explicit
// per-dataset values winning. Strict parsing: unrecognized keys (typos) are
// rejected.
func LoadSpec(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mixture spec: %w", err)
	}
	var outer rawSpec
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&outer); err != nil {
		return nil, fmt.Errorf("parsing mixture spec: %w", err)
	}

	spec := &Spec{Version: outer.Version, Threads: outer.Threads}
	for i, entry := range outer.Datasets {
		merged := data.TreeMerge(outer.Defaults, entry)
		encoded, err := yaml.Marshal(merged)
		if err != nil {
			return nil, fmt.Errorf("dataset[%d]: %w", i, err)
		}
		var ds DatasetSpec
		dsDecoder := yaml.NewDecoder(bytes.NewReader(encoded))
		dsDecoder.KnownFields(true)
		if err := dsDecoder.Decode(&ds); err != nil {
			return nil, fmt.Errorf("parsing dataset[%d]: %w", i, err)
		}
		spec.Datasets = append(spec.Datasets, ds)
	}
	return spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *Spec) Validate() error {
	if len(s.Datasets) == 0 {
		return fmt.Errorf("at least one dataset required")
	}
	if s.Threads < 0 {
		return fmt.Errorf("threads must be non-negative, got %d", s.Threads)
	}
	seen := make(map[string]bool, len(s.Datasets))
	for i, ds := range s.Datasets {
		prefix := fmt.Sprintf("dataset[%d]", i)
		if ds.Name == "" {
			return fmt.Errorf("%s: name required", prefix)
		}
		if seen[ds.Name] {
			return fmt.Errorf("%s: duplicate dataset name %q", prefix, ds.Name)
		}
		seen[ds.Name] = true
		if ds.Path == "" {
			return fmt.Errorf("%s: path required", prefix)
		}
		if ds.Weight < 0 {
			return fmt.Errorf("%s: weight must be non-negative, got %f", prefix, ds.Weight)
		}
		if ds.Normalization != "" {
			if _, err := stats.ParseNormalizationType(ds.Normalization); err != nil {
				return fmt.Errorf("%s: %w", prefix, err)
			}
		}
	}
	return nil
}

// Names returns the dataset names in spec order.
func (s *Spec) Names() []string {
	names := make([]string, len(s.Datasets))
	for i, ds := range s.Datasets {
		names[i] = ds.Name
	}
	return names
}

// Weights returns the sampling weights in spec order.
func (s *Spec) Weights() []float64 {
	weights := make([]float64, len(s.Datasets))
	for i, ds := range s.Datasets {
		weights[i] = ds.Weight
	}
	return weights
}
