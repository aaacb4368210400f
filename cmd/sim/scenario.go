package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/milk9111/roomdrive/input"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml
var scenariosFS embed.FS

// Step holds a set of keys for a number of ticks. Keys held by consecutive
// steps stay down across the boundary; Press keys go down on the first tick
// only.
type Step struct {
	Label string     `yaml:"label"`
	Ticks int        `yaml:"ticks"`
	Hold  []string   `yaml:"hold"`
	Press []string   `yaml:"press"`
	Look  [2]float64 `yaml:"look"`
}

type Scenario struct {
	TPS        int    `yaml:"tps"`
	TraceEvery int    `yaml:"trace_every"`
	Steps      []Step `yaml:"steps"`
}

// LoadScenario reads path from disk, or an embedded scenario by base name
// when no such file exists.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		data, err = scenariosFS.ReadFile("scenarios/" + path)
		if err != nil {
			return nil, fmt.Errorf("sim: load %s: %w", path, err)
		}
	}
	sc := Scenario{TPS: 60, TraceEvery: 1}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("sim: unmarshal %s: %w", path, err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("sim: %s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", sc.TPS)
	}
	if sc.TraceEvery <= 0 {
		return fmt.Errorf("trace_every must be positive, got %d", sc.TraceEvery)
	}
	for i, st := range sc.Steps {
		if st.Ticks < 0 {
			return fmt.Errorf("step %d: negative ticks", i)
		}
		for _, name := range append(append([]string(nil), st.Hold...), st.Press...) {
			if _, ok := input.ParseKey(name); !ok {
				return fmt.Errorf("step %d: unknown key %q", i, name)
			}
		}
	}
	return nil
}

func (sc *Scenario) TotalTicks() int {
	n := 0
	for _, st := range sc.Steps {
		n += st.Ticks
	}
	return n
}

func keys(names []string) []input.Key {
	out := make([]input.Key, 0, len(names))
	for _, n := range names {
		if k, ok := input.ParseKey(n); ok {
			out = append(out, k)
		}
	}
	return out
}
