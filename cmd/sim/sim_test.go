package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/roomdrive/locomotion"
	"github.com/milk9111/roomdrive/prefabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	prev := prefabs.Dir
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = prev })
	tun, err := prefabs.LoadTuning()
	require.NoError(t, err)
	return tun
}

func TestDemoScenarioEntersAndExits(t *testing.T) {
	sc, err := LoadScenario("demo.yaml")
	require.NoError(t, err)

	var trace bytes.Buffer
	sum, err := Run(sc, embeddedTuning(t), zerolog.New(&trace), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, sc.TotalTicks(), sum.Ticks)
	assert.Equal(t, 2, sum.ModeChanges, "one enter and one exit")
	assert.Equal(t, locomotion.OnFoot, sum.FinalMode)
	assert.Zero(t, sum.Escapes)

	lines := bytes.Split(bytes.TrimSpace(trace.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "walk north", first["step"])
	assert.Contains(t, first, "actor")
	assert.Contains(t, first, "eye")
}

func TestLoadScenarioFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - ticks: 5\n"), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 60, sc.TPS, "defaults survive a partial file")
	assert.Equal(t, 5, sc.TotalTicks())

	sum, err := Run(sc, embeddedTuning(t), zerolog.Nop(), zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, sum.ModeChanges)
	assert.Equal(t, 5, sum.Ticks)
}

func TestLoadScenarioRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
	}{
		{"unknown_key", "steps:\n  - ticks: 1\n    hold: [KeyQ]\n"},
		{"zero_tps", "tps: 0\n"},
		{"zero_trace_every", "trace_every: 0\nsteps:\n  - ticks: 2\n"},
		{"negative_trace_every", "trace_every: -3\n"},
		{"negative_ticks", "steps:\n  - ticks: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := LoadScenario(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadScenario("nope.yaml")
	assert.Error(t, err)
}

func TestRunRejectsUnvalidatedScenario(t *testing.T) {
	sc := &Scenario{TPS: 60, Steps: []Step{{Ticks: 3}}}
	_, err := Run(sc, embeddedTuning(t), zerolog.Nop(), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace_every")
}
