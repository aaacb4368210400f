package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/animation"
	"github.com/milk9111/roomdrive/camera"
	"github.com/milk9111/roomdrive/locomotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
	return dir
}

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadTuningEmbedded(t *testing.T) {
	useDir(t)
	tun, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, locomotion.DefaultBipedParams(), tun.BipedParams())
	assert.Equal(t, locomotion.DefaultVehicleParams(), tun.VehicleParams())
	assert.Equal(t, camera.BipedProfile(), tun.BipedProfile())
	assert.Equal(t, camera.VehicleProfile(), tun.VehicleProfile())
	assert.Equal(t, locomotion.Bounds{MinX: -23, MaxX: 23, MinZ: -23, MaxZ: 23}, tun.Bounds())
	assert.Equal(t, mgl64.Vec3{0, 5, 15}, tun.World.Camera.Start.Vec3())
	assert.Equal(t, animation.DefaultConfig(), tun.SelectorConfig())

	defs := tun.ClipDefs()
	require.Len(t, defs, 3)
	table, err := animation.ResolveRoles(animation.NewMixer(defs).Clips(), mustPatterns(t, tun))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}

func mustPatterns(t *testing.T, tun *Tuning) animation.RolePatterns {
	t.Helper()
	p, err := tun.Patterns()
	require.NoError(t, err)
	return p
}

func TestDiskOverrideIsPartial(t *testing.T) {
	dir := useDir(t)
	write(t, dir, ActorFile, "locomotion:\n  walk_speed: 3\n  run_speed: 7\n")

	tun, err := LoadTuning()
	require.NoError(t, err)

	p := tun.BipedParams()
	assert.Equal(t, 3.0, p.WalkSpeed)
	assert.Equal(t, 7.0, p.RunSpeed)
	assert.Equal(t, locomotion.DefaultBipedParams().Damping, p.Damping, "unset fields keep their defaults")
	assert.Empty(t, tun.ClipDefs(), "the override replaces the embedded file")
	assert.Equal(t, 3.0, tun.SelectorConfig().WalkSpeed)

	_, ok := ModTime(ActorFile)
	assert.True(t, ok)
	_, ok = ModTime(VehicleFile)
	assert.False(t, ok)
}

func TestModTimeTracksRewrites(t *testing.T) {
	dir := useDir(t)
	write(t, dir, VehicleFile, "drive:\n  max_forward: 20\n")
	then := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(dir, VehicleFile), then, then))

	first, ok := ModTime("prefabs/" + VehicleFile)
	require.True(t, ok)
	assert.True(t, first.Equal(then))

	later := then.Add(time.Minute)
	require.NoError(t, os.Chtimes(filepath.Join(dir, VehicleFile), later, later))
	second, ok := ModTime(filepath.Join(dir, VehicleFile))
	require.True(t, ok)
	assert.True(t, second.After(first))
}

func TestLoadSpecWrapsErrors(t *testing.T) {
	dir := useDir(t)
	write(t, dir, "broken.yaml", "bounds: [1, 2\n")

	_, err := LoadSpec[WorldSpec]("broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: unmarshal broken.yaml")

	_, err = LoadSpec[WorldSpec]("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: load missing.yaml")
}

func TestReloadKeepsPreviousTuningOnError(t *testing.T) {
	dir := useDir(t)
	tun, err := LoadTuning()
	require.NoError(t, err)

	write(t, dir, VehicleFile, "drive:\n  max_forward: 20\n")
	next, err := tun.Reload(filepath.Join(dir, VehicleFile))
	require.NoError(t, err)
	assert.Equal(t, 20.0, next.VehicleParams().MaxForward)
	assert.Equal(t, 12.0, tun.VehicleParams().MaxForward, "reload returns a copy")

	write(t, dir, WorldFile, "bounds:\n  min_x: 5\n  max_x: -5\n")
	_, err = next.Reload(filepath.Join(dir, WorldFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty bounds")

	_, err = next.Reload(filepath.Join(dir, "notes.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		want   string
	}{
		{"smoothing", func(t *Tuning) { t.World.Camera.Smoothing = 0 }, "camera smoothing"},
		{"radius", func(t *Tuning) { t.World.Switch.EnterRadius = -1 }, "enter radius"},
		{"speeds", func(t *Tuning) { t.Actor.Locomotion.RunSpeed = 1 }, "walk_speed"},
		{"clip", func(t *Tuning) { t.Actor.Animation.Clips = []ClipSpec{{Name: "Idle"}} }, "positive duration"},
		{"pattern", func(t *Tuning) { t.Actor.Animation.Patterns = map[string][]string{"fly": {"fly"}} }, "unknown role"},
		{"friction", func(t *Tuning) { t.Vehicle.Drive.Friction = 1 }, "friction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := DefaultTuning()
			require.NoError(t, tun.Validate())
			tt.mutate(&tun)
			err := tun.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	write(t, dir, "notes.txt", "ignored")
	write(t, dir, ActorFile, "name: actor\n")

	var got []string
	require.Eventually(t, func() bool {
		paths, err := w.Poll()
		assert.NoError(t, err)
		got = append(got, paths...)
		return len(got) > 0
	}, 2*time.Second, 20*time.Millisecond)

	for _, p := range got {
		assert.Equal(t, ActorFile, filepath.Base(p))
	}
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "close is idempotent")
}
