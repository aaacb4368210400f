package animation

import "math"

// Clip is a playable animation handle supplied by the asset layer.
type Clip interface {
	Name() string
	Duration() float64
	Play()
	// Reset rewinds to the start and clears any pause.
	Reset()
	FadeIn(seconds float64)
	FadeOut(seconds float64)
	SetPaused(paused bool)
	Paused() bool
	SetTime(t float64)
	SetTimeScale(scale float64)
}

// ClipDef describes a clip for the reference mixer.
type ClipDef struct {
	Name     string
	Duration float64
}

// Track is the reference Clip implementation: a looping clock with a
// linear fade weight.
type Track struct {
	name     string
	duration float64

	time      float64
	timeScale float64
	weight    float64
	playing   bool
	paused    bool

	fadeFrom    float64
	fadeTo      float64
	fadeTime    float64
	fadeElapsed float64
}

// NewTrack creates a stopped track.
func NewTrack(name string, duration float64) *Track {
	return &Track{name: name, duration: duration, timeScale: 1}
}

func (t *Track) Name() string      { return t.name }
func (t *Track) Duration() float64 { return t.duration }
func (t *Track) Time() float64     { return t.time }
func (t *Track) Weight() float64   { return t.weight }
func (t *Track) TimeScale() float64 {
	return t.timeScale
}
func (t *Track) Playing() bool { return t.playing }
func (t *Track) Paused() bool  { return t.paused }

// Fading reports whether a weight ramp is in progress.
func (t *Track) Fading() bool {
	return t.fadeTime > 0 && t.fadeElapsed < t.fadeTime
}

func (t *Track) Play() {
	if !t.playing && !t.Fading() {
		t.weight = 1
	}
	t.playing = true
}

func (t *Track) Reset() {
	t.time = 0
	t.paused = false
	t.fadeTime = 0
	t.fadeElapsed = 0
}

func (t *Track) FadeIn(seconds float64) {
	t.startFade(0, 1, seconds)
}

func (t *Track) FadeOut(seconds float64) {
	t.startFade(t.weight, 0, seconds)
}

func (t *Track) startFade(from, to, seconds float64) {
	if seconds <= 0 {
		t.weight = to
		t.fadeTime = 0
		if to == 0 {
			t.playing = false
		}
		return
	}
	t.weight = from
	t.fadeFrom = from
	t.fadeTo = to
	t.fadeTime = seconds
	t.fadeElapsed = 0
}

func (t *Track) SetPaused(paused bool) { t.paused = paused }

func (t *Track) SetTime(v float64) {
	t.time = t.wrap(v)
}

func (t *Track) SetTimeScale(scale float64) { t.timeScale = scale }

// Advance moves the clock and any fade by dt seconds. Fades progress even
// while the clock is paused.
func (t *Track) Advance(dt float64) {
	if !t.playing || dt <= 0 {
		return
	}
	if !t.paused {
		t.time = t.wrap(t.time + dt*t.timeScale)
	}
	if t.fadeTime > 0 {
		t.fadeElapsed = math.Min(t.fadeElapsed+dt, t.fadeTime)
		k := t.fadeElapsed / t.fadeTime
		t.weight = t.fadeFrom + (t.fadeTo-t.fadeFrom)*k
		if t.fadeElapsed >= t.fadeTime {
			t.fadeTime = 0
			if t.fadeTo == 0 {
				t.playing = false
			}
		}
	}
}

func (t *Track) wrap(v float64) float64 {
	if t.duration <= 0 {
		return 0
	}
	v = math.Mod(v, t.duration)
	if v < 0 {
		v += t.duration
	}
	return v
}

// Mixer owns an ordered set of tracks and advances them together.
type Mixer struct {
	tracks []*Track
}

// NewMixer builds one track per definition, preserving order.
func NewMixer(defs []ClipDef) *Mixer {
	m := &Mixer{tracks: make([]*Track, 0, len(defs))}
	for _, d := range defs {
		m.tracks = append(m.tracks, NewTrack(d.Name, d.Duration))
	}
	return m
}

// Clips returns the tracks as Clip handles in definition order.
func (m *Mixer) Clips() []Clip {
	if m == nil {
		return nil
	}
	out := make([]Clip, 0, len(m.tracks))
	for _, t := range m.tracks {
		out = append(out, t)
	}
	return out
}

// Track looks a track up by name.
func (m *Mixer) Track(name string) (*Track, bool) {
	if m == nil {
		return nil, false
	}
	for _, t := range m.tracks {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// Tracks returns the tracks in definition order.
func (m *Mixer) Tracks() []*Track {
	if m == nil {
		return nil
	}
	return m.tracks
}

// Advance steps every track.
func (m *Mixer) Advance(dt float64) {
	if m == nil {
		return
	}
	for _, t := range m.tracks {
		t.Advance(dt)
	}
}
