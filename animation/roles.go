package animation

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrMissingRole = errors.New("animation: no clip matches role")
	ErrNoClips     = errors.New("animation: actor has no clips")
)

// Role is a logical animation slot.
type Role int

const (
	RoleIdle Role = iota
	RoleWalk
	RoleRun
	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleIdle:
		return "idle"
	case RoleWalk:
		return "walk"
	case RoleRun:
		return "run"
	default:
		return "unknown"
	}
}

// ParseRole maps "idle", "walk" or "run" to a Role.
func ParseRole(name string) (Role, bool) {
	for r := RoleIdle; r < roleCount; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}

// RolePatterns lists, per role, the clip name patterns that claim it.
type RolePatterns map[Role][]*regexp.Regexp

// DefaultPatterns matches the usual clip naming of exported character rigs.
func DefaultPatterns() RolePatterns {
	p, _ := CompilePatterns(map[string][]string{
		"idle": {"idle", "standing", "stand", "rest"},
		"walk": {"walk", "walking"},
		"run":  {"run", "running", "jog"},
	})
	return p
}

// CompilePatterns compiles case-insensitive patterns keyed by role name.
func CompilePatterns(raw map[string][]string) (RolePatterns, error) {
	out := make(RolePatterns, len(raw))
	for name, exprs := range raw {
		role, ok := ParseRole(name)
		if !ok {
			return nil, fmt.Errorf("animation: unknown role %q", name)
		}
		for _, expr := range exprs {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, fmt.Errorf("animation: role %s pattern %q: %w", name, expr, err)
			}
			out[role] = append(out[role], re)
		}
	}
	return out, nil
}

// RoleTable is the load-time role to clip mapping.
type RoleTable struct {
	clips []Clip
	index [roleCount]int
}

// ResolveRoles assigns each role the first clip, in clip order, whose name
// matches any of the role's patterns. Ambiguous names resolve to whichever
// clip comes first.
//
// The returned error only describes what is missing (ErrMissingRole,
// ErrNoClips); the table is always usable.
func ResolveRoles(clips []Clip, patterns RolePatterns) (RoleTable, error) {
	t := RoleTable{clips: clips}
	for r := range t.index {
		t.index[r] = -1
	}
	if len(clips) == 0 {
		return t, ErrNoClips
	}

	var errs []error
	for r := RoleIdle; r < roleCount; r++ {
		t.index[r] = findClip(clips, patterns[r])
		if t.index[r] < 0 {
			errs = append(errs, fmt.Errorf("%w %s", ErrMissingRole, r))
		}
	}
	return t, errors.Join(errs...)
}

func findClip(clips []Clip, patterns []*regexp.Regexp) int {
	for i, c := range clips {
		for _, re := range patterns {
			if re.MatchString(c.Name()) {
				return i
			}
		}
	}
	return -1
}

// Clip returns the clip bound to role.
func (t RoleTable) Clip(r Role) (Clip, bool) {
	if r < 0 || r >= roleCount || t.index[r] < 0 {
		return nil, false
	}
	return t.clips[t.index[r]], true
}

// Has reports whether role resolved to a clip.
func (t RoleTable) Has(r Role) bool {
	_, ok := t.Clip(r)
	return ok
}

// First returns the first clip in the set, if any.
func (t RoleTable) First() (Clip, bool) {
	if len(t.clips) == 0 {
		return nil, false
	}
	return t.clips[0], true
}

// Len is the number of clips in the set.
func (t RoleTable) Len() int {
	return len(t.clips)
}
