package ecs

func snapshot(s *SparseSet) []Entity {
	return append([]Entity(nil), s.Entities()...)
}

// intersect returns the entities present in every set, in the dense order of
// the smallest one.
func intersect(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	small := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < small.Len() {
			small = s
		}
	}
	out := make([]Entity, 0, small.Len())
outer:
	for _, e := range small.Entities() {
		for _, s := range sets {
			if s != small && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
