package types

// guardCycle returns the value to store inside container, replacing v with
// Recursed when container is reachable from v. Storing such a v would make
// the type graph cyclic and every later walk over it unbounded.
func guardCycle(container, v *Type) *Type {
	if reaches(v, container, make(map[*Type]bool)) {
		return Recursed()
	}
	return v
}

func reaches(from, target *Type, seen map[*Type]bool) bool {
	if from == nil || seen[from] {
		return false
	}
	if from == target {
		return true
	}
	seen[from] = true
	if reaches(from.Elem, target, seen) {
		return true
	}
	for _, e := range from.Elems {
		if reaches(e, target, seen) {
			return true
		}
	}
	if from.Map != nil {
		for _, side := range [][]*Type{from.Map.Keys, from.Map.Values} {
			for _, e := range side {
				if reaches(e, target, seen) {
					return true
				}
			}
		}
	}
	return false
}
