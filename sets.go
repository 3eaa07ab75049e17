package setmatch

// Set is an unordered collection of distinct strings.
type Set map[string]struct{}

// NewSet builds a set from the given items. Duplicates collapse.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	s.Add(items...)
	return s
}

// Add puts items into the set.
func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Has reports exact, case-sensitive membership of item.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Union returns a new set with the members of all given sets.
func Union(sets ...Set) Set {
	res := make(Set)
	for _, s := range sets {
		for item := range s {
			res[item] = struct{}{}
		}
	}
	return res
}
