package simplot

import "sort"

// StringSet is a set of column names.
type StringSet map[string]struct{}

// NewStringSetFrom returns a set containing all of names.
func NewStringSetFrom(names []string) StringSet {
	s := make(StringSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Remove removes all elements of t from s. (Set difference)
func (s StringSet) Remove(t StringSet) {
	for x := range t {
		delete(s, x)
	}
}

// Elements returns the members of s in sorted order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
