package model

import (
	"encoding/json"
	"sort"
)

// IDSet is a set of record IDs. It serializes as a JSON array but enforces
// uniqueness structurally, so callers never deduplicate by hand.
type IDSet map[string]struct{}

// NewIDSet creates a set containing the given ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Remove deletes id from the set.
func (s IDSet) Remove(id string) {
	delete(s, id)
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Values returns the ids in sorted order.
func (s IDSet) Values() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// MarshalJSON serializes the set as a sorted array of ids.
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON reads an array of ids, collapsing duplicates.
func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
