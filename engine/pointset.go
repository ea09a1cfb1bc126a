package engine

import (
	"slices"
	"time"
)

// PointSet is the set of unlocked computer ids
// ids stays sorted and duplicate-free
type PointSet struct {
	ids []int

	LastSpawn   time.Duration
	NextSpawnAt time.Duration // Deadline derived on the last spawn tick
	Jitter      time.Duration // Random part of the current cycle's interval
	Scheduled   bool          // Jitter has been rolled for the current cycle
}

// Len returns the number of unlocked ids
func (s *PointSet) Len() int {
	return len(s.ids)
}

// Contains reports whether id is unlocked
func (s *PointSet) Contains(id int) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// IDs returns a copy of the unlocked ids in ascending order
func (s *PointSet) IDs() []int {
	return slices.Clone(s.ids)
}

// Insert adds id, returns false if already present
func (s *PointSet) Insert(id int) bool {
	i, found := slices.BinarySearch(s.ids, id)
	if found {
		return false
	}
	s.ids = slices.Insert(s.ids, i, id)
	return true
}

// Remove deletes id, returns false if absent
func (s *PointSet) Remove(id int) bool {
	i, found := slices.BinarySearch(s.ids, id)
	if !found {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Probe returns the first id not in the set starting at start and moving forward
// modulo universe, examining at most universe candidates
func (s *PointSet) Probe(start, universe int) (int, bool) {
	if universe <= 0 || len(s.ids) >= universe {
		return 0, false
	}
	id := ((start % universe) + universe) % universe
	for step := 0; step < universe; step++ {
		if !s.Contains(id) {
			return id, true
		}
		id = (id + 1) % universe
	}
	return 0, false
}

// Reset clears all ids and timers
func (s *PointSet) Reset() {
	s.ids = s.ids[:0]
	s.LastSpawn = 0
	s.NextSpawnAt = 0
	s.Jitter = 0
	s.Scheduled = false
}
