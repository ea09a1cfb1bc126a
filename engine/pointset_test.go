package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSet_InsertRemove(t *testing.T) {
	var s PointSet

	assert.True(t, s.Insert(7))
	assert.True(t, s.Insert(2))
	assert.True(t, s.Insert(30))
	assert.False(t, s.Insert(7), "duplicate")
	assert.Equal(t, []int{2, 7, 30}, s.IDs())

	assert.True(t, s.Remove(7))
	assert.False(t, s.Remove(7))
	assert.Equal(t, []int{2, 30}, s.IDs())
	assert.False(t, s.Contains(7))
	assert.True(t, s.Contains(30))
}

func TestPointSet_IDsIsACopy(t *testing.T) {
	var s PointSet
	s.Insert(1)

	ids := s.IDs()
	ids[0] = 99

	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(99))
}

func TestPointSet_Probe(t *testing.T) {
	var s PointSet
	for _, id := range []int{3, 4, 5} {
		s.Insert(id)
	}

	id, ok := s.Probe(3, 8)
	assert.True(t, ok)
	assert.Equal(t, 6, id)

	id, ok = s.Probe(1, 8)
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	// Wraps past the end
	s.Insert(6)
	s.Insert(7)
	id, ok = s.Probe(5, 8)
	assert.True(t, ok)
	assert.Equal(t, 0, id)

	// Out-of-range starts are folded into the universe
	id, ok = s.Probe(-3, 8)
	assert.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestPointSet_ProbeFullOrEmptyUniverse(t *testing.T) {
	var s PointSet
	for id := 0; id < 4; id++ {
		s.Insert(id)
	}

	_, ok := s.Probe(2, 4)
	assert.False(t, ok)

	_, ok = s.Probe(0, 0)
	assert.False(t, ok)
}

func TestPointSet_Reset(t *testing.T) {
	var s PointSet
	s.Insert(1)
	s.LastSpawn = 5
	s.Scheduled = true

	s.Reset()

	assert.Zero(t, s.Len())
	assert.Zero(t, s.LastSpawn)
	assert.False(t, s.Scheduled)
}
