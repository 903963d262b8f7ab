package mocks

import (
	"github.com/rmaffei/partygames-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// IntRangeResults is a queue of results to return from IntRange
	IntRangeResults []int
	intRangeIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// IntRange returns the next queued result, or min if none remaining
func (r *MockRandom) IntRange(min, max int) int {
	if r.intRangeIndex >= len(r.IntRangeResults) {
		return min
	}
	result := r.IntRangeResults[r.intRangeIndex]
	r.intRangeIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueIntRange adds values to the IntRange result queue
func (r *MockRandom) QueueIntRange(values ...int) {
	r.IntRangeResults = append(r.IntRangeResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.IntRangeResults = nil
	r.intRangeIndex = 0
}
