// Package median maintains the median of a stream of numeric values
// using a dual-heap algorithm: the smaller half of the values is kept
// in a max-heap and the larger half in a min-heap, so the heap tops are
// always adjacent to the median.
package median

import (
	"errors"

	"github.com/moznion/go-optional"

	"github.com/rollingstats-go/rollingstats-go"
	"github.com/rollingstats-go/rollingstats-go/internal/util"
)

// ErrNaN is returned when a NaN value is pushed to a Median using the
// RejectNaN policy.
var ErrNaN = errors.New("cannot push NaN value")

// NaNPolicy determines how a Median over floating-point values handles
// NaN, which does not order against other values.
type NaNPolicy int

const (
	// RejectNaN causes Push to return ErrNaN for NaN values, leaving the
	// Median unchanged. This is the default policy.
	RejectNaN NaNPolicy = iota

	// NaNIsGreatest ranks NaN above every other value, restoring a total
	// order so that Push always succeeds.
	NaNIsGreatest
)

// Median computes the median of all values pushed so far, online: each
// Push costs O(log n) and Value costs O(1), with no re-sorting.
// Every pushed value is retained for the lifetime of the Median; there
// is no windowing and no per-value removal.
//
// This type is not concurrency safe. Concurrent callers must serialize
// Push and Value externally.
type Median[T rollingstats.Real] interface {
	// Push inserts a value. Returns ErrNaN when value is NaN and the
	// Median uses the RejectNaN policy, in which case the Median is
	// unchanged.
	Push(value T) error

	// Value returns the median of all pushed values: the middle value
	// when their count is odd, the midpoint of the two middle values when
	// even, and None when no values have been pushed. Value does not
	// modify the Median, and repeated calls return the same result.
	Value() optional.Option[float64]

	// Len returns the number of values the Median holds.
	Len() int

	// Reset removes all values from the Median.
	Reset()
}

// Builder builds Median instances.
//
// This type is not concurrency safe.
type Builder[T rollingstats.Real] interface {
	// WithCapacity preallocates space for the given number of values.
	WithCapacity(capacity uint) Builder[T]

	// WithNaNPolicy configures how NaN values are handled. The default is
	// RejectNaN.
	WithNaNPolicy(policy NaNPolicy) Builder[T]

	// Build returns a new Median using the builder's configuration.
	Build() Median[T]
}

type config[T rollingstats.Real] struct {
	capacity  uint
	nanPolicy NaNPolicy
}

var _ Builder[float64] = &config[float64]{}

// New creates a Median with the default configuration.
func New[T rollingstats.Real]() Median[T] {
	return NewBuilder[T]().Build()
}

// NewBuilder creates a Builder.
func NewBuilder[T rollingstats.Real]() Builder[T] {
	return &config[T]{}
}

func (c *config[T]) WithCapacity(capacity uint) Builder[T] {
	c.capacity = capacity
	return c
}

func (c *config[T]) WithNaNPolicy(policy NaNPolicy) Builder[T] {
	c.nanPolicy = policy
	return c
}

func (c *config[T]) Build() Median[T] {
	less := ascending[T]
	if c.nanPolicy == NaNIsGreatest {
		less = ascendingNaNGreatest[T]
	}
	half := (c.capacity + 1) / 2
	return &median[T]{
		nanPolicy: c.nanPolicy,
		less:      less,
		lo:        util.NewHeap(func(a, b T) bool { return less(b, a) }, half),
		hi:        util.NewHeap(less, half),
	}
}

type median[T rollingstats.Real] struct {
	nanPolicy NaNPolicy
	less      func(a, b T) bool
	lo        *util.Heap[T] // max-heap over the smaller half
	hi        *util.Heap[T] // min-heap over the larger half
}

var _ Median[float64] = &median[float64]{}

func (m *median[T]) Push(value T) error {
	// value != value is the NaN test, and is identically false for
	// integer instantiations.
	if value != value && m.nanPolicy == RejectNaN {
		return ErrNaN
	}

	// Route the value relative to the top of the low half, preferring lo
	// on ties so the extra element under odd counts always lives there.
	if top, ok := m.lo.Peek(); !ok || !m.less(top, value) {
		m.lo.Push(value)
	} else {
		m.hi.Push(value)
	}

	// Each push skews the halves by at most one, so a single transfer
	// restores lo.Len() == hi.Len() or lo.Len() == hi.Len()+1.
	if m.lo.Len() > m.hi.Len()+1 {
		moved, _ := m.lo.Pop()
		m.hi.Push(moved)
	} else if m.hi.Len() > m.lo.Len() {
		moved, _ := m.hi.Pop()
		m.lo.Push(moved)
	}
	return nil
}

func (m *median[T]) Value() optional.Option[float64] {
	top, ok := m.lo.Peek()
	if !ok {
		return optional.None[float64]()
	}
	if m.lo.Len() == m.hi.Len() {
		hiTop, _ := m.hi.Peek()
		return optional.Some(util.Midpoint(float64(top), float64(hiTop)))
	}
	return optional.Some(float64(top))
}

func (m *median[T]) Len() int {
	return m.lo.Len() + m.hi.Len()
}

func (m *median[T]) Reset() {
	m.lo.Reset()
	m.hi.Reset()
}

func ascending[T rollingstats.Real](a, b T) bool {
	return a < b
}

// NaN compares false against everything, so it is ranked explicitly.
func ascendingNaNGreatest[T rollingstats.Real](a, b T) bool {
	if a != a {
		return false
	}
	if b != b {
		return true
	}
	return a < b
}
