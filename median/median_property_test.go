package median

import (
	"fmt"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/rollingstats-go/rollingstats-go/internal/util"
)

// sortedMedian is the oracle: sort everything seen so far and take the
// middle element, or the midpoint of the two middle elements.
func sortedMedian(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return util.Midpoint(sorted[mid-1], sorted[mid])
	}
	return sorted[mid]
}

func TestMedianMatchesSortedOracle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), 1, 200).Draw(rt, "values")
		m := New[float64]()
		for i, value := range values {
			if err := m.Push(value); err != nil {
				rt.Fatalf("push %v: %v", value, err)
			}
			want := sortedMedian(values[:i+1])
			got := m.Value().Unwrap()
			if got != want {
				rt.Fatalf("median after %d pushes = %v, want %v", i+1, got, want)
			}
		}
	})
}

func TestMedianIntegerMatchesSortedOracle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-1_000_000, 1_000_000), 1, 150).Draw(rt, "values")
		m := New[int]()
		floats := make([]float64, 0, len(values))
		for i, value := range values {
			if err := m.Push(value); err != nil {
				rt.Fatalf("push %v: %v", value, err)
			}
			floats = append(floats, float64(value))
			want := sortedMedian(floats)
			got := m.Value().Unwrap()
			if got != want {
				rt.Fatalf("median after %d pushes = %v, want %v", i+1, got, want)
			}
		}
	})
}

func TestMedianIsOrderIndependent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(-1000, 1000), 1, 100).Draw(rt, "values")
		shuffled := slices.Clone(values)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := rapid.IntRange(0, i).Draw(rt, fmt.Sprintf("swap_%d", i))
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}

		a := New[float64]()
		b := New[float64]()
		for _, value := range values {
			if err := a.Push(value); err != nil {
				rt.Fatalf("push %v: %v", value, err)
			}
		}
		for _, value := range shuffled {
			if err := b.Push(value); err != nil {
				rt.Fatalf("push %v: %v", value, err)
			}
		}

		if a.Value().Unwrap() != b.Value().Unwrap() {
			rt.Fatalf("median depends on push order: %v vs %v", a.Value().Unwrap(), b.Value().Unwrap())
		}
	})
}

// TestMedianHeapInvariants checks the internal structure after every
// push: the halves stay within one element of each other with the low
// half holding any extra, and the max of the low half never exceeds the
// min of the high half.
func TestMedianHeapInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(-1e9, 1e9), 1, 150).Draw(rt, "values")
		m := New[float64]().(*median[float64])
		for count, value := range values {
			if err := m.Push(value); err != nil {
				rt.Fatalf("push %v: %v", value, err)
			}

			if m.Len() != count+1 {
				rt.Fatalf("Len() = %d after %d pushes", m.Len(), count+1)
			}
			lo, hi := m.lo.Len(), m.hi.Len()
			if lo != hi && lo != hi+1 {
				rt.Fatalf("size invariant violated: lo=%d hi=%d", lo, hi)
			}
			loTop, ok := m.lo.Peek()
			if !ok {
				rt.Fatalf("low half empty after %d pushes", count+1)
			}
			if hiTop, ok := m.hi.Peek(); ok && loTop > hiTop {
				rt.Fatalf("partition invariant violated: max(lo)=%v > min(hi)=%v", loTop, hiTop)
			}
		}
	})
}
