package rollingstats

import "math"

// Stats tracks the running count, mean, variance, and extremes of a
// stream of values, updated incrementally via Welford's recurrence.
//
// This type is not concurrency safe.
type Stats struct {
	count uint
	mean  float64
	m2    float64
	min   float64
	max   float64
}

// Add records a value and returns the updated mean.
func (s *Stats) Add(value float64) float64 {
	s.count++
	if s.count == 1 {
		s.mean = value
		s.min = value
		s.max = value
		return s.mean
	}

	delta := value - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (value - s.mean)
	s.min = math.Min(s.min, value)
	s.max = math.Max(s.max, value)
	return s.mean
}

// Count returns the number of recorded values.
func (s *Stats) Count() uint {
	return s.count
}

// Mean returns the mean of the recorded values, else 0 if no values
// have been recorded.
func (s *Stats) Mean() float64 {
	return s.mean
}

// Variance returns the population variance of the recorded values, else
// 0 if fewer than two values have been recorded.
func (s *Stats) Variance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count)
}

// StdDev returns the population standard deviation of the recorded
// values, else 0 if fewer than two values have been recorded.
func (s *Stats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the smallest recorded value, else 0 if no values have
// been recorded.
func (s *Stats) Min() float64 {
	return s.min
}

// Max returns the largest recorded value, else 0 if no values have been
// recorded.
func (s *Stats) Max() float64 {
	return s.max
}

// Reset removes all recorded values.
func (s *Stats) Reset() {
	*s = Stats{}
}
