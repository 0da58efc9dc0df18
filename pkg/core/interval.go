package core

import "math"

// Interval is a closed range of ray parameters or coordinates [Min, Max].
// An interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// IntervalUnion returns the tightest interval enclosing both a and b
func IntervalUnion(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns Max - Min (negative for empty intervals)
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the closed interval
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval bounds
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand widens the interval by delta on each side
func (i Interval) Expand(delta float64) Interval {
	return Interval{Min: i.Min - delta, Max: i.Max + delta}
}

// Overlaps reports whether the two intervals share any point
func (i Interval) Overlaps(other Interval) bool {
	return math.Max(i.Min, other.Min) <= math.Min(i.Max, other.Max)
}

// Shift translates the interval by offset
func (i Interval) Shift(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}

// IsEmpty reports whether the interval contains no points
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}
