package parking

import "math"

// MaxCapacity is the largest slot count a parking row can hold.
const MaxCapacity = math.MaxInt32

// ClampAvailable keeps a slot count inside [0, capacity].
func ClampAvailable(available, capacity int) int {
	if capacity < 0 {
		capacity = 0
	}
	if available < 0 {
		return 0
	}
	if available > capacity {
		return capacity
	}
	return available
}

// BoundDelta limits an availability delta to [-MaxCapacity, MaxCapacity].
// Any larger magnitude already drives the counter to 0 or to capacity.
func BoundDelta(delta int) int64 {
	switch {
	case delta > MaxCapacity:
		return MaxCapacity
	case delta < -MaxCapacity:
		return -MaxCapacity
	default:
		return int64(delta)
	}
}
