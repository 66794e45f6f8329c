package patch

import (
	"github.com/jinzhu/copier"
)

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Apply copies the set fields of src onto dst by field name. Nil pointers and
// zero values in src are skipped, so a pointer to a zero value still applies.
// dst must not share pointers with the value it was read from: copier writes
// through non-nil destination pointers.
func Apply(dst, src any) error {
	if src == nil {
		return nil
	}
	return copier.CopyWithOption(dst, src, copier.Option{IgnoreEmpty: true})
}
