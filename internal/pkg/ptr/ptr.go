package ptr

func Of[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *p. Nil stays nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
