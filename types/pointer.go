package types

// ToPointer returns a pointer to v. The pagination API models optional
// arguments (first, after) as pointer fields; this lifts literals into
// them without an intermediate variable.
func ToPointer[T any](v T) *T {
	return &v
}

// ToValue dereferences p. Panics on nil, same as a direct dereference.
func ToValue[T any](p *T) T {
	return *p
}
