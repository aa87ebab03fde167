package util

// Ptr returns a pointer to the given value. Useful for the optional
// pointer-typed fields on input structs.
func Ptr[T any](v T) *T {
	return &v
}
