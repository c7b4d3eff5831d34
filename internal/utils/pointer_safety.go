package utils

// Value dereferences a pointer, substituting the zero value for nil.
// Token responses model optional members as pointers; Value reads them
// without nil checks at every call site.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
