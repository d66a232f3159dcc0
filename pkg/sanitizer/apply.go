package sanitizer

// Apply runs value through each transform in order and returns the result.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from the given transforms. Prefer it
// over repeated Apply calls when the same chain runs on many values.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
