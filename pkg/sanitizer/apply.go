package sanitizer

// Apply feeds value through each transform, left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		if fn != nil {
			value = fn(value)
		}
	}
	return value
}

// Compose freezes a transform chain into a single normalizer, the shape
// used for package-level cleaners like
//
//	var cleanPlace = Compose(NormalizeWhitespace, TitleCase)
func Compose[T any](transforms ...func(T) T) func(T) T {
	chain := append([]func(T) T(nil), transforms...)
	return func(value T) T {
		return Apply(value, chain...)
	}
}
