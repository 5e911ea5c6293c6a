package utils

// DefaultCapacity is the size of a freshly allocated backing buffer.
const DefaultCapacity = 16

func GetZero[T any]() T {
	var result T
	return result
}

// GrowCapacity doubles current until it can hold required items.
func GrowCapacity(current, required int) int {
	if current < DefaultCapacity {
		current = DefaultCapacity
	}

	for current < required {
		current *= 2
	}

	return current
}
