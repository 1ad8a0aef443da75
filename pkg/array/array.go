package array

// Returns the index of the first element that is true on the condition.
// Otherwise, returns -1.
func Some[T any](arr []T, cond func(T) bool) int {
	for i := 0; i < len(arr); i++ {
		if cond(arr[i]) {
			return i
		}
	}
	return -1
}

// Returns true if the array contains the given value.
func Contains[T comparable](arr []T, value T) bool {
	return Some(arr, func(elem T) bool {
		return elem == value
	}) > -1
}

// Returns a new array holding fn applied to every element, in order.
func Map[T, U any](arr []T, fn func(T) U) []U {
	out := make([]U, len(arr))
	for i, elem := range arr {
		out[i] = fn(elem)
	}
	return out
}
