package iterator

import "iter"

func Collect[T any](it iter.Seq[T]) []T {
	p := []T{}
	for value := range it {
		p = append(p, value)
	}
	return p
}

func Collect2[K, V any](it iter.Seq2[K, V]) ([]K, []V) {
	leftElems := []K{}
	rightElems := []V{}
	for left, right := range it {
		leftElems = append(leftElems, left)
		rightElems = append(rightElems, right)
	}
	return leftElems, rightElems
}

// Collects the left values of a sequence of (value, error) pairs, stopping
// at the first non-nil error.
func CollectUntilErr[T any](it iter.Seq2[T, error]) ([]T, error) {
	p := []T{}
	for value, err := range it {
		if err != nil {
			return p, err
		}
		p = append(p, value)
	}
	return p, nil
}
