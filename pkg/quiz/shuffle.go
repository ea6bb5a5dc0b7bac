package quiz

import "math/rand/v2"

// Shuffle returns a uniformly shuffled copy of items, the input is left untouched
func Shuffle[T any](rnd *rand.Rand, items []T) []T {
	res := make([]T, len(items))
	copy(res, items)

	// fisher-yates, from the last element down
	for i := len(res) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		res[i], res[j] = res[j], res[i]
	}
	return res
}
