package localgen

import "math/rand/v2"

// randInt returns a random integer in [min, max].
func randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}

// pick returns a random element of a non-empty slice.
func pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

// shuffle returns a new slice with the elements in random order
// (Fisher-Yates).
func shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
