package compose

// Select rotates pool left by offset mod len(pool) and returns the first
// min(count, len(pool)) elements. It never repeats an element and returns an
// empty slice when count <= 0 or the pool is empty. The pool is not modified.
func Select[T any](pool []T, count, offset int) []T {
	n := len(pool)
	if count <= 0 || n == 0 {
		return []T{}
	}

	start := ((offset % n) + n) % n
	take := min(count, n)

	out := make([]T, 0, take)
	for i := range take {
		out = append(out, pool[(start+i)%n])
	}
	return out
}
