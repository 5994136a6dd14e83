package xslices

import "iter"

// Ranges yields up to n contiguous half-open index ranges covering
// [0, length) with balanced sizes. When length does not divide evenly, the
// leading ranges are one element longer.
func Ranges(length, n int) iter.Seq2[int, int] {
	if n < 1 {
		panic("cannot be less than 1")
	}

	return func(yield func(int, int) bool) {
		size := length / n
		rem := length % n

		start := 0

		for range n {
			end := start + size

			if rem > 0 {
				end++
				rem--
			}

			if end == start {
				return
			}

			if !yield(start, end) {
				return
			}

			start = end
		}
	}
}
