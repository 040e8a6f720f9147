// Package stream provides lazy iterator utilities shared by the climatology
// composition functions.
package stream

import "iter"

// MergeSorted merges individually sorted iterators into one sorted iterator.
// Each input is pulled only when its head is needed, so expensive or long
// inputs cost nothing until the merge reaches them. Equal values from
// different inputs are all emitted; nothing is deduplicated.
func MergeSorted[T any](less func(a, b T) bool, seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		type source struct {
			next func() (T, bool)
			stop func()
			head T
			live bool // head holds a value not yet emitted
		}

		sources := make([]*source, 0, len(seqs))
		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			sources = append(sources, &source{next: next, stop: stop})
		}
		defer func() {
			for _, src := range sources {
				src.stop()
			}
		}()

		for len(sources) > 0 {
			pick := -1
			remaining := sources[:0]
			for _, src := range sources {
				if !src.live {
					head, ok := src.next()
					if !ok {
						src.stop()
						continue
					}
					src.head, src.live = head, true
				}
				remaining = append(remaining, src)
				if pick < 0 || less(src.head, remaining[pick].head) {
					pick = len(remaining) - 1
				}
			}
			sources = remaining
			if pick < 0 {
				return
			}
			if !yield(sources[pick].head) {
				return
			}
			sources[pick].live = false
		}
	}
}
