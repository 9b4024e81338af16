// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package linklist

// Permute returns every combination which draws position i from seqs[i]. The last sequence
// varies fastest. If any sequence is empty there are no combinations; if there are no
// sequences there is exactly one (empty) combination.
func Permute[T any](seqs [][]T) [][]T {
	total := 1
	for _, seq := range seqs {
		if len(seq) == 0 {
			return nil
		}
		total *= len(seq)
	}
	out := make([][]T, 0, total)
	idx := make([]int, len(seqs))
	for {
		perm := make([]T, len(seqs))
		for i, j := range idx {
			perm[i] = seqs[i][j]
		}
		out = append(out, perm)

		// Advance the odometer from the last position:
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(seqs[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// Queue is a first-in first-out work queue which admits each key at most once, including
// keys that have already been visited and removed.
type Queue[T any] struct {
	key   func(T) string
	seen  map[string]struct{}
	items []T
}

func NewQueue[T any](key func(T) string, initial ...T) *Queue[T] {
	q := &Queue[T]{key: key, seen: make(map[string]struct{}, len(initial))}
	q.Push(initial...)
	return q
}

// Push enqueues every item which has not been seen before.
func (q *Queue[T]) Push(items ...T) {
	for _, item := range items {
		k := q.key(item)
		if _, ok := q.seen[k]; ok {
			continue
		}
		q.seen[k] = struct{}{}
		q.items = append(q.items, item)
	}
}

// Pop dequeues the next item, or returns false if the queue is drained.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

func (q *Queue[T]) Len() int { return len(q.items) }
