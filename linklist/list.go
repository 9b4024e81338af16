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

// linklist provides a persistent singly-linked list and cartesian products over candidate sequences.
package linklist

import (
	"errors"
)

// ErrEmptyList is raised (as a panic value) when Value or Tail is accessed on an empty list.
var ErrEmptyList = errors.New("Empty list has no value or tail")

// List is an immutable singly-linked list. The nil *List is the empty list, so the zero
// value is ready to use and shared by every list.
//
// Add never modifies the receiver; lists built from a common tail share their nodes.
type List[T any] struct {
	value T
	tail  *List[T]
	count int
}

// Empty returns the empty list for T.
func Empty[T any]() *List[T] { return nil }

// Of creates a list whose head-first order matches values.
func Of[T any](values ...T) *List[T] {
	var l *List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Add(values[i])
	}
	return l
}

// Add returns a new list with value at its head.
func (l *List[T]) Add(value T) *List[T] {
	return &List[T]{value: value, tail: l, count: l.Count() + 1}
}

func (l *List[T]) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}

func (l *List[T]) IsEmpty() bool { return l == nil }

// Value returns the head of the list. It panics with ErrEmptyList if the list is empty.
func (l *List[T]) Value() T {
	if l == nil {
		panic(ErrEmptyList)
	}
	return l.value
}

// Tail returns the list without its head. It panics with ErrEmptyList if the list is empty.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		panic(ErrEmptyList)
	}
	return l.tail
}

// Head returns the head of the list, or false if the list is empty.
func (l *List[T]) Head() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.value, true
}

// Range visits values head-first. If f returns false, iteration will be stopped.
func (l *List[T]) Range(f func(int, T) bool) {
	i := 0
	for nd := l; nd != nil; nd = nd.tail {
		if !f(i, nd.value) {
			return
		}
		i++
	}
}

// Slice copies the list into a slice, head-first (most recently added first).
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Count())
	for nd := l; nd != nil; nd = nd.tail {
		out = append(out, nd.value)
	}
	return out
}
