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

package linklist_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/wdamron/typeresolver/linklist"
)

func TestEmptyList(t *testing.T) {
	l := Empty[int]()
	if l.Count() != 0 || !l.IsEmpty() {
		t.Fatalf("expected empty list, found count %d", l.Count())
	}
	if _, ok := l.Head(); ok {
		t.Fatalf("expected no head for empty list")
	}
	if len(l.Slice()) != 0 {
		t.Fatalf("expected empty slice")
	}
	expectEmptyPanic(t, func() { l.Value() })
	expectEmptyPanic(t, func() { l.Tail() })
}

func expectEmptyPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyList) {
			t.Fatalf("expected ErrEmptyList panic, found %v", r)
		}
	}()
	f()
}

func TestAddIsPersistent(t *testing.T) {
	x := Empty[string]().Add("x")
	xy := x.Add("y")
	xz := x.Add("z")

	if s := xy.Slice(); len(s) != 2 || s[0] != "y" || s[1] != "x" {
		t.Fatalf("unexpected order: %v", s)
	}
	if s := xz.Slice(); len(s) != 2 || s[0] != "z" || s[1] != "x" {
		t.Fatalf("unexpected order: %v", s)
	}
	if x.Count() != 1 || xy.Count() != 2 {
		t.Fatalf("unexpected counts: %d, %d", x.Count(), xy.Count())
	}
	if xy.Tail() != x || xz.Tail() != x {
		t.Fatalf("expected shared tail")
	}
	if xy.Value() != "y" {
		t.Fatalf("unexpected head: %s", xy.Value())
	}
}

func TestOfAndRange(t *testing.T) {
	l := Of(1, 2, 3, 4)
	if l.Count() != 4 {
		t.Fatalf("unexpected count: %d", l.Count())
	}
	var seen []int
	l.Range(func(i, v int) bool {
		if i != v-1 {
			t.Fatalf("unexpected index %d for value %d", i, v)
		}
		seen = append(seen, v)
		return v < 3
	})
	if len(seen) != 3 {
		t.Fatalf("expected iteration to stop after 3 values, found %v", seen)
	}
}

func TestPermute(t *testing.T) {
	single := Permute([][]int{{1, 2, 3}})
	if permString(single) != "[1][2][3]" {
		t.Fatalf("unexpected permutations: %s", permString(single))
	}

	pairs := Permute([][]int{{1, 2, 3}, {4, 5, 6}})
	if len(pairs) != 9 {
		t.Fatalf("expected 9 permutations, found %d", len(pairs))
	}
	if permString(pairs) != "[1,4][1,5][1,6][2,4][2,5][2,6][3,4][3,5][3,6]" {
		t.Fatalf("unexpected permutations: %s", permString(pairs))
	}

	if gap := Permute([][]int{{1}, {}, {3}}); len(gap) != 0 {
		t.Fatalf("expected no permutations, found %s", permString(gap))
	}

	if none := Permute[int](nil); len(none) != 1 || len(none[0]) != 0 {
		t.Fatalf("expected a single empty permutation, found %v", none)
	}
}

func TestQueueVisitsOnce(t *testing.T) {
	q := NewQueue(strconv.Itoa, 1, 2, 2, 3)
	var order []int
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		order = append(order, v)
		if v == 1 {
			q.Push(1, 4)
		}
	}
	if len(order) != 4 || order[0] != 1 || order[1] != 2 || order[2] != 3 || order[3] != 4 {
		t.Fatalf("unexpected visit order: %v", order)
	}
}

func permString(perms [][]int) string {
	s := ""
	for _, p := range perms {
		s += "["
		for i, v := range p {
			if i > 0 {
				s += ","
			}
			s += strconv.Itoa(v)
		}
		s += "]"
	}
	return s
}

func BenchmarkPermute(b *testing.B) {
	seqs := [][]int{{1, 2, 3, 4}, {5, 6, 7}, {8, 9}, {10, 11, 12}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Permute(seqs)
	}
}
