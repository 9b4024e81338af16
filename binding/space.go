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

package binding

// Space is the set of surviving worlds for one resolution attempt. Worlds are immutable;
// only membership of the space changes.
type Space struct {
	worlds []Set
}

func NewSpace(worlds ...Set) *Space {
	return &Space{worlds: append([]Set(nil), worlds...)}
}

func (s *Space) Len() int      { return len(s.worlds) }
func (s *Space) IsEmpty() bool { return len(s.worlds) == 0 }
func (s *Space) Worlds() []Set { return s.worlds }
func (s *Space) Clear()        { s.worlds = nil }

func (s *Space) Add(worlds ...Set) { s.worlds = append(s.worlds, worlds...) }

// Clone returns a new space with the same worlds.
func (s *Space) Clone() *Space { return NewSpace(s.worlds...) }

// Reduce replaces every world with f's image, dropping worlds for which f returns false.
func (s *Space) Reduce(f func(Set) (Set, bool)) {
	var out []Set
	for _, w := range s.worlds {
		if next, ok := f(w); ok {
			out = append(out, next)
		}
	}
	s.worlds = out
}

// ReduceMulti replaces every world with the zero or more worlds f returns for it.
func (s *Space) ReduceMulti(f func(Set) []Set) {
	var out []Set
	for _, w := range s.worlds {
		out = append(out, f(w)...)
	}
	s.worlds = out
}

// Narrow applies f to every surviving world for each item in order. Worlds for which f
// returns false are dropped.
func Narrow[T any](s *Space, items []T, f func(Set, T) (Set, bool)) {
	for _, item := range items {
		if s.IsEmpty() {
			return
		}
		s.Reduce(func(w Set) (Set, bool) { return f(w, item) })
	}
}

// NarrowMulti applies f to every surviving world for each item in order, replacing each
// world with the worlds f returns for it.
func NarrowMulti[T any](s *Space, items []T, f func(Set, T) []Set) {
	for _, item := range items {
		if s.IsEmpty() {
			return
		}
		s.ReduceMulti(func(w Set) []Set { return f(w, item) })
	}
}

// Branch explores each item independently: the current worlds are cloned into a sub-space
// per item, f may mutate the sub-space, and the space becomes the union of all sub-spaces.
func Branch[T any](s *Space, items []T, f func(*Space, T)) {
	initial := s.worlds
	var out []Set
	for _, item := range items {
		sub := NewSpace(initial...)
		f(sub, item)
		out = append(out, sub.worlds...)
	}
	s.worlds = out
}

// Keyed values may be deduplicated by Finalize.
type Keyed interface {
	Key() string
}

// Finalize maps every world to a result, dropping worlds for which f returns false.
// Results with equal keys are returned once, in order of first appearance.
func Finalize[R Keyed](s *Space, f func(Set) (R, bool)) []R {
	var out []R
	seen := make(map[string]struct{}, len(s.worlds))
	for _, w := range s.worlds {
		r, ok := f(w)
		if !ok {
			continue
		}
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
