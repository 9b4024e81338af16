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

package typeutil

// Session tracks the cache keys being populated by one top-level resolution. Population of a
// key may recursively request other keys; a key requested while it is already being populated
// by the same session is re-entrant.
//
// A re-entrant request cuts a cycle short. Every key entered after the re-entered key depends
// on the partial result, and is marked incomplete until it leaves the stack.
type Session struct {
	Stack  []string
	active map[string]int

	// Published counts the entries published by the session.
	Published int

	incomplete []bool

	// initial space:
	_stack      [16]string
	_incomplete [16]bool
}

func (s *Session) Init() {
	s.Stack, s.incomplete, s.active, s.Published = s._stack[:0], s._incomplete[:0], make(map[string]int, 16), 0
}

func (s *Session) Reset() {
	for i := range s._stack {
		s._stack[i], s._incomplete[i] = "", false
	}
	s.Stack, s.incomplete, s.Published = s._stack[:0], s._incomplete[:0], 0
	for k := range s.active {
		delete(s.active, k)
	}
}

// Enter pushes key onto the stack. Enter returns false (and does nothing) if key is already
// being populated by the session.
func (s *Session) Enter(key string) bool {
	if _, ok := s.active[key]; ok {
		return false
	}
	s.active[key] = len(s.Stack)
	s.Stack = append(s.Stack, key)
	s.incomplete = append(s.incomplete, false)
	return true
}

// Leave pops the most recently entered key, and reports whether its result is complete.
func (s *Session) Leave() bool {
	n := len(s.Stack)
	if n == 0 {
		return false
	}
	key, incomplete := s.Stack[n-1], s.incomplete[n-1]
	s.Stack, s.incomplete = s.Stack[:n-1], s.incomplete[:n-1]
	delete(s.active, key)
	return !incomplete
}

// Reenter records a re-entrant request for key: every key entered after key is marked incomplete.
func (s *Session) Reenter(key string) {
	i, ok := s.active[key]
	if !ok {
		return
	}
	for i++; i < len(s.incomplete); i++ {
		s.incomplete[i] = true
	}
}

// Active reports whether key is being populated by the session.
func (s *Session) Active(key string) bool {
	_, ok := s.active[key]
	return ok
}

func (s *Session) Depth() int { return len(s.Stack) }
