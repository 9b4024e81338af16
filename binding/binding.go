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

// binding implements the search algebra for generic resolution: bindings of parameters to
// concrete types, persistent sets of bindings ("worlds"), and spaces of alternative worlds.
package binding

import (
	"strings"

	"github.com/wdamron/typeresolver/linklist"
	"github.com/wdamron/typeresolver/types"
)

// Binding assigns a concrete type to a parameter. A Binding without a parameter marks its
// type as visited by the current resolution.
type Binding struct {
	Param *types.Param
	Type  types.Type
}

func (b Binding) IsVisited() bool { return b.Param == nil }

func (b Binding) String() string {
	if b.Param == nil {
		return "visited " + types.TypeString(b.Type)
	}
	return types.DescriptiveName(b.Param) + " := " + types.TypeString(b.Type)
}

// Set is one self-consistent world: an immutable sequence of bindings in which no parameter
// is assigned two different types. The zero Set is empty.
type Set struct {
	list *linklist.List[Binding]
}

var Empty = Set{}

func (s Set) Len() int { return s.list.Count() }

// Add returns a new set with b at its head. Add does not check b for conflicts; use Bind.
func (s Set) Add(b Binding) Set { return Set{s.list.Add(b)} }

// Lookup returns the type assigned to p in the set.
func (s Set) Lookup(p *types.Param) (types.Type, bool) {
	var found types.Type
	s.list.Range(func(_ int, b Binding) bool {
		if b.Param == p {
			found = b.Type
			return false
		}
		return true
	})
	return found, found != nil
}

// Bound reports whether p is assigned a type in the set.
func (s Set) Bound(p *types.Param) bool {
	_, ok := s.Lookup(p)
	return ok
}

// Contains reports whether any binding in the set (assignment or visited marker) refers to t.
func (s Set) Contains(t types.Type) bool {
	found := false
	s.list.Range(func(_ int, b Binding) bool {
		found = types.Identical(b.Type, t)
		return !found
	})
	return found
}

// MarkVisited returns a new set which marks t as visited.
func (s Set) MarkVisited(t types.Type) Set { return s.Add(Binding{Type: t}) }

// Bind assigns t to p. If p is already assigned t, the receiver is returned; if p is
// assigned a different type, Bind returns false.
func (s Set) Bind(p *types.Param, t types.Type) (Set, bool) {
	if existing, ok := s.Lookup(p); ok {
		return s, types.Identical(existing, t)
	}
	return s.Add(Binding{Param: p, Type: t}), true
}

// Mapping returns the parameter assignments of the set.
func (s Set) Mapping() map[*types.Param]types.Type {
	m := make(map[*types.Param]types.Type, s.Len())
	s.list.Range(func(_ int, b Binding) bool {
		if b.Param != nil {
			if _, ok := m[b.Param]; !ok {
				m[b.Param] = b.Type
			}
		}
		return true
	})
	return m
}

// If f returns false, iteration will be stopped.
func (s Set) Range(f func(Binding) bool) {
	s.list.Range(func(_ int, b Binding) bool { return f(b) })
}

func (s Set) Bindings() []Binding { return s.list.Slice() }

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	s.list.Range(func(i int, b Binding) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.String())
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
