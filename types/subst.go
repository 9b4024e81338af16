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

package types

// Subst replaces every parameter in t which has a mapping in m. Types without mapped
// parameters are returned as-is.
func Subst(t Type, m map[*Param]Type) Type {
	if len(m) == 0 || !t.IsGeneric() {
		return t
	}
	switch t := t.(type) {
	case *Param:
		if r, ok := m[t]; ok {
			return r
		}
		return t
	case *Array:
		elem := Subst(t.Elem, m)
		if elem == t.Elem {
			return t
		}
		return NewArray(elem, t.Rank)
	case *Named:
		var args []Type
		for i, arg := range t.Args {
			r := Subst(arg, m)
			if r != arg && args == nil {
				args = make([]Type, len(t.Args))
				copy(args, t.Args[:i])
			}
			if args != nil {
				args[i] = r
			}
		}
		if args == nil {
			return t
		}
		return NewNamed(t.Decl, args...)
	}
	return t
}

// DeclMapping maps the declaration parameters of t to the arguments of t.
func DeclMapping(t *Named) map[*Param]Type {
	if len(t.Args) == 0 {
		return nil
	}
	m := make(map[*Param]Type, len(t.Args))
	for i, p := range t.Decl.Params {
		if i < len(t.Args) {
			m[p] = t.Args[i]
		}
	}
	return m
}

// Members substitutes the arguments of t into x, which may refer to the parameters of t's declaration.
func Members(t *Named, x Type) Type {
	if x == nil {
		return nil
	}
	return Subst(x, DeclMapping(t))
}

// Params returns every distinct parameter within t, in order of first appearance.
func Params(t Type) []*Param {
	var ps []*Param
	collectParams(t, &ps)
	return ps
}

func collectParams(t Type, ps *[]*Param) {
	if !t.IsGeneric() {
		return
	}
	switch t := t.(type) {
	case *Param:
		for _, p := range *ps {
			if p == t {
				return
			}
		}
		*ps = append(*ps, t)
	case *Array:
		collectParams(t.Elem, ps)
	case *Named:
		for _, arg := range t.Args {
			collectParams(arg, ps)
		}
	}
}

// GenericArgs returns the generic arguments of t, or nil if t has none.
func GenericArgs(t Type) []Type {
	if n, ok := t.(*Named); ok {
		return n.Args
	}
	return nil
}

// Identical reports whether a and b denote the same type.
func Identical(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || a.Key() == b.Key()
}

// Contains reports whether ts contains a type identical to t.
func Contains(ts []Type, t Type) bool {
	for _, x := range ts {
		if Identical(x, t) {
			return true
		}
	}
	return false
}

// ModuleOf returns the module which declares t, or which declares the owner of a parameter.
func ModuleOf(t Type) *Module {
	switch t := t.(type) {
	case *Named:
		return t.Decl.Module
	case *Array:
		return ModuleOf(t.Elem)
	case *Param:
		switch {
		case t.Decl != nil:
			return t.Decl.Module
		case t.Method != nil && t.Method.Owner != nil:
			return t.Method.Owner.Module
		}
	}
	return nil
}
