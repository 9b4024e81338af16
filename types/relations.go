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

// Base returns the base type of t, with t's arguments substituted, or nil if t has no
// declared base type. Object is the implicit base of every class; it is not returned here.
func Base(t Type) Type {
	n, ok := t.(*Named)
	if !ok || n.Decl.Base == nil {
		return nil
	}
	return Members(n, n.Decl.Base)
}

// Interfaces returns every interface implemented by t, including those inherited from its
// base types and from other interfaces. Each interface appears once.
func Interfaces(t Type) []Type {
	n, ok := t.(*Named)
	if !ok {
		return nil
	}
	var out []Type
	seen := make(map[string]struct{})
	var visit func(t Type)
	visit = func(t Type) {
		n, ok := t.(*Named)
		if !ok {
			return
		}
		for _, i := range n.Decl.Interfaces {
			i = Members(n, i)
			if _, ok := seen[i.Key()]; ok {
				continue
			}
			seen[i.Key()] = struct{}{}
			out = append(out, i)
			visit(i)
		}
		if base := Base(n); base != nil {
			visit(base)
		}
	}
	visit(n)
	return out
}

func IsInterface(t Type) bool {
	n, ok := t.(*Named)
	return ok && n.Decl.Kind == Interface
}

// IsValueKind reports whether t is a non-nullable value type.
func IsValueKind(t Type) bool {
	n, ok := t.(*Named)
	return ok && (n.Decl.Kind == Struct || n.Decl.Kind == Enum)
}

// IsRefKind reports whether t is a reference type.
func IsRefKind(t Type) bool {
	switch t := t.(type) {
	case *Array:
		return true
	case *Named:
		return t.Decl.Kind == Class || t.Decl.Kind == Interface
	}
	return false
}

// IsEnumerable reports whether every value of t is known in advance (enumerations and bool).
func IsEnumerable(t Type) bool {
	n, ok := t.(*Named)
	return ok && len(n.Decl.Values) > 0
}

// DefaultConstructor returns the accessible parameterless constructor of t, if any.
func DefaultConstructor(t Type) (*Constructor, bool) {
	n, ok := t.(*Named)
	if !ok || n.Decl.Abstract || n.Decl.Kind == Interface {
		return nil, false
	}
	for _, c := range n.Decl.Constructors {
		if len(c.Params) == 0 && !c.Internal {
			return c, true
		}
	}
	return nil, false
}

// HasDefaultConstructor reports whether a value of t can be created without arguments.
// Value types always can.
func HasDefaultConstructor(t Type) bool {
	if IsValueKind(t) {
		return true
	}
	_, ok := DefaultConstructor(t)
	return ok
}

// PublicConstructors returns the accessible constructors of t which take one or more arguments.
func PublicConstructors(t Type) []*Constructor {
	n, ok := t.(*Named)
	if !ok || n.Decl.Abstract || n.Decl.Kind == Interface {
		return nil
	}
	var out []*Constructor
	for _, c := range n.Decl.Constructors {
		if len(c.Params) > 0 && !c.Internal {
			out = append(out, c)
		}
	}
	return out
}

// IsUsable reports whether t may be offered as a candidate: structs, enumerations, registered
// factories, and concrete classes with at least one accessible constructor.
func IsUsable(t Type) bool {
	n, ok := t.(*Named)
	if !ok {
		return false
	}
	switch {
	case n.Decl.Factory:
		return true
	case n.Decl.Kind == Interface, n.Decl.Abstract:
		return false
	case n.Decl.Kind == Class:
		for _, c := range n.Decl.Constructors {
			if !c.Internal {
				return true
			}
		}
		return false
	}
	return true
}

// Is reports whether t derives from target. Open types match when some binding of their
// parameters would satisfy target; parameters match when all of their constraints do.
func Is(t, target Type) bool {
	if t == nil || target == nil {
		return false
	}
	switch tt := target.(type) {
	case *Array:
		a, ok := t.(*Array)
		return ok && a.Rank == tt.Rank && Is(a.Elem, tt.Elem)
	case *Param:
		for _, c := range tt.Constraints {
			if !Is(t, c) {
				return false
			}
		}
		return true
	}
	if p, ok := t.(*Param); ok {
		for _, c := range p.Constraints {
			if !Is(c, target) {
				return false
			}
		}
		return true
	}
	switch {
	case target.IsGeneric():
		return isGenericType(t, target, false)
	case t.IsGeneric() && !IsInterface(t):
		return isGenericType(t, target, true)
	}
	return AssignableTo(t, target)
}

func isGenericType(t, target Type, typeIsGeneric bool) bool {
	if typeIsGeneric && !IsInterface(t) && IsInterface(target) {
		for _, i := range Interfaces(t) {
			if Is(i, target) || (i.IsGeneric() && isGenericType(i, target, true)) {
				return true
			}
		}
		return false
	}
	for x := t; x != nil; x = Base(x) {
		if typeIsGeneric && !x.IsGeneric() {
			break
		}
		var match bool
		if typeIsGeneric {
			match = matchesGenericType(target, x)
		} else {
			match = matchesGenericType(x, target)
		}
		if match {
			return true
		}
	}
	return false
}

func matchesGenericType(t, generic Type) bool {
	if AssignableTo(t, generic) || matchesDefinition(t, generic) {
		return true
	}
	if IsInterface(generic) {
		for _, i := range Interfaces(t) {
			if matchesDefinition(i, generic) {
				return true
			}
		}
	}
	return false
}

func matchesDefinition(t, generic Type) bool {
	tn, ok := t.(*Named)
	if !ok || len(tn.Args) == 0 {
		return false
	}
	gn, ok := generic.(*Named)
	if !ok || gn.Decl != tn.Decl || len(gn.Args) != len(tn.Args) {
		return false
	}
	for i, arg := range gn.Args {
		if _, ok := arg.(*Param); ok {
			continue
		}
		if !Is(tn.Args[i], arg) {
			return false
		}
	}
	return true
}

// AssignableTo reports whether a value of t is a value of target, without any binding of
// parameters: identity, Object, the base type chain, and implemented interfaces.
func AssignableTo(t, target Type) bool {
	if Identical(t, target) {
		return true
	}
	if n, ok := target.(*Named); ok && n.Decl == ObjectDecl {
		return true
	}
	for x := Base(t); x != nil; x = Base(x) {
		if Identical(x, target) {
			return true
		}
	}
	if IsInterface(target) {
		for _, i := range Interfaces(t) {
			if Identical(i, target) {
				return true
			}
		}
	}
	return false
}

// CorrespondingBaseTypes returns the types in t's base chain (and, if generic is an
// interface, t's interfaces) which share generic's declaration.
func CorrespondingBaseTypes(t Type, generic *Named) []Type {
	var out []Type
	for x := t; x != nil; x = Base(x) {
		if n, ok := x.(*Named); ok && n.IsGenericType() && n.Decl == generic.Decl {
			out = append(out, n)
		}
	}
	if IsInterface(generic) {
		for _, i := range Interfaces(t) {
			n := i.(*Named)
			if n.IsGenericType() && n.Decl == generic.Decl && (n.IsGeneric() || Is(n, generic)) {
				out = append(out, n)
			}
		}
	}
	return out
}
