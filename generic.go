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

package typeresolver

import (
	"github.com/wdamron/typeresolver/binding"
	"github.com/wdamron/typeresolver/linklist"
	"github.com/wdamron/typeresolver/types"
)

// cacheable reports whether the concrete types of t may be cached for world: none of t's own
// parameters may be bound.
func cacheable(t types.Type, world binding.Set) bool {
	open := OpenParameters(t)
	if len(open) == 0 {
		open = []types.Type{t}
	}
	for _, p := range paramsOf(open) {
		if world.Bound(p) {
			return false
		}
	}
	return true
}

// paramsOf returns the distinct parameters occurring in ts.
func paramsOf(ts []types.Type) []*types.Param {
	var ps []*types.Param
	for _, t := range ts {
	next:
		for _, p := range types.Params(t) {
			for _, seen := range ps {
				if seen == p {
					continue next
				}
			}
			ps = append(ps, p)
		}
	}
	return ps
}

// MakeConcrete substitutes the bindings of world into t. The result is invalid unless every
// parameter of t is bound.
func MakeConcrete(t types.Type, world binding.Set) (types.Type, bool) {
	if !t.IsGeneric() {
		return t, true
	}
	concrete := types.Subst(t, world.Mapping())
	return concrete, !concrete.IsGeneric()
}

// MakeConcreteMethod binds the type parameters of m from world.
func MakeConcreteMethod(m *types.Method, world binding.Set) (*ConcreteMethod, bool) {
	if !m.IsGeneric() {
		return &ConcreteMethod{Method: m}, true
	}
	typeArgs := make([]types.Type, len(m.TypeParams))
	for i, tp := range m.TypeParams {
		t, ok := world.Lookup(tp)
		if !ok || t.IsGeneric() {
			return nil, false
		}
		typeArgs[i] = t
	}
	return &ConcreteMethod{Method: m, TypeArgs: typeArgs}, true
}

// satisfyAll narrows space to the worlds in which candidate satisfies every constraint.
func (s *session) satisfyAll(space *binding.Space, candidate types.Type, constraints []Constraint) {
	binding.NarrowMulti(space, constraints, func(w binding.Set, c Constraint) []binding.Set {
		return c.satisfy(s, candidate, w)
	})
}

// bindParameters branches space over the candidates for each constrained parameter in turn.
// Parameters without limiting constraints are left unbound.
func (s *session) bindParameters(space *binding.Space, params []*types.Param) {
	for _, p := range params {
		constraints, groups := ConstraintsOf(p)
		if len(constraints) == 0 || len(groups) == 0 {
			continue
		}
		usageOnly := true
		for _, c := range constraints {
			if !c.IsUsage() {
				usageOnly = false
				break
			}
		}

		binding.Branch(space, s.r.candidates(groups), func(sub *binding.Space, candidate types.Type) {
			s.satisfyAll(sub, candidate, constraints)
			sub.Reduce(func(w binding.Set) (binding.Set, bool) {
				concrete, ok := MakeConcrete(candidate, w)
				switch {
				case !ok:
					return w, false
				case usageOnly || w.Bound(p):
					return w, true
				}
				return w.Bind(p, concrete)
			})
		})

		if space.IsEmpty() {
			return
		}
	}
}

// concreteTypes returns the instantiations of t consistent with world. A type which is already
// being resolved within world has no instantiations.
func (s *session) concreteTypes(t types.Type, world binding.Set) []types.Type {
	if !t.IsGeneric() {
		return []types.Type{t}
	}
	key := t.Key()
	cache := cacheable(t, world)
	if cache {
		if v, ok := s.r.concrete.Load(key); ok {
			return v.([]types.Type)
		}
	}

	sessionKey := "types:" + key
	if world.Contains(t) || !s.Enter(sessionKey) {
		s.Reenter(sessionKey)
		return nil
	}
	space := binding.NewSpace(world.MarkVisited(t))
	s.bindParameters(space, types.Params(t))
	out := binding.Finalize(space, func(w binding.Set) (types.Type, bool) {
		return MakeConcrete(t, w)
	})
	if complete := s.Leave(); !complete || !cache {
		return out
	}

	v, loaded := s.r.concrete.LoadOrStore(key, out)
	if !loaded {
		s.Published++
		log.Debugf("resolved %d concrete types for %s", len(out), types.TypeString(t))
	}
	return v.([]types.Type)
}

// assignedArguments narrows space to the worlds which bind the open arguments of generic to the
// corresponding arguments of concrete. Each way in which concrete corresponds to generic is kept
// as a separate world.
func (s *session) assignedArguments(space *binding.Space, concrete, generic types.Type) {
	binding.Branch(space, correspondingPairs(concrete, generic), func(sub *binding.Space, pair [2]types.Type) {
		assigned, unassigned := types.GenericArgs(pair[0]), types.GenericArgs(pair[1])
		ca, concreteArray := pair[0].(*types.Array)
		ga, genericArray := pair[1].(*types.Array)
		if concreteArray && genericArray {
			assigned, unassigned = []types.Type{ca.Elem}, []types.Type{ga.Elem}
		}
		for i := 0; !sub.IsEmpty() && i < len(unassigned) && i < len(assigned); i++ {
			arg, open := assigned[i], unassigned[i]
			if _, ok := arg.(*types.Param); ok {
				continue
			}
			p, ok := open.(*types.Param)
			if !ok {
				if open.IsGeneric() {
					s.assignedArguments(sub, arg, open)
				}
				continue
			}
			if arg.IsGeneric() {
				continue
			}
			if !types.Is(arg, p) {
				sub.Clear()
				break
			}
			sub.Reduce(func(w binding.Set) (binding.Set, bool) { return w.Bind(p, arg) })
		}
		if p, ok := generic.(*types.Param); ok && !concrete.IsGeneric() {
			sub.Reduce(func(w binding.Set) (binding.Set, bool) { return w.Bind(p, concrete) })
		}
	})
}

// correspondingPairs pairs concrete with each type it derives from which shares a declaration
// with generic (or with a generic constraint of generic).
func correspondingPairs(concrete, generic types.Type) [][2]types.Type {
	var pairs [][2]types.Type
	switch g := generic.(type) {
	case *types.Named:
		if !g.IsGenericType() {
			break
		}
		for _, c := range types.CorrespondingBaseTypes(concrete, g) {
			pairs = append(pairs, [2]types.Type{c, g})
		}
		return pairs
	case *types.Array:
		if c, ok := concrete.(*types.Array); ok && c.Rank == g.Rank {
			return [][2]types.Type{{c, g}}
		}
		return nil
	case *types.Param:
		for _, c := range g.Constraints {
			n, ok := c.(*types.Named)
			if !ok || !n.IsGenericType() {
				continue
			}
			for _, corr := range types.CorrespondingBaseTypes(concrete, n) {
				pairs = append(pairs, [2]types.Type{corr, n})
			}
		}
		if pairs != nil {
			return pairs
		}
	}
	return [][2]types.Type{{concrete, generic}}
}

// concreteMethods resolves the type parameters of m from their constraints. If none resolve, the
// type parameters are inferred from every permutation of the creatable types of m's generic
// parameter types.
func (s *session) concreteMethods(m *types.Method, world binding.Set) []*ConcreteMethod {
	if !m.IsGeneric() {
		return []*ConcreteMethod{{Method: m}}
	}
	space := binding.NewSpace(world)
	s.bindParameters(space, paramsOf(OpenMethodParameters(m)))
	methods := binding.Finalize(space, func(w binding.Set) (*ConcreteMethod, bool) {
		return MakeConcreteMethod(m, w)
	})
	if len(methods) > 0 {
		return methods
	}

	var generic []types.Type
	for _, p := range m.Params {
		if n, ok := p.(*types.Named); ok && n.IsGenericType() {
			generic = append(generic, n)
		}
	}
	creatable := make([][]types.Type, len(generic))
	for i, t := range generic {
		creatable[i] = creatableTypes(s.creators(t))
	}

	space = binding.NewSpace(world)
	binding.Branch(space, linklist.Permute(creatable), func(sub *binding.Space, perm []types.Type) {
		for i, t := range perm {
			s.assignedArguments(sub, t, generic[i])
		}
	})
	return binding.Finalize(space, func(w binding.Set) (*ConcreteMethod, bool) {
		return MakeConcreteMethod(m, w)
	})
}

// creatableTypes returns the distinct types produced by creators, in order.
func creatableTypes(creators []Creator) []types.Type {
	var out []types.Type
	for _, c := range creators {
		if !types.Contains(out, c.Type()) {
			out = append(out, c.Type())
		}
	}
	return out
}

// implementations returns the concrete instantiations of every candidate which derives from target.
func (s *session) implementations(target types.Type) []types.Type {
	constraint := Inheritance(target)
	var out []types.Type
	for _, candidate := range s.r.candidates(s.groupsFor(target)) {
		space := binding.NewSpace(binding.Empty)
		s.satisfyAll(space, candidate, []Constraint{constraint})
		for _, w := range space.Worlds() {
			if concrete, ok := MakeConcrete(candidate, w); ok && !types.Contains(out, concrete) {
				out = append(out, concrete)
			}
		}
	}
	return out
}

// groupsFor returns the modules which candidates for target must be able to reference.
func (s *session) groupsFor(target types.Type) []*types.Module {
	p, ok := target.(*types.Param)
	if !ok {
		if m := types.ModuleOf(target); m != nil {
			return []*types.Module{m}
		}
		return nil
	}
	var groups []*types.Module
	for _, c := range p.Constraints {
		m := types.ModuleOf(c)
		if m == nil {
			continue
		}
		dup := false
		for _, g := range groups {
			dup = dup || g == m
		}
		if !dup {
			groups = append(groups, m)
		}
	}
	return groups
}
