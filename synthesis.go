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

// Types which declare this many parameterized constructors (or more) are only created through
// their default constructor.
const maxParameterizedConstructors = 3

// creators returns the creators of target, publishing them once fully computed. A request for a
// target which is already being synthesized by the session has no creators.
func (s *session) creators(target types.Type) []Creator {
	key := target.Key()
	if v, ok := s.r.creators.Load(key); ok {
		return v.([]Creator)
	}
	sessionKey := "creators:" + key
	if !s.Enter(sessionKey) {
		s.Reenter(sessionKey)
		return nil
	}

	var out []Creator
	if x, ok := types.CreatedType(target); ok {
		out = s.adapters(x)
	} else {
		out = s.synthesize(target, s.sources(target))
	}
	if complete := s.Leave(); !complete {
		return out
	}

	v, loaded := s.r.creators.LoadOrStore(key, out)
	if !loaded {
		s.Published++
		log.Debugf("synthesized %d creators for %s", len(out), types.TypeString(target))
	}
	return v.([]Creator)
}

// sources returns the registered sources for target, or the candidates for target. Excluded
// types are never sources.
func (s *session) sources(target types.Type) []types.Type {
	reg := s.r.registry.Load()
	limited, ok := reg.limit(target)
	if !ok {
		return s.r.candidates(s.groupsFor(target))
	}
	if !reg.hasExclusions() {
		return limited
	}
	out := make([]types.Type, 0, len(limited))
	for _, t := range limited {
		if !reg.excludes(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *session) synthesize(target types.Type, sources []types.Type) []Creator {
	var out []Creator
	seen := make(map[string]struct{})
	for _, source := range sources {
		for _, c := range s.sourceCreators(target, source) {
			if !types.Is(c.Type(), target) {
				continue
			}
			if _, dup := seen[c.Key()]; dup {
				continue
			}
			seen[c.Key()] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func (s *session) sourceCreators(target, source types.Type) []Creator {
	switch {
	case source.IsGeneric():
		return s.genericCreators(target, source)
	case types.Is(source, target):
		return s.constructorCreators(target, source)
	case isFactory(source):
		return s.factoryCreators(target, source.(*types.Named))
	}
	return nil
}

func isFactory(t types.Type) bool {
	n, ok := t.(*types.Named)
	return ok && n.Decl.Factory
}

// adapters wraps each creator of x as a creator of `Creator<x>`. If x is open, each adapter
// creates a closed creator type.
func (s *session) adapters(x types.Type) []Creator {
	inner := s.creators(x)
	out := make([]Creator, 0, len(inner))
	for _, c := range inner {
		created := x
		if x.IsGeneric() {
			created = c.Type()
			if n, ok := x.(*types.Named); ok {
				if corr := types.CorrespondingBaseTypes(c.Type(), n); len(corr) > 0 && !corr[0].IsGeneric() {
					created = corr[0]
				}
			}
		}
		out = append(out, newAdapterCreator(created, c))
	}
	return out
}

// genericCreators resolves the open source into every instantiation which derives from target,
// or which satisfies target's constraints if target is a parameter.
func (s *session) genericCreators(target, source types.Type) []Creator {
	var constraints []Constraint
	if p, ok := target.(*types.Param); ok {
		constraints, _ = ConstraintsOf(p)
	} else {
		constraints = []Constraint{Inheritance(target)}
	}
	space := binding.NewSpace(binding.Empty)
	s.satisfyAll(space, source, constraints)

	var out []Creator
	for _, w := range space.Worlds() {
		if concrete, ok := MakeConcrete(source, w); ok {
			out = append(out, s.sourceCreators(target, concrete)...)
		}
	}
	return out
}

// constructorCreators returns creators for the values, default constructor, and parameterized
// constructors of the closed type available.
func (s *session) constructorCreators(target, available types.Type) []Creator {
	t, ok := available.(*types.Named)
	if !ok {
		return nil
	}

	// Constructor parameters are checked against the target as instantiated by available:
	resolved := target
	if target.IsGeneric() {
		definition := target
		if n, ok := target.(*types.Named); ok {
			definition = n.Definition()
		}
		space := binding.NewSpace(binding.Empty)
		s.assignedArguments(space, available, definition)
		if worlds := space.Worlds(); len(worlds) > 0 {
			if p, ok := definition.(*types.Param); ok {
				if bound, ok := worlds[0].Lookup(p); ok {
					resolved = bound
				}
			} else if concrete, ok := MakeConcrete(definition, worlds[0]); ok {
				resolved = concrete
			}
		}
	}

	var out []Creator
	switch {
	case types.IsEnumerable(t):
		for _, v := range t.Decl.Values {
			out = append(out, newValueCreator(t, v))
		}
	case types.HasDefaultConstructor(t):
		ctor, _ := types.DefaultConstructor(t)
		out = append(out, newCtorCreator(t, ctor, nil, s.r.interceptor))
	}

	ctors := types.PublicConstructors(t)
	if len(ctors) >= maxParameterizedConstructors {
		return out
	}
	for _, ctor := range ctors {
		params := make([]types.Type, len(ctor.Params))
		for i, p := range ctor.Params {
			params[i] = types.Members(t, p)
		}
		if recursive(params, resolved, t) {
			continue
		}
		for _, args := range s.argumentCreators(params) {
			out = append(out, newCtorCreator(t, ctor, args, s.r.interceptor))
		}
	}
	return out
}

// recursive reports whether any parameter derives from one of owners. Bare type parameters are
// resolved by inference, and never recursive.
func recursive(params []types.Type, owners ...types.Type) bool {
	for _, p := range params {
		if _, ok := p.(*types.Param); ok {
			continue
		}
		for _, owner := range owners {
			if types.Is(p, owner) {
				return true
			}
		}
	}
	return false
}

// argumentCreators returns every permutation of the creators of params.
func (s *session) argumentCreators(params []types.Type) [][]Creator {
	available := make([][]Creator, len(params))
	for i, p := range params {
		if available[i] = s.creators(p); len(available[i]) == 0 {
			return nil
		}
	}
	return linklist.Permute(available)
}

// factoryCreators invokes each factory method of factory which supplies instances of target,
// once per permutation of its arguments. Each function a factory method returns is a creator.
func (s *session) factoryCreators(target types.Type, factory *types.Named) []Creator {
	var out []Creator
	for _, m := range factory.Decl.Methods {
		if m.Factory == nil || m.Result == nil {
			continue
		}
		if !types.Is(m.Result, target) && !types.Is(target, m.Result) {
			continue
		}
		if recursive(m.Params, factory) {
			continue
		}
		for _, args := range s.argumentCreators(m.Params) {
			for _, cm := range s.inferMethod(m, args) {
				out = append(out, s.invokeFactory(cm, args)...)
			}
		}
	}
	return out
}

// inferMethod binds the type parameters of m from the types created by args.
func (s *session) inferMethod(m *types.Method, args []Creator) []*ConcreteMethod {
	if !m.IsGeneric() {
		return []*ConcreteMethod{{Method: m}}
	}
	space := binding.NewSpace(binding.Empty)
	for i, p := range m.Params {
		if p.IsGeneric() {
			s.assignedArguments(space, args[i].Type(), p)
		}
	}
	return binding.Finalize(space, func(w binding.Set) (*ConcreteMethod, bool) {
		return MakeConcreteMethod(m, w)
	})
}

func (s *session) invokeFactory(m *ConcreteMethod, args []Creator) []Creator {
	values, err := createArgs(args)
	if err != nil {
		log.Warningf("skipping factory %s: %s", m, err.Error())
		return nil
	}
	result := m.Result()
	var thunks []types.Thunk
	_, err = s.r.interceptor(result, func() (interface{}, error) {
		var err error
		thunks, err = m.Method.Factory(m.TypeArgs, values)
		return thunks, err
	})
	if err != nil {
		log.Warningf("skipping factory %s: %s", m, err.Error())
		return nil
	}

	out := make([]Creator, len(thunks))
	for i, thunk := range thunks {
		out[i] = newThunkCreator(result, m, args, i, thunk, s.r.interceptor)
	}
	return out
}
