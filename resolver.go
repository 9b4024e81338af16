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
	"sync"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"github.com/wdamron/typeresolver/binding"
	"github.com/wdamron/typeresolver/catalog"
	"github.com/wdamron/typeresolver/internal/typeutil"
	"github.com/wdamron/typeresolver/types"
)

var log = commonlog.GetLogger("typeresolver")

// Resolver resolves open generic types and methods into concrete instantiations, and
// synthesizes creators for requested types.
//
// All methods of a Resolver are safe for concurrent use. Resolved types and creators are cached
// for the lifetime of the Resolver: entries are published once, fully computed, and read without
// locking. Populating the caches is serialized by a single lock, so that recursive population
// across goroutines cannot deadlock.
type Resolver struct {
	catalog     catalog.Catalog
	interceptor Interceptor

	mu       sync.Mutex
	concrete sync.Map // type key -> []types.Type
	creators sync.Map // type key -> []Creator
	registry atomic.Pointer[registry]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithInterceptor sets the function which performs every primitive construction of a creator.
func WithInterceptor(i Interceptor) Option {
	return func(r *Resolver) { r.interceptor = i }
}

// Create a resolver which draws candidate types from cat.
//
// Instances of object are never synthesized: every type derives from object, so its creators
// would include every creatable type.
func NewResolver(cat catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{catalog: cat}
	for _, opt := range opts {
		opt(r)
	}
	if r.interceptor == nil {
		r.interceptor = directly
	}
	r.registry.Store(newRegistry())
	if err := r.Limit(types.Object); err != nil {
		panic(err)
	}
	return r
}

// session carries the state of one top-level call into the resolver. Sessions are only used
// while the resolver's lock is held.
type session struct {
	r *Resolver
	typeutil.Session
}

func (r *Resolver) newSession() *session {
	s := &session{r: r}
	s.Init()
	return s
}

// locked runs f within a new session, holding the resolver's lock.
func (r *Resolver) locked(f func(s *session)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.newSession()
	f(s)
	if s.Published > 0 {
		log.Debugf("published %d cache entries", s.Published)
	}
}

// candidates returns the usable types for groups, without excluded types and groups.
func (r *Resolver) candidates(groups []*types.Module) []types.Type {
	if len(groups) == 0 {
		return nil
	}
	reg := r.registry.Load()
	for _, g := range groups {
		if reg.excludesGroup(g) {
			return nil
		}
	}
	usable := r.catalog.UsableTypes(groups...)
	if !reg.hasExclusions() {
		return usable
	}
	out := make([]types.Type, 0, len(usable))
	for _, t := range usable {
		if !reg.excludes(t) {
			out = append(out, t)
		}
	}
	return out
}

// ConcreteTypes returns every concrete instantiation of t consistent with world. Closed types are
// returned as-is. Results are cached for t when world binds none of t's own parameters.
func (r *Resolver) ConcreteTypes(t types.Type, world binding.Set) []types.Type {
	if !t.IsGeneric() {
		return []types.Type{t}
	}
	if cacheable(t, world) {
		if v, ok := r.concrete.Load(t.Key()); ok {
			return v.([]types.Type)
		}
	}
	var out []types.Type
	r.locked(func(s *session) { out = s.concreteTypes(t, world) })
	return out
}

// ConcreteMethods returns every concrete instantiation of m. If m's type parameters cannot be
// resolved from their constraints, they are inferred from the creatable types of m's generic
// parameter types.
func (r *Resolver) ConcreteMethods(m *types.Method) []*ConcreteMethod {
	var out []*ConcreteMethod
	r.locked(func(s *session) { out = s.concreteMethods(m, binding.Empty) })
	return out
}

// Implementations returns every concrete candidate type which derives from target.
func (r *Resolver) Implementations(target types.Type) []types.Type {
	var out []types.Type
	r.locked(func(s *session) { out = s.implementations(target) })
	return out
}

// Creators returns the creators of instances of target. The result is shared and must not be
// modified.
func (r *Resolver) Creators(target types.Type) []Creator {
	if v, ok := r.creators.Load(target.Key()); ok {
		return v.([]Creator)
	}
	var out []Creator
	r.locked(func(s *session) { out = s.creators(target) })
	return out
}

// SatisfyAll returns the worlds in which candidate satisfies every constraint in order.
func (r *Resolver) SatisfyAll(world binding.Set, candidate types.Type, constraints []Constraint) []binding.Set {
	space := binding.NewSpace(world)
	r.locked(func(s *session) { s.satisfyAll(space, candidate, constraints) })
	return space.Worlds()
}

// BindParameters binds each constrained parameter in params to every satisfying candidate.
func (r *Resolver) BindParameters(world binding.Set, params []*types.Param) []binding.Set {
	space := binding.NewSpace(world)
	r.locked(func(s *session) { s.bindParameters(space, params) })
	return space.Worlds()
}

// AssignedArguments returns the worlds which bind the open arguments of generic to the
// corresponding arguments of concrete.
func (r *Resolver) AssignedArguments(world binding.Set, concrete, generic types.Type) []binding.Set {
	space := binding.NewSpace(world)
	r.locked(func(s *session) { s.assignedArguments(space, concrete, generic) })
	return space.Worlds()
}
