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
	"fmt"

	"github.com/wdamron/typeresolver/config"
	"github.com/wdamron/typeresolver/types"
)

// registry holds the limits and exclusions of a Resolver. A registry is never modified once
// published; changes are made to a copy which replaces it.
type registry struct {
	limits   types.TypeMap // target key -> sources
	excluded types.TypeMap // definition key -> definition
	groups   map[string]struct{}
}

func newRegistry() *registry {
	return &registry{limits: types.NewTypeMap(), excluded: types.NewTypeMap()}
}

func (r *registry) clone() *registry {
	groups := make(map[string]struct{}, len(r.groups))
	for g := range r.groups {
		groups[g] = struct{}{}
	}
	return &registry{limits: r.limits, excluded: r.excluded, groups: groups}
}

// limit returns the sources registered for target.
func (r *registry) limit(target types.Type) ([]types.Type, bool) {
	sources, ok := r.limits.Get(target.Key())
	if !ok {
		return nil, false
	}
	return sources.Slice(), true
}

func definitionKey(t types.Type) string {
	if n, ok := t.(*types.Named); ok {
		return n.Definition().Key()
	}
	return t.Key()
}

func (r *registry) hasExclusions() bool { return r.excluded.Len() > 0 || len(r.groups) > 0 }

func (r *registry) excludes(t types.Type) bool {
	if _, ok := r.excluded.Get(definitionKey(t)); ok {
		return true
	}
	m := types.ModuleOf(t)
	return m != nil && r.excludesGroup(m)
}

func (r *registry) excludesGroup(m *types.Module) bool {
	_, ok := r.groups[m.Name]
	return ok
}

// Limit restricts the creators of target to those supplied by sources. Without sources, target
// has no creators. Limit fails with ErrAlreadyResolved if the creators of target have already
// been published.
func (r *Resolver) Limit(target types.Type, sources ...types.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := target.Key()
	if _, ok := r.creators.Load(key); ok {
		return fmt.Errorf("%w: %s", ErrAlreadyResolved, types.TypeString(target))
	}
	next := r.registry.Load().clone()
	next.limits = next.limits.Set(key, types.NewTypeList(sources...))
	r.registry.Store(next)
	log.Debugf("limited %s to %d sources", types.TypeString(target), len(sources))
	return nil
}

// Exclude removes ts (and every instantiation of ts) from the candidates of all later
// resolutions. Published results are not affected.
func (r *Resolver) Exclude(ts ...types.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.registry.Load().clone()
	for _, t := range ts {
		key := definitionKey(t)
		if _, ok := next.excluded.Get(key); !ok {
			next.excluded = next.excluded.Add(key, t)
		}
	}
	r.registry.Store(next)
}

// ExcludeGroup removes every type declared by the named modules from the candidates of all later
// resolutions. Published results are not affected.
func (r *Resolver) ExcludeGroup(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.registry.Load().clone()
	for _, name := range names {
		next.groups[name] = struct{}{}
	}
	r.registry.Store(next)
}

// Apply registers the exclusions and limits of cfg. Type names are resolved with parse.
func (r *Resolver) Apply(cfg *config.Config, parse func(expr string) (types.Type, error)) error {
	lookup := func(expr string) (types.Type, error) {
		t, err := parse(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, expr, err)
		}
		return t, nil
	}

	for _, expr := range cfg.Exclude.Types {
		t, err := lookup(expr)
		if err != nil {
			return err
		}
		r.Exclude(t)
	}
	r.ExcludeGroup(cfg.Exclude.Groups...)

	for _, limit := range cfg.Limits {
		target, err := lookup(limit.Target)
		if err != nil {
			return err
		}
		sources := make([]types.Type, len(limit.Sources))
		for i, expr := range limit.Sources {
			if sources[i], err = lookup(expr); err != nil {
				return err
			}
		}
		if err := r.Limit(target, sources...); err != nil {
			return err
		}
	}
	return nil
}
