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

// catalog supplies the candidate types considered during generic resolution.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/singleflight"

	"github.com/wdamron/typeresolver/internal/util"
	"github.com/wdamron/typeresolver/types"
)

var log = commonlog.GetLogger("typeresolver.catalog")

var (
	ErrDuplicateType   = errors.New("Duplicate type declaration")
	ErrDuplicateModule = errors.New("Duplicate module name")
	ErrImportCycle     = errors.New("Module import cycle")
	ErrUnknownType     = errors.New("Unknown type")
	ErrUnknownModule   = errors.New("Unknown module")
	ErrSyntax          = errors.New("Invalid type expression")
)

// Catalog is the source of candidate types. UsableTypes returns every usable type declared in a
// module which could reference all of the given groups.
type Catalog interface {
	UsableTypes(groups ...*types.Module) []types.Type
}

// Memory is an in-memory catalog of modules and declarations. The built-in declarations are
// always registered. Memory is safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	modules   []*types.Module
	index     map[*types.Module]int
	byModule  map[string]*types.Module
	decls     []*types.Decl
	byName    map[string]*types.Decl
	referrers util.Graph

	// usable types are memoized per group set, and reset whenever declarations are added
	memo map[string][]types.Type
	gen  uint64
	sf   singleflight.Group
}

var _ Catalog = (*Memory)(nil)

func New() *Memory {
	c := &Memory{
		index:    make(map[*types.Module]int),
		byModule: make(map[string]*types.Module),
		byName:   make(map[string]*types.Decl),
		memo:     make(map[string][]types.Type),
	}
	if err := c.Add(types.Builtins()...); err != nil {
		panic(err)
	}
	return c
}

// Add registers decls and the modules they belong to. Modules imported by those modules are
// registered as well. If any declaration name is already taken, or the module imports would
// form a cycle, nothing is added.
func (c *Memory) Add(decls ...*types.Decl) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]struct{}, len(decls))
	for _, d := range decls {
		if d.Module == nil {
			return fmt.Errorf("%s: %w", d.Name, ErrUnknownModule)
		}
		if _, dup := c.byName[d.Name]; dup {
			return fmt.Errorf("%s: %w", d.Name, ErrDuplicateType)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("%s: %w", d.Name, ErrDuplicateType)
		}
		seen[d.Name] = struct{}{}
	}

	modules := append([]*types.Module(nil), c.modules...)
	index := make(map[*types.Module]int, len(c.index))
	for m, i := range c.index {
		index[m] = i
	}
	var visit func(m *types.Module) error
	visit = func(m *types.Module) error {
		if _, ok := index[m]; ok {
			return nil
		}
		if other, ok := c.byModule[m.Name]; ok && other != m {
			return fmt.Errorf("%s: %w", m.Name, ErrDuplicateModule)
		}
		index[m] = len(modules)
		modules = append(modules, m)
		for _, imp := range m.Imports {
			if err := visit(imp); err != nil {
				return err
			}
		}
		return nil
	}
	for _, d := range decls {
		if err := visit(d.Module); err != nil {
			return err
		}
	}

	imports := util.NewGraph(len(modules))
	for i, m := range modules {
		for _, imp := range m.Imports {
			imports.AddEdge(i, index[imp])
		}
	}
	if cycles := imports.Cycles(); len(cycles) > 0 {
		names := make([]string, len(cycles[0]))
		for i, v := range cycles[0] {
			names[i] = modules[v].Name
		}
		sort.Strings(names)
		return fmt.Errorf("%s: %w", strings.Join(names, ", "), ErrImportCycle)
	}

	for _, m := range modules[len(c.modules):] {
		c.byModule[m.Name] = m
	}
	c.modules, c.index = modules, index
	c.referrers = imports.Transpose()
	for _, d := range decls {
		c.byName[d.Name] = d
		c.decls = append(c.decls, d)
	}
	c.gen++
	c.memo = make(map[string][]types.Type)
	log.Debugf("added %d declarations (%d modules)", len(decls), len(c.modules))
	return nil
}

// Lookup returns the declaration with the given name.
func (c *Memory) Lookup(name string) (*types.Decl, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.byName[name]
	return d, ok
}

// LookupModule returns the module with the given name.
func (c *Memory) LookupModule(name string) (*types.Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.byModule[name]
	return m, ok
}

// LookupMethod returns the method named by a qualified name of the form "Decl.Method".
func (c *Memory) LookupMethod(name string) (*types.Method, error) {
	declName, methodName, ok := splitQualified(name)
	if !ok {
		return nil, fmt.Errorf("%q: expected Type.Method: %w", name, ErrSyntax)
	}
	d, ok := c.Lookup(declName)
	if !ok {
		return nil, fmt.Errorf("%s: %w", declName, ErrUnknownType)
	}
	for _, m := range d.Methods {
		if m.Name == methodName {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%s: no such method: %w", name, ErrUnknownType)
}

func (c *Memory) Modules() []*types.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*types.Module(nil), c.modules...)
}

// Decls returns every registered declaration in registration order.
func (c *Memory) Decls() []*types.Decl {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*types.Decl(nil), c.decls...)
}

// UsableTypes returns the definitions of every usable declaration whose module is, or directly
// imports, each of groups. Every module references the core module. The result is shared and
// must not be modified.
func (c *Memory) UsableTypes(groups ...*types.Module) []types.Type {
	if len(groups) == 0 {
		return nil
	}
	key := groupKey(groups)

	c.mu.RLock()
	cached, ok := c.memo[key]
	gen := c.gen
	c.mu.RUnlock()
	if ok {
		return cached
	}

	v, _, _ := c.sf.Do(fmt.Sprintf("%d:%s", gen, key), func() (interface{}, error) {
		c.mu.RLock()
		ts, current := c.usableTypes(groups), c.gen
		c.mu.RUnlock()
		if current == gen {
			c.mu.Lock()
			if c.gen == gen {
				c.memo[key] = ts
			}
			c.mu.Unlock()
		}
		return ts, nil
	})
	return v.([]types.Type)
}

func (c *Memory) usableTypes(groups []*types.Module) []types.Type {
	usable := make([]bool, len(c.modules))
	for i := range usable {
		usable[i] = true
	}
	for _, g := range groups {
		if g.Core {
			continue
		}
		gi, ok := c.index[g]
		if !ok {
			return nil
		}
		referencing := make([]bool, len(c.modules))
		referencing[gi] = true
		for _, r := range c.referrers[gi] {
			referencing[r] = true
		}
		for i := range usable {
			usable[i] = usable[i] && referencing[i]
		}
	}

	var ts []types.Type
	for _, d := range c.decls {
		if !usable[c.index[d.Module]] {
			continue
		}
		if t := d.Type(); types.IsUsable(t) {
			ts = append(ts, t)
		}
	}
	return ts
}

func groupKey(groups []*types.Module) string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
