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

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/typeresolver/types"
)

// File is the YAML form of a catalog:
//
//	modules:
//	  - name: app
//	    imports: [lib]
//	types:
//	  - name: Box
//	    module: app
//	    params:
//	      - name: T
//	        constraints: ["IFoo<int>"]
//	        flags: [struct]
//	    interfaces: ["IBox<T>"]
type File struct {
	Modules []ModuleSpec `yaml:"modules"`
	Types   []TypeSpec   `yaml:"types"`
}

// ModuleSpec declares a module. Imports may name modules declared anywhere in the file, modules
// already in the catalog, or "core".
type ModuleSpec struct {
	Name    string   `yaml:"name"`
	Imports []string `yaml:"imports,omitempty"`
}

// ParamSpec declares a generic parameter. Flags may include "class", "struct" and "new".
type ParamSpec struct {
	Name        string   `yaml:"name"`
	Constraints []string `yaml:"constraints,omitempty"`
	Flags       []string `yaml:"flags,omitempty"`
}

// TypeSpec declares a class, struct, interface, enum or factory.
type TypeSpec struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module"`
	// Kind is one of class (the default), struct, interface or enum.
	Kind       string        `yaml:"kind,omitempty"`
	Params     []ParamSpec   `yaml:"params,omitempty"`
	Base       string        `yaml:"base,omitempty"`
	Interfaces []string      `yaml:"interfaces,omitempty"`
	Abstract   bool          `yaml:"abstract,omitempty"`
	Sealed     bool          `yaml:"sealed,omitempty"`
	Factory    bool          `yaml:"factory,omitempty"`
	Values     []interface{} `yaml:"values,omitempty"`
	// If Constructors is omitted, a concrete class gets a public default constructor.
	Constructors []CtorSpec   `yaml:"constructors"`
	Methods      []MethodSpec `yaml:"methods,omitempty"`
}

type CtorSpec struct {
	Params   []string `yaml:"params,omitempty"`
	Internal bool     `yaml:"internal,omitempty"`
}

// MethodSpec declares a static method. A method with a positive Factory count on a factory type
// supplies that many default instances of its result type.
type MethodSpec struct {
	Name       string      `yaml:"name"`
	TypeParams []ParamSpec `yaml:"type_params,omitempty"`
	Params     []string    `yaml:"params,omitempty"`
	Result     string      `yaml:"result,omitempty"`
	Factory    int         `yaml:"factory,omitempty"`
}

// LoadFile reads a YAML catalog file into a new catalog.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c := New()
	if err := c.Parse(data, path); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes YAML catalog content and adds its declarations to c.
// The path argument is used only for error messages.
func (c *Memory) Parse(data []byte, path string) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	if err := c.Load(&f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load adds the declarations of f to c. Names within f may refer to each other regardless of
// order.
func (c *Memory) Load(f *File) error {
	modules := make(map[string]*types.Module, len(f.Modules))
	for _, ms := range f.Modules {
		if _, dup := modules[ms.Name]; dup {
			return fmt.Errorf("%s: %w", ms.Name, ErrDuplicateModule)
		}
		if _, dup := c.LookupModule(ms.Name); dup {
			return fmt.Errorf("%s: %w", ms.Name, ErrDuplicateModule)
		}
		modules[ms.Name] = &types.Module{Name: ms.Name}
	}
	module := func(name string) (*types.Module, error) {
		if m, ok := modules[name]; ok {
			return m, nil
		}
		if m, ok := c.LookupModule(name); ok {
			return m, nil
		}
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownModule)
	}
	for _, ms := range f.Modules {
		for _, imp := range ms.Imports {
			m, err := module(imp)
			if err != nil {
				return fmt.Errorf("module %s: %w", ms.Name, err)
			}
			modules[ms.Name].Imports = append(modules[ms.Name].Imports, m)
		}
	}

	// Declarations are created before any type expression is parsed, so that they may refer to
	// each other freely.
	decls := make([]*types.Decl, len(f.Types))
	local := make(map[string]*types.Decl, len(f.Types))
	for i, ts := range f.Types {
		m, err := module(ts.Module)
		if err != nil {
			return fmt.Errorf("type %s: %w", ts.Name, err)
		}
		d, err := declare(ts, m)
		if err != nil {
			return err
		}
		if _, dup := local[d.Name]; dup {
			return fmt.Errorf("%s: %w", d.Name, ErrDuplicateType)
		}
		decls[i], local[d.Name] = d, d
	}

	for i, ts := range f.Types {
		if err := c.define(decls[i], ts, local); err != nil {
			return fmt.Errorf("type %s: %w", ts.Name, err)
		}
	}
	return c.Add(decls...)
}

func declare(ts TypeSpec, m *types.Module) (*types.Decl, error) {
	d := &types.Decl{
		Name:     ts.Name,
		Module:   m,
		Abstract: ts.Abstract,
		Sealed:   ts.Sealed,
		Values:   ts.Values,
	}
	switch ts.Kind {
	case "", "class":
		d.Kind = types.Class
	case "struct":
		d.Kind = types.Struct
	case "interface":
		d.Kind, d.Abstract = types.Interface, true
	case "enum":
		d.Kind, d.Sealed = types.Enum, true
	default:
		return nil, fmt.Errorf("type %s: unknown kind %q", ts.Name, ts.Kind)
	}
	if ts.Factory {
		d.Abstract, d.Sealed, d.Factory = true, true, true
	}
	for _, ps := range ts.Params {
		p := d.NewParam(ps.Name)
		if err := setFlags(p, ps.Flags); err != nil {
			return nil, fmt.Errorf("type %s: %w", ts.Name, err)
		}
	}
	return d, nil
}

func setFlags(p *types.Param, flags []string) error {
	for _, f := range flags {
		switch f {
		case "class":
			p.Flags |= types.RefKind
		case "struct":
			p.Flags |= types.ValueKind
		case "new":
			p.Flags |= types.DefaultCtor
		default:
			return fmt.Errorf("parameter %s: unknown flag %q", p.Name, f)
		}
	}
	return nil
}

// define parses every type expression of ts into d.
func (c *Memory) define(d *types.Decl, ts TypeSpec, local map[string]*types.Decl) error {
	parse := func(expr string, params []*types.Param) (types.Type, error) {
		return parseType(expr, func(name string) (types.Type, *types.Decl) {
			for _, p := range params {
				if p.Name == name {
					return p, nil
				}
			}
			if d, ok := local[name]; ok {
				return nil, d
			}
			d, _ := c.Lookup(name)
			return nil, d
		})
	}
	parseAll := func(exprs []string, params []*types.Param) ([]types.Type, error) {
		ts := make([]types.Type, len(exprs))
		for i, expr := range exprs {
			t, err := parse(expr, params)
			if err != nil {
				return nil, err
			}
			ts[i] = t
		}
		return ts, nil
	}

	var err error
	for i, ps := range ts.Params {
		if d.Params[i].Constraints, err = parseAll(ps.Constraints, d.Params); err != nil {
			return err
		}
	}
	if ts.Base != "" {
		if d.Base, err = parse(ts.Base, d.Params); err != nil {
			return err
		}
	}
	if d.Interfaces, err = parseAll(ts.Interfaces, d.Params); err != nil {
		return err
	}

	if ts.Constructors == nil && d.Kind == types.Class && !d.Abstract {
		d.Constructors = []*types.Constructor{{}}
	}
	for _, cs := range ts.Constructors {
		params, err := parseAll(cs.Params, d.Params)
		if err != nil {
			return err
		}
		d.Constructors = append(d.Constructors, &types.Constructor{Params: params, Internal: cs.Internal})
	}

	for _, ms := range ts.Methods {
		m := &types.Method{Name: ms.Name, Owner: d}
		for _, ps := range ms.TypeParams {
			if err := setFlags(m.NewTypeParam(ps.Name), ps.Flags); err != nil {
				return fmt.Errorf("method %s: %w", ms.Name, err)
			}
		}
		// Method parameters may refer to the method's own type parameters as well as the
		// declaration's.
		scope := append(append([]*types.Param(nil), m.TypeParams...), d.Params...)
		for i, ps := range ms.TypeParams {
			if m.TypeParams[i].Constraints, err = parseAll(ps.Constraints, scope); err != nil {
				return fmt.Errorf("method %s: %w", ms.Name, err)
			}
		}
		if m.Params, err = parseAll(ms.Params, scope); err != nil {
			return fmt.Errorf("method %s: %w", ms.Name, err)
		}
		if ms.Result != "" {
			if m.Result, err = parse(ms.Result, scope); err != nil {
				return fmt.Errorf("method %s: %w", ms.Name, err)
			}
		}
		if ms.Factory > 0 {
			if m.Result == nil {
				return fmt.Errorf("method %s: factory methods require a result type", ms.Name)
			}
			m.Factory = types.InstanceFactory(m, ms.Factory)
		}
		d.Methods = append(d.Methods, m)
	}
	return nil
}
