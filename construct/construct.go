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

// construct provides short helpers for building type models in code.
package construct

import (
	"github.com/wdamron/typeresolver/types"
)

// Modules

// Create a module which directly imports imports.
func Module(name string, imports ...*types.Module) *types.Module {
	return &types.Module{Name: name, Imports: imports}
}

// Declarations

// Class declaration with a public default constructor: `class Name<params...>`
func Class(m *types.Module, name string, params ...string) *types.Decl {
	d := decl(m, name, types.Class, params)
	d.Constructors = []*types.Constructor{{}}
	return d
}

// Sealed class declaration with a public default constructor.
func SealedClass(m *types.Module, name string, params ...string) *types.Decl {
	d := Class(m, name, params...)
	d.Sealed = true
	return d
}

// Abstract class declaration: `abstract class Name<params...>`
func AbstractClass(m *types.Module, name string, params ...string) *types.Decl {
	d := decl(m, name, types.Class, params)
	d.Abstract = true
	return d
}

// Struct declaration: `struct Name<params...>`
func Struct(m *types.Module, name string, params ...string) *types.Decl {
	return decl(m, name, types.Struct, params)
}

// Interface declaration: `interface Name<params...>`
func Interface(m *types.Module, name string, params ...string) *types.Decl {
	d := decl(m, name, types.Interface, params)
	d.Abstract = true
	return d
}

// Enumeration declaration with the given values.
func Enum(m *types.Module, name string, values ...interface{}) *types.Decl {
	d := decl(m, name, types.Enum, nil)
	d.Sealed = true
	d.Values = values
	return d
}

// Registered factory declaration. Add methods with FactoryMethod.
func Factory(m *types.Module, name string) *types.Decl {
	d := decl(m, name, types.Class, nil)
	d.Abstract, d.Sealed, d.Factory = true, true, true
	return d
}

func decl(m *types.Module, name string, kind types.Kind, params []string) *types.Decl {
	d := &types.Decl{Name: name, Module: m, Kind: kind}
	for _, p := range params {
		d.NewParam(p)
	}
	return d
}

// Relations

// Set the base type of d.
func Extends(d *types.Decl, base types.Type) *types.Decl {
	d.Base = base
	return d
}

// Add interfaces to d.
func Implements(d *types.Decl, ifaces ...types.Type) *types.Decl {
	d.Interfaces = append(d.Interfaces, ifaces...)
	return d
}

// Add constraints to a parameter.
func Constrain(p *types.Param, constraints ...types.Type) *types.Param {
	p.Constraints = append(p.Constraints, constraints...)
	return p
}

// Add keyword flags to a parameter.
func Flag(p *types.Param, flags types.ParamFlags) *types.Param {
	p.Flags |= flags
	return p
}

// Get the parameter of d with the given name, or nil.
func P(d *types.Decl, name string) *types.Param {
	for _, p := range d.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Types

// Type application: `Name<args...>`
func T(d *types.Decl, args ...types.Type) *types.Named { return d.Of(args...) }

// Open definition of d: `Name<T, ...>`
func Def(d *types.Decl) *types.Named { return d.Type() }

// Array type: `elem[]`
func Array(elem types.Type) *types.Array { return types.NewArray(elem, 1) }

// Members

// Replace the constructors of d.
func Constructors(d *types.Decl, ctors ...*types.Constructor) *types.Decl {
	d.Constructors = ctors
	return d
}

// Public constructor: `new(params...)`
func Ctor(params ...types.Type) *types.Constructor {
	return &types.Constructor{Params: params}
}

// Internal constructor, never used to create instances.
func InternalCtor(params ...types.Type) *types.Constructor {
	return &types.Constructor{Params: params, Internal: true}
}

// Add a static method to d. Type parameters may be added with Method.NewTypeParam before
// setting Params and Result.
func Method(d *types.Decl, name string, typeParams ...string) *types.Method {
	m := &types.Method{Name: name, Owner: d}
	for _, tp := range typeParams {
		m.NewTypeParam(tp)
	}
	d.Methods = append(d.Methods, m)
	return m
}

// Add a factory method to d which yields count instances of its result type.
func FactoryMethod(d *types.Decl, name string, count int, typeParams ...string) *types.Method {
	m := Method(d, name, typeParams...)
	m.Factory = types.InstanceFactory(m, count)
	return m
}

// Get the type parameter of m with the given name, or nil.
func TP(m *types.Method, name string) *types.Param {
	for _, p := range m.TypeParams {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Set the parameters and result of m.
func Signature(m *types.Method, result types.Type, params ...types.Type) *types.Method {
	m.Params, m.Result = params, result
	return m
}
