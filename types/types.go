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

// Type is the base interface for all type descriptors.
type Type interface {
	TypeName() string
	// IsGeneric reports whether the type contains any unresolved parameters.
	IsGeneric() bool
	// Key identifies the type. Two types are identical iff their keys are equal.
	Key() string
}

func (t *Param) TypeName() string { return "Param" }
func (t *Named) TypeName() string { return "Named" }
func (t *Array) TypeName() string { return "Array" }

func (t *Param) IsGeneric() bool { return true }
func (t *Array) IsGeneric() bool { return t.Elem.IsGeneric() }

func (t *Named) IsGeneric() bool {
	if t.key != "" {
		return t.generic
	}
	return anyGeneric(t.Args)
}

func (t *Param) Key() string {
	switch {
	case t.Method != nil:
		return t.Method.Key() + "." + t.Name
	case t.Decl != nil:
		return t.Decl.Name + "." + t.Name
	}
	return t.Name
}

func (t *Named) Key() string {
	if t.key != "" {
		return t.key
	}
	return keyString(t)
}

func (t *Array) Key() string { return keyString(t) }

func (t *Param) String() string { return TypeString(t) }
func (t *Named) String() string { return TypeString(t) }
func (t *Array) String() string { return TypeString(t) }

// Kind distinguishes the declaration forms of a Named type.
type Kind uint8

const (
	Class Kind = iota
	Struct
	Interface
	Enum
)

func (k Kind) String() string {
	switch k {
	case Class:
		return "class"
	case Struct:
		return "struct"
	case Interface:
		return "interface"
	case Enum:
		return "enum"
	}
	return "unknown"
}

// Module is a group of declarations. Candidate types for a constraint are drawn from the
// modules which could reference the constraint's own module.
type Module struct {
	Name    string
	Imports []*Module
	// Core modules are implicitly referenced by every other module.
	Core bool
}

func (m *Module) String() string { return m.Name }

// ImportsModule reports whether m directly imports other.
func (m *Module) ImportsModule(other *Module) bool {
	for _, imp := range m.Imports {
		if imp == other {
			return true
		}
	}
	return false
}

type ParamFlags uint8

const (
	// RefKind requires a reference (non-value) type.
	RefKind ParamFlags = 1 << iota
	// ValueKind requires a non-nullable value type.
	ValueKind
	// DefaultCtor requires an accessible default constructor.
	DefaultCtor
)

// Param is a generic parameter of a declaration or of a method.
type Param struct {
	Name  string
	Index int
	// Exactly one of Decl or Method is set.
	Decl   *Decl
	Method *Method
	// Constraints are the types every argument for the parameter must derive from.
	Constraints []Type
	Flags       ParamFlags
}

func (p *Param) Has(flags ParamFlags) bool { return p.Flags&flags == flags }

// Named is a (possibly generic) class, struct, interface or enum. A Named type whose
// arguments are the declaration's own parameters is the declaration's definition.
//
// Named types should be created with NewNamed or Decl.Of.
type Named struct {
	Decl *Decl
	Args []Type

	key     string
	generic bool
}

func NewNamed(decl *Decl, args ...Type) *Named {
	t := &Named{Decl: decl, Args: args}
	t.generic = anyGeneric(args)
	t.key = keyString(t)
	return t
}

// IsGenericType reports whether the type has generic arguments, whether or not they are resolved.
func (t *Named) IsGenericType() bool { return len(t.Args) > 0 }

// Definition returns the open definition of the type's declaration.
func (t *Named) Definition() *Named { return t.Decl.Type() }

// Array is a (possibly multi-dimensional) array of Elem.
type Array struct {
	Elem Type
	Rank int
}

func NewArray(elem Type, rank int) *Array {
	if rank < 1 {
		rank = 1
	}
	return &Array{Elem: elem, Rank: rank}
}

// Decl declares a Named type.
type Decl struct {
	Name   string
	Module *Module
	Kind   Kind
	Params []*Param
	// Base and Interfaces may refer to Params.
	Base       Type
	Interfaces []Type

	Constructors []*Constructor
	Methods      []*Method
	// Values lists every value of an enumeration.
	Values []interface{}

	Abstract bool
	Sealed   bool
	// Factory marks an abstract declaration whose Factory methods supply instances of other types.
	Factory bool

	// Zero creates the default value of a value-kind declaration without a default constructor.
	Zero func(t *Named) interface{}
}

// NewParam appends a new type-level parameter to the declaration.
func (d *Decl) NewParam(name string, constraints ...Type) *Param {
	p := &Param{Name: name, Index: len(d.Params), Decl: d, Constraints: constraints}
	d.Params = append(d.Params, p)
	return p
}

// Type returns the declaration's definition: the declaration applied to its own parameters.
func (d *Decl) Type() *Named {
	args := make([]Type, len(d.Params))
	for i, p := range d.Params {
		args[i] = p
	}
	return NewNamed(d, args...)
}

// Of applies the declaration to args.
func (d *Decl) Of(args ...Type) *Named { return NewNamed(d, args...) }

func (d *Decl) IsGeneric() bool { return len(d.Params) > 0 }

func (d *Decl) String() string { return d.Name }

// Constructor is a constructor of a declaration. Params may refer to the declaration's parameters.
type Constructor struct {
	Params   []Type
	Internal bool
	// Func creates an instance of t. If Func is nil, an *Instance is created.
	Func func(t *Named, args []interface{}) (interface{}, error)
}

// Thunk is a zero-argument function which produces one value.
type Thunk func() (interface{}, error)

// Method is a static method. Params and Result may refer to TypeParams.
type Method struct {
	Name       string
	Owner      *Decl
	TypeParams []*Param
	Params     []Type
	Result     Type

	Func func(typeArgs []Type, args []interface{}) (interface{}, error)
	// Factory registers the method as an instance factory: it returns functions which each
	// produce a value of type Result. Factory methods are only considered on Factory declarations.
	Factory func(typeArgs []Type, args []interface{}) ([]Thunk, error)
}

// NewTypeParam appends a new method-level parameter to the method.
func (m *Method) NewTypeParam(name string, constraints ...Type) *Param {
	p := &Param{Name: name, Index: len(m.TypeParams), Method: m, Constraints: constraints}
	m.TypeParams = append(m.TypeParams, p)
	return p
}

func (m *Method) Key() string {
	if m.Owner == nil {
		return m.Name
	}
	return m.Owner.Name + "." + m.Name
}

func (m *Method) IsGeneric() bool { return len(m.TypeParams) > 0 }

func (m *Method) String() string { return MethodString(m, nil) }

// Instance is the value created for declarations without a constructor function.
type Instance struct {
	Type Type
	Args []interface{}
}

func (i *Instance) String() string { return TypeString(i.Type) }

func anyGeneric(ts []Type) bool {
	for _, t := range ts {
		if t.IsGeneric() {
			return true
		}
	}
	return false
}

// MethodMapping maps the type parameters of m to typeArgs.
func MethodMapping(m *Method, typeArgs []Type) map[*Param]Type {
	if len(typeArgs) == 0 {
		return nil
	}
	mapping := make(map[*Param]Type, len(typeArgs))
	for i, tp := range m.TypeParams {
		if i < len(typeArgs) {
			mapping[tp] = typeArgs[i]
		}
	}
	return mapping
}

// InstanceFactory returns a Factory function for m which yields count functions, each
// creating an *Instance of m's result type.
func InstanceFactory(m *Method, count int) func([]Type, []interface{}) ([]Thunk, error) {
	return func(typeArgs []Type, args []interface{}) ([]Thunk, error) {
		result := Subst(m.Result, MethodMapping(m, typeArgs))
		thunks := make([]Thunk, count)
		for i := range thunks {
			thunks[i] = func() (interface{}, error) {
				return &Instance{Type: result, Args: args}, nil
			}
		}
		return thunks, nil
	}
}
