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

// Core is the module of the built-in declarations. Every module implicitly references it.
var Core = &Module{Name: "core", Core: true}

var (
	ObjectDecl = &Decl{Name: "object", Module: Core, Kind: Class, Constructors: []*Constructor{{}}}
	StringDecl = &Decl{Name: "string", Module: Core, Kind: Class, Sealed: true}
	BoolDecl   = &Decl{Name: "bool", Module: Core, Kind: Struct, Sealed: true, Values: []interface{}{false, true}}
	IntDecl    = valueDecl("int", func(*Named) interface{} { return 0 })
	LongDecl   = valueDecl("long", func(*Named) interface{} { return int64(0) })
	ULongDecl  = valueDecl("ulong", func(*Named) interface{} { return uint64(0) })
	DoubleDecl = valueDecl("double", func(*Named) interface{} { return float64(0) })

	// CreatorDecl is the built-in interface `Creator<T>`. Requesting creators of `Creator<X>`
	// yields adapters which produce creators of X.
	CreatorDecl = &Decl{Name: "Creator", Module: Core, Kind: Interface, Abstract: true}
)

var (
	Object = ObjectDecl.Type()
	String = StringDecl.Type()
	Bool   = BoolDecl.Type()
	Int    = IntDecl.Type()
	Long   = LongDecl.Type()
	ULong  = ULongDecl.Type()
	Double = DoubleDecl.Type()
)

func init() {
	CreatorDecl.NewParam("T")
}

func valueDecl(name string, zero func(*Named) interface{}) *Decl {
	return &Decl{Name: name, Module: Core, Kind: Struct, Sealed: true, Zero: zero}
}

// Builtins returns every built-in declaration.
func Builtins() []*Decl {
	return []*Decl{ObjectDecl, StringDecl, BoolDecl, IntDecl, LongDecl, ULongDecl, DoubleDecl, CreatorDecl}
}

// CreatorOf returns the type `Creator<t>`.
func CreatorOf(t Type) *Named { return NewNamed(CreatorDecl, t) }

// CreatedType returns X if t is `Creator<X>`.
func CreatedType(t Type) (Type, bool) {
	n, ok := t.(*Named)
	if !ok || n.Decl != CreatorDecl || len(n.Args) != 1 {
		return nil, false
	}
	return n.Args[0], true
}
