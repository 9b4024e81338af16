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

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	// Parameters are printed with their owner when qualified is set.
	qualified bool
	sb        strings.Builder
}

func newTypePrinter(qualified bool) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.qualified = qualified
	return p
}

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

func (p *typePrinter) String() string {
	s := p.sb.String()
	p.Release()
	return s
}

// TypeString returns a string representation of a Type: `Name<Arg,...>`, `T`, or `Elem[]`.
func TypeString(t Type) string {
	p := newTypePrinter(false)
	typeString(p, t)
	return p.String()
}

func keyString(t Type) string {
	p := newTypePrinter(true)
	typeString(p, t)
	return p.String()
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *Param:
		if p.qualified {
			p.sb.WriteString(t.Key())
		} else {
			p.sb.WriteString(t.Name)
		}

	case *Array:
		typeString(p, t.Elem)
		p.sb.WriteByte('[')
		for i := 1; i < t.Rank; i++ {
			p.sb.WriteByte(',')
		}
		p.sb.WriteByte(']')

	case *Named:
		p.sb.WriteString(t.Decl.Name)
		typeArgsString(p, t.Args)

	default:
		p.sb.WriteString(t.TypeName())
	}
}

func typeArgsString(p *typePrinter, args []Type) {
	if len(args) == 0 {
		return
	}
	p.sb.WriteByte('<')
	for i, arg := range args {
		if i > 0 {
			p.sb.WriteByte(',')
		}
		typeString(p, arg)
	}
	p.sb.WriteByte('>')
}

// DescriptiveName returns TypeString(t), followed by the owner of t if t is a parameter:
// `T on Foo<T>` or `T on Bar<T>( T ) : int`.
func DescriptiveName(t Type) string {
	param, ok := t.(*Param)
	if !ok {
		return TypeString(t)
	}
	switch {
	case param.Method != nil:
		return param.Name + " on " + MethodString(param.Method, nil)
	case param.Decl != nil:
		return param.Name + " on " + TypeString(param.Decl.Type())
	}
	return param.Name
}

// MethodString returns a descriptive name for a method: `Name<T,...>( A, B ) : R`. When
// typeArgs is not empty, the method's type parameters are replaced with typeArgs.
func MethodString(m *Method, typeArgs []Type) string {
	var mapping map[*Param]Type
	if len(typeArgs) == len(m.TypeParams) {
		mapping = MethodMapping(m, typeArgs)
	}
	p := newTypePrinter(false)
	p.sb.WriteString(m.Name)
	if mapping != nil {
		typeArgsString(p, typeArgs)
	} else if len(m.TypeParams) > 0 {
		args := make([]Type, len(m.TypeParams))
		for i, tp := range m.TypeParams {
			args[i] = tp
		}
		typeArgsString(p, args)
	}
	paramsString(p, m.Params, mapping)
	if m.Result != nil {
		p.sb.WriteString(" : ")
		typeString(p, Subst(m.Result, mapping))
	}
	return p.String()
}

// ConstructorString returns a descriptive name for a constructor of t: `new Foo<int>( string )`.
func ConstructorString(t *Named, c *Constructor) string {
	p := newTypePrinter(false)
	p.sb.WriteString("new ")
	typeString(p, t)
	paramsString(p, c.Params, DeclMapping(t))
	return p.String()
}

func paramsString(p *typePrinter, params []Type, mapping map[*Param]Type) {
	if len(params) == 0 {
		p.sb.WriteString("()")
		return
	}
	p.sb.WriteString("( ")
	for i, param := range params {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		typeString(p, Subst(param, mapping))
	}
	p.sb.WriteString(" )")
}

// ValueString formats an enumeration value of t: `Color.Red` or `true`.
func ValueString(t Type, v interface{}) string {
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case bool:
		return strconv.FormatBool(v)
	case int:
		s = strconv.Itoa(v)
	default:
		s = "?"
		if str, ok := v.(interface{ String() string }); ok {
			s = str.String()
		}
	}
	return TypeString(t) + "." + s
}
