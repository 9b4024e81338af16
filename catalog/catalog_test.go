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

package catalog_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/wdamron/typeresolver/catalog"

	"github.com/wdamron/typeresolver/types"
)

func loadSample(t *testing.T) *Memory {
	c, err := LoadFile("testdata/sample.yaml")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func names(ts []types.Type) string {
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.(*types.Named).Decl.Name
	}
	return strings.Join(s, ",")
}

func TestLoadFile(t *testing.T) {
	c := loadSample(t)

	box, ok := c.Lookup("Box")
	if !ok {
		t.Fatalf("expected Box to be declared")
	}
	if box.Module.Name != "lib" || len(box.Params) != 1 || len(box.Constructors) != 1 {
		t.Fatalf("unexpected declaration for Box: %+v", box)
	}
	T := box.Params[0]
	if !T.Has(types.DefaultCtor) || len(T.Constraints) != 1 || types.TypeString(T.Constraints[0]) != "IFoo<int>" {
		t.Fatalf("unexpected parameter for Box: %+v", T)
	}

	color, _ := c.Lookup("Color")
	if color.Kind != types.Enum || len(color.Values) != 3 || color.Values[0] != "Red" {
		t.Fatalf("unexpected enumeration: %+v", color)
	}

	widget, _ := c.Lookup("Widget")
	if len(widget.Constructors) != 2 || !widget.Constructors[1].Internal || types.HasDefaultConstructor(widget.Type()) {
		t.Fatalf("unexpected constructors for Widget")
	}

	factory, _ := c.Lookup("FactoryOfWidget")
	if !factory.Factory || factory.Methods[0].Factory == nil {
		t.Fatalf("expected a registered factory")
	}

	check, err := c.LookupMethod("Tests.Check")
	if err != nil {
		t.Fatal(err)
	}
	if s := types.MethodString(check, nil); s != "Check<T>( T[], Box<T> ) : int" {
		t.Fatalf("unexpected method: %s", s)
	}
	if tp := check.TypeParams[0]; !tp.Has(types.RefKind) || tp.Method != check {
		t.Fatalf("unexpected type parameter: %+v", tp)
	}
	if box := check.Params[1].(*types.Named); box.Args[0] != check.TypeParams[0] {
		t.Fatalf("expected method parameters to refer to the method's type parameters")
	}

	if _, err := c.LookupMethod("Tests.Missing"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, found %v", err)
	}
	if _, err := c.LookupMethod("Tests"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, found %v", err)
	}
}

func TestUsableTypes(t *testing.T) {
	c := loadSample(t)
	lib, _ := c.LookupModule("lib")
	app, _ := c.LookupModule("app")
	other, _ := c.LookupModule("other")

	cases := []struct {
		groups   []*types.Module
		expected string
	}{
		{[]*types.Module{lib}, "Box,A,B,Color,Widget,FactoryOfWidget,Tests"},
		{[]*types.Module{app}, "A,B,Color,Widget,FactoryOfWidget,Tests"},
		{[]*types.Module{types.Core, lib}, "Box,A,B,Color,Widget,FactoryOfWidget,Tests"},
		{[]*types.Module{lib, other}, ""},
		{[]*types.Module{other}, "Hidden"},
		{[]*types.Module{types.Core}, "object,bool,int,long,ulong,double,Box,A,B,Color,Widget,FactoryOfWidget,Tests,Hidden"},
		{nil, ""},
	}
	for _, tc := range cases {
		if actual := names(c.UsableTypes(tc.groups...)); actual != tc.expected {
			t.Fatalf("UsableTypes(%v): expected %q, found %q", tc.groups, tc.expected, actual)
		}
	}

	first, second := c.UsableTypes(lib), c.UsableTypes(lib)
	if &first[0] != &second[0] {
		t.Fatalf("expected usable types to be memoized")
	}

	// Adding declarations resets the memo:
	if err := c.Add(&types.Decl{Name: "Late", Module: app, Kind: types.Struct}); err != nil {
		t.Fatal(err)
	}
	if actual := names(c.UsableTypes(lib)); !strings.HasSuffix(actual, ",Late") {
		t.Fatalf("expected the new declaration to be usable, found %q", actual)
	}
}

func TestAddRejectsInvalidCatalogs(t *testing.T) {
	c := loadSample(t)
	app, _ := c.LookupModule("app")

	err := c.Add(&types.Decl{Name: "A", Module: app})
	if !errors.Is(err, ErrDuplicateType) {
		t.Fatalf("expected ErrDuplicateType, found %v", err)
	}
	if _, err := LoadFile("testdata/cycle.yaml"); !errors.Is(err, ErrImportCycle) {
		t.Fatalf("expected ErrImportCycle, found %v", err)
	}

	err = c.Parse([]byte("types:\n  - name: Stray\n    module: nowhere\n"), "stray.yaml")
	if !errors.Is(err, ErrUnknownModule) || !strings.HasPrefix(err.Error(), "stray.yaml: ") {
		t.Fatalf("expected ErrUnknownModule, found %v", err)
	}
	if _, ok := c.Lookup("Stray"); ok {
		t.Fatalf("expected a failed load to add nothing")
	}
	if err := c.Parse([]byte("types: {"), "broken.yaml"); err == nil {
		t.Fatalf("expected a YAML error")
	}
}

func TestParseType(t *testing.T) {
	c := loadSample(t)
	box, _ := c.Lookup("Box")

	valid := map[string]string{
		"int":                "int",
		"IFoo<int>":          "IFoo<int>",
		" IFoo< IFoo<int> >": "IFoo<IFoo<int>>",
		"IFoo":               "IFoo<T>",
		"A[]":                "A[]",
		"Box<A>[,]":          "Box<A>[,]",
		"Creator<Color>":     "Creator<Color>",
		"T[]":                "T[]",
	}
	for expr, expected := range valid {
		ty, err := c.ParseType(expr, box.Params...)
		if err != nil {
			t.Fatalf("%q: %v", expr, err)
		}
		if s := types.TypeString(ty); s != expected {
			t.Fatalf("%q: expected %s, found %s", expr, expected, s)
		}
	}

	invalid := map[string]error{
		"Missing":        ErrUnknownType,
		"IFoo<Missing>":  ErrUnknownType,
		"IFoo<int":       ErrSyntax,
		"IFoo<int, int>": ErrSyntax,
		"int[":           ErrSyntax,
		"int int":        ErrSyntax,
		"":               ErrSyntax,
		"T<int>":         ErrSyntax,
	}
	for expr, expected := range invalid {
		if _, err := c.ParseType(expr, box.Params...); !errors.Is(err, expected) {
			t.Fatalf("%q: expected %v, found %v", expr, expected, err)
		}
	}
}
