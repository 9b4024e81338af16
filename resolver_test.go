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

package typeresolver_test

import (
	"sort"
	"strings"
	"testing"

	. "github.com/wdamron/typeresolver"
	. "github.com/wdamron/typeresolver/construct"

	"github.com/wdamron/typeresolver/binding"
	"github.com/wdamron/typeresolver/catalog"
	"github.com/wdamron/typeresolver/types"
)

func newResolver(t testing.TB, decls ...*types.Decl) *Resolver {
	c := catalog.New()
	if err := c.Add(decls...); err != nil {
		t.Fatal(err)
	}
	return NewResolver(c)
}

// typeNames returns the sorted names of ts, separated by spaces.
func typeNames(ts []types.Type) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = types.TypeString(t)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

func TestConcreteTypesOfClosedType(t *testing.T) {
	m := Module("lib")
	box := Class(m, "Box", "T")
	r := newResolver(t, box)

	closed := T(box, types.Int)
	ts := r.ConcreteTypes(closed, binding.Empty)
	if len(ts) != 1 || ts[0] != types.Type(closed) {
		t.Fatalf("expected the closed type itself, found %v", ts)
	}
}

func TestConcreteTypesOfKeywordConstraints(t *testing.T) {
	m := Module("lib")
	iface := Interface(m, "IGTC")
	impl := Implements(Struct(m, "GTCStruct"), Def(iface))
	class := Implements(Constructors(Class(m, "GTCClass"), Ctor(types.Int)), Def(iface))

	ofInterface := Class(m, "OfInterface", "T")
	Constrain(P(ofInterface, "T"), Def(iface))
	ofStruct := Class(m, "OfStruct", "T")
	Flag(Constrain(P(ofStruct, "T"), Def(iface)), types.ValueKind)
	ofCtor := Class(m, "OfCtor", "T")
	Flag(Constrain(P(ofCtor, "T"), Def(iface)), types.DefaultCtor)
	ofClass := Class(m, "OfClass", "T")
	Flag(Constrain(P(ofClass, "T"), Def(iface)), types.RefKind)

	r := newResolver(t, iface, impl, class, ofInterface, ofStruct, ofCtor, ofClass)

	cases := []struct {
		decl     *types.Decl
		expected string
	}{
		{ofInterface, "OfInterface<GTCClass> OfInterface<GTCStruct>"},
		{ofStruct, "OfStruct<GTCStruct>"},
		{ofCtor, "OfCtor<GTCStruct>"},
		{ofClass, "OfClass<GTCClass>"},
	}
	for _, c := range cases {
		if found := typeNames(r.ConcreteTypes(Def(c.decl), binding.Empty)); found != c.expected {
			t.Fatalf("%s: expected %q, found %q", c.decl.Name, c.expected, found)
		}
	}
}

func TestConcreteTypesOfSelfReferentialConstraint(t *testing.T) {
	m := Module("lib")
	generic := AbstractClass(m, "GenericClass", "T")
	impl := Class(m, "Impl")
	Extends(impl, T(generic, Def(impl)))
	user := Class(m, "ClassUser", "T")
	Constrain(P(user, "T"), T(generic, P(user, "T")))

	r := newResolver(t, generic, impl, user)
	if found := typeNames(r.ConcreteTypes(Def(user), binding.Empty)); found != "ClassUser<Impl>" {
		t.Fatalf("expected ClassUser<Impl>, found %q", found)
	}
}

func TestConcreteTypesOfMultipleImplementations(t *testing.T) {
	m := Module("lib")
	iface := Interface(m, "IMII", "T", "H")
	impl := Implements(Struct(m, "SI"),
		T(iface, types.Int, types.String),
		T(iface, types.Double, types.String),
		T(iface, types.String, types.Double))
	user := Class(m, "MIUser", "T", "H", "D")
	T_, H := P(user, "T"), P(user, "H")
	Constrain(P(user, "D"), T(iface, T_, H), T(iface, H, T_))

	r := newResolver(t, iface, impl, user)
	expected := "MIUser<double,string,SI> MIUser<string,double,SI>"
	if found := typeNames(r.ConcreteTypes(Def(user), binding.Empty)); found != expected {
		t.Fatalf("expected %q, found %q", expected, found)
	}
}

func TestConcreteTypesOfUnconstrainedType(t *testing.T) {
	m := Module("lib")
	unconstrained := Class(m, "UGT", "T")
	r := newResolver(t, unconstrained)

	if ts := r.ConcreteTypes(Def(unconstrained), binding.Empty); len(ts) != 0 {
		t.Fatalf("expected no concrete types, found %v", ts)
	}

	world, _ := binding.Empty.Bind(P(unconstrained, "T"), types.Int)
	if found := typeNames(r.ConcreteTypes(Def(unconstrained), world)); found != "UGT<int>" {
		t.Fatalf("expected UGT<int>, found %q", found)
	}
	// Bound worlds are not cached for the definition:
	if ts := r.ConcreteTypes(Def(unconstrained), binding.Empty); len(ts) != 0 {
		t.Fatalf("expected no concrete types, found %v", ts)
	}
}

func TestConcreteTypesOfRecursiveConstraint(t *testing.T) {
	m := Module("lib")
	ibox := Interface(m, "IBox")
	box := Class(m, "Box", "T")
	Constrain(P(box, "T"), Def(ibox))
	impl := Implements(Class(m, "BoxImpl", "U"), Def(ibox))
	Constrain(P(impl, "U"), Def(ibox))

	r := newResolver(t, ibox, box, impl)
	if ts := r.ConcreteTypes(Def(box), binding.Empty); len(ts) != 0 {
		t.Fatalf("expected no concrete types, found %v", ts)
	}
	if ts := r.ConcreteTypes(Def(impl), binding.Empty); len(ts) != 0 {
		t.Fatalf("expected no concrete types, found %v", ts)
	}
}

func TestConcreteTypesAreCached(t *testing.T) {
	m := Module("lib")
	iface := Interface(m, "IFoo")
	impl := Implements(Struct(m, "Foo"), Def(iface))
	user := Class(m, "User", "T")
	Constrain(P(user, "T"), Def(iface))

	r := newResolver(t, iface, impl, user)
	a := r.ConcreteTypes(Def(user), binding.Empty)
	b := r.ConcreteTypes(Def(user), binding.Empty)
	if len(a) != 1 || len(b) != 1 || &a[0] != &b[0] {
		t.Fatalf("expected a shared cached result, found %v and %v", a, b)
	}
}

func TestImplementations(t *testing.T) {
	m := Module("lib")
	ifoo := Interface(m, "IFoo", "T")
	a := Implements(Class(m, "A"), T(ifoo, types.Int))
	b := Implements(Class(m, "B"), T(ifoo, types.Double))
	r := newResolver(t, ifoo, a, b)

	if found := typeNames(r.Implementations(Def(ifoo))); found != "A B" {
		t.Fatalf("expected A and B, found %q", found)
	}
	if found := typeNames(r.Implementations(T(ifoo, types.Int))); found != "A" {
		t.Fatalf("expected A, found %q", found)
	}
}

func TestImplementationsFollowModuleImports(t *testing.T) {
	lib := Module("lib")
	app := Module("app", lib)
	other := Module("other")
	iface := Interface(lib, "IFoo")
	local := Implements(Class(lib, "Local"), Def(iface))
	importer := Implements(Class(app, "Importer"), Def(iface))
	unrelated := Implements(Class(other, "Unrelated"), Def(iface))

	r := newResolver(t, iface, local, importer, unrelated)
	if found := typeNames(r.Implementations(Def(iface))); found != "Importer Local" {
		t.Fatalf("expected Importer and Local, found %q", found)
	}
}

func TestConcreteMethods(t *testing.T) {
	m := Module("lib")
	simple := Interface(m, "ISimpleConstraint")
	param := Implements(Struct(m, "SimpleParameter"), Def(simple))
	gc1 := Interface(m, "IGenericConstraint1", "T")
	gp1 := Implements(Struct(m, "GenericParameter1"), T(gc1, types.Double))
	unimplemented := Interface(m, "IUnimplemented", "T")
	tests := AbstractClass(m, "Tests")

	concrete := Signature(Method(tests, "Concrete"), nil)

	simple10 := Method(tests, "Simple_1_0", "T")
	Constrain(TP(simple10, "T"), Def(simple))
	Signature(simple10, nil)

	simple20 := Method(tests, "Simple_2_0", "T", "U")
	Constrain(TP(simple20, "T"), Def(simple))
	Constrain(TP(simple20, "U"), Def(simple))
	Signature(simple20, nil)

	implied := Method(tests, "GenericConstraint1_1_1", "T")
	Signature(implied, nil, T(gc1, TP(implied, "T")))

	partial := Method(tests, "GenericConstraint1_2_2", "T", "D")
	Constrain(TP(partial, "D"), T(gc1, TP(partial, "T")))
	Signature(partial, nil, TP(partial, "T"), TP(partial, "D"))

	unimpl := Method(tests, "Unimplemented", "T")
	Signature(unimpl, nil, T(unimplemented, TP(unimpl, "T")))

	r := newResolver(t, simple, param, gc1, gp1, unimplemented, tests)

	cases := []struct {
		method   *types.Method
		expected string
	}{
		{concrete, "Tests.Concrete"},
		{simple10, "Tests.Simple_1_0<SimpleParameter>"},
		{simple20, "Tests.Simple_2_0<SimpleParameter,SimpleParameter>"},
		{implied, "Tests.GenericConstraint1_1_1<double>"},
		{partial, "Tests.GenericConstraint1_2_2<double,GenericParameter1>"},
		{unimpl, ""},
	}
	for _, c := range cases {
		methods := r.ConcreteMethods(c.method)
		keys := make([]string, len(methods))
		for i, cm := range methods {
			keys[i] = cm.Key()
		}
		if found := strings.Join(keys, " "); found != c.expected {
			t.Fatalf("%s: expected %q, found %q", c.method.Name, c.expected, found)
		}
	}
}

func TestConcreteMethodsFromFactories(t *testing.T) {
	m := Module("lib")
	ugt1 := Constructors(Class(m, "UGT1", "T"), InternalCtor())
	ugt2 := Constructors(Class(m, "UGT2", "T"), InternalCtor())
	ugt3 := Constructors(Class(m, "UGT3", "T"), InternalCtor())

	factory := Factory(m, "Factories")
	Signature(FactoryMethod(factory, "UGT1ulong", 1), T(ugt1, types.ULong))
	Signature(FactoryMethod(factory, "UGT2ulong", 1), T(ugt2, types.ULong))
	Signature(FactoryMethod(factory, "UGT2int", 1), T(ugt2, types.Int))
	Signature(FactoryMethod(factory, "UGT3int", 1), T(ugt3, types.Int))
	Signature(FactoryMethod(factory, "UGT3string", 1), T(ugt3, types.String))

	tests := AbstractClass(m, "Tests")
	single := Method(tests, "Single", "T")
	Signature(single, nil, T(ugt1, TP(single, "T")), TP(single, "T"))
	both := Method(tests, "Both", "T")
	Signature(both, nil, T(ugt2, TP(both, "T")), T(ugt3, TP(both, "T")))

	r := newResolver(t, ugt1, ugt2, ugt3, factory, tests)

	methods := r.ConcreteMethods(single)
	if len(methods) != 1 || types.TypeString(methods[0].TypeArgs[0]) != "ulong" {
		t.Fatalf("expected Single<ulong>, found %v", methods)
	}
	params := methods[0].Params()
	if types.TypeString(params[0]) != "UGT1<ulong>" || types.TypeString(params[1]) != "ulong" {
		t.Fatalf("unexpected parameters: %v", params)
	}

	methods = r.ConcreteMethods(both)
	if len(methods) != 1 || types.TypeString(methods[0].TypeArgs[0]) != "int" {
		t.Fatalf("expected Both<int>, found %v", methods)
	}
	if _, err := methods[0].Invoke(); err != ErrNoFunc {
		t.Fatalf("expected ErrNoFunc, found %v", err)
	}
}

func TestAssignedArguments(t *testing.T) {
	m := Module("lib")
	iface := Interface(m, "IMII", "T", "H")
	impl := Implements(Struct(m, "SI"), T(iface, types.Int, types.String), T(iface, types.Double, types.String))
	holder := Class(m, "Holder", "T", "H")
	r := newResolver(t, iface, impl, holder)

	T_, H := P(holder, "T"), P(holder, "H")
	worlds := r.AssignedArguments(binding.Empty, Def(impl), T(iface, T_, H))
	if len(worlds) != 2 {
		t.Fatalf("expected 2 worlds, found %v", worlds)
	}
	for _, w := range worlds {
		if h, ok := w.Lookup(H); !ok || types.TypeString(h) != "string" {
			t.Fatalf("expected H to be bound to string in %v", w)
		}
	}

	pinned, _ := binding.Empty.Bind(T_, types.Double)
	worlds = r.AssignedArguments(pinned, Def(impl), T(iface, T_, H))
	if len(worlds) != 1 {
		t.Fatalf("expected 1 world, found %v", worlds)
	}

	worlds = r.AssignedArguments(binding.Empty, Array(types.Int), Array(T_))
	if len(worlds) != 1 {
		t.Fatalf("expected 1 world, found %v", worlds)
	}
	if elem, ok := worlds[0].Lookup(T_); !ok || types.TypeString(elem) != "int" {
		t.Fatalf("expected T to be bound to int, found %v", worlds[0])
	}
}

func TestSatisfyAll(t *testing.T) {
	m := Module("lib")
	iface := Interface(m, "IFoo", "T")
	impl := Implements(Struct(m, "Foo"), T(iface, types.Int))
	holder := Class(m, "Holder", "T")
	r := newResolver(t, iface, impl, holder)

	T_ := P(holder, "T")
	constraints := []Constraint{Inheritance(T(iface, T_)), ValueKindConstraint}
	worlds := r.SatisfyAll(binding.Empty, Def(impl), constraints)
	if len(worlds) != 1 {
		t.Fatalf("expected 1 world, found %v", worlds)
	}
	if bound, ok := worlds[0].Lookup(T_); !ok || types.TypeString(bound) != "int" {
		t.Fatalf("expected T to be bound to int, found %v", worlds[0])
	}

	if worlds := r.SatisfyAll(binding.Empty, Def(impl), []Constraint{RefKindConstraint}); len(worlds) != 0 {
		t.Fatalf("expected no worlds for a struct with a reference constraint, found %v", worlds)
	}
	// Requiring derivation from a parameter is never satisfied:
	if worlds := r.SatisfyAll(binding.Empty, Def(impl), []Constraint{Inheritance(T_)}); len(worlds) != 0 {
		t.Fatalf("expected no worlds, found %v", worlds)
	}
}

func TestConstraintsOf(t *testing.T) {
	m := Module("lib")
	iface := Interface(m, "IFoo", "T")
	tests := AbstractClass(m, "Tests")
	method := Method(tests, "Use", "T", "U")
	Flag(TP(method, "U"), types.RefKind|types.DefaultCtor)
	Signature(method, nil, T(iface, TP(method, "T")))

	constraints, groups := ConstraintsOf(TP(method, "T"))
	if len(constraints) != 1 || !constraints[0].IsUsage() || len(groups) != 1 || groups[0] != m {
		t.Fatalf("expected one usage constraint, found %v (%v)", constraints, groups)
	}
	if constraints[0].String() != "Used in IFoo<T>" {
		t.Fatalf("unexpected description: %s", constraints[0])
	}

	constraints, groups = ConstraintsOf(TP(method, "U"))
	if len(constraints) != 2 || constraints[0] != RefKindConstraint || constraints[1] != DefaultCtorConstraint || len(groups) != 0 {
		t.Fatalf("expected keyword constraints only, found %v (%v)", constraints, groups)
	}
}

func TestOpenParameters(t *testing.T) {
	m := Module("lib")
	list := Class(m, "List", "T")
	box := Class(m, "Box", "T", "U")
	nested := T(box, T(list, P(box, "T")), types.Int)

	if found := typeNames(OpenParameters(nested)); found != "List<T>" {
		t.Fatalf("expected List<T>, found %q", found)
	}
	if found := typeNames(OpenParameters(Def(box))); found != "T U" {
		t.Fatalf("expected T U, found %q", found)
	}
	if open := OpenParameters(T(box, types.Int, types.Bool)); len(open) != 0 {
		t.Fatalf("expected no open parameters, found %v", open)
	}

	tests := AbstractClass(m, "Tests")
	method := Method(tests, "Check", "A", "B")
	if found := typeNames(OpenMethodParameters(method)); found != "A B" {
		t.Fatalf("expected A B, found %q", found)
	}

	// A world binding a parameter nested in an argument is not cached:
	r := newResolver(t, list, box)
	world, _ := binding.Empty.Bind(P(box, "T"), types.Int)
	if found := typeNames(r.ConcreteTypes(nested, world)); found != "Box<List<int>,int>" {
		t.Fatalf("expected Box<List<int>,int>, found %q", found)
	}
	if ts := r.ConcreteTypes(nested, binding.Empty); len(ts) != 0 {
		t.Fatalf("expected no concrete types, found %v", ts)
	}
}

func TestBindParameters(t *testing.T) {
	m := Module("lib")
	iface := Interface(m, "IFoo")
	a := Implements(Struct(m, "A"), Def(iface))
	b := Implements(Struct(m, "B"), Def(iface))
	holder := Class(m, "Holder", "T", "U")
	Constrain(P(holder, "T"), Def(iface))
	r := newResolver(t, iface, a, b, holder)

	worlds := r.BindParameters(binding.Empty, Def(holder).Decl.Params)
	if len(worlds) != 2 {
		t.Fatalf("expected 2 worlds, found %v", worlds)
	}
	if _, ok := worlds[0].Lookup(P(holder, "U")); ok {
		t.Fatalf("expected U to remain unbound")
	}
}
