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
	"github.com/wdamron/typeresolver/binding"
	"github.com/wdamron/typeresolver/linklist"
	"github.com/wdamron/typeresolver/types"
)

// Constraint is a requirement on the types which may be bound to a generic parameter.
// Satisfying a constraint may add bindings to a world, or split it into several worlds.
type Constraint interface {
	// IsUsage reports whether the constraint was inferred from a declaration which nests the
	// parameter, rather than declared on the parameter itself.
	IsUsage() bool
	String() string

	satisfy(s *session, candidate types.Type, world binding.Set) []binding.Set
}

// InheritanceConstraint requires candidates to derive from Required.
type InheritanceConstraint struct {
	Required types.Type
	Usage    bool
}

// Create a constraint which requires candidates to derive from required.
func Inheritance(required types.Type) *InheritanceConstraint {
	return &InheritanceConstraint{Required: required}
}

func (c *InheritanceConstraint) IsUsage() bool { return c.Usage }

func (c *InheritanceConstraint) String() string {
	if c.Usage {
		return "Used in " + types.DescriptiveName(c.Required)
	}
	return "Derives from " + types.DescriptiveName(c.Required)
}

func (c *InheritanceConstraint) satisfy(s *session, candidate types.Type, world binding.Set) []binding.Set {
	required := c.Required
	// A parameter required to derive from another parameter is never satisfied.
	if _, ok := required.(*types.Param); ok {
		return nil
	}
	if !types.Is(candidate, required) {
		return nil
	}

	// Bind the candidate's open arguments from a closed generic requirement. A candidate may
	// correspond to the requirement in several ways, and each is kept.
	space := binding.NewSpace(world)
	if n, ok := required.(*types.Named); ok && n.IsGenericType() && !n.IsGeneric() {
		for _, corr := range types.CorrespondingBaseTypes(candidate, n) {
			if corr.IsGeneric() {
				s.assignedArguments(space, required, corr)
			}
		}
	}

	var out []binding.Set
	for _, w := range space.Worlds() {
		for _, concrete := range s.concreteTypes(candidate, w) {
			assigned := binding.NewSpace(w)
			s.assignedArguments(assigned, concrete, candidate)
			if required.IsGeneric() {
				s.assignedArguments(assigned, concrete, required)
			}
			out = append(out, assigned.Worlds()...)
		}
	}
	return out
}

// SimpleConstraint requires Predicate to hold for candidates.
type SimpleConstraint struct {
	Predicate   func(types.Type) bool
	Description string
}

func (c *SimpleConstraint) IsUsage() bool  { return false }
func (c *SimpleConstraint) String() string { return c.Description }

func (c *SimpleConstraint) satisfy(_ *session, candidate types.Type, world binding.Set) []binding.Set {
	if c.Predicate(candidate) {
		return []binding.Set{world}
	}
	return nil
}

var (
	RefKindConstraint     = &SimpleConstraint{types.IsRefKind, "Is reference type"}
	ValueKindConstraint   = &SimpleConstraint{types.IsValueKind, "Is non-nullable value type"}
	DefaultCtorConstraint = &SimpleConstraint{types.HasDefaultConstructor, "Has default constructor"}
)

// ConstraintsOf returns the ordered constraints of p, along with the modules which candidates
// for p must be able to reference.
//
// Declared inheritance constraints come first. If p declares none, usage constraints are inferred
// from the types which take p as a generic argument, searching the parameter types and type
// parameters of p's method (or the parameters of p's declaration). Keyword constraints come last.
func ConstraintsOf(p *types.Param) ([]Constraint, []*types.Module) {
	var constraints []Constraint
	var groups []*types.Module
	addGroup := func(t types.Type) {
		m := types.ModuleOf(t)
		if m == nil {
			return
		}
		for _, g := range groups {
			if g == m {
				return
			}
		}
		groups = append(groups, m)
	}

	for _, c := range p.Constraints {
		constraints = append(constraints, Inheritance(c))
		addGroup(c)
	}

	if len(constraints) == 0 {
		var initial []types.Type
		if m := p.Method; m != nil {
			initial = append(initial, m.Params...)
			for _, tp := range m.TypeParams {
				initial = append(initial, tp)
			}
		} else if p.Decl != nil {
			for _, dp := range p.Decl.Params {
				initial = append(initial, dp)
			}
		}
		queue := linklist.NewQueue(types.Type.Key, initial...)
		for usage, ok := queue.Pop(); ok; usage, ok = queue.Pop() {
			args := types.GenericArgs(usage)
			queue.Push(args...)
			for _, arg := range args {
				if arg == types.Type(p) {
					constraints = append(constraints, &InheritanceConstraint{Required: usage, Usage: true})
					addGroup(usage)
					break
				}
			}
		}
	}

	if p.Has(types.RefKind) {
		constraints = append(constraints, RefKindConstraint)
	}
	if p.Has(types.ValueKind) {
		constraints = append(constraints, ValueKindConstraint)
	}
	if p.Has(types.DefaultCtor) {
		constraints = append(constraints, DefaultCtorConstraint)
	}
	return constraints, groups
}

// OpenParameters returns the generic arguments of t which contain unresolved parameters.
func OpenParameters(t types.Type) []types.Type {
	var open []types.Type
	for _, arg := range types.GenericArgs(t) {
		if arg.IsGeneric() {
			open = append(open, arg)
		}
	}
	return open
}

// OpenMethodParameters returns the type parameters of m.
func OpenMethodParameters(m *types.Method) []types.Type {
	open := make([]types.Type, len(m.TypeParams))
	for i, tp := range m.TypeParams {
		open[i] = tp
	}
	return open
}
