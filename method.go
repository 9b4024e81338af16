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
	"strings"

	"github.com/wdamron/typeresolver/types"
)

// ConcreteMethod is a method with every type parameter bound to a closed type.
type ConcreteMethod struct {
	Method   *types.Method
	TypeArgs []types.Type
}

func (c *ConcreteMethod) Key() string {
	if len(c.TypeArgs) == 0 {
		return c.Method.Key()
	}
	var sb strings.Builder
	sb.WriteString(c.Method.Key())
	sb.WriteByte('<')
	for i, t := range c.TypeArgs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.Key())
	}
	sb.WriteByte('>')
	return sb.String()
}

// Params returns the parameter types of the method with its type arguments substituted.
func (c *ConcreteMethod) Params() []types.Type {
	mapping := types.MethodMapping(c.Method, c.TypeArgs)
	params := make([]types.Type, len(c.Method.Params))
	for i, p := range c.Method.Params {
		params[i] = types.Subst(p, mapping)
	}
	return params
}

// Result returns the result type of the method with its type arguments substituted, or nil.
func (c *ConcreteMethod) Result() types.Type {
	if c.Method.Result == nil {
		return nil
	}
	return types.Subst(c.Method.Result, types.MethodMapping(c.Method, c.TypeArgs))
}

func (c *ConcreteMethod) String() string { return types.MethodString(c.Method, c.TypeArgs) }

// Invoke calls the method's implementation with args.
func (c *ConcreteMethod) Invoke(args ...interface{}) (interface{}, error) {
	if c.Method.Func == nil {
		return nil, ErrNoFunc
	}
	return c.Method.Func(c.TypeArgs, args)
}
