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
	"fmt"
	"strconv"
	"strings"

	"github.com/wdamron/typeresolver/types"
)

// Creator is a deferred recipe which creates instances of a type. Creators are immutable and
// may be invoked any number of times, from any goroutine.
type Creator interface {
	// Type returns the type of every instance created.
	Type() types.Type
	// Args returns the creators which supply the arguments of the underlying construction.
	Args() []Creator
	// Create creates a new instance. Failures of the underlying construction, or of any
	// argument, are returned as errors. A panicking construction fails with ErrPanicked.
	Create() (interface{}, error)
	// Invoke creates a new instance. If creation fails, the error itself is returned as the
	// instance.
	Invoke() interface{}
	// Key identifies the creator: creators with equal keys create equal instances.
	Key() string
	String() string
}

// Interceptor performs a primitive construction of an instance of t by calling create. An
// interceptor must not request types or creators from the resolver which synthesized the
// creator being invoked.
type Interceptor func(t types.Type, create func() (interface{}, error)) (interface{}, error)

func directly(_ types.Type, create func() (interface{}, error)) (interface{}, error) {
	return create()
}

// recovered calls create, returning a panic as an error wrapping ErrPanicked.
func recovered(t types.Type, create func() (interface{}, error)) (v interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, fmt.Errorf("%w: %s: %v", ErrPanicked, types.TypeString(t), p)
		}
	}()
	return create()
}

func invoke(c Creator) interface{} {
	v, err := c.Create()
	if err != nil {
		return err
	}
	return v
}

func createArgs(args []Creator) ([]interface{}, error) {
	if len(args) == 0 {
		return nil, nil
	}
	values := make([]interface{}, len(args))
	for i, a := range args {
		v, err := a.Create()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func joinArgs(sb *strings.Builder, args []Creator, key bool) {
	if len(args) == 0 {
		sb.WriteString("()")
		return
	}
	sb.WriteString("( ")
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		if key {
			sb.WriteString(a.Key())
		} else {
			sb.WriteString(a.String())
		}
	}
	sb.WriteString(" )")
}

type creatorBase struct {
	typ  types.Type
	args []Creator
	key  string
	desc string
}

func (c *creatorBase) Type() types.Type { return c.typ }
func (c *creatorBase) Args() []Creator  { return c.args }
func (c *creatorBase) Key() string      { return c.key }
func (c *creatorBase) String() string   { return c.desc }

// valueCreator returns one value of an enumerable type.
type valueCreator struct {
	creatorBase
	value interface{}
}

func newValueCreator(t *types.Named, v interface{}) *valueCreator {
	s := types.ValueString(t, v)
	return &valueCreator{creatorBase{typ: t, key: s, desc: s}, v}
}

func (c *valueCreator) Create() (interface{}, error) { return c.value, nil }
func (c *valueCreator) Invoke() interface{}          { return c.value }

// ctorCreator calls a constructor. A nil constructor creates the zero value of a value type.
type ctorCreator struct {
	creatorBase
	t         *types.Named
	ctor      *types.Constructor
	intercept Interceptor
}

func newCtorCreator(t *types.Named, ctor *types.Constructor, args []Creator, intercept Interceptor) *ctorCreator {
	var key, desc strings.Builder
	key.WriteString("new ")
	key.WriteString(t.Key())
	joinArgs(&key, args, true)
	desc.WriteString("new ")
	desc.WriteString(types.TypeString(t))
	joinArgs(&desc, args, false)
	return &ctorCreator{
		creatorBase: creatorBase{typ: t, args: args, key: key.String(), desc: desc.String()},
		t:           t,
		ctor:        ctor,
		intercept:   intercept,
	}
}

func (c *ctorCreator) Create() (interface{}, error) {
	args, err := createArgs(c.args)
	if err != nil {
		return nil, err
	}
	return c.intercept(c.t, func() (interface{}, error) {
		switch {
		case c.ctor != nil && c.ctor.Func != nil:
			return recovered(c.t, func() (interface{}, error) { return c.ctor.Func(c.t, args) })
		case c.ctor == nil && c.t.Decl.Zero != nil:
			return c.t.Decl.Zero(c.t), nil
		}
		return &types.Instance{Type: c.t, Args: args}, nil
	})
}

func (c *ctorCreator) Invoke() interface{} { return invoke(c) }

// thunkCreator calls one of the functions returned by a factory method. The factory method was
// invoked with instances of args when the creator was synthesized.
type thunkCreator struct {
	creatorBase
	thunk     types.Thunk
	intercept Interceptor
}

func newThunkCreator(t types.Type, m *ConcreteMethod, args []Creator, index int, thunk types.Thunk, intercept Interceptor) *thunkCreator {
	suffix := "#" + strconv.Itoa(index)
	var key, desc strings.Builder
	key.WriteString(m.Key())
	joinArgs(&key, args, true)
	key.WriteString(suffix)
	if m.Method.Owner != nil {
		desc.WriteString(m.Method.Owner.Name)
		desc.WriteByte('.')
	}
	desc.WriteString(m.Method.Name)
	if len(m.TypeArgs) > 0 {
		desc.WriteByte('<')
		for i, a := range m.TypeArgs {
			if i > 0 {
				desc.WriteString(", ")
			}
			desc.WriteString(types.TypeString(a))
		}
		desc.WriteByte('>')
	}
	joinArgs(&desc, args, false)
	desc.WriteString(suffix)
	return &thunkCreator{creatorBase{typ: t, args: args, key: key.String(), desc: desc.String()}, thunk, intercept}
}

func (c *thunkCreator) Create() (interface{}, error) {
	return c.intercept(c.typ, func() (interface{}, error) { return recovered(c.typ, c.thunk) })
}

func (c *thunkCreator) Invoke() interface{} { return invoke(c) }

// adapterCreator creates its inner creator. Adapters are the creators of `Creator<X>`.
type adapterCreator struct {
	creatorBase
	inner Creator
}

func newAdapterCreator(created types.Type, inner Creator) *adapterCreator {
	return &adapterCreator{
		creatorBase: creatorBase{
			typ:  types.CreatorOf(created),
			key:  "creator " + inner.Key(),
			desc: "Creator( " + inner.String() + " )",
		},
		inner: inner,
	}
}

func (c *adapterCreator) Create() (interface{}, error) { return c.inner, nil }
func (c *adapterCreator) Invoke() interface{}          { return c.inner }
