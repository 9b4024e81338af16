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

// theory expands generic test methods into concrete cases. Each case binds the type
// parameters of the method, and supplies one instance per method parameter.
package theory

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/typeresolver"
	"github.com/wdamron/typeresolver/linklist"
	"github.com/wdamron/typeresolver/types"
)

var log = commonlog.GetLogger("typeresolver.theory")

// ErrNoCases is returned when a method has no concrete cases.
var ErrNoCases = errors.New("Method has no cases")

// Case is one invocation of a concrete method.
type Case struct {
	// ID is stable across runs for the same catalog: `Owner.Method<Args>[i]`.
	ID       string
	Method   *typeresolver.ConcreteMethod
	Args     []interface{}
	Creators []typeresolver.Creator
}

func (c *Case) String() string { return c.ID }

// Invoke calls the case's method with its arguments.
func (c *Case) Invoke() (interface{}, error) { return c.Method.Invoke(c.Args...) }

// Expand returns the cases of m: one for each concrete instantiation of m and each
// permutation of the creators of its parameter types. Instantiations are expanded in
// parallel; cases are returned in the order of the instantiations.
func Expand(ctx context.Context, r *typeresolver.Resolver, m *types.Method) ([]*Case, error) {
	methods := r.ConcreteMethods(m)
	if len(methods) == 0 {
		return nil, fmt.Errorf("%s: %w", m, ErrNoCases)
	}

	results := make([][]*Case, len(methods))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(methods)))
	for i, cm := range methods {
		i, cm := i, cm
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = expand(cm, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var cases []*Case
	for _, rs := range results {
		cases = append(cases, rs...)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%s: %w", m, ErrNoCases)
	}
	log.Debugf("expanded %s into %d cases", m, len(cases))
	return cases, nil
}

func expand(cm *typeresolver.ConcreteMethod, r *typeresolver.Resolver) []*Case {
	params := cm.Params()
	available := make([][]typeresolver.Creator, len(params))
	for i, p := range params {
		available[i] = r.Creators(p)
		if len(available[i]) == 0 {
			log.Infof("%s: no creators for %s", cm, types.TypeString(p))
			return nil
		}
	}

	perms := linklist.Permute(available)
	cases := make([]*Case, len(perms))
	for i, creators := range perms {
		args := make([]interface{}, len(creators))
		for j, c := range creators {
			args[j] = c.Invoke()
		}
		cases[i] = &Case{
			ID:       fmt.Sprintf("%s[%d]", cm.Key(), i),
			Method:   cm,
			Args:     args,
			Creators: creators,
		}
	}
	return cases
}
