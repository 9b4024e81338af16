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

package util_test

import (
	"sort"
	"testing"

	. "github.com/wdamron/typeresolver/internal/util"
)

func checkGraphs(t *testing.T, expected, actual [][]int) {
	if len(actual) != len(expected) {
		t.Logf("expect:  %#+v", expected)
		t.Logf("actual: %#+v", actual)
		t.Fail()
		return
	}
	for i := range expected {
		if len(actual[i]) != len(expected[i]) {
			t.Logf("expect:  %#+v", expected)
			t.Logf("actual: %#+v", actual)
			t.Fail()
			break
		}
		for j := range expected[i] {
			if actual[i][j] != expected[i][j] {
				t.Logf("expect:  %#+v", expected)
				t.Logf("actual: %#+v", actual)
				t.Fail()
				break
			}
		}
	}
}

func sorted(g [][]int) [][]int {
	for _, c := range g {
		sort.Ints(c)
	}
	return g
}

func TestSCC(t *testing.T) {
	const (
		app = iota
		lib
		core
		cycleA
		cycleB
	)
	g := NewGraph(5)
	g.AddEdge(app, lib)
	g.AddEdge(app, core)
	g.AddEdge(lib, core)
	g.AddEdge(cycleA, cycleB)
	g.AddEdge(cycleB, cycleA)
	g.AddEdge(cycleB, core)
	g.AddEdge(app, lib)

	if len(g[app]) != 2 {
		t.Fatalf("expected duplicate edges to be ignored")
	}

	sccs := sorted(g.SCC())
	// Components are ordered so that importers come before the modules they import:
	pos := make(map[int]int)
	for i, c := range sccs {
		for _, v := range c {
			pos[v] = i
		}
	}
	if !(pos[app] < pos[lib] && pos[lib] < pos[core] && pos[cycleA] < pos[core]) {
		t.Fatalf("unexpected component order: %v", sccs)
	}
	if pos[cycleA] != pos[cycleB] {
		t.Fatalf("expected a shared component for the cycle: %v", sccs)
	}

	checkGraphs(t, [][]int{{cycleA, cycleB}}, sorted(g.Cycles()))
}

func TestSelfCycle(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)
	checkGraphs(t, [][]int{{0}}, g.Cycles())
}

func TestTranspose(t *testing.T) {
	g := Graph{
		0: {1, 2},
		1: {2},
		2: {},
	}
	checkGraphs(t, [][]int{{}, {0}, {0, 1}}, g.Transpose())
}

func TestDeepChain(t *testing.T) {
	const n = 100000
	g := NewGraph(n)
	for v := 0; v < n-1; v++ {
		g.AddEdge(v, v+1)
	}
	g.AddEdge(n-1, n-2)

	sccs := g.SCC()
	if len(sccs) != n-1 || sccs[0][0] != 0 {
		t.Fatalf("expected %d components starting with 0, found %d", n-1, len(sccs))
	}
	checkGraphs(t, [][]int{{n - 2, n - 1}}, sorted(g.Cycles()))
}
