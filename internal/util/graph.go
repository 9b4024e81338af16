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

// util provides a small directed graph over integer vertices.
package util

// Graph stores the successors of each vertex.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// Transpose returns a graph with every edge reversed.
func (g Graph) Transpose() Graph {
	t := make(Graph, len(g))
	for pred, succs := range g {
		for _, succ := range succs {
			t[succ] = append(t[succ], pred)
		}
	}
	return t
}

// Cycles returns every strongly-connected component which contains a cycle: components with
// more than one vertex, and vertices with an edge to themselves.
func (g Graph) Cycles() [][]int {
	var cycles [][]int
	for _, c := range g.SCC() {
		if len(c) > 1 || g.HasEdge(c[0], c[0]) {
			cycles = append(cycles, c)
		}
	}
	return cycles
}

// SCC returns the strongly-connected components of the graph in topological order: a vertex's
// component comes before the components of its successors, unless they share one.
//
// Components are found with Tarjan's algorithm, walking the graph with an explicit stack of
// frames so deep import chains cannot exhaust the goroutine stack.
func (g Graph) SCC() [][]int {
	type frame struct{ v, next int }

	var (
		order   = make([]int, len(g)) // discovery order, 1-based; 0 if unvisited
		low     = make([]int, len(g))
		onStack = make([]bool, len(g))
		stack   []int
		frames  []frame
		sccs    [][]int
		visited int
	)
	discover := func(v int) {
		visited++
		order[v], low[v] = visited, visited
		stack = append(stack, v)
		onStack[v] = true
		frames = append(frames, frame{v: v})
	}

	for root := range g {
		if order[root] != 0 {
			continue
		}
		discover(root)
		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			v := top.v
			if top.next < len(g[v]) {
				succ := g[v][top.next]
				top.next++
				switch {
				case order[succ] == 0:
					discover(succ)
				case onStack[succ]:
					low[v] = min(low[v], order[succ])
				}
				continue
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].v
				low[parent] = min(low[parent], low[v])
			}
			if low[v] != order[v] {
				continue
			}
			var c []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				c = append(c, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, c)
		}
	}

	// Components complete in reverse topological order:
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}
