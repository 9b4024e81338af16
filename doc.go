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

// typeresolver resolves open generic types and methods into every concrete instantiation which
// satisfies their constraints, and synthesizes creators: deferred recipes which construct
// instances of a requested type.
//
// Candidate types are drawn from a catalog.Catalog. A Resolver owns the caches of resolved
// types and creators, along with the registries which limit or exclude candidates.
//
//
// Supported Features:
//
//   * Inheritance, interface and keyword (class, struct, new) constraints on generic parameters
//   * Usage constraints inferred from the declarations which nest a parameter
//   * Self-referential and mutually-constraining generic parameters
//   * Multiple instantiations of one generic interface on a single type
//   * Generic method resolution through the creatable types of its parameters
//   * Creators for enumerations, default and parameterized constructors, and registered factories
//   * Creators of creators (`Creator<T>`)
//
//
// Searches are expressed over the binding package: each alternative assignment of parameters is
// a world, and a space of worlds is narrowed or branched as constraints are applied.
package typeresolver
