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

package main

import (
	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods catalog.yaml Type.Method",
	Short: "List the concrete instantiations of a method",
	Args:  cobra.ExactArgs(2),
	RunE:  runMethods,
}

func runMethods(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace(cmd, args[0])
	if err != nil {
		return err
	}
	m, err := w.catalog.LookupMethod(args[1])
	if err != nil {
		return err
	}

	methods := w.resolver.ConcreteMethods(m)
	for _, cm := range methods {
		keyColor.Println(cm.String())
	}
	printCount(len(methods), "method")
	return nil
}
