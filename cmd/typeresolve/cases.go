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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wdamron/typeresolver/theory"
)

var casesCmd = &cobra.Command{
	Use:   "cases catalog.yaml Type.Method",
	Short: "Expand a generic test method into concrete cases",
	Args:  cobra.ExactArgs(2),
	RunE:  runCases,
}

func runCases(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace(cmd, args[0])
	if err != nil {
		return err
	}
	m, err := w.catalog.LookupMethod(args[1])
	if err != nil {
		return err
	}

	cases, err := theory.Expand(cmd.Context(), w.resolver, m)
	if err != nil {
		return err
	}
	for _, c := range cases {
		values := make([]string, len(c.Args))
		for i, v := range c.Args {
			values[i] = fmt.Sprintf("%v", v)
		}
		keyColor.Print(c.ID)
		valueColor.Printf("( %s )\n", strings.Join(values, ", "))
	}
	printCount(len(cases), "case")
	return nil
}
