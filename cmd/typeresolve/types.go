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

	"github.com/spf13/cobra"

	"github.com/wdamron/typeresolver/binding"
	"github.com/wdamron/typeresolver/types"
)

var typesCmd = &cobra.Command{
	Use:   "types [flags] catalog.yaml type",
	Short: "List the concrete instantiations of a type",
	Args:  cobra.ExactArgs(2),
	RunE:  runTypes,
}

func init() {
	typesCmd.Flags().Bool("implementations", false, "list concrete types which derive from the type instead")
}

func runTypes(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace(cmd, args[0])
	if err != nil {
		return err
	}
	t, err := w.parseType(args[1])
	if err != nil {
		return err
	}
	implementations, err := cmd.Flags().GetBool("implementations")
	if err != nil {
		return fmt.Errorf("failed to get implementations flag: %w", err)
	}

	var ts []types.Type
	if implementations {
		ts = w.resolver.Implementations(t)
	} else {
		ts = w.resolver.ConcreteTypes(t, binding.Empty)
	}
	for _, t := range ts {
		typeColor.Println(types.TypeString(t))
	}
	printCount(len(ts), "type")
	return nil
}
