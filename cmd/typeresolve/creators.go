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

	"github.com/wdamron/typeresolver/types"
)

var creatorsCmd = &cobra.Command{
	Use:   "creators [flags] catalog.yaml type",
	Short: "List the creators synthesized for a type",
	Args:  cobra.ExactArgs(2),
	RunE:  runCreators,
}

func init() {
	creatorsCmd.Flags().Bool("invoke", false, "invoke each creator and print the instance")
}

func runCreators(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace(cmd, args[0])
	if err != nil {
		return err
	}
	t, err := w.parseType(args[1])
	if err != nil {
		return err
	}
	invoke, err := cmd.Flags().GetBool("invoke")
	if err != nil {
		return fmt.Errorf("failed to get invoke flag: %w", err)
	}

	creators := w.resolver.Creators(t)
	for _, c := range creators {
		keyColor.Print(c.String())
		typeColor.Printf(" : %s\n", types.TypeString(c.Type()))
		if invoke {
			valueColor.Printf("  = %v\n", c.Invoke())
		}
	}
	printCount(len(creators), "creator")
	return nil
}
