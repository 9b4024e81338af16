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

// typeresolve resolves generic types, methods and creators in a YAML catalog.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var rootCmd = &cobra.Command{
	Use:   "typeresolve",
	Short: "Resolve generic types and synthesize creators",
	Long: `typeresolve loads a catalog of modules and declarations, resolves open generic types
and methods into concrete instantiations, and synthesizes creators for requested types.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(creatorsCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(casesCmd)

	rootCmd.PersistentFlags().String("config", "", "resolver configuration (TOML)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup configures colors and logging before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	if err := configureColor(colorFlag); err != nil {
		return err
	}
	verbosity, err := cmd.Root().PersistentFlags().GetCount("verbose")
	if err != nil {
		return err
	}
	commonlog.Configure(verbosity, nil)
	return nil
}
