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
	"github.com/tliron/commonlog"

	"github.com/wdamron/typeresolver"
	"github.com/wdamron/typeresolver/catalog"
	"github.com/wdamron/typeresolver/config"
	"github.com/wdamron/typeresolver/types"
)

// workspace is a loaded catalog and a resolver configured for it.
type workspace struct {
	catalog  *catalog.Memory
	resolver *typeresolver.Resolver
}

func openWorkspace(cmd *cobra.Command, path string) (*workspace, error) {
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	w := &workspace{catalog: c, resolver: typeresolver.NewResolver(c)}

	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		return w, nil
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Root().PersistentFlags().GetCount("verbose"); cfg.Log.Verbosity > verbose {
		commonlog.Configure(cfg.Log.Verbosity, nil)
	}
	if err := w.resolver.Apply(cfg, w.parseType); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return w, nil
}

func (w *workspace) parseType(expr string) (types.Type, error) {
	return w.catalog.ParseType(expr)
}
