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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/wdamron/typeresolver/config"
)

const sample = `
[log]
verbosity = 2

[exclude]
types = ["ExcludedType", "Box<int>"]
groups = ["experimental"]

[[limit]]
target = "ILimitedType"
sources = ["LimitedTypeA", "LimitedTypeB"]

[[limit]]
target = "ExcludedType"
`

func TestParse(t *testing.T) {
	cfg, err := Parse(sample, "sample.toml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Verbosity != 2 {
		t.Fatalf("expected verbosity 2, found %d", cfg.Log.Verbosity)
	}
	if strings.Join(cfg.Exclude.Types, ",") != "ExcludedType,Box<int>" || len(cfg.Exclude.Groups) != 1 {
		t.Fatalf("unexpected exclusions: %+v", cfg.Exclude)
	}
	if len(cfg.Limits) != 2 || cfg.Limits[0].Target != "ILimitedType" || len(cfg.Limits[0].Sources) != 2 {
		t.Fatalf("unexpected limits: %+v", cfg.Limits)
	}
	if len(cfg.Limits[1].Sources) != 0 {
		t.Fatalf("expected a limit without sources, found %+v", cfg.Limits[1])
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("[exclude]\ntypez = [\"A\"]\n", "typo.toml")
	if !errors.Is(err, ErrUndefinedKey) || !strings.Contains(err.Error(), "exclude.typez") {
		t.Fatalf("expected ErrUndefinedKey for exclude.typez, found %v", err)
	}

	invalid := []string{
		"[log\n",
		"[[limit]]\nsources = [\"A\"]\n",
		"[log]\nverbosity = -1\n",
		"[log]\nverbosity = \"high\"\n",
	}
	for _, data := range invalid {
		if _, err := Parse(data, "invalid.toml"); err == nil || !strings.HasPrefix(err.Error(), "invalid.toml: ") {
			t.Fatalf("%q: expected an error, found %v", data, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolver.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Limits[0].Sources[1] != "LimitedTypeB" {
		t.Fatalf("unexpected limits: %+v", cfg.Limits)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
