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

// config loads resolver configuration from TOML:
//
//	[log]
//	verbosity = 1
//
//	[exclude]
//	types = ["ExcludedType"]
//	groups = ["experimental"]
//
//	[[limit]]
//	target = "ILimitedType"
//	sources = ["LimitedTypeA", "LimitedTypeB"]
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUndefinedKey is returned for keys which are not part of the configuration.
var ErrUndefinedKey = errors.New("Undefined configuration key")

type Config struct {
	Log     Log     `toml:"log"`
	Exclude Exclude `toml:"exclude"`
	Limits  []Limit `toml:"limit"`
}

type Log struct {
	// Verbosity of the log: 0 for errors and warnings only, 1 for info, 2 or more for debug.
	Verbosity int `toml:"verbosity"`
}

// Exclude lists the type expressions and module names which are never used as candidates.
type Exclude struct {
	Types  []string `toml:"types"`
	Groups []string `toml:"groups"`
}

// Limit restricts the creators of Target to those supplied by Sources.
type Limit struct {
	Target  string   `toml:"target"`
	Sources []string `toml:"sources"`
}

// LoadFile decodes the configuration file at path.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(&cfg, meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Parse decodes a configuration from data. path is only used in errors.
func Parse(data string, path string) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(&cfg, meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config, meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUndefinedKey, strings.Join(keys, ", "))
	}
	for i, limit := range cfg.Limits {
		if strings.TrimSpace(limit.Target) == "" {
			return fmt.Errorf("missing [[limit]].target in limit %d", i+1)
		}
	}
	if cfg.Log.Verbosity < 0 {
		return fmt.Errorf("invalid [log].verbosity %d: must not be negative", cfg.Log.Verbosity)
	}
	return nil
}
