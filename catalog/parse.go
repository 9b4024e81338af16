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

package catalog

import (
	"fmt"
	"strings"

	"github.com/wdamron/typeresolver/types"
)

// ParseType parses a type expression against the catalog's declarations. Parameters in params
// may be referenced by name and take precedence over declarations.
//
//	Name
//	Name<Arg, ...>
//	Elem[]
//	Elem[,]
//
// A generic declaration named without arguments denotes its definition.
func (c *Memory) ParseType(expr string, params ...*types.Param) (types.Type, error) {
	return parseType(expr, func(name string) (types.Type, *types.Decl) {
		for _, p := range params {
			if p.Name == name {
				return p, nil
			}
		}
		d, _ := c.Lookup(name)
		return nil, d
	})
}

// resolveName returns either a parameter or a declaration for name.
type resolveName func(name string) (types.Type, *types.Decl)

type typeParser struct {
	src     string
	pos     int
	resolve resolveName
}

func parseType(expr string, resolve resolveName) (types.Type, error) {
	p := &typeParser{src: expr, resolve: resolve}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return t, nil
}

func (p *typeParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%q at offset %d: %s: %w", p.src, p.pos, fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	p.skipSpace()
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *typeParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected '%c'", c)
	}
	p.pos++
	return nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '.' || c == '`' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *typeParser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return "", p.errorf("expected a type name")
	}
	return p.src[start:p.pos], nil
}

func (p *typeParser) parseType() (types.Type, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	param, decl := p.resolve(name)

	var t types.Type
	switch {
	case param != nil:
		if p.peek() == '<' {
			return nil, p.errorf("parameter %s cannot take arguments", name)
		}
		t = param
	case decl == nil:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownType)
	case p.peek() == '<':
		p.pos++
		var args []types.Type
		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek() != ',' {
				break
			}
			p.pos++
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		if len(args) != len(decl.Params) {
			return nil, p.errorf("%s takes %d type arguments, found %d", name, len(decl.Params), len(args))
		}
		t = decl.Of(args...)
	default:
		t = decl.Type()
	}

	for p.peek() == '[' {
		p.pos++
		rank := 1
		for p.peek() == ',' {
			p.pos++
			rank++
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		t = types.NewArray(t, rank)
	}
	return t, nil
}

// splitQualified splits "Decl.Member" at its last dot.
func splitQualified(name string) (string, string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}
