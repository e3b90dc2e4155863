package typeexpr

import (
	"errors"
	"fmt"
)

// Parse parses a type expression string into a Ref.
// Supports: "Name", "Name?", "Name<Arg, Arg>", nested generics, and
// nullability markers at any level.
func Parse(expr string) (Ref, error) {
	if expr == "" {
		return Ref{}, errors.New("empty type expression")
	}

	p := &parser{input: expr}

	ref, err := p.parseRef()
	if err != nil {
		return Ref{}, fmt.Errorf("invalid type %q: %w", expr, err)
	}

	p.skipSpaces()

	if p.pos != len(p.input) {
		return Ref{}, fmt.Errorf("invalid type %q: unexpected %q at offset %d",
			expr, p.input[p.pos:], p.pos)
	}

	return ref, nil
}

// MustParse parses a type expression and panics on failure.
// Intended for tests and fixed literals.
func MustParse(expr string) Ref {
	ref, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return ref
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseRef() (Ref, error) {
	p.skipSpaces()

	name, err := p.parseIdent()
	if err != nil {
		return Ref{}, err
	}

	ref := Ref{Name: name}

	p.skipSpaces()

	if p.peek() == '<' {
		p.pos++

		for {
			arg, err := p.parseRef()
			if err != nil {
				return Ref{}, err
			}

			ref.Args = append(ref.Args, arg)

			p.skipSpaces()

			if p.peek() == ',' {
				p.pos++
				continue
			}

			break
		}

		if p.peek() != '>' {
			return Ref{}, fmt.Errorf("expected '>' at offset %d", p.pos)
		}

		p.pos++
	}

	p.skipSpaces()

	if p.peek() == '?' {
		ref.Null = true
		p.pos++
	}

	return ref, nil
}

func (p *parser) parseIdent() (string, error) {
	start := p.pos

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if isLetter(c) || c == '_' || c == '.' || (p.pos > start && isDigit(c)) {
			p.pos++
			continue
		}

		break
	}

	if p.pos == start {
		return "", fmt.Errorf("expected identifier at offset %d", start)
	}

	return p.input[start:p.pos], nil
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}

	return p.input[p.pos]
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
