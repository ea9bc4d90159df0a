// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package spdx

import (
	"fmt"
	"regexp"
)

// SyntaxError reports a grammar violation in a license expression:
// an operand missing where one is required, an unmatched parenthesis,
// or trailing tokens after a complete expression.
type SyntaxError struct {
	// Want is the token kind the parser expected, or "" when any
	// operand would have done.
	Want TokenKind
	// Got describes the token actually found, or "end of expression".
	Got string
}

func (e *SyntaxError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("expected a license identifier or '(', got %s", e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// slashSeparator matches the legacy "/" license separator, including
// surrounding whitespace. Some registries still publish expressions
// like "MIT/Apache-2.0"; the slash is an alias for OR.
var slashSeparator = regexp.MustCompile(`\s*/\s*`)

// RequiresStrongCopyleft evaluates a license expression and reports
// whether satisfying it forces acceptance of strong-copyleft terms.
// Legacy slash separators are rewritten to OR before tokenization.
// A malformed expression returns a *LexError or *SyntaxError; the
// boolean result is meaningless when err is non-nil.
//
// The function is pure: identical input always yields identical
// output, with no state shared across calls.
func RequiresStrongCopyleft(expr string) (bool, error) {
	expr = slashSeparator.ReplaceAllString(expr, " OR ")
	tokens, err := Tokenize(expr)
	if err != nil {
		return false, err
	}
	p := &parser{tokens: tokens}
	value, err := p.parseExpression()
	if err != nil {
		return false, err
	}
	if tok := p.peek(); tok != nil {
		return false, &SyntaxError{Want: "", Got: fmt.Sprintf("trailing token %q", tok.Text)}
	}
	return value, nil
}

// parser is a recursive-descent parser over the token sequence that
// evaluates the expression inline: no AST is materialized. Grammar,
// precedence low to high:
//
//	expression := term (OR term)*
//	term       := factor (AND factor)*
//	factor     := '(' expression ')' | IDENTIFIER (WITH IDENTIFIER)?
type parser struct {
	tokens []Token
	index  int
}

// peek returns the next token without consuming it, or nil at the end
// of the sequence.
func (p *parser) peek() *Token {
	if p.index >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.index]
}

// consume advances past the next token, which must have the given
// kind.
func (p *parser) consume(kind TokenKind) (Token, error) {
	tok := p.peek()
	if tok == nil {
		return Token{}, &SyntaxError{Want: kind, Got: "end of expression"}
	}
	if tok.Kind != kind {
		return Token{}, &SyntaxError{Want: kind, Got: fmt.Sprintf("%q", tok.Text)}
	}
	p.index++
	return *tok, nil
}

func (p *parser) parseExpression() (bool, error) {
	value, err := p.parseTerm()
	if err != nil {
		return false, err
	}
	for {
		tok := p.peek()
		if tok == nil || tok.Kind != TokenOr {
			return value, nil
		}
		p.index++
		rhs, err := p.parseTerm()
		if err != nil {
			return false, err
		}
		value = combineOr(value, rhs)
	}
}

func (p *parser) parseTerm() (bool, error) {
	value, err := p.parseFactor()
	if err != nil {
		return false, err
	}
	for {
		tok := p.peek()
		if tok == nil || tok.Kind != TokenAnd {
			return value, nil
		}
		p.index++
		rhs, err := p.parseFactor()
		if err != nil {
			return false, err
		}
		value = combineAnd(value, rhs)
	}
}

func (p *parser) parseFactor() (bool, error) {
	tok := p.peek()
	if tok == nil {
		return false, &SyntaxError{Want: "", Got: "end of expression"}
	}
	switch tok.Kind {
	case TokenLParen:
		p.index++
		value, err := p.parseExpression()
		if err != nil {
			return false, err
		}
		if _, err := p.consume(TokenRParen); err != nil {
			return false, err
		}
		return value, nil
	case TokenIdentifier:
		p.index++
		// A WITH exception carves out specific use permissions but
		// never removes the base license's copyleft category. The
		// exception identifier is consumed and discarded.
		if next := p.peek(); next != nil && next.Kind == TokenWith {
			p.index++
			if _, err := p.consume(TokenIdentifier); err != nil {
				return false, err
			}
		}
		return IsStrongCopyleft(tok.Text), nil
	default:
		return false, &SyntaxError{Want: "", Got: fmt.Sprintf("%q", tok.Text)}
	}
}
