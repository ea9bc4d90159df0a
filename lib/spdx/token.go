// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package spdx

import (
	"fmt"
	"strings"
)

// TokenKind identifies the lexical class of a token.
type TokenKind string

const (
	// TokenIdentifier is a license or exception identifier such as
	// "Apache-2.0" or "Classpath-exception-2.0".
	TokenIdentifier TokenKind = "identifier"
	// TokenAnd is the AND keyword (case-insensitive).
	TokenAnd TokenKind = "AND"
	// TokenOr is the OR keyword (case-insensitive).
	TokenOr TokenKind = "OR"
	// TokenWith is the WITH keyword (case-insensitive).
	TokenWith TokenKind = "WITH"
	// TokenLParen is "(".
	TokenLParen TokenKind = "("
	// TokenRParen is ")".
	TokenRParen TokenKind = ")"
)

// Token is one lexical unit of a license expression. Text preserves
// the original casing of identifiers; classification happens later.
type Token struct {
	Kind TokenKind
	Text string
}

// LexError reports an unrecognized character in a license expression.
type LexError struct {
	// Offset is the byte offset of the first unrecognized character.
	Offset int
	// Rest is the unconsumed remainder of the expression, truncated
	// for display.
	Rest string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("cannot lex license expression at byte %d near %q", e.Offset, e.Rest)
}

// identByte reports whether c may appear in an SPDX identifier.
// Identifiers are maximal runs of ASCII letters, digits, '.', '+',
// and '-'.
func identByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '+' || c == '-':
		return true
	}
	return false
}

// Tokenize scans expr into a flat token sequence. Whitespace is
// discarded. Keywords are matched against complete identifier runs,
// so "OR-something" is a single identifier and never an OR token.
// Any character outside the recognized alphabet produces a *LexError.
func Tokenize(expr string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Text: "("})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Text: ")"})
			i++
		case identByte(c):
			start := i
			for i < len(expr) && identByte(expr[i]) {
				i++
			}
			word := expr[start:i]
			switch strings.ToUpper(word) {
			case "AND":
				tokens = append(tokens, Token{Kind: TokenAnd, Text: word})
			case "OR":
				tokens = append(tokens, Token{Kind: TokenOr, Text: word})
			case "WITH":
				tokens = append(tokens, Token{Kind: TokenWith, Text: word})
			default:
				tokens = append(tokens, Token{Kind: TokenIdentifier, Text: word})
			}
		default:
			rest := expr[i:]
			if len(rest) > 30 {
				rest = rest[:30]
			}
			return nil, &LexError{Offset: i, Rest: rest}
		}
	}
	return tokens, nil
}
