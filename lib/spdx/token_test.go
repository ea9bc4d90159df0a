// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package spdx

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []Token
	}{
		{
			name: "single identifier",
			expr: "MIT",
			want: []Token{{TokenIdentifier, "MIT"}},
		},
		{
			name: "binary or",
			expr: "MIT OR Apache-2.0",
			want: []Token{
				{TokenIdentifier, "MIT"},
				{TokenOr, "OR"},
				{TokenIdentifier, "Apache-2.0"},
			},
		},
		{
			name: "lowercase keywords",
			expr: "mit and apache-2.0",
			want: []Token{
				{TokenIdentifier, "mit"},
				{TokenAnd, "and"},
				{TokenIdentifier, "apache-2.0"},
			},
		},
		{
			name: "parens and with",
			expr: "(GPL-2.0-only WITH Classpath-exception-2.0)",
			want: []Token{
				{TokenLParen, "("},
				{TokenIdentifier, "GPL-2.0-only"},
				{TokenWith, "WITH"},
				{TokenIdentifier, "Classpath-exception-2.0"},
				{TokenRParen, ")"},
			},
		},
		{
			name: "keyword prefix stays one identifier",
			expr: "OR-something",
			want: []Token{{TokenIdentifier, "OR-something"}},
		},
		{
			name: "plus suffix",
			expr: "GPL-2.0+",
			want: []Token{{TokenIdentifier, "GPL-2.0+"}},
		},
		{
			name: "surrounding whitespace discarded",
			expr: "  MIT \t ",
			want: []Token{{TokenIdentifier, "MIT"}},
		},
		{
			name: "empty input",
			expr: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.expr)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.expr, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.expr, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeRejectsUnknownCharacters(t *testing.T) {
	_, err := Tokenize("MIT © Apache-2.0")
	if err == nil {
		t.Fatal("expected lex error, got nil")
	}

	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
	if lexErr.Offset != 4 {
		t.Errorf("offset = %d, want 4", lexErr.Offset)
	}
}

func TestTokenizePreservesIdentifierCasing(t *testing.T) {
	tokens, err := Tokenize("lgpl-2.1-OR-later")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Text != "lgpl-2.1-OR-later" {
		t.Errorf("tokens = %v, want the original casing preserved", tokens)
	}
}
