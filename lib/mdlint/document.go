// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package mdlint

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share; parsing creates per-call state via Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// hanCharacter matches any Han character; maintained docs are
// English-only.
var hanCharacter = regexp.MustCompile(`\p{Han}`)

// externalLinkPrefixes are link schemes that are never resolved
// against the local filesystem.
var externalLinkPrefixes = []string{"http://", "https://", "mailto:"}

// CheckDocument runs the per-file checks (link validity, heading
// hierarchy, English-only policy) over one Markdown file and returns
// its violations, each prefixed "<path>:<line>:".
func CheckDocument(path string) ([]string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	document := getMarkdownParser().Parser().Parse(text.NewReader(source))
	starts := lineStarts(source)

	var violations []string
	previousLevel := 0

	err = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := node.(type) {
		case *ast.Link:
			if v := checkLinkTarget(path, string(typed.Destination), lineOf(starts, nodeOffset(typed))); v != "" {
				violations = append(violations, v)
			}
		case *ast.Image:
			if v := checkLinkTarget(path, string(typed.Destination), lineOf(starts, nodeOffset(typed))); v != "" {
				violations = append(violations, v)
			}
		case *ast.Heading:
			line := lineOf(starts, nodeOffset(typed))
			if previousLevel != 0 && typed.Level > previousLevel+1 {
				violations = append(violations,
					fmt.Sprintf("%s:%d: heading jumps from H%d to H%d", path, line, previousLevel, typed.Level))
			}
			previousLevel = typed.Level
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.CodeSpan:
			// Code is exempt from every per-file check.
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if hanCharacter.Match(typed.Segment.Value(source)) {
				violations = append(violations,
					fmt.Sprintf("%s:%d: Han characters are not allowed in maintained docs", path, lineOf(starts, typed.Segment.Start)))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}
	return violations, nil
}

// checkLinkTarget validates one link destination. External schemes and
// pure fragment links are skipped; everything else is resolved against
// the containing file's directory and must exist.
func checkLinkTarget(docPath, destination string, line int) string {
	target := strings.TrimSpace(destination)
	if target == "" || strings.HasPrefix(target, "#") {
		return ""
	}
	for _, prefix := range externalLinkPrefixes {
		if strings.HasPrefix(target, prefix) {
			return ""
		}
	}

	// Drop the fragment and query before resolving.
	target, _, _ = strings.Cut(target, "#")
	target, _, _ = strings.Cut(target, "?")
	if target == "" {
		return ""
	}

	resolved := filepath.Join(filepath.Dir(docPath), filepath.FromSlash(target))
	if _, err := os.Stat(resolved); err != nil {
		return fmt.Sprintf("%s:%d: broken link target '%s'", docPath, line, target)
	}
	return ""
}

// lineStarts returns the byte offset of the start of every line.
func lineStarts(source []byte) []int {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOf converts a byte offset into a 1-based line number.
func lineOf(starts []int, offset int) int {
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
	return line
}

// nodeOffset returns the source byte offset of a node: the start of
// its first line for block nodes, or the first text segment for
// inline nodes. Falls back to the enclosing block when an inline node
// has no text children (an image with empty alt text, for example).
func nodeOffset(node ast.Node) int {
	if node.Type() == ast.TypeBlock && node.Lines().Len() > 0 {
		return node.Lines().At(0).Start
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			return textNode.Segment.Start
		}
	}
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Type() == ast.TypeBlock && parent.Lines().Len() > 0 {
			return parent.Lines().At(0).Start
		}
	}
	return 0
}
