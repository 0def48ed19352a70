// Package highlight computes styled spans for display. It is a pure
// collaborator: text in, spans out, no buffer mutation — the reducer
// never depends on it.
package highlight

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"

	"github.com/vishal2376/rio-editor/internal/logger"
	"github.com/vishal2376/rio-editor/internal/types"
)

//go:embed queries/go/highlights.scm
var goHighlightsQuery []byte

// Result maps line number to the styled ranges on that line.
type Result map[int][]types.StyledRange

// Highlighter parses text and produces highlight spans. Not safe for
// concurrent use; the app drives it from a single worker goroutine.
type Highlighter struct {
	parser *sitter.Parser
}

// New creates a highlighter instance.
func New() *Highlighter {
	return &Highlighter{parser: sitter.NewParser()}
}

// language picks the grammar for a path hint. Unknown extensions return
// nil, meaning no highlighting.
func language(pathHint string) (*sitter.Language, []byte) {
	switch strings.ToLower(filepath.Ext(pathHint)) {
	case ".go":
		return gosrc.GetLanguage(), goHighlightsQuery
	}
	return nil, nil
}

// Supported reports whether pathHint maps to a known grammar.
func Supported(pathHint string) bool {
	lang, _ := language(pathHint)
	return lang != nil
}

// Highlight parses text and returns per-line styled ranges. A nil Result
// with nil error means the file type is not highlighted.
func (h *Highlighter) Highlight(ctx context.Context, text []byte, pathHint string) (Result, error) {
	lang, queryBytes := language(pathHint)
	if lang == nil {
		return nil, nil
	}
	h.parser.SetLanguage(lang)

	tree, err := h.parser.ParseCtx(ctx, nil, text)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	query, err := sitter.NewQuery(queryBytes, lang)
	if err != nil {
		return nil, fmt.Errorf("query parse failed: %w", err)
	}
	defer query.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	lines := bytes.Split(text, []byte("\n"))
	result := make(Result)

	for {
		match, exists := qc.NextMatch()
		if !exists {
			break
		}
		for _, capture := range match.Captures {
			styleName := query.CaptureNameForId(capture.Index)
			node := capture.Node

			startPoint := node.StartPoint()
			endPoint := node.EndPoint()
			lineNum := int(startPoint.Row)
			if lineNum >= len(lines) {
				continue
			}
			line := lines[lineNum]

			startCol := byteOffsetToRuneIndex(line, int(startPoint.Column))
			endCol := 0
			if startPoint.Row == endPoint.Row {
				endCol = byteOffsetToRuneIndex(line, int(endPoint.Column))
			} else {
				// Multi-line capture: style to end of the start line.
				endCol = utf8.RuneCount(line)
			}
			if endCol <= startCol {
				continue
			}

			result[lineNum] = append(result[lineNum], types.StyledRange{
				StartCol:  startCol,
				EndCol:    endCol,
				StyleName: styleName,
			})
		}
	}

	logger.Debugf("highlight: %q produced spans on %d lines", pathHint, len(result))
	return result, nil
}

// byteOffsetToRuneIndex converts a byte offset within line to a rune index.
func byteOffsetToRuneIndex(line []byte, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	runeIndex := 0
	currentOffset := 0
	for currentOffset < byteOffset {
		_, size := utf8.DecodeRune(line[currentOffset:])
		if currentOffset+size > byteOffset {
			break
		}
		currentOffset += size
		runeIndex++
	}
	return runeIndex
}
