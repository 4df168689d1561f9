package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

type tokenKind int

const (
	// tokenWord is a run of [A-Za-z0-9_].
	tokenWord tokenKind = iota
	// tokenWildcard is a lone "*".
	tokenWildcard
	// tokenPunct is any other non-space rune.
	tokenPunct
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "//"

type token struct {
	kind tokenKind
	text string
	rng  hcl.Range
}

// isPort reports whether t may stand in a port position.
func (t token) isPort() bool {
	return t.kind == tokenWord || t.kind == tokenWildcard
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

// tokenize splits one line into tokens, dropping any "//" comment. lineNo is
// 1-based and offset is the byte offset of the line's first byte within the
// whole document.
func tokenize(filename, line string, lineNo, offset int) []token {
	var toks []token
	col := 1
	for i := 0; i < len(line); {
		start, startCol := i, col

		if strings.HasPrefix(line[i:], commentMarker) {
			break
		}

		if isWordByte(line[i]) {
			for i < len(line) && isWordByte(line[i]) {
				i++
				col++
			}
			toks = append(toks, newToken(tokenWord, filename, line[start:i], lineNo, startCol, col, offset+start, offset+i))
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		i += size
		col++
		if unicode.IsSpace(r) {
			continue
		}
		kind := tokenPunct
		if r == '*' {
			kind = tokenWildcard
		}
		toks = append(toks, newToken(kind, filename, line[start:i], lineNo, startCol, col, offset+start, offset+i))
	}
	return toks
}

func newToken(kind tokenKind, filename, text string, line, startCol, endCol, startByte, endByte int) token {
	return token{
		kind: kind,
		text: text,
		rng: hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: line, Column: startCol, Byte: startByte},
			End:      hcl.Pos{Line: line, Column: endCol, Byte: endByte},
		},
	}
}
