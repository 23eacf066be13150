package lsp

import (
	"strings"
	"unicode/utf8"

	"github.com/claylang/clay/internal/token"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// Token columns count bytes while the protocol counts UTF-16 code units.
// The helpers below convert between the two using the text of the line.

// sourceLines splits a document into lines without their line endings.
func sourceLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func lineAt(lines []string, n int) string {
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

// utf16Column converts a byte column on line into UTF-16 code units.
// Columns past the end of the line count one unit per byte.
func utf16Column(line string, column int) uint32 {
	var units, i int
	for i < len(line) && i < column {
		r, size := utf8.DecodeRuneInString(line[i:])
		units += runeUnits(r)
		i += size
	}
	if column > i {
		units += column - i
	}
	return uint32(units)
}

// byteColumn converts a UTF-16 character offset on line into a byte column.
// Offsets past the end of the line count one byte per unit.
func byteColumn(line string, character uint32) int {
	var units, i int
	for i < len(line) && units < int(character) {
		r, size := utf8.DecodeRuneInString(line[i:])
		units += runeUnits(r)
		i += size
	}
	if int(character) > units {
		i += int(character) - units
	}
	return i
}

func runeUnits(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// protocolPosition converts a token position into a protocol position.
func protocolPosition(lines []string, p token.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(p.Line),
		Character: utf16Column(lineAt(lines, p.Line), p.Column),
	}
}
