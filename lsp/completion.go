package lsp

import (
	"sort"
	"strings"

	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/internal/token"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// Completion item kinds, as numbered by the protocol.
const (
	kindFunction protocol.CompletionItemKind = 3
	kindVariable protocol.CompletionItemKind = 6
	kindModule   protocol.CompletionItemKind = 9
	kindKeyword  protocol.CompletionItemKind = 14
)

// Completion returns the keywords and names visible at pos whose label
// starts with the word being typed there. Visible names are those defined by
// ":=" before pos, the parameters of every function literal enclosing pos,
// and every imported module.
func (c *Cache) Completion(uri protocol.DocumentURI, pos protocol.Position) (*protocol.CompletionList, error) {
	doc, err := c.Get(uri)
	if err != nil {
		c.log.Error().Err(err).Str("call", "Completion").Msg("failed to get document")
		return nil, err
	}
	line := lineAt(sourceLines(doc.Item.Text), int(pos.Line))
	column := byteColumn(line, pos.Character)
	prefix := wordBefore(line, column)

	var items []protocol.CompletionItem
	for _, kw := range token.Keywords() {
		items = append(items, protocol.CompletionItem{
			Label:  kw,
			Kind:   kindKeyword,
			Detail: "keyword",
		})
	}
	for _, sym := range Symbols(doc.Program, int(pos.Line), column) {
		item := protocol.CompletionItem{Label: sym.Name, Detail: sym.Detail}
		switch sym.Kind {
		case SymbolFunction:
			item.Kind = kindFunction
			item.InsertText = sym.Name + "()"
		case SymbolModule:
			item.Kind = kindModule
		default:
			item.Kind = kindVariable
		}
		items = append(items, item)
	}

	filtered := items[:0]
	for _, item := range items {
		if strings.HasPrefix(item.Label, prefix) {
			filtered = append(filtered, item)
		}
	}
	return &protocol.CompletionList{IsIncomplete: false, Items: filtered}, nil
}

// SymbolKind classifies a name found in a program.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
	SymbolParameter
	SymbolModule
)

// Symbol is a name a program makes visible at some position.
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Detail string
	Pos    token.Position
}

// Symbols lists the names visible at the given zero-based line and column,
// sorted by name with duplicates removed. A nil program has no symbols.
func Symbols(program *ast.Program, line, column int) []Symbol {
	if program == nil {
		return nil
	}
	seen := map[string]bool{}
	var symbols []Symbol
	add := func(sym Symbol) {
		if sym.Name == "" || seen[sym.Name] {
			return
		}
		seen[sym.Name] = true
		symbols = append(symbols, sym)
	}
	ast.Inspect(program, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.Import:
			add(Symbol{Name: n.Name.Literal, Kind: SymbolModule, Detail: "module", Pos: n.Pos()})
		case *ast.Assign:
			if !before(n.Pos(), line, column) {
				return false
			}
			kind, detail := SymbolVariable, "variable"
			if _, ok := n.Value.(*ast.Func); ok {
				kind, detail = SymbolFunction, "function"
			}
			for _, name := range n.Name.Names {
				add(Symbol{Name: name.Name, Kind: kind, Detail: detail, Pos: name.Pos()})
			}
		case *ast.Func:
			if !before(n.Pos(), line, column) || before(n.End(), line, column) {
				return false
			}
			for _, param := range n.Params {
				add(Symbol{Name: param.Name, Kind: SymbolParameter, Detail: "parameter", Pos: param.Pos()})
			}
		}
		return true
	})
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Name < symbols[j].Name
	})
	return symbols
}

// before reports whether p comes strictly before the given line and column.
func before(p token.Position, line, column int) bool {
	if p.Line != line {
		return p.Line < line
	}
	return p.Column < column
}

// wordBefore returns the identifier characters immediately left of the byte
// column on line.
func wordBefore(line string, column int) string {
	end := min(column, len(line))
	start := end
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	return line[start:end]
}

func isWordChar(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}
