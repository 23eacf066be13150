package lsp

import (
	"context"
	"testing"

	"github.com/claylang/clay/parser"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/stretchr/testify/require"
)

func labels(list *protocol.CompletionList) []string {
	var out []string
	for _, item := range list.Items {
		out = append(out, item.Label)
	}
	return out
}

func TestCompletion_KeywordsAndNames(t *testing.T) {
	c := newTestCache()
	uri := protocol.DocumentURI("file:///main.clay")
	putDocument(t, c, uri, 1, `import io
total := 0
add := |a, b| -> a + b
`)

	list, err := c.Completion(uri, protocol.Position{Line: 3, Character: 0})
	require.Nil(t, err)
	require.False(t, list.IsIncomplete)
	require.ElementsMatch(t, []string{"import", "match", "return", "add", "io", "total"}, labels(list))

	for _, item := range list.Items {
		switch item.Label {
		case "add":
			require.Equal(t, kindFunction, item.Kind)
			require.Equal(t, "add()", item.InsertText)
		case "total":
			require.Equal(t, kindVariable, item.Kind)
		case "io":
			require.Equal(t, kindModule, item.Kind)
		case "match":
			require.Equal(t, kindKeyword, item.Kind)
		}
	}
}

func TestCompletion_FiltersByPrefix(t *testing.T) {
	c := newTestCache()
	uri := protocol.DocumentURI("file:///prefix.clay")
	putDocument(t, c, uri, 1, "total := 1\ntoken := 2\nresult := to")

	list, err := c.Completion(uri, protocol.Position{Line: 2, Character: 12})
	require.Nil(t, err)
	require.ElementsMatch(t, []string{"token", "total"}, labels(list))

	list, err = c.Completion(uri, protocol.Position{Line: 2, Character: 11})
	require.Nil(t, err)
	require.ElementsMatch(t, []string{"token", "total"}, labels(list))

	list, err = c.Completion(uri, protocol.Position{Line: 2, Character: 1})
	require.Nil(t, err)
	require.ElementsMatch(t, []string{"return", "result"}, labels(list))
}

func TestCompletion_ParametersInScope(t *testing.T) {
	c := newTestCache()
	uri := protocol.DocumentURI("file:///params.clay")
	src := "f := |alpha, beta| -> {\n  gamma := alpha\n\n}\nafter := 1\n"
	putDocument(t, c, uri, 1, src)

	inside, err := c.Completion(uri, protocol.Position{Line: 2, Character: 0})
	require.Nil(t, err)
	require.Subset(t, labels(inside), []string{"alpha", "beta", "gamma", "f"})
	require.NotContains(t, labels(inside), "after")

	outside, err := c.Completion(uri, protocol.Position{Line: 5, Character: 0})
	require.Nil(t, err)
	require.Subset(t, labels(outside), []string{"f", "after"})
	require.NotContains(t, labels(outside), "alpha")
	require.NotContains(t, labels(outside), "gamma")
}

func TestCompletion_PartialProgram(t *testing.T) {
	c := newTestCache()
	uri := protocol.DocumentURI("file:///partial.clay")
	putDocument(t, c, uri, 1, "count := 1\nbroken := )\nco")

	list, err := c.Completion(uri, protocol.Position{Line: 2, Character: 2})
	require.Nil(t, err)
	require.Equal(t, []string{"count"}, labels(list))
}

func TestCompletion_MissingDocument(t *testing.T) {
	c := newTestCache()
	_, err := c.Completion("file:///none.clay", protocol.Position{})
	require.NotNil(t, err)
}

func TestSymbols(t *testing.T) {
	program, err := parser.Parse(context.Background(), "b := 1\na, c := 2\nimport strings")
	require.Nil(t, err)
	symbols := Symbols(program, 10, 0)
	require.Len(t, symbols, 4)
	names := []string{symbols[0].Name, symbols[1].Name, symbols[2].Name, symbols[3].Name}
	require.Equal(t, []string{"a", "b", "c", "strings"}, names)
	require.Equal(t, SymbolModule, symbols[3].Kind)
	require.Equal(t, 1, symbols[0].Pos.Line)

	require.Nil(t, Symbols(nil, 0, 0))
	require.Len(t, Symbols(program, 0, 0), 1)
}

func TestWordBefore(t *testing.T) {
	require.Equal(t, "def_g", wordBefore("abc def_g", 9))
	require.Equal(t, "de", wordBefore("abc def_g", 6))
	require.Equal(t, "", wordBefore("abc def_g", 4))
	require.Equal(t, "xy", wordBefore("xy", 50))
	require.Equal(t, "", wordBefore("", 0))
}

func TestCompletion_NonASCIIBeforeCursor(t *testing.T) {
	c := newTestCache()
	uri := protocol.DocumentURI("file:///utf16.clay")
	putDocument(t, c, uri, 1, "nab := 1\nnx := 2\ny := \"é\" + na")

	// "é" is two bytes but one UTF-16 unit, so the line ends at character 13.
	list, err := c.Completion(uri, protocol.Position{Line: 2, Character: 13})
	require.Nil(t, err)
	require.Equal(t, []string{"nab"}, labels(list))
}
