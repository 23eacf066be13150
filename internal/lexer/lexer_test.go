package lexer

import (
	"fmt"
	"testing"

	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken1(t *testing.T) {
	input := "%=+(){},.:[]!|&_"

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.MOD, "%"},
		{token.ASSIGN, "="},
		{token.PLUS, "+"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.COMMA, ","},
		{token.PERIOD, "."},
		{token.COLON, ":"},
		{token.LBRACKET, "["},
		{token.RBRACKET, "]"},
		{token.BANG, "!"},
		{token.BAR, "|"},
		{token.AMPERSAND, "&"},
		{token.UNDERSCORE, "_"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTwoCharacterOperators(t *testing.T) {
	input := "== != && || -> <= >= += -= *= /= := < > - * /"

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.EQ, "=="},
		{token.NOT_EQ, "!="},
		{token.AND, "&&"},
		{token.OR, "||"},
		{token.ARROW, "->"},
		{token.LT_EQUALS, "<="},
		{token.GT_EQUALS, ">="},
		{token.PLUS_EQUALS, "+="},
		{token.MINUS_EQUALS, "-="},
		{token.ASTERISK_EQUALS, "*="},
		{token.SLASH_EQUALS, "/="},
		{token.DECLARE, ":="},
		{token.LT, "<"},
		{token.GT, ">"},
		{token.MINUS, "-"},
		{token.ASTERISK, "*"},
		{token.SLASH, "/"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken2(t *testing.T) {
	input := `import io
x, y := 5, 10.5
add := |a, b| -> a + b
m.count += 1
result := add(x, y) match {
	15 -> "fifteen",
	_ -> { return "other" },
}
`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.IMPORT, "import"},
		{token.IDENT, "io"},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.DECLARE, ":="},
		{token.INT, "5"},
		{token.COMMA, ","},
		{token.FLOAT, "10.5"},
		{token.IDENT, "add"},
		{token.DECLARE, ":="},
		{token.BAR, "|"},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.BAR, "|"},
		{token.ARROW, "->"},
		{token.IDENT, "a"},
		{token.PLUS, "+"},
		{token.IDENT, "b"},
		{token.IDENT, "m"},
		{token.PERIOD, "."},
		{token.IDENT, "count"},
		{token.PLUS_EQUALS, "+="},
		{token.INT, "1"},
		{token.IDENT, "result"},
		{token.DECLARE, ":="},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.MATCH, "match"},
		{token.LBRACE, "{"},
		{token.INT, "15"},
		{token.ARROW, "->"},
		{token.STRING, "fifteen"},
		{token.COMMA, ","},
		{token.UNDERSCORE, "_"},
		{token.ARROW, "->"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.STRING, "other"},
		{token.RBRACE, "}"},
		{token.COMMA, ","},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input        string
		expectedType token.Type
		expected     string
	}{
		{"_", token.UNDERSCORE, "_"},
		{"_foo", token.IDENT, "_foo"},
		{"foo_bar", token.IDENT, "foo_bar"},
		{"__", token.IDENT, "__"},
		{"Match", token.IDENT, "Match"},
		{"matches", token.IDENT, "matches"},
		{"true", token.IDENT, "true"},
		{"return", token.RETURN, "return"},
		{"abc1", token.IDENT, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, err := New(tt.input).Next()
			require.Nil(t, err)
			require.Equal(t, tt.expectedType, tok.Type)
			require.Equal(t, tt.expected, tok.Literal)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"0", []token.Token{{Type: token.INT, Literal: "0"}}},
		{"18446744073709551615", []token.Token{{Type: token.INT, Literal: "18446744073709551615"}}},
		{"3.14", []token.Token{{Type: token.FLOAT, Literal: "3.14"}}},
		{"3.", []token.Token{{Type: token.INT, Literal: "3"}, {Type: token.PERIOD, Literal: "."}}},
		{"3.x", []token.Token{{Type: token.INT, Literal: "3"}, {Type: token.PERIOD, Literal: "."}, {Type: token.IDENT, Literal: "x"}}},
		{"1.2.3", []token.Token{{Type: token.FLOAT, Literal: "1.2"}, {Type: token.PERIOD, Literal: "."}, {Type: token.INT, Literal: "3"}}},
		{"-7", []token.Token{{Type: token.MINUS, Literal: "-"}, {Type: token.INT, Literal: "7"}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.Nil(t, err)
			require.Len(t, tokens, len(tt.expected)+1)
			for i, want := range tt.expected {
				require.Equal(t, want.Type, tokens[i].Type)
				require.Equal(t, want.Literal, tokens[i].Literal)
			}
			require.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb"`, `a\nb`},
		{`"say \"hi\""`, `say \"hi\"`},
		{"\"two\nlines\"", "two\nlines"},
		{`"héllo"`, "héllo"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tok, err := l.Next()
			require.Nil(t, err)
			require.Equal(t, token.STRING, tok.Type)
			require.Equal(t, tt.expected, tok.Literal)
			eof, err := l.Next()
			require.Nil(t, err)
			require.Equal(t, token.EOF, eof.Type)
		})
	}
}

func TestStringWithEmbeddedNewline(t *testing.T) {
	l := New("\"a\nb\" x")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, 0, tok.StartPosition.Line)
	require.Equal(t, 1, tok.EndPosition.Line)

	x, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "x", x.Literal)
	require.Equal(t, 1, x.StartPosition.Line)
	require.Equal(t, 3, x.StartPosition.Column)
}

func TestInvalids(t *testing.T) {
	type test struct {
		input string
		code  errors.ErrorCode
		err   string
	}
	tests := []test{
		{"\x01", errors.E1011, "illegal character '\\x01'"},
		{"~", errors.E1011, "illegal character '~'"},
		{"@", errors.E1011, "illegal character '@'"},
		{";", errors.E1011, "illegal character ';'"},
		{"é", errors.E1011, "illegal character 'é'"},
		{`"foo`, errors.E1002, "unterminated string literal"},
		{`"foo\"`, errors.E1002, "unterminated string literal"},
		{"18446744073709551616", errors.E1008, "invalid number literal: 18446744073709551616"},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d-%s", i, tt.input), func(t *testing.T) {
			l := New(tt.input)
			tok, err := l.Next()
			require.NotNil(t, err)
			require.Equal(t, tt.err, err.Error())
			require.Equal(t, token.ILLEGAL, tok.Type)
			lexErr, ok := err.(*Error)
			require.True(t, ok)
			require.Equal(t, tt.code, lexErr.Code)
			require.Equal(t, 0, lexErr.Position.Char)
		})
	}
}

func TestLineNumbers(t *testing.T) {
	l := New("ab + cd\n foo+=111")
	tests := []struct {
		expectedType     token.Type
		expectedLiteral  string
		expectedLine     int
		expectedStartPos int
		expectedEndPos   int
	}{
		{token.IDENT, "ab", 0, 0, 1},
		{token.PLUS, "+", 0, 3, 3},
		{token.IDENT, "cd", 0, 5, 6},
		{token.IDENT, "foo", 1, 1, 3},
		{token.PLUS_EQUALS, "+=", 1, 4, 5},
		{token.INT, "111", 1, 6, 8},
		{token.EOF, "", 1, 9, 9},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			tok, err := l.Next()
			require.Nil(t, err)
			require.Equal(t, tt.expectedType, tok.Type)
			require.Equal(t, tt.expectedLiteral, tok.Literal)
			require.Equal(t, tt.expectedLine, tok.StartPosition.Line)
			require.Equal(t, tt.expectedStartPos, tok.StartPosition.Column)
			require.Equal(t, tt.expectedEndPos, tok.EndPosition.Column)
		})
	}
}

func TestTokenLengths(t *testing.T) {
	tests := []struct {
		input            string
		expectedType     token.Type
		expectedLiteral  string
		expectedStartPos int
		expectedEndPos   int
	}{
		{"abc", token.IDENT, "abc", 0, 2},
		{"111", token.INT, "111", 0, 2},
		{"1.1", token.FLOAT, "1.1", 0, 2},
		{`"b"`, token.STRING, "b", 0, 2},
		{"match", token.MATCH, "match", 0, 4},
		{">=", token.GT_EQUALS, ">=", 0, 1},
		{" {", token.LBRACE, "{", 1, 1},
		{" ->", token.ARROW, "->", 1, 2},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d-%s", i, tt.input), func(t *testing.T) {
			tok, err := New(tt.input).Next()
			require.Nil(t, err)
			require.Equal(t, tt.expectedType, tok.Type)
			require.Equal(t, tt.expectedLiteral, tok.Literal)
			require.Equal(t, tt.expectedStartPos, tok.StartPosition.Column)
			require.Equal(t, tt.expectedEndPos, tok.EndPosition.Column)
		})
	}
}

func TestCRLFNewlines(t *testing.T) {
	l := New("a\r\nb")
	a, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "a", a.Literal)
	b, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "b", b.Literal)
	require.Equal(t, 1, b.StartPosition.Line)
	require.Equal(t, 0, b.StartPosition.Column)
	require.Equal(t, 3, b.StartPosition.LineStart)
	require.Equal(t, "a", l.GetLineText(a))
}

func TestTokenLineText(t *testing.T) {
	l := New(` x := 32 + foo
bar = baz
`)
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, " x := 32 + foo", l.GetLineText(tok))

	for i := 0; i < 4; i++ {
		tok, err = l.Next()
		require.Nil(t, err)
	}
	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, "bar", tok.Literal)
	require.Equal(t, "bar = baz", l.GetLineText(tok))
}

func TestGetLineTextEdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		l := New("")
		tok, err := l.Next()
		require.Nil(t, err)
		require.Equal(t, token.EOF, tok.Type)
		require.Equal(t, "", l.GetLineText(tok))
	})

	t.Run("multiple tokens on same line", func(t *testing.T) {
		l := New("a + b")
		tok1, _ := l.Next()
		tok2, _ := l.Next()
		tok3, _ := l.Next()
		require.Equal(t, "a + b", l.GetLineText(tok1))
		require.Equal(t, "a + b", l.GetLineText(tok2))
		require.Equal(t, "a + b", l.GetLineText(tok3))
	})

	t.Run("EOF after trailing newline", func(t *testing.T) {
		l := New("x\n")
		l.Next()
		tok, err := l.Next()
		require.Nil(t, err)
		require.Equal(t, token.EOF, tok.Type)
		require.Equal(t, "", l.GetLineText(tok))
	})
}

func TestStateSaveRestore(t *testing.T) {
	l := New("x := 1 + 2")

	tok1, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.IDENT, tok1.Type)

	state := l.SaveState()

	tok2, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.DECLARE, tok2.Type)
	tok3, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "1", tok3.Literal)

	l.RestoreState(state)

	again, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, tok2, again)
	again, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, tok3, again)
}

func TestMultipleEOFReads(t *testing.T) {
	l := New("x")
	_, err := l.Next()
	require.Nil(t, err)
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		require.Nil(t, err)
		require.Equal(t, token.EOF, tok.Type)
	}
}

func TestWhitespaceOnly(t *testing.T) {
	tokens, err := Tokenize(" \t\r\n\n  ")
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, token.EOF, tokens[0].Type)
	require.Equal(t, 2, tokens[0].StartPosition.Line)
}

func TestTokensSequence(t *testing.T) {
	l := New("a + b")
	var types []token.Type
	for tok, err := range l.Tokens() {
		require.Nil(t, err)
		types = append(types, tok.Type)
	}
	require.Equal(t, []token.Type{token.IDENT, token.PLUS, token.IDENT}, types)
}

func TestTokensSequenceStopsAtError(t *testing.T) {
	l := New("a ~ b")
	var seen []token.Token
	var errs []error
	for tok, err := range l.Tokens() {
		seen = append(seen, tok)
		if err != nil {
			errs = append(errs, err)
		}
	}
	require.Len(t, seen, 2)
	require.Len(t, errs, 1)
	require.Equal(t, "illegal character '~'", errs[0].Error())
}

func TestTokensSequenceEarlyBreak(t *testing.T) {
	l := New("a b c")
	for tok := range l.Tokens() {
		require.Equal(t, "a", tok.Literal)
		break
	}
	next, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "b", next.Literal)
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("f(1)", WithFile("main.clay"))
	require.Nil(t, err)
	require.Len(t, tokens, 5)
	require.Equal(t, token.EOF, tokens[4].Type)
	require.Equal(t, "main.clay", tokens[0].StartPosition.File)

	tokens, err = Tokenize(`x := "open`)
	require.NotNil(t, err)
	require.Nil(t, tokens)
}

func TestLiteralsShareInput(t *testing.T) {
	input := "alpha beta"
	tokens, err := Tokenize(input)
	require.Nil(t, err)
	for _, tok := range tokens[:2] {
		require.Equal(t, input[tok.StartPosition.Char:tok.EndPosition.Char+1], tok.Literal)
	}
}

func TestFilenameOption(t *testing.T) {
	t.Run("WithFile option", func(t *testing.T) {
		l := New("x", WithFile("test.clay"))
		require.Equal(t, "test.clay", l.Filename())
		tok, err := l.Next()
		require.Nil(t, err)
		require.Equal(t, "test.clay", tok.StartPosition.File)
		require.Equal(t, "test.clay", tok.EndPosition.File)
	})

	t.Run("SetFilename method", func(t *testing.T) {
		l := New("x")
		require.Equal(t, "", l.Filename())
		l.SetFilename("updated.clay")
		require.Equal(t, "updated.clay", l.Filename())
		tok, err := l.Next()
		require.Nil(t, err)
		require.Equal(t, "updated.clay", tok.StartPosition.File)
	})

	t.Run("Position method includes file", func(t *testing.T) {
		l := New("x", WithFile("pos.clay"))
		require.Equal(t, "pos.clay", l.Position().File)
	})
}

func TestErrorToFormatted(t *testing.T) {
	l := New("a := 1\nb := $", WithFile("main.clay"))
	var lexErr error
	for _, err := range l.Tokens() {
		if err != nil {
			lexErr = err
		}
	}
	e, ok := lexErr.(*Error)
	require.True(t, ok)
	require.Equal(t, "b := $", e.Line)
	require.Equal(t, "illegal character '$' (main.clay:2:6)", e.Location())

	fe := e.ToFormatted()
	require.Equal(t, errors.E1011, fe.Code)
	require.Equal(t, "syntax error", fe.Kind)
	require.Equal(t, "main.clay", fe.Filename)
	require.Equal(t, 2, fe.Line)
	require.Equal(t, 6, fe.Column)
	require.Len(t, fe.SourceLines, 1)
	require.Equal(t, "b := $", fe.SourceLines[0].Text)
}
