package lsp

import (
	"unicode/utf8"

	"github.com/claylang/clay/internal/token"
	"github.com/claylang/clay/parser"
	"github.com/hashicorp/go-multierror"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// DiagnosticSource names the tool in every diagnostic.
const DiagnosticSource = "clay"

// Diagnostics returns the parse errors of the document as LSP diagnostics.
// A document without errors yields an empty, non-nil slice so that clients
// clear previously published diagnostics.
func (c *Cache) Diagnostics(uri protocol.DocumentURI) ([]protocol.Diagnostic, error) {
	doc, err := c.Get(uri)
	if err != nil {
		return nil, err
	}
	diagnostics := []protocol.Diagnostic{}
	lines := sourceLines(doc.Item.Text)
	for _, err := range parseErrors(doc.Err) {
		diagnostics = append(diagnostics, diagnostic(lines, err))
	}
	return diagnostics, nil
}

// PublishParams wraps the document's diagnostics for a
// textDocument/publishDiagnostics notification.
func (c *Cache) PublishParams(uri protocol.DocumentURI) (*protocol.PublishDiagnosticsParams, error) {
	diagnostics, err := c.Diagnostics(uri)
	if err != nil {
		return nil, err
	}
	doc, err := c.Get(uri)
	if err != nil {
		return nil, err
	}
	return &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     doc.Item.Version,
		Diagnostics: diagnostics,
	}, nil
}

// parseErrors flattens the error returned by a recovering parse.
func parseErrors(err error) []error {
	if err == nil {
		return nil
	}
	if merr, ok := err.(*multierror.Error); ok {
		return merr.WrappedErrors()
	}
	return []error{err}
}

func diagnostic(lines []string, err error) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Severity: protocol.SeverityError,
		Source:   DiagnosticSource,
		Message:  err.Error(),
	}
	perr, ok := err.(parser.ParserError)
	if !ok {
		return d
	}
	d.Message = perr.Message()
	d.Code = string(perr.Code())
	start, end := perr.StartPosition(), perr.EndPosition()
	if end.Line != start.Line {
		end = start
	}
	d.Range = protocol.Range{
		Start: protocolPosition(lines, start),
		End:   protocolPosition(lines, endOfRune(lineAt(lines, end.Line), end)),
	}
	return d
}

// endOfRune returns the position just past the character starting at p.
func endOfRune(line string, p token.Position) token.Position {
	size := 1
	if p.Column < len(line) {
		_, size = utf8.DecodeRuneInString(line[p.Column:])
	}
	return p.Advance(size)
}
