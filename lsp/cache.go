// Package lsp adapts the Clay parser to language tooling. It keeps the open
// documents of an editor session, reports their parse errors as LSP
// diagnostics, and offers completion from the names each document defines.
package lsp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/parser"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Document is one open text document together with the result of parsing
// it. Documents are parsed in recovery mode, so Program holds every statement
// that parsed even when Err is set.
type Document struct {
	Item    protocol.TextDocumentItem
	Program *ast.Program
	Err     error
}

// Cache holds the open documents, keyed by URI. It is safe for concurrent
// use.
type Cache struct {
	mu       sync.RWMutex
	docs     map[protocol.DocumentURI]*Document
	maxDepth int
	log      zerolog.Logger
}

// CacheOption is a configuration function for a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used by the cache.
func WithLogger(logger zerolog.Logger) CacheOption {
	return func(c *Cache) {
		c.log = logger
	}
}

// WithMaxDepth sets the parser nesting limit used for every document.
func WithMaxDepth(depth int) CacheOption {
	return func(c *Cache) {
		c.maxDepth = depth
	}
}

// NewCache returns an empty document cache.
func NewCache(options ...CacheOption) *Cache {
	c := &Cache{
		docs:     map[protocol.DocumentURI]*Document{},
		maxDepth: parser.DefaultMaxDepth,
		log:      log.With().Str("component", "lsp").Logger(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Put parses the given document and stores it, replacing any earlier
// version with the same URI. A document that fails to parse is still stored;
// its errors are reported through Diagnostics. The returned error is only
// set when parsing was cancelled.
func (c *Cache) Put(ctx context.Context, item protocol.TextDocumentItem) (*Document, error) {
	doc := &Document{Item: item}
	doc.Program, doc.Err = parser.Parse(ctx, item.Text,
		parser.WithFilename(Filename(item.URI)),
		parser.WithMaxDepth(c.maxDepth),
		parser.WithRecovery(),
	)
	if doc.Program == nil {
		c.log.Warn().Err(doc.Err).Str("uri", string(item.URI)).Msg("parse aborted")
		return nil, doc.Err
	}
	if doc.Err != nil {
		c.log.Debug().Str("uri", string(item.URI)).Int32("version", item.Version).
			Int("errors", len(parseErrors(doc.Err))).Msg("document has parse errors")
	} else {
		c.log.Debug().Str("uri", string(item.URI)).Int32("version", item.Version).
			Int("statements", len(doc.Program.Stmts)).Msg("document parsed")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.docs[item.URI]; ok && prev.Item.Version > item.Version {
		return nil, fmt.Errorf("stale version %d of %s (have %d)", item.Version, item.URI, prev.Item.Version)
	}
	c.docs[item.URI] = doc
	return doc, nil
}

// Get returns the stored document for uri.
func (c *Cache) Get(uri protocol.DocumentURI) (*Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s not found in cache", uri)
	}
	return doc, nil
}

// Remove forgets the document for uri.
func (c *Cache) Remove(uri protocol.DocumentURI) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, uri)
}

// Len returns the number of stored documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Filename returns the path used in error messages for a document URI.
func Filename(uri protocol.DocumentURI) string {
	return strings.TrimPrefix(string(uri), "file://")
}
