package mdartifact

import (
	"path/filepath"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Metadata carries per-document options supplied by the host pipeline.
type Metadata struct {
	// DestinationDir overrides the directory artifacts are unpacked into.
	// When empty, the directory of the document's own path is used.
	DestinationDir string
}

// Document is a markdown document flowing through the pipeline: its
// source bytes, the parsed tree over them, host-pipeline metadata, and
// the diagnostic report accumulated while processing.
//
// The tree is owned by the document. Transform mutates matched link
// nodes in place (clearing their title on success) but never changes the
// tree's structure.
type Document struct {
	Path   string
	Source []byte
	Tree   ast.Node
	Meta   Metadata
	Report *Report
}

// markdownInstance is initialized once and reused. The parser
// configuration never changes and the goldmark parser is safe to share;
// per-call state lives in the reader passed to Parse.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// ParseDocument parses markdown source into a Document with a fresh
// report. path is the document's location on disk; it determines where
// artifacts are unpacked unless Meta.DestinationDir overrides it.
func ParseDocument(path string, source []byte) *Document {
	tree := markdown().Parser().Parse(text.NewReader(source))
	return &Document{
		Path:   path,
		Source: source,
		Tree:   tree,
		Report: NewReport(),
	}
}

// destinationDir resolves where this document's artifacts are unpacked:
// the metadata override when set, otherwise the document's own directory.
func (d *Document) destinationDir() string {
	if d.Meta.DestinationDir != "" {
		return d.Meta.DestinationDir
	}
	return filepath.Dir(d.Path)
}

// Position is a location in the document source, used to attribute
// diagnostic entries to the link that produced them.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in bytes
}

// positionAt converts a byte offset into Source to a line/column pair.
func positionAt(source []byte, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	pos := Position{Line: 1, Column: 1}
	for _, b := range source[:offset] {
		if b == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
