package mdartifact

import "testing"

func TestScanArtifactLinks(t *testing.T) {
	source := []byte(`# Report

See the [coverage](https://ci.example.com "gitlab-artifact|123|coverage") numbers.

A [plain link](https://example.com) and a
[tooltip link](https://example.com "just a tooltip") are skipped, as is a
[malformed one](https://example.com "gitlab-artifact|onlyOneField").

Finally the [docs](https://ci.example.com "gitlab-artifact|group/docs|pages").
`)

	doc := ParseDocument("report.md", source)
	links := scanArtifactLinks(doc.Tree, doc.Source)

	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}

	// Traversal order matches document order.
	if got := links[0].ref; got != (Reference{ProjectID: "123", Job: "coverage"}) {
		t.Errorf("links[0].ref = %+v", got)
	}
	if got := links[1].ref; got != (Reference{ProjectID: "group/docs", Job: "pages"}) {
		t.Errorf("links[1].ref = %+v", got)
	}

	if links[0].pos.Line != 3 {
		t.Errorf("links[0].pos.Line = %d, want 3", links[0].pos.Line)
	}
	if links[1].pos.Line != 9 {
		t.Errorf("links[1].pos.Line = %d, want 9", links[1].pos.Line)
	}
	for i, link := range links {
		if link.pos.Column < 1 {
			t.Errorf("links[%d].pos.Column = %d, want >= 1", i, link.pos.Column)
		}
	}
}

func TestScanArtifactLinksNoMatches(t *testing.T) {
	source := []byte(`# Nothing here

Only [plain](https://example.com) links and text.
`)

	doc := ParseDocument("plain.md", source)
	if links := scanArtifactLinks(doc.Tree, doc.Source); len(links) != 0 {
		t.Fatalf("got %d links, want 0", len(links))
	}
}

func TestScanArtifactLinksPositionFallback(t *testing.T) {
	source := []byte(`# Charts

The latest [![chart](trend.png)](https://ci.example.com "gitlab-artifact|123|charts") build.

And a bare [](https://ci.example.com "gitlab-artifact|123|bare") reference.
`)

	doc := ParseDocument("charts.md", source)
	links := scanArtifactLinks(doc.Tree, doc.Source)

	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	// An image-only link attributes via the image's alt text.
	if links[0].pos.Line != 3 {
		t.Errorf("image-only link line = %d, want 3", links[0].pos.Line)
	}
	// A link with no text at all attributes to its enclosing block.
	if links[1].pos.Line != 5 {
		t.Errorf("empty-text link line = %d, want 5", links[1].pos.Line)
	}
}

func TestPositionAt(t *testing.T) {
	source := []byte("abc\ndef\nghi")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 1, Column: 1}},
		{2, Position{Line: 1, Column: 3}},
		{4, Position{Line: 2, Column: 1}},
		{9, Position{Line: 3, Column: 2}},
		{100, Position{Line: 3, Column: 4}}, // clamped to end of source
	}

	for _, tt := range tests {
		if got := positionAt(source, tt.offset); got != tt.want {
			t.Errorf("positionAt(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}
