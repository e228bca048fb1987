package mdartifact

import "github.com/yuin/goldmark/ast"

// artifactLink pairs a matched link node with its parsed reference and
// source position.
type artifactLink struct {
	node *ast.Link
	ref  Reference
	pos  Position
}

// scanArtifactLinks walks the tree depth-first and returns, in traversal
// order, every link whose title is a well-formed artifact reference.
// Links without a title or with a malformed one are silently skipped.
func scanArtifactLinks(tree ast.Node, source []byte) []artifactLink {
	var links []artifactLink
	_ = ast.Walk(tree, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := node.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		ref, ok := ParseReference(string(link.Title))
		if !ok {
			return ast.WalkContinue, nil
		}
		links = append(links, artifactLink{
			node: link,
			ref:  ref,
			pos:  positionAt(source, linkOffset(link)),
		})
		return ast.WalkContinue, nil
	})
	return links
}

// linkOffset returns a byte offset in the source attributable to the
// link. Inline nodes carry no position of their own, so the segment of
// the first text descendant stands in for the link; a link with no text
// at all (empty or image-only content) falls back to the start of its
// enclosing block.
func linkOffset(link *ast.Link) int {
	if offset, ok := textOffset(link); ok {
		return offset
	}
	for parent := link.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Type() != ast.TypeBlock {
			continue
		}
		if lines := parent.Lines(); lines.Len() > 0 {
			return lines.At(0).Start
		}
	}
	return 0
}

// textOffset returns the segment start of the first text descendant of n.
func textOffset(n ast.Node) (int, bool) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			return textNode.Segment.Start, true
		}
		if offset, ok := textOffset(child); ok {
			return offset, true
		}
	}
	return 0, false
}
