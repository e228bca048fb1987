package mdartifact

import (
	"context"
	"io"
	"sync"

	"github.com/randalmurphal/mdartifact/extract"
)

// Fetcher retrieves a single CI artifact archive. Implementations return
// a stream over the archive bytes that the caller consumes exactly once
// and closes.
type Fetcher interface {
	Artifact(ctx context.Context, projectID, job string) (io.ReadCloser, error)
}

// Transformer resolves artifact references in documents: it scans for
// matching links, fetches and unpacks each referenced archive, and
// records outcomes in the document's report.
//
// Transform never fails the surrounding pipeline. Per-link failures
// become error entries scoped to that link; an unexpected fault in
// scanning or dispatch is swallowed at the Transform boundary, keeping
// whatever diagnostics were already recorded. The document always
// continues to the next stage.
type Transformer struct {
	fetcher Fetcher
}

// NewTransformer creates a Transformer using the given fetcher.
func NewTransformer(fetcher Fetcher) *Transformer {
	return &Transformer{fetcher: fetcher}
}

// Transform processes doc and returns it once every matched link has
// resolved. Links are fetched and unpacked concurrently; the destination
// directory is resolved once, before any extraction starts. A document
// with no matching links returns untouched: no network call, no report
// entries.
//
// On success a link's title is cleared so the reference syntax never
// reaches rendered output; on failure the title is left as-is, keeping
// the broken reference visible downstream.
//
// There is no per-link timeout: a hung download stalls the whole
// document unless the caller bounds ctx.
func (t *Transformer) Transform(ctx context.Context, doc *Document) (out *Document) {
	// The document is the return value even when recovery below cuts the
	// normal path short: the host pipeline must always get its tree back.
	out = doc
	defer func() {
		// Recovery boundary: the report already holds everything the
		// caller is entitled to know, and the document must keep
		// flowing through the host pipeline.
		_ = recover()
	}()

	links := scanArtifactLinks(doc.Tree, doc.Source)
	if len(links) == 0 {
		return doc
	}
	dest := doc.destinationDir()

	var wg sync.WaitGroup
	for _, link := range links {
		wg.Add(1)
		go func(link artifactLink) {
			defer wg.Done()
			// A panicking task must not take down its siblings or the
			// process.
			defer func() { _ = recover() }()
			t.resolve(ctx, doc, dest, link)
		}(link)
	}
	wg.Wait()

	return doc
}

// resolve fetches and unpacks one link's artifact, recording the outcome.
func (t *Transformer) resolve(ctx context.Context, doc *Document, dest string, link artifactLink) {
	body, err := t.fetcher.Artifact(ctx, link.ref.ProjectID, link.ref.Job)
	if err != nil {
		doc.Report.Errorf(link.pos, "%v", err)
		return
	}
	defer body.Close()

	if err := extract.Unpack(dest, body); err != nil {
		doc.Report.Errorf(link.pos, "%v", err)
		return
	}

	link.node.Title = nil
	doc.Report.Infof(link.pos, "artifacts fetched from %s %s", link.ref.ProjectID, link.ref.Job)
}
