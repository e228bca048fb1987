// Package mdartifact resolves GitLab CI artifact references embedded in
// markdown documents.
//
// A link whose title is "gitlab-artifact|{projectId}|{jobName}" refers to
// the artifact archive of the newest master job with that name. The
// Transformer scans a parsed document for such links, downloads each
// referenced archive, unpacks it alongside the document, and records the
// outcome in the document's diagnostic report. Links are processed
// concurrently; one broken link never aborts the rest of the document or
// the surrounding pipeline.
//
// The package is organized into subpackages by domain:
//
//   - fetch: artifact downloads from the GitLab API
//   - extract: unpacking artifact archives to a directory
//   - config: file and environment configuration
//   - testutil: fixtures for testing against a fake GitLab endpoint
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/mdartifact"
//	    "github.com/randalmurphal/mdartifact/fetch"
//	)
//
//	client, _ := fetch.NewClient("https://gitlab.example.com", token)
//	transformer := mdartifact.NewTransformer(client)
//
//	doc := mdartifact.ParseDocument("docs/report.md", source)
//	transformer.Transform(ctx, doc)
//
//	for _, entry := range doc.Report.Entries() {
//	    // info: artifact unpacked, link title cleared
//	    // error: link left as-is, failure message recorded
//	}
//
// See individual package documentation for detailed usage.
package mdartifact
