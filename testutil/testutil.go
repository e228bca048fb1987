// Package testutil provides fixtures for testing artifact resolution:
// in-memory zip archives and a fake GitLab artifact endpoint.
package testutil

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// ZipArchive builds an in-memory zip archive from a map of entry name to
// content. Entry names use forward slashes; nested paths are allowed.
func ZipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// ArchiveKey builds the lookup key ArtifactHandler uses for an archive.
func ArchiveKey(projectID, job string) string {
	return projectID + "|" + job
}

// ArtifactHandler serves the GitLab job-artifacts download endpoint for
// a fixed set of archives keyed by ArchiveKey. Requests missing the
// expected PRIVATE-TOKEN get 401; unknown project/job pairs get 404.
func ArtifactHandler(t *testing.T, token string, archives map[string][]byte) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("PRIVATE-TOKEN") != token {
			http.Error(w, "401 Unauthorized", http.StatusUnauthorized)
			return
		}

		project, job, ok := parseArtifactPath(r.URL)
		if !ok {
			http.NotFound(w, r)
			return
		}

		archive, ok := archives[ArchiveKey(project, job)]
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write(archive)
	})
}

// parseArtifactPath extracts the project ID and job name from
// /api/v4/projects/{id}/jobs/artifacts/master/download?job={name}.
// Path-qualified project IDs arrive percent-encoded.
func parseArtifactPath(u *url.URL) (project, job string, ok bool) {
	const (
		prefix = "/api/v4/projects/"
		suffix = "/jobs/artifacts/master/download"
	)

	path := u.EscapedPath()
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return "", "", false
	}

	escaped := strings.TrimSuffix(strings.TrimPrefix(path, prefix), suffix)
	project, err := url.PathUnescape(escaped)
	if err != nil || project == "" {
		return "", "", false
	}

	job = u.Query().Get("job")
	if job == "" {
		return "", "", false
	}
	return project, job, true
}
