package mdartifact

import "strings"

// Marker is the literal first field of an artifact reference embedded in
// a link title.
const Marker = "gitlab-artifact"

// Reference identifies a single CI artifact: the project that built it
// (numeric ID or "namespace/project" path) and the job that produced it.
type Reference struct {
	ProjectID string
	Job       string
}

// ParseReference parses a link title of the form
// "gitlab-artifact|{projectId}|{jobName}": exactly three non-empty
// pipe-delimited fields with the marker as field one. The second return
// is false for anything else; a malformed title is a no-match, not an
// error.
func ParseReference(title string) (Reference, bool) {
	parts := strings.Split(title, "|")
	if len(parts) != 3 || parts[0] != Marker {
		return Reference{}, false
	}
	if parts[1] == "" || parts[2] == "" {
		return Reference{}, false
	}
	return Reference{ProjectID: parts[1], Job: parts[2]}, true
}
