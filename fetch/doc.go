// Package fetch downloads CI job artifacts from the GitLab API.
//
// Client wraps go-gitlab's Jobs service: a single authenticated GET of
// projects/{id}/jobs/artifacts/{ref}/download?job={name}, classifying
// any non-success response as a *Error. No retry, no caching.
package fetch
