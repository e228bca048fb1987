package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/xanzy/go-gitlab"
)

// Ref is the branch whose newest job artifacts are downloaded. GitLab
// resolves the ref in the artifacts endpoint to the latest successful
// pipeline on that branch. The ref is fixed to master; references cannot
// select another branch. Known limitation.
const Ref = "master"

// Client downloads CI job artifacts from a GitLab instance.
type Client struct {
	gl *gitlab.Client
}

// NewClient creates a Client for the GitLab instance at baseURL,
// authenticating with token (a personal or project access token sent as
// PRIVATE-TOKEN). baseURL is the instance root, e.g.
// "https://gitlab.example.com"; empty means gitlab.com.
func NewClient(baseURL, token string) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	var opts []gitlab.ClientOptionFunc
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}

	gl, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gitlab client: %w", err)
	}

	return &Client{gl: gl}, nil
}

// Artifact downloads the artifact archive of the newest Ref job named
// job in the given project (numeric ID or "namespace/project" path).
//
// Any non-200 response or transport error returns a *Error; a single
// failed attempt is final. On success the returned stream holds the
// archive bytes and must be consumed exactly once and closed by the
// caller.
func (c *Client) Artifact(ctx context.Context, projectID, job string) (io.ReadCloser, error) {
	reader, resp, err := c.gl.Jobs.DownloadArtifactsFile(projectID, Ref,
		&gitlab.DownloadArtifactsFileOptions{Job: gitlab.Ptr(job)},
		gitlab.WithContext(ctx))
	if err != nil {
		fetchErr := &Error{ProjectID: projectID, Job: job, Err: err}
		if resp != nil {
			fetchErr.Status = resp.Status
			if resp.Request != nil {
				fetchErr.URL = resp.Request.URL.String()
			}
		}
		return nil, fetchErr
	}

	return io.NopCloser(reader), nil
}
