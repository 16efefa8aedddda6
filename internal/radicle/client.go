package radicle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to a local radicle-httpd instance.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://127.0.0.1:8080".
func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Node returns information about the local node.
func (c *Client) Node(ctx context.Context) (*NodeInfo, error) {
	var info NodeInfo
	if err := c.get(ctx, "/api/v1/node", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Repo returns the metadata of a repository.
func (c *Client) Repo(ctx context.Context, rid string) (*Repo, error) {
	var payload struct {
		RID      string `json:"rid"`
		Payloads map[string]struct {
			Data Project `json:"data"`
		} `json:"payloads"`
	}
	if err := c.get(ctx, "/api/v1/repos/"+url.PathEscape(rid), &payload); err != nil {
		return nil, err
	}

	repo := &Repo{RID: payload.RID}
	if project, ok := payload.Payloads["xyz.radicle.project"]; ok {
		repo.Project = project.Data
	}
	return repo, nil
}

// Issues returns all issues of a repository, open and closed.
func (c *Client) Issues(ctx context.Context, rid string) ([]Issue, error) {
	var all []Issue
	for _, status := range []string{"open", "closed"} {
		var page []Issue
		path := fmt.Sprintf("/api/v1/repos/%s/issues?state=%s&perPage=%d",
			url.PathEscape(rid), status, perPage)
		if err := c.get(ctx, path, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)
	}
	return all, nil
}

// Patches returns all patches of a repository, regardless of state.
func (c *Client) Patches(ctx context.Context, rid string) ([]Patch, error) {
	var all []Patch
	for _, status := range []string{"draft", "open", "merged", "archived"} {
		var page []Patch
		path := fmt.Sprintf("/api/v1/repos/%s/patches?state=%s&perPage=%d",
			url.PathEscape(rid), status, perPage)
		if err := c.get(ctx, path, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)
	}
	return all, nil
}

// Issue returns a single issue by id.
func (c *Client) Issue(ctx context.Context, rid, id string) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("/api/v1/repos/%s/issues/%s", url.PathEscape(rid), url.PathEscape(id))
	if err := c.get(ctx, path, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// Patch returns a single patch by id.
func (c *Client) Patch(ctx context.Context, rid, id string) (*Patch, error) {
	var patch Patch
	path := fmt.Sprintf("/api/v1/repos/%s/patches/%s", url.PathEscape(rid), url.PathEscape(id))
	if err := c.get(ctx, path, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// Diff compares two commits of a repository.
func (c *Client) Diff(ctx context.Context, rid, base, oid string) (*Diff, error) {
	var payload struct {
		Diff Diff `json:"diff"`
	}
	path := fmt.Sprintf("/api/v1/repos/%s/diff/%s/%s",
		url.PathEscape(rid), url.PathEscape(base), url.PathEscape(oid))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return &payload.Diff, nil
}

// perPage is the page size requested from the API. The httpd default (10)
// is far too small for a browser that filters client-side.
const perPage = 1000

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to radicle-httpd failed (is it running?): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: not found", path)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("radicle-httpd returned %s: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}
