// Package radicle reads collaborative objects from the local radicle node:
// issues and patches through the radicle-httpd JSON API, notifications from
// the node's SQLite store. All data is read-only; mutations are performed by
// the invoking `rad` command.
package radicle

// Author identifies a peer by DID, with the alias the node knows it by.
type Author struct {
	ID    string `json:"id"`
	Alias string `json:"alias,omitempty"`
}

// IssueState is the lifecycle state of an issue.
type IssueState struct {
	Status string `json:"status"`           // "open" or "closed"
	Reason string `json:"reason,omitempty"` // "solved" or "other" when closed
}

// Comment is a single entry in an issue discussion thread.
type Comment struct {
	ID        string   `json:"id"`
	Author    Author   `json:"author"`
	Body      string   `json:"body"`
	ReplyTo   string   `json:"replyTo,omitempty"`
	Reactions []string `json:"reactions,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// Issue is the wire representation served by radicle-httpd.
type Issue struct {
	ID         string     `json:"id"`
	Author     Author     `json:"author"`
	Title      string     `json:"title"`
	State      IssueState `json:"state"`
	Assignees  []Author   `json:"assignees"`
	Labels     []string   `json:"labels"`
	Discussion []Comment  `json:"discussion"`
}

// Timestamp returns the time the issue was opened, taken from the root
// comment of its discussion.
func (i *Issue) Timestamp() int64 {
	if len(i.Discussion) == 0 {
		return 0
	}
	return i.Discussion[0].Timestamp
}

// PatchState is the lifecycle state of a patch.
type PatchState struct {
	Status string `json:"status"` // "draft", "open", "merged" or "archived"
}

// Revision is one iteration of a patch.
type Revision struct {
	ID          string `json:"id"`
	Author      Author `json:"author"`
	Description string `json:"description"`
	Base        string `json:"base"`
	Oid         string `json:"oid"`
	Timestamp   int64  `json:"timestamp"`
}

// Patch is the wire representation served by radicle-httpd.
type Patch struct {
	ID        string     `json:"id"`
	Author    Author     `json:"author"`
	Title     string     `json:"title"`
	State     PatchState `json:"state"`
	Labels    []string   `json:"labels"`
	Revisions []Revision `json:"revisions"`
}

// Latest returns the most recent revision, or nil for a patch without
// revisions (which the protocol does not produce, but the API may).
func (p *Patch) Latest() *Revision {
	if len(p.Revisions) == 0 {
		return nil
	}
	return &p.Revisions[len(p.Revisions)-1]
}

// UpdatedAt returns the timestamp of the latest revision.
func (p *Patch) UpdatedAt() int64 {
	if r := p.Latest(); r != nil {
		return r.Timestamp
	}
	return 0
}

// Project is the project payload of a repository.
type Project struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DefaultBranch string `json:"defaultBranch"`
}

// Repo is repository metadata served by radicle-httpd.
type Repo struct {
	RID     string `json:"rid"`
	Project Project
}

// NodeInfo describes the local node.
type NodeInfo struct {
	ID    string `json:"id"`
	Alias string `json:"alias"`
}

// DiffLineType discriminates lines in a hunk.
type DiffLineType string

const (
	DiffContext  DiffLineType = "context"
	DiffAddition DiffLineType = "addition"
	DiffDeletion DiffLineType = "deletion"
)

// DiffLine is one line of a hunk.
type DiffLine struct {
	Type      DiffLineType `json:"type"`
	Line      string       `json:"line"`
	LineNoOld int          `json:"lineNoOld,omitempty"`
	LineNoNew int          `json:"lineNoNew,omitempty"`
}

// Hunk is a contiguous changed region of a file.
type Hunk struct {
	Header string     `json:"header"`
	Lines  []DiffLine `json:"lines"`
}

// FileDiff is the diff of a single file.
type FileDiff struct {
	Path    string `json:"path"`
	OldPath string `json:"oldPath,omitempty"`
	Status  string `json:"status"` // "added", "deleted", "modified", "moved"
	Hunks   []Hunk `json:"hunks"`
}

// DiffStats summarizes a diff.
type DiffStats struct {
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
}

// Diff is the comparison of two commits.
type Diff struct {
	Files []FileDiff `json:"files"`
	Stats DiffStats  `json:"stats"`
}
