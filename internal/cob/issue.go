package cob

import (
	"sort"

	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// IssueState is the display state of an issue. "solved" and "closed" are
// both closed on the wire, distinguished by the close reason.
type IssueState string

const (
	IssueOpen   IssueState = "open"
	IssueClosed IssueState = "closed"
	IssueSolved IssueState = "solved"
)

// issueState folds the wire state into the display state.
func issueState(state radicle.IssueState) IssueState {
	if state.Status == "closed" {
		if state.Reason == "solved" {
			return IssueSolved
		}
		return IssueClosed
	}
	return IssueOpen
}

// CommentItem is one entry of an issue discussion.
type CommentItem struct {
	ID        string
	Author    AuthorItem
	Body      string
	Reactions []string
	Timestamp int64
	ReplyTo   string
}

// IssueItem is the flat row representation of an issue.
type IssueItem struct {
	ID        string
	State     IssueState
	Title     string
	Author    AuthorItem
	Labels    []string
	Assignees []AuthorItem
	Timestamp int64
	Comments  []CommentItem
}

// NewIssueItem converts a wire issue. selfDID marks "(you)" authors.
func NewIssueItem(issue radicle.Issue, selfDID string) IssueItem {
	assignees := make([]AuthorItem, len(issue.Assignees))
	for i, assignee := range issue.Assignees {
		assignees[i] = NewAuthorItem(assignee, selfDID)
	}

	comments := make([]CommentItem, len(issue.Discussion))
	for i, comment := range issue.Discussion {
		comments[i] = CommentItem{
			ID:        comment.ID,
			Author:    NewAuthorItem(comment.Author, selfDID),
			Body:      comment.Body,
			Reactions: comment.Reactions,
			Timestamp: comment.Timestamp,
			ReplyTo:   comment.ReplyTo,
		}
	}

	return IssueItem{
		ID:        issue.ID,
		State:     issueState(issue.State),
		Title:     issue.Title,
		Author:    NewAuthorItem(issue.Author, selfDID),
		Labels:    issue.Labels,
		Assignees: assignees,
		Timestamp: issue.Timestamp(),
		Comments:  comments,
	}
}

// Description returns the body of the root comment.
func (i *IssueItem) Description() string {
	for _, comment := range i.Comments {
		if comment.ReplyTo == "" {
			return comment.Body
		}
	}
	return ""
}

// Replies returns the non-root comments in timeline order.
func (i *IssueItem) Replies() []CommentItem {
	var replies []CommentItem
	for idx, comment := range i.Comments {
		// The first root comment is the description, not a reply.
		if idx == 0 && comment.ReplyTo == "" {
			continue
		}
		replies = append(replies, comment)
	}
	return replies
}

// NewIssueItems converts and sorts a list of issues, newest first.
func NewIssueItems(issues []radicle.Issue, selfDID string) []IssueItem {
	items := make([]IssueItem, len(issues))
	for i, issue := range issues {
		items[i] = NewIssueItem(issue, selfDID)
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Timestamp > items[b].Timestamp
	})
	return items
}
