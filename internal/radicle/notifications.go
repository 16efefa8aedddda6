package radicle

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SortBy controls notification ordering.
type SortBy struct {
	Field   string // "timestamp" or "id"
	Reverse bool
}

// DefaultSortBy returns the inbox default: newest first.
func DefaultSortBy() SortBy {
	return SortBy{Field: "timestamp", Reverse: true}
}

// RefUpdate describes what happened to the ref a notification points at.
type RefUpdate string

const (
	RefCreated RefUpdate = "created"
	RefUpdated RefUpdate = "updated"
	RefDeleted RefUpdate = "deleted"
)

// Notification is a single inbox entry from the node's notification store.
type Notification struct {
	ID        int64
	Repo      string
	Remote    string // NID of the peer that caused the update, if namespaced
	Ref       string // unqualified ref name
	Old       string // previous OID, empty on create
	New       string // new OID, empty on delete
	Seen      bool
	Timestamp int64
}

// Update classifies the ref change.
func (n *Notification) Update() RefUpdate {
	switch {
	case n.Old == "":
		return RefCreated
	case n.New == "":
		return RefDeleted
	default:
		return RefUpdated
	}
}

// CobTypeIssue and CobTypePatch are the COB type names used in ref paths.
const (
	CobTypeIssue = "xyz.radicle.issue"
	CobTypePatch = "xyz.radicle.patch"
)

// RefKind splits a notification ref into its kind. For COB refs the id is
// the object id, for branches it is the branch name.
type RefKind struct {
	Kind string // "cob", "branch" or "unknown"
	Type string // COB type name, for kind "cob"
	ID   string
}

// Kind parses the notification's ref name.
func (n *Notification) Kind() RefKind {
	ref := n.Ref
	switch {
	case strings.HasPrefix(ref, "refs/cobs/"):
		rest := strings.TrimPrefix(ref, "refs/cobs/")
		typeName, id, ok := strings.Cut(rest, "/")
		if !ok {
			return RefKind{Kind: "unknown", ID: ref}
		}
		return RefKind{Kind: "cob", Type: typeName, ID: id}
	case strings.HasPrefix(ref, "refs/heads/"):
		return RefKind{Kind: "branch", ID: strings.TrimPrefix(ref, "refs/heads/")}
	default:
		return RefKind{Kind: "unknown", ID: ref}
	}
}

// NotificationStore reads the node's notification database.
type NotificationStore struct {
	db *sql.DB
}

// OpenNotifications opens the notification database at the given path,
// creating the schema if the node hasn't written it yet.
func OpenNotifications(path string) (*NotificationStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open notification database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to notification database: %w", err)
	}

	store := &NotificationStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *NotificationStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		repo TEXT NOT NULL,
		remote TEXT,
		ref TEXT NOT NULL,
		old TEXT,
		new TEXT,
		read_at INTEGER,
		timestamp INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_repo ON notifications(repo);
	CREATE INDEX IF NOT EXISTS idx_notifications_timestamp ON notifications(timestamp DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize notification schema: %w", err)
	}
	return nil
}

// ByRepo returns the notifications of a repository in the requested order.
func (s *NotificationStore) ByRepo(repo string, sortBy SortBy) ([]Notification, error) {
	field := "timestamp"
	if sortBy.Field == "id" {
		field = "id"
	}
	direction := "ASC"
	if sortBy.Reverse {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, repo, COALESCE(remote, ''), ref, COALESCE(old, ''), COALESCE(new, ''), read_at, timestamp
		FROM notifications
		WHERE repo = ?
		ORDER BY %s %s`, field, direction)

	rows, err := s.db.Query(query, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		var readAt sql.NullInt64
		if err := rows.Scan(&n.ID, &n.Repo, &n.Remote, &n.Ref, &n.Old, &n.New, &readAt, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Seen = readAt.Valid
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// Close closes the underlying database.
func (s *NotificationStore) Close() error {
	return s.db.Close()
}
