package radicle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
)

// Profile is the local radicle identity, read from the radicle home.
type Profile struct {
	// Home is the radicle home directory.
	Home string
	// Alias is the node alias from config.json.
	Alias string
	// PreferredSeeds are the seed node addresses from config.json.
	PreferredSeeds []string
	// NID is the local node id (DID without the did:key prefix). Filled
	// in from the httpd API, since the key material on disk is opaque.
	NID string
}

// DID returns the profile's decentralized identifier.
func (p *Profile) DID() string {
	if p.NID == "" {
		return ""
	}
	return "did:key:" + p.NID
}

// LoadProfile reads the node configuration from the radicle home.
// The config may carry comments and trailing commas, hence jsonc.
func LoadProfile(home string) (*Profile, error) {
	path := filepath.Join(home, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load radicle profile; to set it up, run `rad auth`: %w", err)
	}

	var config struct {
		PreferredSeeds []string `json:"preferredSeeds"`
		Node           struct {
			Alias string `json:"alias"`
		} `json:"node"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &Profile{
		Home:           home,
		Alias:          config.Node.Alias,
		PreferredSeeds: config.PreferredSeeds,
	}, nil
}

// The rad remote URL carries the RID without its `rad:` prefix,
// e.g. rad://z3gqcJUoA1n9HaHKufZs5FCSGazv5[/<nid>].
var ridPattern = regexp.MustCompile(`rad://([a-zA-Z0-9]+)`)

// CwdRID resolves the repository id of the working directory by reading
// the `rad` remote from .git/config. Returns an error when the directory
// is not part of a radicle project.
func CwdRID(dir string) (string, error) {
	gitDir, err := findGitDir(dir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(gitDir, "config"))
	if err != nil {
		return "", fmt.Errorf("failed to read git config: %w", err)
	}

	inRadRemote := false
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inRadRemote = trimmed == `[remote "rad"]`
			continue
		}
		if !inRadRemote || !strings.HasPrefix(trimmed, "url") {
			continue
		}
		if match := ridPattern.FindStringSubmatch(trimmed); match != nil {
			return "rad:" + match[1], nil
		}
	}

	return "", fmt.Errorf("this command must be run in the context of a project")
}

// findGitDir walks up from dir until it finds a .git directory.
func findGitDir(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return gitDir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("this command must be run in the context of a project")
		}
		dir = parent
	}
}
