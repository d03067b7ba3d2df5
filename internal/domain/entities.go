package domain

import "time"

// UnknownAuthor is reported when no identity is configured.
const UnknownAuthor = "Unknown User <user@unknown.com>"

// DefaultAuthor is the identity written into repositories initialized
// without one.
var DefaultAuthor = Author{Name: "Dev Shell", Email: "dev-shell@example.com"}

// Repository is a snapshot of a repository's identity and flags. Adapters
// return a fresh value after state-changing operations.
type Repository struct {
	Root          string // absolute path, identity
	Name          string
	Initialized   bool
	HasRemote     bool
	DefaultBranch string // empty when uninitialized
}

// WorkingDirectory is a read-only status snapshot.
type WorkingDirectory struct {
	Staged    []string
	Unstaged  []string // tracked files modified or missing
	Untracked []string
}

// HasChanges reports whether tracked content changed. Untracked files alone
// do not count.
func (w WorkingDirectory) HasChanges() bool {
	return len(w.Staged) > 0 || len(w.Unstaged) > 0
}

// HasAnythingToShow is HasChanges or any untracked file.
func (w WorkingDirectory) HasAnythingToShow() bool {
	return w.HasChanges() || len(w.Untracked) > 0
}

// HasStagedChanges reports whether anything is staged.
func (w WorkingDirectory) HasStagedChanges() bool { return len(w.Staged) > 0 }

// HasUnstagedChanges reports whether tracked files changed without staging.
func (w WorkingDirectory) HasUnstagedChanges() bool { return len(w.Unstaged) > 0 }

// TotalChangeCount counts staged and unstaged entries.
func (w WorkingDirectory) TotalChangeCount() int {
	return len(w.Staged) + len(w.Unstaged)
}

// AllModifiedFiles returns staged then unstaged paths, deduplicated, in
// first-seen order.
func (w WorkingDirectory) AllModifiedFiles() []string {
	seen := make(map[string]struct{}, len(w.Staged)+len(w.Unstaged))
	out := make([]string, 0, len(w.Staged)+len(w.Unstaged))
	for _, list := range [][]string{w.Staged, w.Unstaged} {
		for _, f := range list {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// Branch is a local branch. Two branches are the same branch when their
// names match.
type Branch struct {
	Name      string
	Current   bool
	Temporary bool
	Hash      string
}

// NewBranch builds a Branch, deriving Temporary from the name.
func NewBranch(name string, current bool, hash string) Branch {
	return Branch{
		Name:      name,
		Current:   current,
		Temporary: BranchName{value: name}.IsTemporary(),
		Hash:      hash,
	}
}

// Equal compares by name.
func (b Branch) Equal(other Branch) bool { return b.Name == other.Name }

// Commit is a created or historical commit.
type Commit struct {
	Hash      string // empty before creation
	Message   CommitMessage
	Author    string // canonical "Name <email>"
	Timestamp time.Time
	Files     []string
	Branch    string
}

// ShortHash returns the first seven characters of the hash, or "pending".
func (c Commit) ShortHash() string {
	switch {
	case c.Hash == "":
		return "pending"
	case len(c.Hash) > 7:
		return c.Hash[:7]
	default:
		return c.Hash
	}
}

// InteractiveCommand is a registry entry.
type InteractiveCommand struct {
	CommandName string `json:"commandName"`
}
