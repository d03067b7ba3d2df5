// Package domain holds the value objects, entities and error kinds shared by
// the smart-commit workflow, the VCS adapters and the shell surface.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	minMessageLength = 3
	maxBranchLength  = 250
	maxAuthorName    = 100

	// DefaultTempPrefix prefixes temporary branch names.
	DefaultTempPrefix = "temp"

	tempBranchLayout = "20060102-150405"
	filesHeader      = "Files changed:"
)

var (
	branchChars    = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)
	branchBadSeqs  = regexp.MustCompile(`(\.\.|//|^\.|\.$|^/|/$|@\{)`)
	authorEmailExp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// CommitMessage is a trimmed commit message of at least three characters.
type CommitMessage struct {
	value string
}

// NewCommitMessage trims and validates raw.
func NewCommitMessage(raw string) (CommitMessage, error) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return CommitMessage{}, Invalid(ReasonEmptyMessage, "commit message cannot be empty or blank")
	}
	if len([]rune(msg)) < minMessageLength {
		return CommitMessage{}, Invalid(ReasonMessageTooShort,
			fmt.Sprintf("commit message must be at least %d characters long", minMessageLength))
	}
	return CommitMessage{value: msg}, nil
}

// HistoryMessage wraps a message read back from the repository without
// validating it; existing history may hold messages of any length.
func HistoryMessage(raw string) CommitMessage {
	return CommitMessage{value: strings.TrimRight(raw, "\n")}
}

// WithFileList returns raw (trimmed) followed by a "Files changed:" block
// listing files in order. With no files the trimmed message is returned.
func WithFileList(raw string, files []string) (CommitMessage, error) {
	base, err := NewCommitMessage(raw)
	if err != nil {
		return CommitMessage{}, err
	}
	if len(files) == 0 {
		return base, nil
	}

	var b strings.Builder
	b.WriteString(base.value)
	b.WriteString("\n\n")
	b.WriteString(filesHeader)
	for _, f := range files {
		b.WriteString("\n- ")
		b.WriteString(f)
	}
	return CommitMessage{value: b.String()}, nil
}

// String returns the full message.
func (m CommitMessage) String() string { return m.value }

// Summary returns the first line of the message.
func (m CommitMessage) Summary() string {
	first, _, _ := strings.Cut(m.value, "\n")
	return first
}

// IsMultiline reports whether the message spans several lines.
func (m CommitMessage) IsMultiline() bool {
	return strings.Contains(m.value, "\n")
}

// BranchName is a validated git branch name.
type BranchName struct {
	value string
}

// NewBranchName trims and validates raw.
func NewBranchName(raw string) (BranchName, error) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return BranchName{}, Invalid(ReasonBranchHasInvalidChars, "branch name cannot be empty or blank")
	case !branchChars.MatchString(name):
		return BranchName{}, Invalid(ReasonBranchHasInvalidChars, "branch name contains invalid characters")
	case branchBadSeqs.MatchString(name):
		return BranchName{}, Invalid(ReasonBranchHasInvalidSequence, "branch name contains invalid sequences")
	case len(name) > maxBranchLength:
		return BranchName{}, Invalid(ReasonBranchTooLong,
			fmt.Sprintf("branch name too long (max %d characters)", maxBranchLength))
	}
	return BranchName{value: name}, nil
}

// MustBranchName is NewBranchName for names known to be valid.
func MustBranchName(raw string) BranchName {
	b, err := NewBranchName(raw)
	if err != nil {
		panic(err)
	}
	return b
}

// TemporaryBranchName mints "<prefix>-YYYYMMDD-HHMMSS" from now.
// An empty prefix means DefaultTempPrefix.
func TemporaryBranchName(prefix string, now time.Time) (BranchName, error) {
	if prefix == "" {
		prefix = DefaultTempPrefix
	}
	return NewBranchName(prefix + "-" + now.Format(tempBranchLayout))
}

func (b BranchName) String() string { return b.value }

// IsTemporary reports whether the name starts with "temp-".
func (b BranchName) IsTemporary() bool {
	return strings.HasPrefix(b.value, DefaultTempPrefix+"-")
}

// IsMainBranch reports whether the name is main or master.
func (b BranchName) IsMainBranch() bool {
	return b.value == "main" || b.value == "master"
}

// Author is a commit identity.
type Author struct {
	Name  string
	Email string
}

// NewAuthor trims and validates name and email.
func NewAuthor(name, email string) (Author, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	switch {
	case name == "":
		return Author{}, Invalid(ReasonEmptyName, "author name cannot be empty or blank")
	case !authorEmailExp.MatchString(email):
		return Author{}, Invalid(ReasonInvalidEmail, fmt.Sprintf("invalid email format: %q", email))
	case len([]rune(name)) > maxAuthorName:
		return Author{}, Invalid(ReasonNameTooLong,
			fmt.Sprintf("author name too long (max %d characters)", maxAuthorName))
	}
	return Author{Name: name, Email: email}, nil
}

// ParseAuthor parses the canonical "Name <email>" form, splitting on the
// last '<'.
func ParseAuthor(s string) (Author, error) {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, "<")
	if idx < 0 || !strings.HasSuffix(s, ">") {
		return Author{}, Invalid(ReasonInvalidEmail, "invalid author format, expected 'Name <email>'")
	}
	return NewAuthor(s[:idx], s[idx+1:len(s)-1])
}

// String renders "Name <email>".
func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}
