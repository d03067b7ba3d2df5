// Package validation checks the preconditions of repository operations.
package validation

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/swaswa-core/dev-shell/internal/domain"
)

// DefaultBlockedAuthors are the author names refused by default.
var DefaultBlockedAuthors = []string{"blocked", "anonymous"}

var validate = validator.New()

// Service holds the validation rules. The zero value blocks nobody.
type Service struct {
	blocked map[string]struct{}
}

// New creates a Service refusing the given author names, compared
// case-insensitively.
func New(blockedAuthors []string) *Service {
	blocked := make(map[string]struct{}, len(blockedAuthors))
	for _, name := range blockedAuthors {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			blocked[name] = struct{}{}
		}
	}
	return &Service{blocked: blocked}
}

// ValidateRepository checks that repo's root is an existing directory,
// flagged initialized, holding a .git entry.
func (s *Service) ValidateRepository(repo domain.Repository) error {
	if err := validate.Var(repo.Root, "required,dir"); err != nil {
		return domain.E(domain.KindNotARepository, repo.Root, err)
	}
	if !repo.Initialized {
		return domain.E(domain.KindNotARepository, repo.Root+" is not initialized", nil)
	}
	// .git is a file in linked worktrees.
	if err := validate.Var(filepath.Join(repo.Root, ".git"), "file|dir"); err != nil {
		return domain.E(domain.KindNotARepository, repo.Root+" has no .git", err)
	}
	return nil
}

// ValidateAuthor refuses blocked author names.
func (s *Service) ValidateAuthor(author domain.Author) error {
	if _, ok := s.blocked[strings.ToLower(strings.TrimSpace(author.Name))]; ok {
		return domain.E(domain.KindUnauthorized, author.Name, nil)
	}
	return nil
}

// ValidateRemoteRepository requires repo to have a remote.
func (s *Service) ValidateRemoteRepository(repo domain.Repository, remote string) error {
	if !repo.HasRemote {
		return domain.E(domain.KindNoRemote, remote, nil)
	}
	return nil
}

// ValidateCommitMessage builds the commit message. Blank and too-short
// input report KindCommitMessageRequired wrapping the constructor error.
func (s *Service) ValidateCommitMessage(raw string) (domain.CommitMessage, error) {
	msg, err := domain.NewCommitMessage(raw)
	if err != nil {
		return domain.CommitMessage{}, domain.E(domain.KindCommitMessageRequired, "", err)
	}
	return msg, nil
}
