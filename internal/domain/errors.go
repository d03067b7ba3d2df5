package domain

import (
	"errors"
	"strings"
)

// Kind classifies a failure.
type Kind int

// Failure kinds.
const (
	KindUnknown Kind = iota
	KindCommitMessageRequired
	KindNoChangesToCommit
	KindNotARepository
	KindNoRemote
	KindUnauthorized
	KindBranchExists
	KindCheckoutBlocked
	KindMergeConflict
	KindNothingToCommit
	KindAuthRequired
	KindNetworkError
	KindTimeout
	KindVcsIO
	KindInvalidArgument
	KindInterrupted
	KindRegistryIO
	KindInitFailed
)

var kindText = map[Kind]string{
	KindUnknown:               "unknown error",
	KindCommitMessageRequired: "commit message is required",
	KindNoChangesToCommit:     "no changes to commit",
	KindNotARepository:        "not a git repository",
	KindNoRemote:              "no remote repository configured",
	KindUnauthorized:          "unauthorized to commit",
	KindBranchExists:          "branch already exists",
	KindCheckoutBlocked:       "checkout blocked by local changes",
	KindMergeConflict:         "merge conflict",
	KindNothingToCommit:       "nothing to commit",
	KindAuthRequired:          "authentication required",
	KindNetworkError:          "network error",
	KindTimeout:               "timed out",
	KindVcsIO:                 "git operation failed",
	KindInvalidArgument:       "invalid argument",
	KindInterrupted:           "interrupted",
	KindRegistryIO:            "interactive command registry I/O failed",
	KindInitFailed:            "repository initialization failed",
}

func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return kindText[KindUnknown]
}

// Reason discriminates InvalidArgument failures.
type Reason string

// InvalidArgument reasons.
const (
	ReasonEmptyMessage             Reason = "EmptyMessage"
	ReasonMessageTooShort          Reason = "MessageTooShort"
	ReasonBranchHasInvalidChars    Reason = "BranchHasInvalidChars"
	ReasonBranchHasInvalidSequence Reason = "BranchHasInvalidSequence"
	ReasonBranchTooLong            Reason = "BranchTooLong"
	ReasonInvalidEmail             Reason = "InvalidEmail"
	ReasonNameTooLong              Reason = "NameTooLong"
	ReasonEmptyName                Reason = "EmptyName"
)

// Error is the single error type produced by the domain and its adapters.
type Error struct {
	Kind   Kind
	Reason Reason // set only for KindInvalidArgument
	Detail string
	Err    error
}

func (e *Error) Error() string {
	parts := []string{e.Kind.String()}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind, and on reason when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// Sentinels for errors.Is.
var (
	ErrCommitMessageRequired = &Error{Kind: KindCommitMessageRequired}
	ErrNoChangesToCommit     = &Error{Kind: KindNoChangesToCommit}
	ErrNotARepository        = &Error{Kind: KindNotARepository}
	ErrNoRemote              = &Error{Kind: KindNoRemote}
	ErrUnauthorized          = &Error{Kind: KindUnauthorized}
	ErrBranchExists          = &Error{Kind: KindBranchExists}
	ErrCheckoutBlocked       = &Error{Kind: KindCheckoutBlocked}
	ErrMergeConflict         = &Error{Kind: KindMergeConflict}
	ErrNothingToCommit       = &Error{Kind: KindNothingToCommit}
	ErrAuthRequired          = &Error{Kind: KindAuthRequired}
	ErrNetwork               = &Error{Kind: KindNetworkError}
	ErrTimeout               = &Error{Kind: KindTimeout}
	ErrVcsIO                 = &Error{Kind: KindVcsIO}
	ErrInvalidArgument       = &Error{Kind: KindInvalidArgument}
	ErrInterrupted           = &Error{Kind: KindInterrupted}
	ErrRegistryIO            = &Error{Kind: KindRegistryIO}
	ErrInitFailed            = &Error{Kind: KindInitFailed}
)

// E builds an error of the given kind.
func E(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// Invalid builds an InvalidArgument error.
func Invalid(reason Reason, detail string) *Error {
	return &Error{Kind: KindInvalidArgument, Reason: reason, Detail: detail}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// ReasonOf returns the InvalidArgument reason in err's chain, if any.
func ReasonOf(err error) Reason {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return ""
		}
		if de.Reason != "" {
			return de.Reason
		}
		err = de.Err
	}
	return ""
}
