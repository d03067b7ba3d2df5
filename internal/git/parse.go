package git

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/swaswa-core/dev-shell/internal/domain"
)

// parseStatus parses `git status --porcelain=v1 -z` output.
//
// Each entry is "XY PATH" terminated by NUL, where X is the index state and
// Y the worktree state. Renames and copies carry the original path as a
// second NUL-terminated field.
func parseStatus(out string) (domain.WorkingDirectory, error) {
	var wd domain.WorkingDirectory

	entries := strings.Split(out, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry == "" {
			continue
		}
		if len(entry) < 4 || entry[2] != ' ' {
			return domain.WorkingDirectory{}, domain.E(domain.KindVcsIO,
				"unexpected status entry "+strconv.Quote(entry), nil)
		}

		x, y, path := entry[0], entry[1], entry[3:]
		if x == 'R' || x == 'C' {
			i++ // original path
		}

		switch {
		case x == '?' && y == '?':
			wd.Untracked = append(wd.Untracked, path)
		case x == '!':
			// ignored
		case x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D'):
			// unmerged
			wd.Unstaged = append(wd.Unstaged, path)
		default:
			if x != ' ' {
				wd.Staged = append(wd.Staged, path)
			}
			if y != ' ' {
				wd.Unstaged = append(wd.Unstaged, path)
			}
		}
	}

	return wd, nil
}

// parseBranches parses for-each-ref output of "name<US>hash<US>head" lines.
func parseBranches(out string) []domain.Branch {
	var branches []domain.Branch

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), fieldSep)
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		current := len(parts) > 2 && strings.TrimSpace(parts[2]) == "*"
		branches = append(branches, domain.NewBranch(parts[0], current, parts[1]))
	}

	return branches
}

// parseLog parses records of "hash<US>author<US>unix<US>body<RS>".
func parseLog(out, branch string) ([]domain.Commit, error) {
	commits := []domain.Commit{}

	for _, record := range strings.Split(out, recordSep) {
		record = strings.TrimLeft(record, "\n")
		if strings.TrimSpace(record) == "" {
			continue
		}

		fields := strings.SplitN(record, fieldSep, 4)
		if len(fields) != 4 {
			return nil, domain.E(domain.KindVcsIO, "unexpected log record "+strconv.Quote(record), nil)
		}

		commits = append(commits, domain.Commit{
			Hash:      fields[0],
			Author:    fields[1],
			Timestamp: commitTime(fields[2]),
			Message:   domain.HistoryMessage(strings.TrimSpace(fields[3])),
			Branch:    branch,
		})
	}

	return commits, nil
}

// splitNUL splits NUL-separated output, dropping empty fields.
func splitNUL(out string) []string {
	var fields []string
	for _, f := range strings.Split(out, "\x00") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
