package ignore

import (
	"strings"

	"github.com/bethropolis/dir-printer/internal/utils"
)

const gitDirName = ".git"

// ShouldIgnore checks if a file or directory should be ignored
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return m.Reason(relativePath, isDir) != ReasonNone
}

// Reason returns the layer that excludes the path, or ReasonNone. Hidden and
// .git checks run first; the rule set runs last so that its verdict overrides
// the repository .gitignore files.
func (m *IgnoreMatcher) Reason(relativePath string, isDir bool) Reason {
	if m == nil || m.disabled {
		return ReasonNone
	}

	path := utils.NormalizePath(relativePath)
	if path == "" {
		return ReasonNone // Never ignore the root itself
	}

	if m.ignoreHidden && hasHiddenComponent(path) {
		m.logger.Debug("ignore.Reason: Ignored %q (hidden rule)", path)
		return ReasonHidden
	}

	if m.ignoreGit && isPathInGitDir(path, isDir) {
		m.logger.Debug("ignore.Reason: Ignored %q (.git rule)", path)
		return ReasonGitDir
	}

	reason := ReasonNone
	if m.repoIgnore != nil && m.repositoryIgnores(path, isDir) {
		reason = ReasonRepository
	}

	if verdict := m.rules.Evaluate(path, isDir); verdict.Matched {
		if !verdict.Ignored {
			m.logger.Debug("ignore.Reason: %q re-included by %q", path, verdict.Rule.Raw())
			return ReasonNone
		}
		m.logger.Debug("ignore.Reason: Ignored %q by rule %q", path, verdict.Rule.Raw())
		return ReasonRule
	}

	return reason
}

// repositoryIgnores asks the gitignore library about a root-relative path.
func (m *IgnoreMatcher) repositoryIgnores(path string, isDir bool) (ignored bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", path, r)
			ignored = false
		}
	}()

	match := m.repoIgnore.Relative(path, isDir)
	if match == nil {
		return false
	}
	return match.Ignore()
}

func hasHiddenComponent(path string) bool {
	for _, part := range strings.Split(path, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// isPathInGitDir checks if a path is inside a .git directory
func isPathInGitDir(path string, isDir bool) bool {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == gitDirName {
			// A file named .git (worktrees, submodules) is kept
			if isDir || i < len(parts)-1 {
				return true
			}
		}
	}
	return false
}
