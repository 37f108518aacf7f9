package walker

import (
	"path/filepath"

	"github.com/bethropolis/dir-printer/internal/utils"
	"github.com/spf13/afero"
)

// Count computes the approximate number of entries a walk of root will emit.
// Every listed child of a visited directory is counted, excluded or not;
// only the decision to descend into a subdirectory consults the matcher.
// Unreadable directories contribute nothing.
func Count(root string, matcher Matcher, opts ...Option) int {
	options := applyOptions(opts)
	total := countDir(options, matcherOrNone(matcher), root, "")
	options.Logger.Debug("walker.Count: %d entries under %s", total, root)
	return total
}

func countDir(options WalkOptions, matcher Matcher, dir, rel string) int {
	if options.Context.Err() != nil {
		return 0
	}

	entries, err := afero.ReadDir(options.Fs, dir)
	if err != nil {
		options.Logger.Debug("walker.Count: cannot list %s: %v", dir, err)
		return 0
	}

	total := len(entries)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		childRel := utils.JoinSlash(rel, entry.Name())
		if matcher.ShouldIgnore(childRel, true) {
			continue
		}
		total += countDir(options, matcher, filepath.Join(dir, entry.Name()), childRel)
	}
	return total
}
