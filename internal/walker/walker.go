// Package walker renders a filtered directory tree as box-drawing lines
package walker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/dir-printer/internal/ignore"
	"github.com/bethropolis/dir-printer/internal/utils"
	"github.com/spf13/afero"
)

// reasoner is implemented by matchers that can explain an exclusion.
type reasoner interface {
	Reason(relativePath string, isDir bool) ignore.Reason
}

type noMatcher struct{}

func (noMatcher) ShouldIgnore(string, bool) bool { return false }

func matcherOrNone(m Matcher) Matcher {
	if m == nil {
		return noMatcher{}
	}
	return m
}

type treeWalker struct {
	options WalkOptions
	matcher Matcher
	state   TraversalState
	lines   []string
	tracker *SkippedTracker
}

// Walk traverses rootDir depth-first, siblings in ascending name order, and
// returns one line per entry the matcher keeps. Listing failures are
// rendered inline and never returned as errors. When the progress callback
// returns false or the context is cancelled, the result is Stopped and
// carries no lines.
func Walk(rootDir string, matcher Matcher, opts ...Option) *Result {
	options := applyOptions(opts)
	w := &treeWalker{
		options: options,
		matcher: matcherOrNone(matcher),
		tracker: NewSkippedTracker(16),
	}

	result := &Result{Root: rootDir}

	if info, err := options.Fs.Stat(rootDir); err == nil && !info.IsDir() {
		result.Lines = []string{NotDirectoryLine("", rootDir)}
		return result
	}

	w.state.Total = options.Total
	if w.state.Total < 0 {
		w.state.Total = Count(rootDir, w.matcher, opts...)
	}

	options.Logger.Debug("walker.Walk started. Root: %s, Total: %d", rootDir, w.state.Total)

	completed := w.walkDir(rootDir, "", "")

	result.Visited = w.state.Visited
	result.Total = w.state.Total
	result.Skipped = w.tracker.Items()

	if !completed {
		options.Logger.Debug("walker.Walk stopped after %d entries", w.state.Visited)
		result.Stopped = true
		result.Lines = []string{}
		return result
	}

	result.Lines = w.lines
	options.Logger.Debug("walker.Walk finished. Visited: %d, Skipped: %d", w.state.Visited, len(result.Skipped))
	return result
}

// Print is the plain entry point: the lines of a walk with an optional
// progress callback, or an empty slice when the walk was stopped.
func Print(rootDir string, matcher Matcher, progress ProgressFunc) []string {
	return Walk(rootDir, matcher, WithProgress(progress)).Lines
}

// walkDir returns false once the walk has been stopped.
func (w *treeWalker) walkDir(dir, rel, prefix string) bool {
	entries, err := afero.ReadDir(w.options.Fs, dir)
	if err != nil {
		w.lines = append(w.lines, w.listingError(dir, rel, prefix, err))
		return true
	}

	type child struct {
		info os.FileInfo
		rel  string
	}
	kept := make([]child, 0, len(entries))
	for _, entry := range entries {
		childRel := utils.JoinSlash(rel, entry.Name())
		if reason, ignored := w.excluded(childRel, entry.IsDir()); ignored {
			w.options.Logger.Debug("walker: Skipping %q: %s", childRel, reason)
			w.tracker.Track(childRel, reason, entry.IsDir())
			continue
		}
		kept = append(kept, child{info: entry, rel: childRel})
	}

	for i, c := range kept {
		last := i == len(kept)-1
		if !w.emit(FormatEntry(prefix, c.info.Name(), last)) {
			return false
		}
		// Lstat-style listings report symlinks as non-directories, so links
		// are printed but never followed.
		if c.info.IsDir() {
			if !w.walkDir(filepath.Join(dir, c.info.Name()), c.rel, ChildPrefix(prefix, last)) {
				return false
			}
		}
	}
	return true
}

func (w *treeWalker) emit(line string) bool {
	if w.options.Context.Err() != nil {
		w.state.Cancelled = true
		return false
	}

	w.lines = append(w.lines, line)
	w.state.Visited++

	if w.options.Progress != nil && !w.options.Progress(w.state.Visited, w.state.Total) {
		w.state.Cancelled = true
		return false
	}
	return true
}

func (w *treeWalker) excluded(rel string, isDir bool) (SkippedReason, bool) {
	if r, ok := w.matcher.(reasoner); ok {
		switch r.Reason(rel, isDir) {
		case ignore.ReasonNone:
			return "", false
		case ignore.ReasonHidden:
			return ReasonIgnoredHidden, true
		case ignore.ReasonGitDir:
			return ReasonIgnoredGitDir, true
		case ignore.ReasonRepository:
			return ReasonIgnoredRepository, true
		default:
			return ReasonIgnoredRule, true
		}
	}
	if w.matcher.ShouldIgnore(rel, isDir) {
		return ReasonIgnoredRule, true
	}
	return "", false
}

func (w *treeWalker) listingError(dir, rel, prefix string, err error) string {
	trackPath := rel
	if trackPath == "" {
		trackPath = dir
	}

	switch {
	case errors.Is(err, fs.ErrPermission):
		w.options.Logger.Warn("walker: Permission denied for %s", dir)
		w.tracker.Track(trackPath, ReasonSkippedPermError, true)
		return PermissionDeniedLine(prefix)
	case errors.Is(err, fs.ErrNotExist):
		w.options.Logger.Warn("walker: Directory %s not found", dir)
		w.tracker.Track(trackPath, ReasonSkippedNotFound, true)
		return NotFoundLine(prefix, dir)
	default:
		w.options.Logger.Error("walker: Failed to list %s: %v", dir, err)
		w.tracker.Track(trackPath, ReasonSkippedReadError, true)
		return ReadErrorLine(prefix, dir, err)
	}
}
