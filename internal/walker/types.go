package walker

// ProgressFunc receives the number of entries emitted so far and the
// approximate total. Returning false stops the walk.
type ProgressFunc func(current, total int) bool

// Matcher decides whether a root-relative slash path is excluded.
// *ignore.IgnoreMatcher and *ignore.RuleSet both satisfy it.
type Matcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// TraversalState is owned by a single walk.
type TraversalState struct {
	Visited   int
	Total     int
	Cancelled bool
}

// Result is the outcome of one traversal.
type Result struct {
	Root    string        `json:"root" yaml:"root"`
	Lines   []string      `json:"lines" yaml:"lines"`
	Visited int           `json:"visited" yaml:"visited"`
	Total   int           `json:"total" yaml:"total"`
	Stopped bool          `json:"stopped" yaml:"stopped"`
	Skipped []SkippedItem `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// SkippedReason clarifies why an entry was not printed.
type SkippedReason string

const (
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredGitDir     SkippedReason = "Ignored (.git Directory)"
	ReasonIgnoredRepository SkippedReason = "Ignored (.gitignore)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Ignore Rule)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedNotFound   SkippedReason = "Skipped (Not Found)"
	ReasonSkippedReadError  SkippedReason = "Skipped (Read Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path" yaml:"path"`
	Reason SkippedReason `json:"reason" yaml:"reason"`
	IsDir  bool          `json:"is_dir" yaml:"is_dir"`
}

// SkippedTracker collects skipped items. A walk is single-threaded, so it
// needs no locking.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
