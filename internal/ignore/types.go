package ignore

import (
	"github.com/bethropolis/dir-printer/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Reason names the layer of an IgnoreMatcher that excluded a path.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonHidden     Reason = "hidden"
	ReasonGitDir     Reason = "git-dir"
	ReasonRepository Reason = "gitignore"
	ReasonRule       Reason = "rule"
)

// IgnoreMatcher determines whether a file or directory should be ignored
type IgnoreMatcher struct {
	// Rules from the rule file followed by custom patterns
	rules *RuleSet

	// .gitignore files found inside the scanned tree
	repoIgnore gitignore.GitIgnore

	// Configuration flags
	rootDir        string
	ignoreHidden   bool
	ignoreGit      bool
	useRepository  bool
	customPatterns []string
	logger         utils.Logger
	disabled       bool
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir       string
	RuleFile      string
	IgnoreHidden  bool
	IgnoreGit     bool
	UseRepository bool
	CustomRules   []string
	Logger        utils.Logger
	Disabled      bool
}
