// Package setup turns command-line settings into an ignore matcher and
// walker options
package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bethropolis/dir-printer/internal/ignore"
	"github.com/bethropolis/dir-printer/internal/utils"
	"github.com/bethropolis/dir-printer/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	RootDir      string
	IgnoreFile   string
	CustomIgnore string
	UseGitignore bool
	IgnoreHidden bool
	IgnoreGit    bool
	Context      context.Context
	Progress     walker.ProgressFunc
	Logger       utils.Logger
}

// ParsePatterns splits a comma-separated pattern list, dropping blanks.
// A backslash before a comma keeps the comma in the pattern.
func ParsePatterns(list string) []string {
	var patterns []string
	var current strings.Builder
	flush := func() {
		if p := strings.TrimSpace(current.String()); p != "" {
			patterns = append(patterns, p)
		}
		current.Reset()
	}

	for i := 0; i < len(list); i++ {
		switch {
		case list[i] == '\\' && i+1 < len(list) && list[i+1] == ',':
			current.WriteByte(',')
			i++
		case list[i] == ',':
			flush()
		default:
			current.WriteByte(list[i])
		}
	}
	flush()
	return patterns
}

// LoadRules compiles the ignore file. Problems with the file are logged and
// the walk proceeds without its rules.
func LoadRules(path string, log utils.Logger) *ignore.RuleSet {
	log = utils.LoggerOrNoop(log)
	if path == "" {
		return ignore.NewRuleSet()
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Warn("Ignore file '%s' not found. Continuing without it.", path)
		return ignore.NewRuleSet()
	}

	rules, err := ignore.LoadRuleFile(path)
	if err != nil {
		log.Warn("Could not read ignore file: %v. Continuing without it.", err)
		return ignore.NewRuleSet()
	}
	log.Debug("Loaded %d rules from %s", rules.Len(), path)
	return rules
}

// ConfigureWalker sets up an ignore matcher and walker options based on the config
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (*ignore.IgnoreMatcher, []walker.Option, error) {
	log := utils.LoggerOrNoop(cfg.Logger)
	if infoLog == nil {
		infoLog = func(string, ...interface{}) {}
	}

	rules := LoadRules(cfg.IgnoreFile, log)
	if rules.Len() > 0 {
		infoLog("Using %d rules from %s", rules.Len(), cfg.IgnoreFile)
	}

	customPatterns := ParsePatterns(cfg.CustomIgnore)
	if len(customPatterns) > 0 {
		infoLog("Using custom ignore patterns: %v", customPatterns)
	}

	if cfg.IgnoreHidden {
		infoLog("Ignoring hidden files/directories (starting with '.').")
	}
	if cfg.UseGitignore {
		infoLog("Honouring .gitignore files inside the tree.")
	}

	matcher, err := ignore.New(cfg.RootDir,
		ignore.WithLogger(log),
		ignore.WithRules(rules),
		ignore.WithCustomRules(customPatterns),
		ignore.WithHiddenIgnore(cfg.IgnoreHidden),
		ignore.WithGitIgnore(cfg.IgnoreGit),
		ignore.WithRepository(cfg.UseGitignore),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: initialize ignore rules: %w", err)
	}

	walkOptions := []walker.Option{walker.WithLogger(log)}
	if cfg.Context != nil {
		walkOptions = append(walkOptions, walker.WithContext(cfg.Context))
	}
	if cfg.Progress != nil {
		log.Debug("Progress reporting enabled")
		walkOptions = append(walkOptions, walker.WithProgress(cfg.Progress))
	}

	return matcher, walkOptions, nil
}
