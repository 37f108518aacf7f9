// Package ignore compiles gitignore-style rules and decides which paths of a
// scanned tree are excluded.
//
// A rule line is translated into a regular expression: a leading "!" negates
// the rule, a trailing "/" restricts it to directories and a leading "/"
// anchors it to the root. "*" and "?" never cross a "/", while "**" spans
// any number of segments. Rules are evaluated in file order against the path
// and every ancestor prefix; the last matching rule decides.
//
// IgnoreMatcher layers optional hidden-entry, .git and repository .gitignore
// checks on top of a RuleSet. It uses the functional options pattern for
// configuration.
package ignore

// NewFromConfig creates an IgnoreMatcher from a Config struct. The rule
// file is loaded from disk; a missing file means no rules.
func NewFromConfig(cfg Config) (*IgnoreMatcher, error) {
	rules, err := LoadRuleFile(cfg.RuleFile)
	if err != nil {
		return nil, err
	}

	options := []Option{
		WithRules(rules),
		WithHiddenIgnore(cfg.IgnoreHidden),
		WithGitIgnore(cfg.IgnoreGit),
		WithRepository(cfg.UseRepository),
		WithDisabled(cfg.Disabled),
	}

	if len(cfg.CustomRules) > 0 {
		options = append(options, WithCustomRules(cfg.CustomRules))
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	return New(cfg.RootDir, options...)
}

// CreateDisabledMatcher returns a matcher that ignores nothing
func CreateDisabledMatcher() *IgnoreMatcher {
	matcher, _ := New(".", WithDisabled(true))
	return matcher
}
