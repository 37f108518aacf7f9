package ignore

import "github.com/bethropolis/dir-printer/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithRules sets the compiled rule file. Custom patterns are evaluated
// after these rules.
func WithRules(rules *RuleSet) Option {
	return func(m *IgnoreMatcher) {
		m.rules = rules
	}
}

func WithHiddenIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreHidden = ignore
	}
}

func WithGitIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreGit = ignore
	}
}

// WithRepository enables the .gitignore files found inside the root.
func WithRepository(enabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.useRepository = enabled
	}
}

func WithCustomRules(patterns []string) Option {
	return func(m *IgnoreMatcher) {
		m.customPatterns = patterns
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.disabled = disabled
	}
}
