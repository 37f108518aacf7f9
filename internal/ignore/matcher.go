package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/dir-printer/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates and initializes an IgnoreMatcher
func New(rootDir string, opts ...Option) (*IgnoreMatcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	// Nothing is filtered unless a layer is switched on
	matcher := &IgnoreMatcher{
		rootDir: absRootDir,
		logger:  utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	matcher.init()
	return matcher, nil
}

// init compiles custom patterns and loads repository ignore files
func (m *IgnoreMatcher) init() {
	m.logger.Debug("ignore.New: Initializing for root: %s", m.rootDir)
	m.logger.Debug("ignore.New: hidden=%v git=%v repository=%v rules=%d custom=%d",
		m.ignoreHidden, m.ignoreGit, m.useRepository, m.rules.Len(), len(m.customPatterns))

	if m.disabled {
		m.logger.Debug("ignore.New: Matcher is disabled, skipping rule initialization")
		return
	}

	if len(m.customPatterns) > 0 {
		m.rules = m.rules.Merge(CompileLines(m.customPatterns))
	}

	if !m.useRepository {
		return
	}

	repoMatcher, err := gitignore.NewRepository(m.rootDir)
	if err != nil || repoMatcher == nil {
		m.logger.Warn("ignore.New: Could not load .gitignore files from '%s': %v. Continuing without them.", m.rootDir, err)
		return
	}
	m.repoIgnore = repoMatcher
	m.logger.Debug("ignore.New: Loaded repository .gitignore files.")
}

// Rules returns the effective rule set, custom patterns included.
func (m *IgnoreMatcher) Rules() *RuleSet {
	if m == nil {
		return nil
	}
	return m.rules
}

// RootDir returns the absolute root the matcher evaluates paths against.
func (m *IgnoreMatcher) RootDir() string {
	return m.rootDir
}
