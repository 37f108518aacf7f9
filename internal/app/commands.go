package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-printer/internal/i18n"
	"github.com/bethropolis/dir-printer/internal/ignore"
	"github.com/bethropolis/dir-printer/internal/setup"
	"github.com/bethropolis/dir-printer/internal/utils"
)

// Check reports, git check-ignore style, whether each path would be
// excluded and which rule or layer decided. Paths are resolved against the
// configured root unless absolute; a trailing "/" marks a directory that
// does not exist.
func (a *App) Check(paths []string) error {
	rootDir := a.cfg.RootDir
	if rootDir == "" {
		rootDir = "."
	}
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("app: invalid root directory path '%s': %w", rootDir, err)
	}

	matcher, _, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:      absRootDir,
		IgnoreFile:   a.cfg.IgnoreFile,
		CustomIgnore: a.cfg.CustomIgnore,
		UseGitignore: a.cfg.UseGitignore,
		IgnoreHidden: a.cfg.IgnoreHidden,
		IgnoreGit:    a.cfg.IgnoreGit,
		Logger:       a.log,
	}, nil)
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(a.stdout, describeCheck(matcher, absRootDir, path))
	}
	return nil
}

func describeCheck(matcher *ignore.IgnoreMatcher, absRootDir, path string) string {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(absRootDir, path)
	}
	isDir := strings.HasSuffix(path, "/")
	if info, err := os.Stat(full); err == nil {
		isDir = info.IsDir()
	}
	rel, ok := utils.RelativeSlashPath(full, absRootDir)
	if !ok {
		return fmt.Sprintf("%s: outside %s", path, absRootDir)
	}

	switch reason := matcher.Reason(rel, isDir); reason {
	case ignore.ReasonNone:
		if verdict := matcher.Rules().Evaluate(rel, isDir); verdict.Matched {
			return fmt.Sprintf("%s: kept by %s", path, describeRule(verdict.Rule))
		}
		return fmt.Sprintf("%s: not ignored", path)
	case ignore.ReasonRule:
		return fmt.Sprintf("%s: ignored by %s", path, describeRule(matcher.Rules().Evaluate(rel, isDir).Rule))
	default:
		return fmt.Sprintf("%s: ignored (%s)", path, reason)
	}
}

func describeRule(rule *ignore.IgnoreRule) string {
	if rule.Line() > 0 {
		return fmt.Sprintf("line %d %q", rule.Line(), rule.Raw())
	}
	return fmt.Sprintf("%q", rule.Raw())
}

// Recent lists the remembered directories, or clears them.
func (a *App) Recent(clear bool) error {
	locale := a.Locale()
	if a.prefs == nil {
		return errors.New("app: preferences are unavailable")
	}

	if clear {
		if err := a.prefs.ClearRecent(); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, i18n.Translate(locale, i18n.RecentCleared))
		return nil
	}

	recent := a.prefs.RecentFiles()
	if len(recent) == 0 {
		fmt.Fprintln(a.stdout, i18n.Translate(locale, i18n.NoRecentDirectories))
		return nil
	}
	for i, entry := range recent {
		line := fmt.Sprintf("%d. %s", i+1, entry.DirectoryPath)
		if entry.Config.IgnoreFile != "" {
			line += fmt.Sprintf(" (ignore file: %s)", entry.Config.IgnoreFile)
		}
		fmt.Fprintln(a.stdout, line)
	}
	return nil
}

// Language shows the current language and the supported ones, or saves a
// new language when code is not empty.
func (a *App) Language(code string) error {
	if code == "" {
		fmt.Fprintln(a.stdout, i18n.Translate(a.Locale(), i18n.CurrentLanguage, a.Locale()))
		for _, lang := range i18n.Languages() {
			fmt.Fprintf(a.stdout, "  %s  %s\n", lang.Code, lang.Name)
		}
		return nil
	}

	if !i18n.IsSupported(code) {
		return fmt.Errorf("app: unsupported language %q", code)
	}
	if a.prefs == nil {
		return errors.New("app: preferences are unavailable")
	}
	normalized := i18n.Normalize(code)
	if err := a.prefs.SetLanguage(normalized); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, i18n.Translate(normalized, i18n.LanguageSet, normalized))
	return nil
}
