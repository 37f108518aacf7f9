// Package app wires configuration, ignore rules, the tree walker and the
// output collaborators together
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/dir-printer/internal/clipboard"
	"github.com/bethropolis/dir-printer/internal/config"
	"github.com/bethropolis/dir-printer/internal/i18n"
	"github.com/bethropolis/dir-printer/internal/logger"
	"github.com/bethropolis/dir-printer/internal/preferences"
	"github.com/bethropolis/dir-printer/internal/printer"
	"github.com/bethropolis/dir-printer/internal/setup"
	"github.com/bethropolis/dir-printer/internal/summary"
	"github.com/bethropolis/dir-printer/internal/utils"
	"github.com/bethropolis/dir-printer/internal/walker"
	"github.com/fatih/color"
)

// ErrStopped is returned when the walk was cancelled before it finished.
var ErrStopped = errors.New("walk stopped before completion")

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    utils.Logger
	stdout io.Writer
	stderr io.Writer
	copier clipboard.Copier
	prefs  *preferences.Store
}

// Option configures an App
type Option func(*App)

func WithStdout(w io.Writer) Option { return func(a *App) { a.stdout = w } }
func WithStderr(w io.Writer) Option { return func(a *App) { a.stderr = w } }

// WithCopier replaces the system clipboard.
func WithCopier(c clipboard.Copier) Option { return func(a *App) { a.copier = c } }

// WithPreferences uses an already opened store instead of opening
// cfg.PreferencesDir.
func WithPreferences(s *preferences.Store) Option { return func(a *App) { a.prefs = s } }

// New creates a new App instance
func New(cfg *config.Config, opts ...Option) *App {
	color.NoColor = !cfg.UseColors

	a := &App{
		cfg:    cfg,
		stdout: os.Stdout,
		stderr: os.Stderr,
		copier: clipboard.NewService(),
	}
	for _, opt := range opts {
		opt(a)
	}
	// The logger and the progress renderer share stderr across goroutines
	a.stderr = &lockedWriter{w: a.stderr}
	a.log = newLogger(cfg, a.stderr)

	if a.prefs == nil && cfg.PreferencesDir != "" {
		store, err := preferences.Open(cfg.PreferencesDir, preferences.WithLogger(a.log))
		if err != nil {
			a.log.Warn("Could not open preferences: %v", err)
		} else {
			a.prefs = store
		}
	}
	return a
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func newLogger(cfg *config.Config, out io.Writer) utils.Logger {
	level := logger.LevelInfo
	switch {
	case cfg.LogLevel != "":
		level = logger.ParseLevel(cfg.LogLevel)
	case cfg.Verbose:
		level = logger.LevelDebug
	case cfg.Quiet:
		level = logger.LevelWarn
	}

	if cfg.LogJSON {
		return logger.NewZap(out, level)
	}
	return logger.New(out, false, cfg.UseColors).WithLevel(level)
}

// Logger returns the logger the App writes to.
func (a *App) Logger() utils.Logger {
	return a.log
}

// Locale is the --lang value, else the saved language, else English.
func (a *App) Locale() string {
	if a.cfg.Language != "" {
		return i18n.Normalize(a.cfg.Language)
	}
	if a.prefs != nil {
		return i18n.Normalize(a.prefs.Language())
	}
	return i18n.DefaultLanguage
}

func (a *App) infoLog(format string, args ...interface{}) {
	if !a.cfg.Quiet {
		a.log.Info(format, args...)
	}
}

// Run prints the tree for the configured root. SIGINT and the configured
// timeout cancel the walk, in which case nothing is printed.
func (a *App) Run(ctx context.Context) error {
	startTime := time.Now()
	locale := a.Locale()

	if err := a.resolveLast(locale); err != nil {
		return err
	}

	format, err := printer.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	rootDir := a.cfg.RootDir
	if rootDir == "" {
		rootDir = "."
	}
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("app: invalid root directory path '%s': %w", rootDir, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	var bar *logger.ProgressBar
	var progress walker.ProgressFunc
	if a.cfg.ShowProgress {
		bar = logger.NewProgressBar(0, progressWidth, a.cfg.UseColors)
		progress = func(current, total int) bool {
			bar.Update(current, total)
			return true
		}
	}

	matcher, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:      absRootDir,
		IgnoreFile:   a.cfg.IgnoreFile,
		CustomIgnore: a.cfg.CustomIgnore,
		UseGitignore: a.cfg.UseGitignore,
		IgnoreHidden: a.cfg.IgnoreHidden,
		IgnoreGit:    a.cfg.IgnoreGit,
		Context:      ctx,
		Progress:     progress,
		Logger:       a.log,
	}, a.infoLog)
	if err != nil {
		return errors.New(i18n.Translate(locale, i18n.ProcessDirectoryErr, err))
	}

	a.infoLog("Scanning directory: %s", absRootDir)
	result, err := a.walk(ctx, absRootDir, matcher, walkOptions, bar, locale)
	if err != nil {
		return err
	}

	summary.DisplayResults(a.log, result, time.Since(startTime), a.cfg.Quiet)
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, result.Skipped, a.stderr, a.cfg.Quiet)
	}

	if result.Stopped {
		a.log.Warn("%s", i18n.Translate(locale, i18n.GenerationStopped))
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrStopped, ctx.Err())
		}
		return ErrStopped
	}

	header := ""
	if !a.cfg.NoHeader {
		header = i18n.Translate(locale, i18n.FolderStructure, absRootDir)
	}

	if err := a.emit(result, format, header, locale); err != nil {
		return err
	}

	a.remember(absRootDir)
	return nil
}

// resolveLast replaces the root with the most recent directory for --last.
func (a *App) resolveLast(locale string) error {
	if !a.cfg.Last {
		return nil
	}
	if a.prefs == nil {
		return errors.New(i18n.Translate(locale, i18n.SelectDirectoryFirst))
	}
	last, ok := a.prefs.Last()
	if !ok {
		return errors.New(i18n.Translate(locale, i18n.SelectDirectoryFirst))
	}
	a.cfg.RootDir = last.DirectoryPath
	if a.cfg.IgnoreFile == "" {
		a.cfg.IgnoreFile = last.Config.IgnoreFile
	}
	a.log.Debug("Reusing recent directory %s (ignore file %q)", last.DirectoryPath, last.Config.IgnoreFile)
	return nil
}

func (a *App) emit(result *walker.Result, format printer.Format, header, locale string) error {
	if a.cfg.OutputFile != "" {
		rendered, err := printer.Render(result, format, header)
		if err != nil {
			return err
		}
		if err := os.WriteFile(a.cfg.OutputFile, []byte(rendered), 0o644); err != nil {
			return errors.New(i18n.Translate(locale, i18n.SaveFileError, err))
		}
		a.infoLog("%s (%s)", i18n.Translate(locale, i18n.FileSaved), a.cfg.OutputFile)
	} else {
		p := printer.New().
			WithOutput(a.stdout).
			WithFormat(format).
			WithColors(a.cfg.UseColors).
			WithHeader(header)
		if err := p.Print(result); err != nil {
			return err
		}
	}

	if a.cfg.Copy {
		a.copy(result, format, header, locale)
	}
	return nil
}

// copy reports clipboard problems without failing the run.
func (a *App) copy(result *walker.Result, format printer.Format, header, locale string) {
	rendered, err := printer.Render(result, format, header)
	if err != nil {
		a.log.Warn("Could not render for the clipboard: %v", err)
		return
	}
	if len(result.Lines) == 0 {
		rendered = ""
	}

	switch err := a.copier.Copy(rendered); {
	case errors.Is(err, clipboard.ErrEmpty):
		a.log.Warn("%s", i18n.Translate(locale, i18n.NoContentToCopy))
	case err != nil:
		a.log.Warn("Copy to clipboard failed: %v", err)
	default:
		a.infoLog("%s", i18n.Translate(locale, i18n.ContentCopied))
	}
}

// remember records a successfully printed directory in the recent list.
func (a *App) remember(absRootDir string) {
	if a.prefs == nil {
		return
	}
	if info, err := os.Stat(absRootDir); err != nil || !info.IsDir() {
		return
	}

	ignoreFile := a.cfg.IgnoreFile
	if ignoreFile != "" {
		if abs, err := filepath.Abs(ignoreFile); err == nil {
			ignoreFile = abs
		}
	}
	if err := a.prefs.AddRecent(absRootDir, preferences.RecentConfig{IgnoreFile: ignoreFile}); err != nil {
		a.log.Warn("Could not update recent directories: %v", err)
	}
}
