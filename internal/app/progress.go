package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bethropolis/dir-printer/internal/i18n"
	"github.com/bethropolis/dir-printer/internal/ignore"
	"github.com/bethropolis/dir-printer/internal/logger"
	"github.com/bethropolis/dir-printer/internal/walker"
	"golang.org/x/sync/errgroup"
)

const (
	progressWidth    = 30
	progressInterval = 100 * time.Millisecond
)

// walk runs the traversal on its own goroutine. With a progress bar, a
// second goroutine redraws it on stderr until the walk returns.
func (a *App) walk(
	ctx context.Context,
	rootDir string,
	matcher *ignore.IgnoreMatcher,
	opts []walker.Option,
	bar *logger.ProgressBar,
	locale string,
) (*walker.Result, error) {
	group, groupCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	var result *walker.Result
	group.Go(func() error {
		defer close(done)
		result = walker.Walk(rootDir, matcher, opts...)
		return nil
	})

	if bar != nil {
		group.Go(func() error {
			a.renderProgress(groupCtx, bar, done, locale)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *App) renderProgress(ctx context.Context, bar *logger.ProgressBar, done <-chan struct{}, locale string) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	draw := func() {
		status := i18n.Translate(locale, i18n.ProcessingStatus, bar.Current(), bar.Total(), bar.Percentage())
		fmt.Fprintf(a.stderr, "\r%s %s", bar.Render(), status)
	}

	for {
		select {
		case <-done:
			draw()
			fmt.Fprintln(a.stderr)
			return
		case <-ctx.Done():
			// The walk notices cancellation at its next entry; wait for it.
			<-done
			fmt.Fprintln(a.stderr)
			return
		case <-ticker.C:
			draw()
		}
	}
}
