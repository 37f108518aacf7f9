// Package summary reports end-of-run statistics and skipped entries
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/dir-printer/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs how many entries were printed out of the estimate
func DisplayResults(logger Logger, result *walker.Result, duration time.Duration, quiet bool) {
	if quiet || result == nil {
		return
	}
	if result.Stopped {
		logger.Info("Walk stopped after %d of ~%d entries.", result.Visited, result.Total)
	} else {
		logger.Info("Printed %d entries (estimated %d).", result.Visited, result.Total)
	}
	logger.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints skipped entries sorted by path, one per line
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer, quiet bool) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
		infoLog("--- End Skipped Items ---")
		return
	}

	sorted := make([]walker.SkippedItem, len(skippedItems))
	copy(sorted, skippedItems)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	for _, item := range sorted {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // aligned with FILE
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n", typeStr, 50, item.Path, item.Reason)
	}
	infoLog("--- End Skipped Items ---")
}
