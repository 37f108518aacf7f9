package summary

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/bethropolis/dir-printer/internal/walker"
	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Info(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestDisplayResults(t *testing.T) {
	log := &recordingLogger{}
	DisplayResults(log, &walker.Result{Visited: 3, Total: 4}, 1500*time.Microsecond, false)
	assert.Equal(t, []string{"Printed 3 entries (estimated 4).", "Scan complete in 2ms."}, log.lines)

	log = &recordingLogger{}
	DisplayResults(log, &walker.Result{Visited: 1, Total: 4, Stopped: true}, time.Millisecond, false)
	assert.Equal(t, "Walk stopped after 1 of ~4 entries.", log.lines[0])

	log = &recordingLogger{}
	DisplayResults(log, &walker.Result{Visited: 3}, time.Second, true)
	assert.Empty(t, log.lines)
}

func TestDisplaySkippedItems(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	items := []walker.SkippedItem{
		{Path: "z.log", Reason: walker.ReasonIgnoredRule},
		{Path: "build", Reason: walker.ReasonIgnoredRule, IsDir: true},
	}

	DisplaySkippedItems(log, items, &out, false)

	assert.Equal(t,
		"Skipped DIR : build [Ignored (Ignore Rule)]\nSkipped FILE: z.log [Ignored (Ignore Rule)]\n",
		out.String())
	assert.Equal(t, "--- Skipped Items (2) ---", log.lines[0])
	assert.Equal(t, "z.log", items[0].Path, "input order is left untouched")
}

func TestDisplaySkippedItems_None(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	DisplaySkippedItems(log, nil, &out, false)
	assert.Empty(t, out.String())
	assert.Contains(t, log.lines, "No items were skipped.")
}
