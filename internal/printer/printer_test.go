package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bethropolis/dir-printer/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *walker.Result {
	return &walker.Result{
		Root:    "/project",
		Lines:   []string{"├── a.txt", "└── b", "    └── c.txt"},
		Visited: 3,
		Total:   3,
		Skipped: []walker.SkippedItem{{Path: "x.log", Reason: walker.ReasonIgnoredRule}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"TEXT", FormatText, false},
		{"md", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrint_Text(t *testing.T) {
	var buf bytes.Buffer
	err := New().WithOutput(&buf).WithHeader("Folder structure for: /project").Print(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "Folder structure for: /project\n├── a.txt\n└── b\n    └── c.txt\n", buf.String())
}

func TestPrint_TextColouredHeader(t *testing.T) {
	var buf bytes.Buffer
	err := New().WithOutput(&buf).WithColors(true).WithHeader("Header").Print(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Header")
	assert.Contains(t, buf.String(), "\n├── a.txt\n")
}

func TestPrint_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().WithOutput(&buf).Print(sampleResult()))
	assert.Equal(t, "├── a.txt\n└── b\n    └── c.txt\n", buf.String())
}

func TestPrint_Markdown(t *testing.T) {
	var buf bytes.Buffer
	err := New().WithOutput(&buf).WithFormat(FormatMarkdown).WithHeader("Tree").Print(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "**Tree**\n\n```\n├── a.txt\n└── b\n    └── c.txt\n```\n", buf.String())
}

func TestPrint_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().WithOutput(&buf).WithFormat(FormatJSON).WithColors(true).Print(sampleResult()))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "/project", doc.Root)
	assert.Equal(t, sampleResult().Lines, doc.Lines)
	assert.Equal(t, 3, doc.Total)
	require.Len(t, doc.Skipped, 1)
	assert.Equal(t, walker.ReasonIgnoredRule, doc.Skipped[0].Reason)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrint_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().WithOutput(&buf).WithFormat(FormatYAML).WithHeader("Tree").Print(sampleResult()))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Tree", doc.Header)
	assert.Equal(t, sampleResult().Lines, doc.Lines)
	assert.Equal(t, 3, doc.Visited)
}

func TestPrint_StoppedPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	result := &walker.Result{Root: "/project", Stopped: true, Lines: []string{}}
	require.NoError(t, New().WithOutput(&buf).WithHeader("Tree").Print(result))
	assert.Empty(t, buf.String())

	rendered, err := Render(result, FormatJSON, "Tree")
	require.NoError(t, err)
	assert.Empty(t, rendered)
}

func TestRender_EmptyTreeJSON(t *testing.T) {
	rendered, err := Render(&walker.Result{Root: "/empty"}, FormatJSON, "")
	require.NoError(t, err)
	assert.Contains(t, rendered, `"lines": []`)
}
