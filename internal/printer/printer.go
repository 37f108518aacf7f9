// Package printer renders a finished tree walk in the selected output format
package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/dir-printer/internal/walker"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates a format name. The empty string means text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("printer: unknown format %q (want text, markdown, json or yaml)", name)
	}
}

// Document is the structured form used by the json and yaml formats.
type Document struct {
	Header  string               `json:"header,omitempty" yaml:"header,omitempty"`
	Root    string               `json:"root" yaml:"root"`
	Lines   []string             `json:"lines" yaml:"lines"`
	Visited int                  `json:"visited" yaml:"visited"`
	Total   int                  `json:"total" yaml:"total"`
	Skipped []walker.SkippedItem `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Printer handles output formatting and writing to the configured output destination
type Printer struct {
	output    io.Writer
	useColors bool
	format    Format
	header    string
}

// New creates a new Printer writing text to stdout
func New() *Printer {
	return &Printer{
		output: os.Stdout,
		format: FormatText,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output. Only the text header is
// ever coloured.
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithFormat sets the output format
func (p *Printer) WithFormat(format Format) *Printer {
	p.format = format
	return p
}

// WithHeader sets the line printed above the tree. Empty means none.
func (p *Printer) WithHeader(header string) *Printer {
	p.header = header
	return p
}

// Print writes the rendered result. A stopped walk prints nothing.
func (p *Printer) Print(result *walker.Result) error {
	if result == nil || result.Stopped {
		return nil
	}

	header := p.header
	if p.format == FormatText && header != "" {
		style := color.New(color.Bold, color.FgCyan)
		if p.useColors {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
		header = style.Sprint(header)
	}

	rendered, err := render(result, p.format, header)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(p.output, rendered); err != nil {
		return fmt.Errorf("printer: write output: %w", err)
	}
	return nil
}

// Render returns the uncoloured rendering of result, as saved to files and
// copied to the clipboard.
func Render(result *walker.Result, format Format, header string) (string, error) {
	if result == nil || result.Stopped {
		return "", nil
	}
	return render(result, format, header)
}

func render(result *walker.Result, format Format, header string) (string, error) {
	switch format {
	case FormatText, "":
		return renderText(result, header), nil
	case FormatMarkdown:
		return renderMarkdown(result, header), nil
	case FormatJSON:
		data, err := json.MarshalIndent(newDocument(result, header), "", "  ")
		if err != nil {
			return "", fmt.Errorf("printer: encode json: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(newDocument(result, header)); err != nil {
			return "", fmt.Errorf("printer: encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return "", fmt.Errorf("printer: encode yaml: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("printer: unknown format %q", format)
	}
}

func renderText(result *walker.Result, header string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteByte('\n')
	}
	for _, line := range result.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderMarkdown(result *walker.Result, header string) string {
	var b strings.Builder
	if header != "" {
		fmt.Fprintf(&b, "**%s**\n\n", header)
	}
	b.WriteString("```\n")
	for _, line := range result.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("```\n")
	return b.String()
}

func newDocument(result *walker.Result, header string) Document {
	lines := result.Lines
	if lines == nil {
		lines = []string{}
	}
	return Document{
		Header:  header,
		Root:    result.Root,
		Lines:   lines,
		Visited: result.Visited,
		Total:   result.Total,
		Skipped: result.Skipped,
	}
}
