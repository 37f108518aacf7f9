package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

const (
	commentPrefix = "#"
	utf8BOM       = "\ufeff"
)

// LoadRuleFile compiles the rule file at path. An empty path or a missing
// file yields an empty RuleSet and no error.
func LoadRuleFile(path string) (*RuleSet, error) {
	return LoadRuleFileFS(afero.NewOsFs(), path)
}

// LoadRuleFileFS is LoadRuleFile on an arbitrary filesystem.
func LoadRuleFileFS(fsys afero.Fs, path string) (*RuleSet, error) {
	if path == "" {
		return NewRuleSet(), nil
	}

	file, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewRuleSet(), nil
		}
		return nil, fmt.Errorf("ignore: open rule file %s: %w", path, err)
	}
	defer file.Close()

	rules, err := ParseRules(file)
	if err != nil {
		return nil, fmt.Errorf("ignore: read rule file %s: %w", path, err)
	}
	return rules, nil
}

// ParseRules reads newline-delimited rules. Lines are trimmed; blank lines
// and lines starting with '#' are skipped.
func ParseRules(r io.Reader) (*RuleSet, error) {
	scanner := bufio.NewScanner(r)
	var rules []*IgnoreRule
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if rule := compileRuleLine(line, lineNumber); rule != nil {
			rules = append(rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewRuleSet(rules...), nil
}

// CompileLines compiles in-memory rules, such as patterns given on the
// command line, with the same skipping rules as a rule file.
func CompileLines(lines []string) *RuleSet {
	var rules []*IgnoreRule
	for i, line := range lines {
		if rule := compileRuleLine(line, i+1); rule != nil {
			rules = append(rules, rule)
		}
	}
	return NewRuleSet(rules...)
}

func compileRuleLine(line string, lineNumber int) *IgnoreRule {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
		return nil
	}
	return compileLine(trimmed, lineNumber)
}
