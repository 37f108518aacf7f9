package ignore

import (
	"regexp"
	"strings"
)

// Expression fragments used when translating a rule into a regular expression.
const (
	anchorRoot        = "^"
	anchorAnySegment  = "(?:^|/)"
	suffixDirectory   = "(?:/.*)?$"
	suffixFileOrDir   = "(?:$|/)"
	singleStarExpr    = "[^/]*"
	questionMarkExpr  = "[^/]"
	doubleStarExpr    = ".*"
	leadingDoubleStar = "(?:.*/)?"
)

// IgnoreRule is one compiled line of a rule file. It is immutable after
// Compile returns.
type IgnoreRule struct {
	raw        string
	line       int
	negation   bool
	dirOnly    bool
	anchored   bool
	expression string
	matcher    *regexp.Regexp
}

// Compile turns a single trimmed, non-empty, non-comment rule line into an
// IgnoreRule. Every input compiles: text that is not a wildcard is matched
// literally.
func Compile(line string) *IgnoreRule {
	return compileLine(line, 0)
}

func compileLine(line string, lineNumber int) *IgnoreRule {
	rule := &IgnoreRule{raw: line, line: lineNumber}

	pattern := line
	if strings.HasPrefix(pattern, "!") {
		rule.negation = true
		pattern = pattern[1:]
	}
	if strings.HasSuffix(pattern, "/") {
		rule.dirOnly = true
		pattern = strings.TrimSuffix(pattern, "/")
	}
	if strings.HasPrefix(pattern, "/") {
		rule.anchored = true
		pattern = pattern[1:]
	}

	var expr strings.Builder
	if rule.anchored {
		expr.WriteString(anchorRoot)
	} else {
		expr.WriteString(anchorAnySegment)
	}
	expr.WriteString(translateWildcards(pattern))
	if rule.dirOnly {
		expr.WriteString(suffixDirectory)
	} else {
		expr.WriteString(suffixFileOrDir)
	}

	rule.expression = expr.String()
	compiled, err := regexp.Compile(rule.expression)
	if err != nil {
		// Unreachable for translated input; fall back to the literal line.
		rule.expression = regexp.QuoteMeta(line)
		compiled = regexp.MustCompile(rule.expression)
	}
	rule.matcher = compiled
	return rule
}

// translateWildcards quotes everything except the *, ** and ? tokens and
// rewrites those into their path-aware expressions.
func translateWildcards(pattern string) string {
	var out, literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			out.WriteString(regexp.QuoteMeta(literal.String()))
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*':
			flush()
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				for i+1 < len(pattern) && pattern[i+1] == '*' {
					i++
				}
				if i+1 < len(pattern) && pattern[i+1] == '/' {
					i++
					out.WriteString(leadingDoubleStar)
				} else {
					out.WriteString(doubleStarExpr)
				}
				continue
			}
			out.WriteString(singleStarExpr)
		case '?':
			flush()
			out.WriteString(questionMarkExpr)
		default:
			literal.WriteByte(pattern[i])
		}
	}
	flush()
	return out.String()
}

// Raw returns the rule exactly as it appeared in the rule file.
func (r *IgnoreRule) Raw() string { return r.raw }

// Line is the 1-based line number in the source file, or 0 when the rule
// was not read from a file.
func (r *IgnoreRule) Line() int { return r.line }

// IsNegation reports whether the rule re-includes paths ("!pattern").
func (r *IgnoreRule) IsNegation() bool { return r.negation }

// IsDirectoryOnly reports whether the rule had a trailing slash.
func (r *IgnoreRule) IsDirectoryOnly() bool { return r.dirOnly }

// IsAnchored reports whether the rule only matches from the root.
func (r *IgnoreRule) IsAnchored() bool { return r.anchored }

// Expression returns the compiled regular expression source.
func (r *IgnoreRule) Expression() string { return r.expression }

// Matches tests the compiled matcher against a canonical relative path
// without applying the directory-only entry type check.
func (r *IgnoreRule) Matches(path string) bool {
	return r.matcher.MatchString(path)
}

// matchesEntry tests the rule against a path and its ancestors. Ancestors are
// always directories; the path itself must be a directory for a
// directory-only rule to apply to it.
func (r *IgnoreRule) matchesEntry(path string, ancestors []string, isDir bool) bool {
	for _, ancestor := range ancestors {
		if r.matcher.MatchString(ancestor) {
			return true
		}
	}
	if r.dirOnly && !isDir {
		return false
	}
	return r.matcher.MatchString(path)
}

func (r *IgnoreRule) String() string { return r.raw }
