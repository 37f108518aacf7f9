package ignore

import (
	"github.com/bethropolis/dir-printer/internal/utils"
)

// Verdict describes how a RuleSet decided about one path.
type Verdict struct {
	// Matched is true when at least one rule matched the path or an ancestor.
	Matched bool
	// Ignored is the final decision after negations.
	Ignored bool
	// Rule is the last matching rule, which decided the verdict.
	Rule *IgnoreRule
}

// RuleSet is an ordered list of compiled rules. Later rules override earlier
// ones; a RuleSet is never modified after construction.
type RuleSet struct {
	rules []*IgnoreRule
}

// NewRuleSet builds a RuleSet from already compiled rules, preserving order.
func NewRuleSet(rules ...*IgnoreRule) *RuleSet {
	kept := make([]*IgnoreRule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return &RuleSet{rules: kept}
}

// Merge returns a new RuleSet holding the receiver's rules followed by
// other's rules.
func (s *RuleSet) Merge(other *RuleSet) *RuleSet {
	merged := make([]*IgnoreRule, 0, s.Len()+other.Len())
	if s != nil {
		merged = append(merged, s.rules...)
	}
	if other != nil {
		merged = append(merged, other.rules...)
	}
	return &RuleSet{rules: merged}
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Rules returns a copy of the rules in evaluation order.
func (s *RuleSet) Rules() []*IgnoreRule {
	if s == nil {
		return nil
	}
	out := make([]*IgnoreRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Evaluate applies every rule in order to the relative path and to each of
// its ancestor prefixes. The last rule that matches decides; there is no
// early exit.
func (s *RuleSet) Evaluate(relativePath string, isDir bool) Verdict {
	var verdict Verdict
	if s == nil || len(s.rules) == 0 {
		return verdict
	}

	path := utils.NormalizePath(relativePath)
	if path == "" {
		return verdict
	}
	ancestors := utils.AncestorPrefixes(path)

	for _, r := range s.rules {
		if !r.matchesEntry(path, ancestors, isDir) {
			continue
		}
		verdict.Matched = true
		verdict.Rule = r
		verdict.Ignored = !r.negation
	}
	return verdict
}

// ShouldIgnore reports whether a root-relative path is excluded.
func (s *RuleSet) ShouldIgnore(relativePath string, isDir bool) bool {
	return s.Evaluate(relativePath, isDir).Ignored
}

// IsIgnored reports whether path, resolved relative to root, is excluded.
// Paths outside root are never ignored.
func (s *RuleSet) IsIgnored(path, root string, isDir bool) bool {
	rel, ok := utils.RelativeSlashPath(path, root)
	if !ok {
		return false
	}
	return s.ShouldIgnore(rel, isDir)
}
