package textreplace

import (
	"regexp"
	"strings"

	"figmarelay/models"
)

// Replacer swaps configured words in comment text for their replacements.
// Matching is literal, case-sensitive and global; it does not respect word boundaries.
// A Replacer is immutable and safe for concurrent use.
type Replacer struct {
	rules   []models.ReplaceRule
	pattern *regexp.Regexp
}

// NewReplacer builds a Replacer from rules in declaration order.
// When two words match at the same position the earlier rule wins.
func NewReplacer(rules []models.ReplaceRule) *Replacer {
	var kept []models.ReplaceRule
	var alternatives []string
	for _, rule := range rules {
		if rule.Word == "" {
			continue
		}
		kept = append(kept, rule)
		alternatives = append(alternatives, "("+regexp.QuoteMeta(rule.Word)+")")
	}

	if len(kept) == 0 {
		return &Replacer{}
	}

	return &Replacer{
		rules:   kept,
		pattern: regexp.MustCompile(strings.Join(alternatives, "|")),
	}
}

// Replace returns text with every occurrence of a configured word replaced
func (r *Replacer) Replace(text string) string {
	if r == nil || r.pattern == nil {
		return text
	}

	return r.pattern.ReplaceAllStringFunc(text, func(match string) string {
		for _, rule := range r.rules {
			if rule.Word == match {
				return rule.Replacement
			}
		}
		return match
	})
}

// RuleCount is the number of active rules
func (r *Replacer) RuleCount() int {
	if r == nil {
		return 0
	}
	return len(r.rules)
}
