package docsync

import (
	"regexp"
	"strings"
)

// Rule is one declarative rewrite: every match of Pattern is replaced by
// Replace with ${1}/${2} expanding to the text around the old version.
// Adding a release artifact means appending a rule here, nothing else.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

const semverGroup = `[0-9]+\.[0-9]+\.[0-9]+`

// badgePattern matches the shields.io version badge; the embedded version is
// also what current-version discovery reports.
var (
	badgePattern        = regexp.MustCompile(`(badge/version-)` + semverGroup + `(-)`)
	badgeVersionPattern = regexp.MustCompile(`badge/version-(` + semverGroup + `)-`)
)

// DefaultRules covers every version-bearing token in the README pair: the
// badge image, the release download URL path, and the four published
// artifact filenames.
func DefaultRules() []Rule {
	artifacts := []string{
		"darwin-universal.tar.gz",
		"linux-x64-musl.tar.gz",
		"linux-arm64-musl.tar.gz",
		"windows-x64.zip",
	}

	rules := []Rule{
		{
			Name:    "version badge",
			Pattern: badgePattern,
			Replace: `${1}NEW${2}`,
		},
		{
			Name:    "release download path",
			Pattern: regexp.MustCompile(`(/releases/download/v)` + semverGroup + `(/)`),
			Replace: `${1}NEW${2}`,
		},
	}

	for _, artifact := range artifacts {
		rules = append(rules, Rule{
			Name:    "artifact " + artifact,
			Pattern: regexp.MustCompile(`(cc-switch-cli-v)` + semverGroup + `(-` + regexp.QuoteMeta(artifact) + `)`),
			Replace: `${1}NEW${2}`,
		})
	}
	return rules
}

// Apply rewrites content with every rule, substituting version for the NEW
// placeholder in each replacement template.
func Apply(rules []Rule, content, version string) string {
	for _, rule := range rules {
		replace := strings.ReplaceAll(rule.Replace, "NEW", version)
		content = rule.Pattern.ReplaceAllString(content, replace)
	}
	return content
}
