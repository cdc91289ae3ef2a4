package branch

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Kind is the top-level namespace of a generated branch.
type Kind string

const (
	Feature Kind = "feature"
	Hotfix  Kind = "hotfix"
)

// KindFor maps the --fix flag to a branch kind.
func KindFor(fix bool) Kind {
	if fix {
		return Hotfix
	}
	return Feature
}

const maxSuffixLength = 50

// Pre-compiled regex patterns for efficiency
var (
	illegalRefCharsRegex = regexp.MustCompile(`[~^:?*\[\\\x00-\x1f\x7f]+`)
	separatorsRegex      = regexp.MustCompile(`[\s/]+`)
	multipleHyphensRegex = regexp.MustCompile(`-+`)
	multipleDotsRegex    = regexp.MustCompile(`\.{2,}`)
)

// Name assembles {kind}/{prefix-}{suffix}. An empty prefix adds no dash.
func Name(kind Kind, prefix, suffix string) string {
	prefixPart := ""
	if prefix != "" {
		prefixPart = prefix + "-"
	}
	return fmt.Sprintf("%s/%s%s", kind, prefixPart, suffix)
}

// DateSuffix formats t as MMDD.
func DateSuffix(t time.Time) string {
	return t.Format("0102")
}

// CleanSuffix turns a generated suffix into a single ref component. Whitespace
// and slashes become dashes and characters git rejects in ref names are
// dropped; everything else, including non-ASCII text, is kept as is.
func CleanSuffix(raw string) string {
	cleaned := strings.TrimSpace(raw)

	// Drop a namespace the model added despite being told not to
	for _, kind := range []Kind{Feature, Hotfix} {
		cleaned = strings.TrimPrefix(cleaned, string(kind)+"/")
	}

	cleaned = illegalRefCharsRegex.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "@{", "@")
	cleaned = separatorsRegex.ReplaceAllString(cleaned, "-")
	cleaned = multipleDotsRegex.ReplaceAllString(cleaned, ".")
	cleaned = multipleHyphensRegex.ReplaceAllString(cleaned, "-")

	return limitLength(trimEnds(cleaned), maxSuffixLength)
}

// trimEnds strips dangling separators and a ".lock" ending, which git refuses.
func trimEnds(text string) string {
	for {
		trimmed := strings.Trim(text, "-.")
		trimmed = strings.TrimSuffix(trimmed, ".lock")
		if trimmed == text {
			return text
		}
		text = trimmed
	}
}

// limitLength truncates to maxLength characters and trims dangling separators
func limitLength(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return trimEnds(string(runes[:maxLength]))
}
