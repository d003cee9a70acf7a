package domain

import (
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern matches <PLACEHOLDER> tokens as they appear in
// contract templates: uppercase identifiers wrapped in angle brackets.
var placeholderPattern = regexp.MustCompile(`<[A-Z][A-Z0-9_]*>`)

// RenderTemplate replaces every literal occurrence of <KEY> in source with
// params[KEY]. Substitution is textual: no escaping, no validation that all
// placeholders were consumed, and unmatched tokens are left verbatim.
//
// Keys are applied in sorted order so the result is deterministic. Keys that
// are prefixes of one another (NAME vs NAME2) can still interact textually;
// the angle-bracket delimiter plus uppercase-only naming is the convention
// that keeps placeholders from colliding.
func RenderTemplate(source string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		source = strings.ReplaceAll(source, "<"+k+">", params[k])
	}
	return source
}

// CheckRendered reports whether any placeholder tokens survived rendering.
// Returns an IncompleteTemplateError listing the leftover tokens, or nil.
func CheckRendered(source string) error {
	matches := placeholderPattern.FindAllString(source, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	missing := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			missing = append(missing, m)
		}
	}
	return &IncompleteTemplateError{Missing: missing}
}
