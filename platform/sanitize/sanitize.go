// Package sanitize provides text cleanup for user-entered fields shown to staff.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
	"&nbsp;", " ",
)

// StripHTML removes HTML tags, decodes common entities and strips again so
// that encoded tags do not survive.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = entityReplacer.Replace(result)
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Comment cleans a free-text order comment: HTML is stripped and runs of
// whitespace, including newlines, collapse to a single space.
func Comment(s string) string {
	return whitespaceRegex.ReplaceAllString(StripHTML(s), " ")
}
