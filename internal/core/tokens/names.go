package tokens

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var wordSplitRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// TokenName normalizes a style or node display name into a lower-camel-case
// identifier: "Primary/500" -> "primary500", "Heading/H1" -> "headingH1".
// Path separators and other non-word characters act as word boundaries.
func TokenName(display string) string {
	parts := wordSplitRe.Split(display, -1)
	var words []string
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lowerFirst(w))
			continue
		}
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// TrailingSegment normalizes only the last path segment of a display name:
// "Tokens/Spacing/MD" -> "md".
func TrailingSegment(display string) string {
	segs := strings.Split(display, "/")
	return TokenName(segs[len(segs)-1])
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// uniqueName appends a numeric suffix until name is unused in taken.
// Token names must stay unique within a category.
func uniqueName(name string, taken map[string]bool) string {
	if name == "" {
		name = "token"
	}
	candidate := name
	for i := 2; taken[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	taken[candidate] = true
	return candidate
}
