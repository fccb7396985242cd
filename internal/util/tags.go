package util

import (
	"regexp"
	"strings"
)

var hashtagRegex = regexp.MustCompile(`#(\w+)`)

// ExtractTags finds all #hashtags in a string and returns them lowercased,
// without duplicates, in order of appearance.
func ExtractTags(text string) []string {
	matches := hashtagRegex.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	seen := make(map[string]bool)

	for _, match := range matches {
		tag := strings.ToLower(match[1])
		if !seen[tag] {
			tags = append(tags, tag)
			seen[tag] = true
		}
	}
	return tags
}

// StripTags removes #hashtags and collapses the remaining whitespace.
func StripTags(text string) string {
	return strings.Join(strings.Fields(hashtagRegex.ReplaceAllString(text, "")), " ")
}

// TitleCase upper-cases the first letter of tag, for category chips.
func TitleCase(tag string) string {
	if tag == "" {
		return ""
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}
