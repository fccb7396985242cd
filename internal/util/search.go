package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of an item filter such as
// "status:missed type:conflict call".
type SearchQuery struct {
	Status   []string
	Type     []string
	Priority []string
	Category []string
	Text     []string
}

var (
	statusRegex   = regexp.MustCompile(`status:(\w+)`)
	typeRegex     = regexp.MustCompile(`type:(\w+)`)
	priorityRegex = regexp.MustCompile(`priority:(\w+)`)
	categoryRegex = regexp.MustCompile(`category:(\w+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Status = extract(statusRegex)
	sq.Type = extract(typeRegex)
	sq.Priority = extract(priorityRegex)
	sq.Category = extract(categoryRegex)
	sq.Text = strings.Fields(strings.ToLower(query))

	return sq
}

// SearchFields is the projection of one record a query is matched against.
type SearchFields struct {
	Title    string
	Status   string
	Type     string
	Priority string
	Category string
}

// Matches reports whether f satisfies every clause of q. Values within one
// clause are alternatives; text words must all appear in the title.
func (q SearchQuery) Matches(f SearchFields) bool {
	if !anyEqual(q.Status, f.Status) || !anyEqual(q.Type, f.Type) ||
		!anyEqual(q.Priority, f.Priority) || !anyEqual(q.Category, f.Category) {
		return false
	}
	title := strings.ToLower(f.Title)
	for _, word := range q.Text {
		if !strings.Contains(title, word) {
			return false
		}
	}
	return true
}

func anyEqual(want []string, got string) bool {
	if len(want) == 0 {
		return true
	}
	got = strings.ToLower(got)
	for _, w := range want {
		if w == got {
			return true
		}
	}
	return false
}
