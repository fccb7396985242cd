package util

import (
	"reflect"
	"testing"
)

func TestParseSearchQuery(t *testing.T) {
	query := "status:Missed type:conflict priority:high category:work Client Call"
	got := ParseSearchQuery(query)

	if !reflect.DeepEqual(got.Status, []string{"missed"}) {
		t.Fatalf("Status = %v, want %v", got.Status, []string{"missed"})
	}
	if !reflect.DeepEqual(got.Type, []string{"conflict"}) {
		t.Fatalf("Type = %v, want %v", got.Type, []string{"conflict"})
	}
	if !reflect.DeepEqual(got.Priority, []string{"high"}) {
		t.Fatalf("Priority = %v, want %v", got.Priority, []string{"high"})
	}
	if !reflect.DeepEqual(got.Category, []string{"work"}) {
		t.Fatalf("Category = %v, want %v", got.Category, []string{"work"})
	}
	if !reflect.DeepEqual(got.Text, []string{"client", "call"}) {
		t.Fatalf("Text = %v, want %v", got.Text, []string{"client", "call"})
	}
}

func TestSearchQueryMatches(t *testing.T) {
	fields := SearchFields{Title: "Client call - Product demo", Status: "pending", Type: "missed", Priority: "high"}
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"type:missed", true},
		{"type:reminder type:missed", true},
		{"type:conflict", false},
		{"priority:high demo", true},
		{"priority:high gym", false},
		{"category:work", false},
	}
	for _, tt := range tests {
		if got := ParseSearchQuery(tt.query).Matches(fields); got != tt.want {
			t.Fatalf("%q: Matches = %v, want %v", tt.query, got, tt.want)
		}
	}
}
