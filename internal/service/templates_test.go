package service

import (
	"strings"
	"testing"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/github"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
)

func TestTallyEventTypes(t *testing.T) {
	events := []models.RawEvent{
		issueEvent("2024-05-15T10:00:00Z", 1),
		github.RawEventFixture("PushEvent", "c/d", "x", "2024-05-14T10:00:00Z", models.Payload{}),
		issueEvent("2024-05-13T10:00:00Z", 2),
		issueEvent("2024-05-12T10:00:00Z", 3),
	}

	options := TallyEventTypes(events)

	if len(options) != 2 {
		t.Fatalf("got %d options, want 2", len(options))
	}
	if options[0].Type != "issues_opened" || options[0].Count != 3 {
		t.Errorf("options[0] = %+v, want issues_opened with count 3", options[0])
	}
	if options[0].Sample != "a/b" {
		t.Errorf("sample = %q, want repo of first occurrence", options[0].Sample)
	}
	if options[1].Type != "push" || options[1].Count != 1 {
		t.Errorf("options[1] = %+v, want push with count 1", options[1])
	}
}

func TestTallyEventTypes_empty(t *testing.T) {
	if got := TallyEventTypes(nil); len(got) != 0 {
		t.Errorf("expected no options for no events, got %v", got)
	}
}

func TestStarterTemplate(t *testing.T) {
	tests := []struct {
		eventType string
		contains  string
	}{
		{eventType: "issues_opened", contains: "{{ event_type }}"},
		{eventType: "push", contains: "pushed to"},
		{eventType: "issue_commented", contains: "commented on"},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			got := StarterTemplate(tt.eventType)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("StarterTemplate(%q) = %q, want it to contain %q", tt.eventType, got, tt.contains)
			}
		})
	}
}
