package normalize

import (
	"encoding/json"
	"testing"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
)

func rawEvent(t *testing.T, eventType, payload string) models.RawEvent {
	t.Helper()
	return models.RawEvent{
		Type:      eventType,
		Actor:     models.Actor{Login: "octocat"},
		Repo:      models.Repo{Name: "acme/widgets"},
		CreatedAt: "2024-05-01T10:00:00Z",
		Payload:   json.RawMessage(payload),
	}
}

func TestEvent_eventType(t *testing.T) {
	tests := []struct {
		name     string
		rawType  string
		payload  string
		expected string
	}{
		{
			name:     "issues opened",
			rawType:  "IssuesEvent",
			payload:  `{"action": "opened", "issue": {"number": 7}}`,
			expected: "issues_opened",
		},
		{
			name:     "issues closed",
			rawType:  "IssuesEvent",
			payload:  `{"action": "closed", "issue": {"number": 7}}`,
			expected: "issues_closed",
		},
		{
			name:     "merged pull request",
			rawType:  "PullRequestEvent",
			payload:  `{"action": "closed", "pull_request": {"number": 3, "merged": true}}`,
			expected: "pr_merged",
		},
		{
			name:     "closed but unmerged pull request",
			rawType:  "PullRequestEvent",
			payload:  `{"action": "closed", "pull_request": {"number": 3, "merged": false}}`,
			expected: "pr_closed",
		},
		{
			name:     "opened pull request",
			rawType:  "PullRequestEvent",
			payload:  `{"action": "opened", "pull_request": {"number": 3}}`,
			expected: "pr_opened",
		},
		{
			name:     "issue comment",
			rawType:  "IssueCommentEvent",
			payload:  `{"action": "created", "issue": {"number": 9}, "comment": {"html_url": "c"}}`,
			expected: "issue_commented",
		},
		{
			name:     "approved review",
			rawType:  "PullRequestReviewEvent",
			payload:  `{"review": {"state": "APPROVED"}}`,
			expected: "pr_review_approved",
		},
		{
			name:     "review comment",
			rawType:  "PullRequestReviewCommentEvent",
			payload:  `{"comment": {"html_url": "c"}}`,
			expected: "pr_review_comment",
		},
		{
			name:     "push falls back to stripped raw type",
			rawType:  "PushEvent",
			payload:  `{"size": 2}`,
			expected: "push",
		},
		{
			name:     "create falls back to stripped raw type",
			rawType:  "CreateEvent",
			payload:  `{"ref_type": "branch"}`,
			expected: "create",
		},
		{
			name:     "unknown type without Event suffix",
			rawType:  "SomethingNew",
			payload:  `{}`,
			expected: "somethingnew",
		},
		{
			name:     "review without state stays total",
			rawType:  "PullRequestReviewEvent",
			payload:  `{}`,
			expected: "pr_review_",
		},
		{
			name:     "malformed payload does not panic",
			rawType:  "PushEvent",
			payload:  `not json`,
			expected: "push",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Event(rawEvent(t, tt.rawType, tt.payload))
			if got.EventType != tt.expected {
				t.Errorf("EventType = %q, want %q", got.EventType, tt.expected)
			}
			if got.RawType != tt.rawType {
				t.Errorf("RawType = %q, want %q", got.RawType, tt.rawType)
			}
		})
	}
}

func TestEvent_numberAndURL(t *testing.T) {
	tests := []struct {
		name           string
		rawType        string
		payload        string
		expectedNumber int
		expectedURL    string
	}{
		{
			name:           "issue supplies number and url",
			rawType:        "IssuesEvent",
			payload:        `{"action": "opened", "issue": {"number": 7, "html_url": "issue-url"}}`,
			expectedNumber: 7,
			expectedURL:    "issue-url",
		},
		{
			name:           "pull request overwrites issue",
			rawType:        "PullRequestEvent",
			payload:        `{"action": "opened", "issue": {"number": 1, "html_url": "issue-url"}, "pull_request": {"number": 2, "html_url": "pr-url"}}`,
			expectedNumber: 2,
			expectedURL:    "pr-url",
		},
		{
			name:           "comment overwrites url but not number",
			rawType:        "IssueCommentEvent",
			payload:        `{"issue": {"number": 9, "html_url": "issue-url"}, "comment": {"html_url": "comment-url"}}`,
			expectedNumber: 9,
			expectedURL:    "comment-url",
		},
		{
			name:           "comment after pull request",
			rawType:        "PullRequestReviewCommentEvent",
			payload:        `{"pull_request": {"number": 4, "html_url": "pr-url"}, "comment": {"html_url": "comment-url"}}`,
			expectedNumber: 4,
			expectedURL:    "comment-url",
		},
		{
			name:           "no sub-objects leave zero values",
			rawType:        "PushEvent",
			payload:        `{"size": 1}`,
			expectedNumber: 0,
			expectedURL:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Event(rawEvent(t, tt.rawType, tt.payload))
			if got.Number != tt.expectedNumber {
				t.Errorf("Number = %d, want %d", got.Number, tt.expectedNumber)
			}
			if got.URL != tt.expectedURL {
				t.Errorf("URL = %q, want %q", got.URL, tt.expectedURL)
			}
		})
	}
}

func TestEvent_envelope(t *testing.T) {
	e := rawEvent(t, "IssuesEvent", `{"action": "opened", "issue": {"number": 7}}`)
	e.Org = &models.Org{Login: "acme"}

	got := Event(e)

	if got.RepoOwner != "acme" || got.RepoName != "widgets" {
		t.Errorf("repo split = %q/%q, want acme/widgets", got.RepoOwner, got.RepoName)
	}
	if got.Repo != "acme/widgets" {
		t.Errorf("Repo = %q, want acme/widgets", got.Repo)
	}
	if got.Actor != "octocat" {
		t.Errorf("Actor = %q, want octocat", got.Actor)
	}
	if got.Org != "acme" {
		t.Errorf("Org = %q, want acme", got.Org)
	}
	if got.CreatedAt != "2024-05-01T10:00:00Z" {
		t.Errorf("CreatedAt = %q, want original timestamp", got.CreatedAt)
	}
	if got.Payload["action"] != "opened" {
		t.Errorf("Payload[action] = %v, want opened", got.Payload["action"])
	}
	if got.RawEvent["type"] != "IssuesEvent" {
		t.Errorf("RawEvent[type] = %v, want IssuesEvent", got.RawEvent["type"])
	}
}

func TestEvent_missingOrg(t *testing.T) {
	got := Event(rawEvent(t, "PushEvent", `{}`))
	if got.Org != "" {
		t.Errorf("Org = %q, want empty for event without org", got.Org)
	}
}
