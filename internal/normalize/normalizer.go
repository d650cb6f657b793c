package normalize

import (
	"encoding/json"
	"strings"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
)

// Event maps one raw provider event to its canonical form. It is total:
// malformed or missing payload fields degrade to zero values, never an
// error.
func Event(e models.RawEvent) models.ActivityEvent {
	var p models.Payload
	// Tolerate payloads that do not decode; the typed view stays empty.
	_ = json.Unmarshal(e.Payload, &p)

	owner, name, _ := strings.Cut(e.Repo.Name, "/")

	var number int
	var url string
	// Issue is the baseline; a pull_request sub-object overwrites both
	// fields, and a comment sub-object overwrites the URL only.
	if p.Issue != nil {
		number = p.Issue.Number
		url = p.Issue.HTMLURL
	}
	if p.PullRequest != nil {
		number = p.PullRequest.Number
		url = p.PullRequest.HTMLURL
	}
	if p.Comment != nil {
		url = p.Comment.HTMLURL
	}

	var org string
	if e.Org != nil {
		org = e.Org.Login
	}

	return models.ActivityEvent{
		RawType:   e.Type,
		EventType: eventType(e.Type, p),
		CreatedAt: e.CreatedAt,
		RepoOwner: owner,
		RepoName:  name,
		Repo:      e.Repo.Name,
		Actor:     e.Actor.Login,
		Org:       org,
		Number:    number,
		URL:       url,
		Payload:   decodeMap(e.Payload),
		RawEvent:  rawEventMap(e),
	}
}

// eventType derives the normalized tag. First match wins; unknown types
// fall back to the raw tag lowercased with a trailing "Event" stripped.
func eventType(rawType string, p models.Payload) string {
	switch rawType {
	case "IssuesEvent":
		return "issues_" + p.Action
	case "PullRequestEvent":
		if p.Action == "closed" && p.PullRequest != nil && p.PullRequest.Merged {
			return "pr_merged"
		}
		return "pr_" + p.Action
	case "IssueCommentEvent":
		return "issue_commented"
	case "PullRequestReviewEvent":
		state := ""
		if p.Review != nil {
			state = strings.ToLower(p.Review.State)
		}
		return "pr_review_" + state
	case "PullRequestReviewCommentEvent":
		return "pr_review_comment"
	default:
		return strings.ToLower(strings.TrimSuffix(rawType, "Event"))
	}
}

// decodeMap exposes a JSON object as a map for template deep access.
func decodeMap(raw json.RawMessage) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// rawEventMap rebuilds the full event as a map so templates can reach any
// field of the original record.
func rawEventMap(e models.RawEvent) map[string]any {
	b, err := json.Marshal(e)
	if err != nil {
		return map[string]any{}
	}
	return decodeMap(b)
}
