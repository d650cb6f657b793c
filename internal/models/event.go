package models

import "encoding/json"

// Actor is the user who performed an event.
type Actor struct {
	Login string `json:"login"`
}

// Repo identifies the repository an event happened in, as "owner/name".
type Repo struct {
	Name string `json:"name"`
}

// Org is the organization an event belongs to, when it has one.
type Org struct {
	Login string `json:"login"`
}

// Issue carries the issue sub-object fields the pipeline needs.
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title,omitempty"`
	HTMLURL string `json:"html_url"`
}

// PullRequest carries the pull_request sub-object fields the pipeline needs.
type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title,omitempty"`
	HTMLURL string `json:"html_url"`
	Merged  bool   `json:"merged,omitempty"`
}

// Comment is an issue or review comment sub-object.
type Comment struct {
	HTMLURL string `json:"html_url"`
}

// Review is a pull request review sub-object.
type Review struct {
	State   string `json:"state"`
	HTMLURL string `json:"html_url,omitempty"`
}

// Payload is the typed view of an event payload. Only the fields the
// normalizer consults are modeled; every sub-object is optional because
// the shape varies by event type.
type Payload struct {
	Action      string       `json:"action,omitempty"`
	Issue       *Issue       `json:"issue,omitempty"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
	Comment     *Comment     `json:"comment,omitempty"`
	Review      *Review      `json:"review,omitempty"`
}

// RawEvent is one provider event as returned by the events API. Payload is
// kept as raw JSON so templates can reach into fields the typed view does
// not model.
type RawEvent struct {
	Type      string          `json:"type"`
	Actor     Actor           `json:"actor"`
	Repo      Repo            `json:"repo"`
	Org       *Org            `json:"org,omitempty"`
	CreatedAt string          `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

// ActivityEvent is the canonical record produced by the normalizer. Zero
// values stand in for fields the source event did not carry (Org, Number,
// URL); templates must render cleanly either way.
type ActivityEvent struct {
	RawType   string
	EventType string
	CreatedAt string
	RepoOwner string
	RepoName  string
	Repo      string
	Actor     string
	Org       string
	Number    int
	URL       string
	Payload   map[string]any
	RawEvent  map[string]any
	HumanDate string
}
