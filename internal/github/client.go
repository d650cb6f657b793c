package github

import (
	"encoding/json"
	"fmt"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
	"github.com/cli/go-gh/v2/pkg/api"
	graphql "github.com/cli/shurcooL-graphql"
)

// Client wraps the GitHub REST and GraphQL API clients.
type Client struct {
	rest api.RESTClient
	gql  api.GraphQLClient
}

// NewClient builds a Client authenticating with the given token.
func NewClient(token string) (*Client, error) {
	opts := api.ClientOptions{AuthToken: token}

	restClient, err := api.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	gqlClient, err := api.NewGraphQLClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	return &Client{
		rest: *restClient,
		gql:  *gqlClient,
	}, nil
}

// FetchUserEvents returns the user's most recent public events (one REST
// call, at most 100 events, no pagination). API error responses and
// non-event bodies surface as errors.
func (c *Client) FetchUserEvents(username string) ([]models.RawEvent, error) {
	path := fmt.Sprintf("users/%s/events?per_page=100", username)
	var events []models.RawEvent
	if err := c.rest.Get(path, &events); err != nil {
		return nil, fmt.Errorf("failed to fetch events for %s: %w", username, err)
	}
	return events, nil
}

type contributionRepo struct {
	NameWithOwner string
}

// FetchContributions queries the user's contribution collection (issue,
// issue comment, pull request, review and review comment contributions,
// each limited to the last entries) and synthesizes provider-tagged raw
// events so the normalizer sees one shape regardless of source.
func (c *Client) FetchContributions(username string, last int) ([]models.RawEvent, error) {
	var q struct {
		User struct {
			ContributionsCollection struct {
				IssueContributions struct {
					Nodes []struct {
						OccurredAt string
						Issue      struct {
							Number     int
							URL        string
							Closed     bool
							Repository contributionRepo
						}
					}
				} `graphql:"issueContributions(last: $last)"`
				IssueCommentContributions struct {
					Nodes []struct {
						OccurredAt string
						Comment    struct {
							URL   string
							Issue struct {
								Number     int
								URL        string
								Repository contributionRepo
							}
						}
					}
				} `graphql:"issueCommentContributions(last: $last)"`
				PullRequestContributions struct {
					Nodes []struct {
						OccurredAt  string
						PullRequest struct {
							Number     int
							URL        string
							Closed     bool
							Merged     bool
							Repository contributionRepo
						}
					}
				} `graphql:"pullRequestContributions(last: $last)"`
				PullRequestReviewContributions struct {
					Nodes []struct {
						OccurredAt        string
						PullRequestReview struct {
							State       string
							URL         string
							PullRequest struct {
								Number     int
								URL        string
								Repository contributionRepo
							}
						}
					}
				} `graphql:"pullRequestReviewContributions(last: $last)"`
				PullRequestReviewCommentContributions struct {
					Nodes []struct {
						OccurredAt string
						Comment    struct {
							URL         string
							PullRequest struct {
								Number     int
								URL        string
								Repository contributionRepo
							}
						}
					}
				} `graphql:"pullRequestReviewCommentContributions(last: $last)"`
			}
		} `graphql:"user(login: $login)"`
	}

	variables := map[string]interface{}{
		"login": graphql.String(username),
		"last":  graphql.Int(last),
	}

	if err := c.gql.Query("", &q, variables); err != nil {
		return nil, fmt.Errorf("failed to fetch contributions for %s: %w", username, err)
	}

	cc := q.User.ContributionsCollection
	var events []models.RawEvent

	for _, n := range cc.IssueContributions.Nodes {
		action := "opened"
		if n.Issue.Closed {
			action = "closed"
		}
		events = append(events, SynthesizeEvent("IssuesEvent", n.Issue.Repository.NameWithOwner, username, n.OccurredAt, models.Payload{
			Action: action,
			Issue:  &models.Issue{Number: n.Issue.Number, HTMLURL: n.Issue.URL},
		}))
	}
	for _, n := range cc.IssueCommentContributions.Nodes {
		events = append(events, SynthesizeEvent("IssueCommentEvent", n.Comment.Issue.Repository.NameWithOwner, username, n.OccurredAt, models.Payload{
			Action:  "created",
			Issue:   &models.Issue{Number: n.Comment.Issue.Number, HTMLURL: n.Comment.Issue.URL},
			Comment: &models.Comment{HTMLURL: n.Comment.URL},
		}))
	}
	for _, n := range cc.PullRequestContributions.Nodes {
		action := "opened"
		if n.PullRequest.Closed || n.PullRequest.Merged {
			action = "closed"
		}
		events = append(events, SynthesizeEvent("PullRequestEvent", n.PullRequest.Repository.NameWithOwner, username, n.OccurredAt, models.Payload{
			Action:      action,
			PullRequest: &models.PullRequest{Number: n.PullRequest.Number, HTMLURL: n.PullRequest.URL, Merged: n.PullRequest.Merged},
		}))
	}
	for _, n := range cc.PullRequestReviewContributions.Nodes {
		r := n.PullRequestReview
		events = append(events, SynthesizeEvent("PullRequestReviewEvent", r.PullRequest.Repository.NameWithOwner, username, n.OccurredAt, models.Payload{
			Review:      &models.Review{State: r.State, HTMLURL: r.URL},
			PullRequest: &models.PullRequest{Number: r.PullRequest.Number, HTMLURL: r.PullRequest.URL},
		}))
	}
	for _, n := range cc.PullRequestReviewCommentContributions.Nodes {
		events = append(events, SynthesizeEvent("PullRequestReviewCommentEvent", n.Comment.PullRequest.Repository.NameWithOwner, username, n.OccurredAt, models.Payload{
			Action:      "created",
			PullRequest: &models.PullRequest{Number: n.Comment.PullRequest.Number, HTMLURL: n.Comment.PullRequest.URL},
			Comment:     &models.Comment{HTMLURL: n.Comment.URL},
		}))
	}

	return events, nil
}

// SynthesizeEvent shapes a contribution into the events-API envelope.
func SynthesizeEvent(eventType, repoName, username, occurredAt string, p models.Payload) models.RawEvent {
	payload, err := json.Marshal(p)
	if err != nil {
		payload = []byte("{}")
	}
	return models.RawEvent{
		Type:      eventType,
		Actor:     models.Actor{Login: username},
		Repo:      models.Repo{Name: repoName},
		CreatedAt: occurredAt,
		Payload:   payload,
	}
}
