package github

import (
	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
)

// EventSource defines the interface for fetching a user's activity.
type EventSource interface {
	FetchUserEvents(username string) ([]models.RawEvent, error)
	FetchContributions(username string, last int) ([]models.RawEvent, error)
}

// Ensure Client implements EventSource interface
var _ EventSource = (*Client)(nil)
