package github

import (
	"encoding/json"
	"fmt"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
)

// MockSource implements EventSource for testing
type MockSource struct {
	// Control test behavior
	Events             []models.RawEvent
	EventsError        error
	Contributions      []models.RawEvent
	ContributionsError error

	// Track method calls
	FetchUserEventsCalled    bool
	FetchContributionsCalled bool

	// Store call arguments for verification
	LastUsername string
	LastCount    int
}

// FetchUserEvents mocks the REST events call
func (m *MockSource) FetchUserEvents(username string) ([]models.RawEvent, error) {
	m.FetchUserEventsCalled = true
	m.LastUsername = username
	return m.Events, m.EventsError
}

// FetchContributions mocks the GraphQL contributions call
func (m *MockSource) FetchContributions(username string, last int) ([]models.RawEvent, error) {
	m.FetchContributionsCalled = true
	m.LastUsername = username
	m.LastCount = last
	return m.Contributions, m.ContributionsError
}

// Reset clears all tracking data for fresh test
func (m *MockSource) Reset() {
	m.FetchUserEventsCalled = false
	m.FetchContributionsCalled = false
	m.LastUsername = ""
	m.LastCount = 0
}

// Ensure MockSource implements EventSource interface
var _ EventSource = (*MockSource)(nil)

// RawEventFixture builds a raw event with the given payload for tests.
func RawEventFixture(eventType, repoName, actor, createdAt string, payload models.Payload) models.RawEvent {
	b, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal payload fixture: %v", err))
	}
	return models.RawEvent{
		Type:      eventType,
		Actor:     models.Actor{Login: actor},
		Repo:      models.Repo{Name: repoName},
		CreatedAt: createdAt,
		Payload:   b,
	}
}

// Error helpers for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}

func NewNetworkError() error {
	return fmt.Errorf("network connection failed")
}
