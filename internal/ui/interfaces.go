package ui

// EventTypeOption is one selectable event type observed in recent
// activity.
type EventTypeOption struct {
	Type   string // normalized event type
	Count  int    // occurrences in the fetched window
	Sample string // repo of the most recent occurrence
}

// Prompter defines interface for user interaction
type Prompter interface {
	SelectEventType(options []EventTypeOption) (string, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// SelectEventType prompts user to select an event type
func (p *DefaultPrompter) SelectEventType(options []EventTypeOption) (string, error) {
	return SelectEventType(options)
}

// MockPrompter for testing
type MockPrompter struct {
	SelectedType       string
	TypeSelectionError error

	// Call tracking
	SelectEventTypeCalled bool
	LastOptions           []EventTypeOption
}

// SelectEventType mocks event type selection
func (m *MockPrompter) SelectEventType(options []EventTypeOption) (string, error) {
	m.SelectEventTypeCalled = true
	m.LastOptions = options
	return m.SelectedType, m.TypeSelectionError
}
