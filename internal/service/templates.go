package service

import (
	"sort"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/normalize"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/ui"
)

// TallyEventTypes counts the normalized event types in a batch of raw
// events, most frequent first. Events are already sorted most recent
// first by the API, so the first occurrence supplies the sample repo.
func TallyEventTypes(raw []models.RawEvent) []ui.EventTypeOption {
	counts := make(map[string]*ui.EventTypeOption)
	order := make([]string, 0)
	for _, e := range raw {
		ev := normalize.Event(e)
		opt, ok := counts[ev.EventType]
		if !ok {
			opt = &ui.EventTypeOption{Type: ev.EventType, Sample: ev.Repo}
			counts[ev.EventType] = opt
			order = append(order, ev.EventType)
		}
		opt.Count++
	}

	options := make([]ui.EventTypeOption, 0, len(order))
	for _, t := range order {
		options = append(options, *counts[t])
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Count > options[j].Count
	})
	return options
}

// StarterTemplate suggests a first template for an event type.
func StarterTemplate(eventType string) string {
	switch eventType {
	case "issue_commented", "pr_review_comment":
		return "- {{ human_date }} commented on [{{ repo }}#{{ number }}]({{ url }})"
	case "push":
		return "- {{ human_date }} pushed to {{ repo }}"
	default:
		return "- {{ human_date }} {{ event_type }} [{{ repo }}#{{ number }}]({{ url }})"
	}
}
