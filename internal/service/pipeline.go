package service

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/config"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/format"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/github"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/models"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/normalize"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/patch"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/template"
)

// ActivityService runs the fetch → normalize → sort → dedupe → filter →
// truncate → render → patch pipeline.
type ActivityService struct {
	source github.EventSource
	cfg    *config.Config
	now    func() time.Time
	warn   io.Writer
}

// NewActivityService creates a new service instance
func NewActivityService(source github.EventSource, cfg *config.Config, now func() time.Time, warn io.Writer) *ActivityService {
	return &ActivityService{
		source: source,
		cfg:    cfg,
		now:    now,
		warn:   warn,
	}
}

// Run builds the activity block and patches it into the configured
// document. It reports whether the document changed; a false result with a
// nil error is the no-change outcome.
func (s *ActivityService) Run() (bool, error) {
	block, err := s.BuildBlock()
	if err != nil {
		return false, err
	}
	return patch.UpdateFile(s.cfg.ResolveReadmePath(), block)
}

// BuildBlock produces the marker-bounded markdown block for the user's
// recent activity. Nothing is written; all fatal conditions surface here
// before any file I/O.
func (s *ActivityService) BuildBlock() (string, error) {
	if err := s.cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}

	raw, err := s.fetch()
	if err != nil {
		return "", err
	}

	loc := format.Location(s.cfg.Timezone, s.warn)
	now := s.now()

	events := make([]models.ActivityEvent, 0, len(raw))
	for _, e := range raw {
		ev := normalize.Event(e)
		ev.HumanDate = format.Relative(ev.CreatedAt, loc, now)
		events = append(events, ev)
	}

	sortByRecency(events)

	// Contribution-sourced events are synthesized and can collide on their
	// rendered text; keep only the most recent of each collision.
	if s.cfg.Source == config.SourceGraphQL {
		events, err = s.dedupe(events)
		if err != nil {
			return "", err
		}
	}

	selected := truncate(filterByTemplate(events, s.cfg.Templates), s.cfg.MaxItems)

	lines := make([]string, 0, len(selected))
	for i, ev := range selected {
		tpl, _ := lookupTemplate(s.cfg.Templates, ev)
		line, err := template.Render(tpl, bindings(ev, i+1, len(selected)))
		if err != nil {
			return "", fmt.Errorf("failed to render %s event: %w", ev.EventType, err)
		}
		lines = append(lines, line)
	}

	parts := make([]string, 0, len(lines)+2)
	parts = append(parts, patch.StartMarker)
	parts = append(parts, lines...)
	parts = append(parts, patch.EndMarker)
	return strings.Join(parts, "\n"), nil
}

func (s *ActivityService) fetch() ([]models.RawEvent, error) {
	if s.cfg.Source == config.SourceGraphQL {
		return s.source.FetchContributions(s.cfg.Username, s.cfg.MaxItems)
	}
	return s.source.FetchUserEvents(s.cfg.Username)
}

// dedupe drops events whose rendered text duplicates an earlier one. The
// input is sorted most-recent-first, so keeping the first occurrence keeps
// the most recent. The key is rendered with neutral index/total bindings
// so position cannot defeat deduplication; events with no template pass
// through (the filter removes them anyway).
func (s *ActivityService) dedupe(events []models.ActivityEvent) ([]models.ActivityEvent, error) {
	seen := make(map[string]struct{}, len(events))
	out := make([]models.ActivityEvent, 0, len(events))
	for _, ev := range events {
		tpl, ok := lookupTemplate(s.cfg.Templates, ev)
		if !ok {
			out = append(out, ev)
			continue
		}
		key, err := template.Render(tpl, bindings(ev, 0, 0))
		if err != nil {
			return nil, fmt.Errorf("failed to render %s event: %w", ev.EventType, err)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ev)
	}
	return out, nil
}

// sortByRecency orders events most recent first. The sort is stable: ties
// and unparseable timestamps keep their input order.
func sortByRecency(events []models.ActivityEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return eventTime(events[i]).After(eventTime(events[j]))
	})
}

func eventTime(ev models.ActivityEvent) time.Time {
	t, err := time.Parse(time.RFC3339, ev.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// lookupTemplate resolves the template for an event. A present event_type
// key is authoritative even when blank; only an absent key falls through
// to raw_type. Blank templates mean "suppress this event type".
func lookupTemplate(templates map[string]string, ev models.ActivityEvent) (string, bool) {
	if tpl, ok := templates[ev.EventType]; ok {
		return tpl, strings.TrimSpace(tpl) != ""
	}
	if tpl, ok := templates[ev.RawType]; ok {
		return tpl, strings.TrimSpace(tpl) != ""
	}
	return "", false
}

func filterByTemplate(events []models.ActivityEvent, templates map[string]string) []models.ActivityEvent {
	out := make([]models.ActivityEvent, 0, len(events))
	for _, ev := range events {
		if _, ok := lookupTemplate(templates, ev); ok {
			out = append(out, ev)
		}
	}
	return out
}

func truncate(events []models.ActivityEvent, max int) []models.ActivityEvent {
	if max > 0 && len(events) > max {
		return events[:max]
	}
	return events
}

// bindings exposes an event to its template. Every field is present even
// when the source event lacked it, so templates never hit an unknown
// variable for the documented names.
func bindings(ev models.ActivityEvent, index, total int) map[string]any {
	return map[string]any{
		"index":       index,
		"total_count": total,
		"human_date":  ev.HumanDate,
		"raw_type":    ev.RawType,
		"event_type":  ev.EventType,
		"created_at":  ev.CreatedAt,
		"repo_owner":  ev.RepoOwner,
		"repo_name":   ev.RepoName,
		"repo":        ev.Repo,
		"actor":       ev.Actor,
		"org":         ev.Org,
		"number":      ev.Number,
		"url":         ev.URL,
		"payload":     ev.Payload,
		"raw_event":   ev.RawEvent,
	}
}
