package agenda

import (
	"fmt"
	"sort"
	"strings"

	"weddingdesk/internal/domain"
)

// Summary is the derived daily agenda. It is computed fresh on every firing
// and never persisted.
type Summary struct {
	Title            string `json:"title"`
	NotificationBody string `json:"notification_body"`
	PhoneMessage     string `json:"phone_message"`
	MeetingsCount    int    `json:"meetings_count"`
	EventsCount      int    `json:"events_count"`
}

// BuildSummary renders the agenda for one local calendar date. Meetings are
// listed in ascending time order, then events. Inputs are assumed to be
// pre-filtered to the given date.
func BuildSummary(date string, meetings []domain.Meeting, events []domain.Event) *Summary {
	sorted := make([]domain.Meeting, len(meetings))
	copy(sorted, meetings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	s := &Summary{
		Title:         fmt.Sprintf("Today's agenda (%s)", date),
		MeetingsCount: len(sorted),
		EventsCount:   len(events),
	}
	s.NotificationBody = fmt.Sprintf("%s, %s today",
		countLabel(s.MeetingsCount, "meeting"),
		countLabel(s.EventsCount, "event"))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Title)

	if len(sorted) > 0 {
		b.WriteString("\nMeetings:\n")
		for _, m := range sorted {
			fmt.Fprintf(&b, "- %s %s", m.Time, m.CoupleName)
			if m.Location != "" {
				fmt.Fprintf(&b, " @ %s", m.Location)
			}
			b.WriteString("\n")
		}
	}

	if len(events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, e := range events {
			fmt.Fprintf(&b, "- %s", e.CoupleName)
			if e.Hall != "" {
				fmt.Fprintf(&b, " @ %s", e.Hall)
			}
			b.WriteString("\n")
		}
	}

	s.PhoneMessage = strings.TrimRight(b.String(), "\n")
	return s
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
