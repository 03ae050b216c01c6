package agenda

import (
	"strings"
	"testing"

	"weddingdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary_MeetingsAscendingThenEvents(t *testing.T) {
	meetings := []domain.Meeting{
		{Time: "14:00", CoupleName: "Dana & Omer", Location: "Office"},
		{Time: "09:00", CoupleName: "Noa & Yonatan", Location: "Cafe Greg"},
	}
	events := []domain.Event{
		{CoupleName: "Shir & Tom", Hall: "Hall Aurora"},
	}

	sum := BuildSummary("2026-06-15", meetings, events)

	assert.Equal(t, 2, sum.MeetingsCount)
	assert.Equal(t, 1, sum.EventsCount)
	assert.Equal(t, "2 meetings, 1 event today", sum.NotificationBody)

	msg := sum.PhoneMessage
	first := strings.Index(msg, "09:00 Noa & Yonatan")
	second := strings.Index(msg, "14:00 Dana & Omer")
	event := strings.Index(msg, "Shir & Tom @ Hall Aurora")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, event)
	assert.Less(t, first, second, "meetings must be listed in ascending time order")
	assert.Less(t, second, event, "events must follow the meetings section")
}

func TestBuildSummary_DoesNotMutateInput(t *testing.T) {
	meetings := []domain.Meeting{
		{Time: "14:00", CoupleName: "B"},
		{Time: "09:00", CoupleName: "A"},
	}
	BuildSummary("2026-06-15", meetings, nil)
	assert.Equal(t, "14:00", meetings[0].Time)
}

func TestBuildSummary_OmitsEmptySections(t *testing.T) {
	sum := BuildSummary("2026-06-15", nil, []domain.Event{{CoupleName: "Shir & Tom"}})
	assert.NotContains(t, sum.PhoneMessage, "Meetings:")
	assert.Contains(t, sum.PhoneMessage, "Events:")
	assert.Equal(t, "0 meetings, 1 event today", sum.NotificationBody)
}
