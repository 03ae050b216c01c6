package agenda

import (
	"context"
	"sync"
	"testing"
	"time"

	"weddingdesk/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests drive the scheduler minute by minute.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

type stubMeetings struct {
	byDate map[string][]domain.Meeting
	err    error
}

func (s *stubMeetings) MeetingsOn(_ context.Context, _ int64, date string) ([]domain.Meeting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byDate[date], nil
}

type stubEvents struct {
	byDate map[string][]domain.Event
}

func (s *stubEvents) EventsOn(_ context.Context, _ int64, date string) ([]domain.Event, error) {
	return s.byDate[date], nil
}

type stubSettings struct {
	settings domain.AlertSettings
}

func (s *stubSettings) Load(_ context.Context, ownerID int64) domain.AlertSettings {
	out := s.settings
	out.OwnerID = ownerID
	return out
}

type countingNotifier struct {
	mu    sync.Mutex
	calls int
	last  string
}

func (n *countingNotifier) Supported() bool { return true }

func (n *countingNotifier) Notify(_ context.Context, _ int64, title, body, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.last = body
	return nil
}

func (n *countingNotifier) Calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

func newTestScheduler(clock *fakeClock, meetings MeetingSource, events EventSource, settings SettingsSource, notifier Notifier) *Scheduler {
	return NewScheduler(Config{
		OwnerID: 7,
		Now:     clock.Now,
	}, meetings, events, settings, notifier, zerolog.Nop())
}

func TestScheduler_FiresAtMostOncePerSlot(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 6, 15, 8, 0, 5, 0, time.Local))

	meetings := &stubMeetings{byDate: map[string][]domain.Meeting{
		"2026-06-15": {{Time: "09:00", CoupleName: "Noa & Yonatan"}},
	}}
	events := &stubEvents{byDate: map[string][]domain.Event{}}
	notifier := &countingNotifier{}
	s := newTestScheduler(clock, meetings, events, &stubSettings{
		settings: domain.AlertSettings{Time: "08:00", Phone: "0501234567"},
	}, notifier)

	// Several ticks land in the same wall-clock minute.
	s.Tick(context.Background())
	s.Tick(context.Background())
	clock.Set(clock.Now().Add(20 * time.Second))
	s.Tick(context.Background())

	assert.Equal(t, 1, notifier.Calls())

	// Next day, same time: a new slot fires again.
	clock.Set(time.Date(2026, 6, 16, 8, 0, 0, 0, time.Local))
	meetings.byDate["2026-06-16"] = []domain.Meeting{{Time: "10:00", CoupleName: "Dana & Omer"}}
	s.Tick(context.Background())

	assert.Equal(t, 2, notifier.Calls())
}

func TestScheduler_DoesNothingOffTheConfiguredMinute(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 6, 15, 8, 1, 0, 0, time.Local))
	notifier := &countingNotifier{}
	s := newTestScheduler(clock,
		&stubMeetings{byDate: map[string][]domain.Meeting{
			"2026-06-15": {{Time: "09:00", CoupleName: "Noa & Yonatan"}},
		}},
		&stubEvents{byDate: map[string][]domain.Event{}},
		&stubSettings{settings: domain.AlertSettings{Time: "08:00"}},
		notifier)

	s.Tick(context.Background())
	assert.Equal(t, 0, notifier.Calls())
}

func TestScheduler_EmptyDayDoesNotFire(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local))
	notifier := &countingNotifier{}
	s := newTestScheduler(clock,
		&stubMeetings{byDate: map[string][]domain.Meeting{}},
		&stubEvents{byDate: map[string][]domain.Event{}},
		&stubSettings{settings: domain.AlertSettings{Time: "08:00", Phone: "0501234567"}},
		notifier)

	s.Tick(context.Background())

	assert.Equal(t, 0, notifier.Calls())
	assert.Empty(t, s.PendingPhoneAlert())
}

func TestScheduler_PreparesAndConsumesPhoneAlert(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local))
	s := newTestScheduler(clock,
		&stubMeetings{byDate: map[string][]domain.Meeting{
			"2026-06-15": {{Time: "09:00", CoupleName: "Noa & Yonatan", Location: "Cafe Greg"}},
		}},
		&stubEvents{byDate: map[string][]domain.Event{}},
		&stubSettings{settings: domain.AlertSettings{Time: "08:00", Phone: "0501234567"}},
		&countingNotifier{})

	s.Tick(context.Background())

	link := s.PendingPhoneAlert()
	assert.Contains(t, link, "https://wa.me/972501234567?text=")
	assert.Contains(t, link, "Noa")

	// Consuming clears the alert.
	assert.Equal(t, link, s.TakePendingPhoneAlert())
	assert.Empty(t, s.PendingPhoneAlert())
}

func TestScheduler_NoPhoneClearsPendingAlert(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local))
	settings := &stubSettings{settings: domain.AlertSettings{Time: "08:00", Phone: "0501234567"}}
	meetings := &stubMeetings{byDate: map[string][]domain.Meeting{
		"2026-06-15": {{Time: "09:00", CoupleName: "Noa & Yonatan"}},
		"2026-06-16": {{Time: "11:00", CoupleName: "Shir & Tom"}},
	}}
	s := newTestScheduler(clock, meetings, &stubEvents{byDate: map[string][]domain.Event{}}, settings, &countingNotifier{})

	s.Tick(context.Background())
	assert.NotEmpty(t, s.PendingPhoneAlert())

	// Phone removed before the next day's firing: pending link is cleared.
	settings.settings.Phone = ""
	clock.Set(time.Date(2026, 6, 16, 8, 0, 0, 0, time.Local))
	s.Tick(context.Background())
	assert.Empty(t, s.PendingPhoneAlert())
}

func TestScheduler_UnusablePhoneProducesNoLink(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local))
	s := newTestScheduler(clock,
		&stubMeetings{byDate: map[string][]domain.Meeting{
			"2026-06-15": {{Time: "09:00", CoupleName: "Noa & Yonatan"}},
		}},
		&stubEvents{byDate: map[string][]domain.Event{}},
		&stubSettings{settings: domain.AlertSettings{Time: "08:00", Phone: "123"}},
		&countingNotifier{})

	s.Tick(context.Background())
	assert.Empty(t, s.PendingPhoneAlert())
}

func TestScheduler_NewInstanceResetsFiredSlot(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local))
	meetings := &stubMeetings{byDate: map[string][]domain.Meeting{
		"2026-06-15": {{Time: "09:00", CoupleName: "Noa & Yonatan"}},
	}}
	events := &stubEvents{byDate: map[string][]domain.Event{}}
	settings := &stubSettings{settings: domain.AlertSettings{Time: "08:00"}}

	first := &countingNotifier{}
	s1 := newTestScheduler(clock, meetings, events, settings, first)
	s1.Tick(context.Background())
	assert.Equal(t, 1, first.Calls())

	// Teardown and remount within the same minute: the fired-slot marker is
	// in-memory only, so the fresh instance fires again.
	second := &countingNotifier{}
	s2 := newTestScheduler(clock, meetings, events, settings, second)
	s2.Tick(context.Background())
	assert.Equal(t, 1, second.Calls())
}
