package agenda

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler fires the daily agenda alert for one producer: at most once per
// (date, alert time) slot it builds the day's summary, delivers a
// notification, and prepares a WhatsApp deep link for manual send. All state
// is instance-owned; tearing the scheduler down and starting a new one
// resets the fired-slot marker.
type Scheduler struct {
	ownerID  int64
	interval time.Duration
	now      func() time.Time

	meetings MeetingSource
	events   EventSource
	settings SettingsSource
	notifier Notifier
	log      zerolog.Logger

	mu            sync.Mutex
	lastFiredSlot string
	pendingLink   string
	cancel        context.CancelFunc
}

// Config carries the optional knobs; zero values mean one-minute ticks on the
// wall clock.
type Config struct {
	OwnerID  int64
	Interval time.Duration
	Now      func() time.Time
}

func NewScheduler(cfg Config, meetings MeetingSource, events EventSource, settings SettingsSource, notifier Notifier, log zerolog.Logger) *Scheduler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Scheduler{
		ownerID:  cfg.OwnerID,
		interval: interval,
		now:      now,
		meetings: meetings,
		events:   events,
		settings: settings,
		notifier: notifier,
		log:      log.With().Str("component", "agenda-scheduler").Int64("owner_id", cfg.OwnerID).Logger(),
	}
}

// Start runs one immediate check and then ticks on the configured interval
// until Stop is called or the context is cancelled. Calling Start on a
// running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	go func() {
		s.Tick(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
}

// Stop tears the timer down. Pending in-memory state other than the
// fired-slot marker survives until the instance is discarded.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Tick performs a single wall-clock check. Exported so tests can drive the
// scheduler with a fake clock instead of waiting out real minutes.
func (s *Scheduler) Tick(ctx context.Context) {
	st := s.settings.Load(ctx, s.ownerID)

	now := s.now()
	if now.Format("15:04") != st.Time {
		return
	}

	date := now.Format("2006-01-02")
	slot := date + "-" + st.Time

	s.mu.Lock()
	if s.lastFiredSlot == slot {
		s.mu.Unlock()
		return
	}
	s.lastFiredSlot = slot
	s.mu.Unlock()

	meetings, err := s.meetings.MeetingsOn(ctx, s.ownerID, date)
	if err != nil {
		s.log.Error().Err(err).Msg("loading today's meetings failed")
	}
	events, err := s.events.EventsOn(ctx, s.ownerID, date)
	if err != nil {
		s.log.Error().Err(err).Msg("loading today's events failed")
	}

	if len(meetings) == 0 && len(events) == 0 {
		return
	}

	sum := BuildSummary(date, meetings, events)
	s.log.Info().
		Int("meetings", sum.MeetingsCount).
		Int("events", sum.EventsCount).
		Str("slot", slot).
		Msg("agenda alert fired")

	if s.notifier != nil && s.notifier.Supported() {
		if err := s.notifier.Notify(ctx, s.ownerID, sum.Title, sum.NotificationBody, ""); err != nil {
			s.log.Warn().Err(err).Msg("notification delivery failed")
		}
	}

	if st.Phone == "" {
		s.setPendingLink("")
		return
	}
	link, ok := BuildChatLink(st.Phone, sum.PhoneMessage)
	if !ok {
		s.log.Warn().Str("phone", st.Phone).Msg("configured phone is unusable, no chat link produced")
		s.setPendingLink("")
		return
	}
	s.setPendingLink(link)
}

// Preview computes today's summary without firing the alert or consuming the
// slot. Returns nil when the day is empty.
func (s *Scheduler) Preview(ctx context.Context) (*Summary, error) {
	date := s.now().Format("2006-01-02")

	meetings, err := s.meetings.MeetingsOn(ctx, s.ownerID, date)
	if err != nil {
		return nil, err
	}
	events, err := s.events.EventsOn(ctx, s.ownerID, date)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 && len(events) == 0 {
		return nil, nil
	}
	return BuildSummary(date, meetings, events), nil
}

// PendingPhoneAlert peeks at the prepared deep link, if any.
func (s *Scheduler) PendingPhoneAlert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLink
}

// TakePendingPhoneAlert returns the prepared deep link and clears it; the
// manual "send" affordance consumes the alert exactly once.
func (s *Scheduler) TakePendingPhoneAlert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	link := s.pendingLink
	s.pendingLink = ""
	return link
}

func (s *Scheduler) setPendingLink(link string) {
	s.mu.Lock()
	s.pendingLink = link
	s.mu.Unlock()
}
