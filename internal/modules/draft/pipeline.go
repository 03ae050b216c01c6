// Package draft keeps half-finished questionnaire forms in the local device
// store so a producer can close the editor and pick up where they left off.
// Drafts live next to, not inside, the saved event record: the event row is
// only touched on an explicit save.
package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"weddingdesk/internal/storage"

	"github.com/rs/zerolog"
)

// SupplierForm mirrors one supplier row of the questionnaire. Numeric fields
// stay as the display strings the producer typed; parsing happens on the
// final save, not while drafting.
type SupplierForm struct {
	Role         string `json:"role"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Hours        string `json:"hours"`
	TotalPayment string `json:"total_payment"`
	Deposit      string `json:"deposit"`
}

// Draft is a full snapshot of the questionnaire state. Every autosave
// rewrites the whole snapshot.
type Draft struct {
	Form        map[string]string `json:"form"`
	Suppliers   []SupplierForm    `json:"suppliers"`
	CurrentStep int               `json:"current_step"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewDraftKey is the producer's slot for a questionnaire that has no event
// record yet.
func NewDraftKey(ownerID int64) string {
	return fmt.Sprintf("draft:%d:new", ownerID)
}

// EventDraftKey is the producer's slot for edits to an existing event.
func EventDraftKey(ownerID, eventID int64) string {
	return fmt.Sprintf("draft:%d:event:%d", ownerID, eventID)
}

// Store reads and writes drafts in the local device store.
type Store struct {
	kv  *storage.KV
	log zerolog.Logger
}

func NewStore(kv *storage.KV, log zerolog.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log.With().Str("component", "draft-store").Logger(),
	}
}

// Open restores the draft under key on top of baseline. Draft values win per
// form field; a non-empty drafted supplier list replaces the baseline list
// wholesale; the restored step is clamped to [0, totalSteps-1]. A missing or
// unparsable draft leaves the baseline untouched, and a corrupt entry is
// discarded so it cannot shadow future saves.
func (s *Store) Open(key string, baseline Draft, totalSteps int) Draft {
	out := baseline
	out.Form = make(map[string]string, len(baseline.Form))
	for k, v := range baseline.Form {
		out.Form[k] = v
	}

	raw, err := s.kv.Get(key)
	if err != nil {
		out.CurrentStep = clampStep(out.CurrentStep, totalSteps)
		return out
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("corrupt draft discarded")
		_ = s.kv.Remove(key)
		out.CurrentStep = clampStep(out.CurrentStep, totalSteps)
		return out
	}

	for k, v := range d.Form {
		out.Form[k] = v
	}
	if len(d.Suppliers) > 0 {
		out.Suppliers = d.Suppliers
	}
	out.CurrentStep = clampStep(d.CurrentStep, totalSteps)
	out.UpdatedAt = d.UpdatedAt
	return out
}

// Autosave persists the draft. Storage failures are logged and swallowed: a
// full disk must not block typing.
func (s *Store) Autosave(key string, d Draft) {
	d.UpdatedAt = time.Now()

	data, err := json.Marshal(d)
	if err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("draft encode failed")
		return
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("draft autosave failed")
	}
}

// Discard removes the draft. Called after a successful final save, never on
// intermediate saves.
func (s *Store) Discard(key string) {
	if err := s.kv.Remove(key); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("draft discard failed")
	}
}

func clampStep(step, totalSteps int) int {
	if totalSteps <= 0 {
		return 0
	}
	if step < 0 {
		return 0
	}
	if step > totalSteps-1 {
		return totalSteps - 1
	}
	return step
}
