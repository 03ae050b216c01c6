package draft

import (
	"path/filepath"
	"testing"

	"weddingdesk/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const totalSteps = 4

func newStore(t *testing.T) (*Store, *storage.KV) {
	kv, err := storage.Open(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)
	return NewStore(kv, zerolog.Nop()), kv
}

func TestDraft_RoundTripRestoresStepAndFields(t *testing.T) {
	s, _ := newStore(t)
	key := EventDraftKey(7, 42)

	s.Autosave(key, Draft{
		Form:        map[string]string{"couple_name": "Noa & Yonatan", "hall": "Aurora"},
		Suppliers:   []SupplierForm{{Role: "DJ", Name: "Amit", TotalPayment: "1,500"}},
		CurrentStep: 2,
	})

	got := s.Open(key, Draft{Form: map[string]string{"couple_name": "old"}}, totalSteps)

	assert.Equal(t, 2, got.CurrentStep)
	assert.Equal(t, "Noa & Yonatan", got.Form["couple_name"])
	assert.Equal(t, "Aurora", got.Form["hall"])
	require.Len(t, got.Suppliers, 1)
	assert.Equal(t, "1,500", got.Suppliers[0].TotalPayment)
}

func TestDraft_MergeKeepsBaselineFieldsDraftDidNotTouch(t *testing.T) {
	s, _ := newStore(t)
	key := EventDraftKey(7, 42)

	s.Autosave(key, Draft{Form: map[string]string{"hall": "Aurora"}})

	baseline := Draft{Form: map[string]string{
		"couple_name": "Noa & Yonatan",
		"hall":        "Old Hall",
	}}
	got := s.Open(key, baseline, totalSteps)

	assert.Equal(t, "Noa & Yonatan", got.Form["couple_name"], "baseline field survives")
	assert.Equal(t, "Aurora", got.Form["hall"], "drafted field wins")
	assert.Equal(t, "Old Hall", baseline.Form["hall"], "baseline map not mutated")
}

func TestDraft_EmptySupplierListDoesNotEraseBaseline(t *testing.T) {
	s, _ := newStore(t)
	key := EventDraftKey(7, 42)

	s.Autosave(key, Draft{Form: map[string]string{"hall": "Aurora"}})

	baseline := Draft{Suppliers: []SupplierForm{{Role: "Catering", Name: "Tavlin"}}}
	got := s.Open(key, baseline, totalSteps)

	require.Len(t, got.Suppliers, 1)
	assert.Equal(t, "Tavlin", got.Suppliers[0].Name)
}

func TestDraft_CorruptEntryIsDiscarded(t *testing.T) {
	s, kv := newStore(t)
	key := EventDraftKey(7, 42)
	require.NoError(t, kv.Set(key, "{not json"))

	got := s.Open(key, Draft{Form: map[string]string{"couple_name": "Noa & Yonatan"}}, totalSteps)

	assert.Equal(t, "Noa & Yonatan", got.Form["couple_name"])
	_, err := kv.Get(key)
	assert.ErrorIs(t, err, storage.ErrNotFound, "corrupt entry must be removed")
}

func TestDraft_StepIsClamped(t *testing.T) {
	s, _ := newStore(t)

	s.Autosave(NewDraftKey(7), Draft{CurrentStep: 99})
	got := s.Open(NewDraftKey(7), Draft{}, totalSteps)
	assert.Equal(t, totalSteps-1, got.CurrentStep)

	s.Autosave(NewDraftKey(7), Draft{CurrentStep: -3})
	got = s.Open(NewDraftKey(7), Draft{}, totalSteps)
	assert.Equal(t, 0, got.CurrentStep)
}

func TestDraft_DiscardRemovesOnlyThatKey(t *testing.T) {
	s, kv := newStore(t)

	s.Autosave(EventDraftKey(7, 1), Draft{CurrentStep: 1})
	s.Autosave(EventDraftKey(7, 2), Draft{CurrentStep: 2})

	s.Discard(EventDraftKey(7, 1))

	_, err := kv.Get(EventDraftKey(7, 1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = kv.Get(EventDraftKey(7, 2))
	assert.NoError(t, err)
}

func TestDraft_MissingKeyReturnsBaseline(t *testing.T) {
	s, _ := newStore(t)

	baseline := Draft{Form: map[string]string{"couple_name": "Noa & Yonatan"}, CurrentStep: 1}
	got := s.Open(EventDraftKey(7, 99), baseline, totalSteps)

	assert.Equal(t, baseline.Form, got.Form)
	assert.Equal(t, 1, got.CurrentStep)
}
