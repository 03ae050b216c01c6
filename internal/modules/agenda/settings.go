package agenda

import (
	"context"
	"fmt"
	"regexp"

	"weddingdesk/internal/domain"
	"weddingdesk/internal/pkg/phone"
	"weddingdesk/internal/storage"

	"github.com/rs/zerolog"
)

// DefaultAlertTime is the fallback whenever a configured time fails to
// normalize.
const DefaultAlertTime = "08:00"

var alertTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NormalizeAlertTime validates a zero-padded 24-hour "HH:MM" value. Anything
// else ("9:5", "25:00", empty) falls back to DefaultAlertTime.
func NormalizeAlertTime(raw string) string {
	if alertTimeRe.MatchString(raw) {
		return raw
	}
	return DefaultAlertTime
}

// SettingsService keeps the alert phone and time in the local device store
// and, when a remote record exists, mirrors it there. Remote wins on load
// once it resolves; local wins transiently until then.
type SettingsService struct {
	local  *storage.KV
	remote RemoteSettings
	log    zerolog.Logger
}

func NewSettingsService(local *storage.KV, remote RemoteSettings, log zerolog.Logger) *SettingsService {
	return &SettingsService{
		local:  local,
		remote: remote,
		log:    log.With().Str("component", "alert-settings").Logger(),
	}
}

func phoneKey(ownerID int64) string { return fmt.Sprintf("alert:%d:phone", ownerID) }
func timeKey(ownerID int64) string  { return fmt.Sprintf("alert:%d:time", ownerID) }
func promptedKey(ownerID int64) string {
	return fmt.Sprintf("alert:%d:prompted", ownerID)
}

// Load reads settings from local storage, then overlays the remote record
// when it resolves. A remote failure keeps the local values and is logged,
// not propagated; the scheduler must keep running either way.
func (s *SettingsService) Load(ctx context.Context, ownerID int64) domain.AlertSettings {
	out := domain.AlertSettings{OwnerID: ownerID, Time: DefaultAlertTime}

	if v, err := s.local.Get(phoneKey(ownerID)); err == nil {
		out.Phone = v
	}
	if v, err := s.local.Get(timeKey(ownerID)); err == nil {
		out.Time = NormalizeAlertTime(v)
	}

	if s.remote == nil {
		return out
	}

	remote, err := s.remote.GetByOwner(ctx, ownerID)
	if err != nil {
		s.log.Warn().Err(err).Int64("owner_id", ownerID).Msg("remote settings load failed, using local")
		return out
	}

	out.Phone = phone.Digits(remote.Phone)
	out.Time = NormalizeAlertTime(remote.Time)

	// Remote is authoritative once it resolves; mirror it back to local
	// storage. Local write failures are non-critical here.
	_ = s.local.Set(phoneKey(ownerID), out.Phone)
	_ = s.local.Set(timeKey(ownerID), out.Time)

	return out
}

// Save normalizes and persists settings: local storage first (a failure here
// is an error, this is the critical write), then the remote record
// best-effort. A remote failure is returned alongside the saved settings so
// the caller can surface a status message; the local save is not rolled back.
func (s *SettingsService) Save(ctx context.Context, ownerID int64, rawPhone, rawTime string) (domain.AlertSettings, error) {
	out := domain.AlertSettings{
		OwnerID: ownerID,
		Phone:   phone.Digits(rawPhone),
		Time:    NormalizeAlertTime(rawTime),
	}

	if err := s.local.Set(phoneKey(ownerID), out.Phone); err != nil {
		return out, err
	}
	if err := s.local.Set(timeKey(ownerID), out.Time); err != nil {
		return out, err
	}

	if s.remote == nil {
		return out, nil
	}
	if err := s.remote.Upsert(ctx, &out); err != nil {
		s.log.Warn().Err(err).Int64("owner_id", ownerID).Msg("remote settings save failed, local copy kept")
		return out, ErrRemoteSync
	}
	return out, nil
}

// MarkPrompted records that the one-time notification permission prompt was
// shown on this device. It reports whether the prompt had already been shown.
func (s *SettingsService) MarkPrompted(ownerID int64) bool {
	if _, err := s.local.Get(promptedKey(ownerID)); err == nil {
		return true
	}
	_ = s.local.Set(promptedKey(ownerID), "1")
	return false
}
