package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

// Storage key prefixes. The scope owner's id is appended after a colon.
const (
	snapshotKeyPrefix        = "scratchie_onboarding"
	sessionSnapshotKeyPrefix = "scratchie_onboarding_session"
	preferencesKeyPrefix     = "scratchie_user_preferences"
)

// SnapshotStore is what the state machine needs from persistence. Every method
// is best-effort: failures are logged by the implementation and never returned.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, state domain.OnboardingState)
	ReplaceSnapshot(ctx context.Context, state domain.OnboardingState)
	LoadSnapshot(ctx context.Context) (domain.OnboardingState, bool)
	ClearSnapshot(ctx context.Context)
	HasCompleted(ctx context.Context) bool
	SavePreferences(ctx context.Context, update domain.UserPreferences)
	LoadPreferences(ctx context.Context) (domain.UserPreferences, bool)
}

// PersistenceStore keeps the snapshot of one flow in two scopes plus the
// device's preferences record. Reads prefer the session scope.
type PersistenceStore struct {
	durable    ports.KeyValueStore
	session    ports.KeyValueStore
	id         domain.Identity
	sessionTTL time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewPersistenceStore binds the two storage media to one identity. sessionTTL
// bounds the session-scope copy; zero defers to the medium's default.
func NewPersistenceStore(
	durable, session ports.KeyValueStore,
	id domain.Identity,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *PersistenceStore {
	return &PersistenceStore{
		durable:    durable,
		session:    session,
		id:         id,
		sessionTTL: sessionTTL,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log.With().Str("device_id", id.DeviceID).Str("session_id", id.SessionID).Logger(),
	}
}

func (p *PersistenceStore) snapshotKey() string {
	return snapshotKeyPrefix + ":" + p.id.DeviceID
}

func (p *PersistenceStore) sessionSnapshotKey() string {
	return sessionSnapshotKeyPrefix + ":" + p.id.SessionID
}

func (p *PersistenceStore) preferencesKey() string {
	return preferencesKeyPrefix + ":" + p.id.DeviceID
}

// SaveSnapshot merges state field by field over the stored snapshot and writes
// the result to both scopes.
func (p *PersistenceStore) SaveSnapshot(ctx context.Context, state domain.OnboardingState) {
	merged, err := p.mergeSnapshot(ctx, state)
	if err != nil {
		p.log.Error().Err(err).Msg("failed to encode onboarding snapshot")
		return
	}
	p.writeSnapshot(ctx, merged)
}

// ReplaceSnapshot overwrites both scopes with state. Fields state leaves
// empty, completedAt included, do not survive from the old record.
func (p *PersistenceStore) ReplaceSnapshot(ctx context.Context, state domain.OnboardingState) {
	raw, err := json.Marshal(state)
	if err != nil {
		p.log.Error().Err(err).Msg("failed to encode onboarding snapshot")
		return
	}
	p.writeSnapshot(ctx, raw)
}

func (p *PersistenceStore) writeSnapshot(ctx context.Context, raw []byte) {
	if err := p.durable.Set(ctx, p.snapshotKey(), raw, 0); err != nil {
		p.log.Warn().Err(err).Msg("failed to save durable snapshot")
	}
	if err := p.session.Set(ctx, p.sessionSnapshotKey(), raw, p.sessionTTL); err != nil {
		p.log.Warn().Err(err).Msg("failed to save session snapshot")
	}
}

func (p *PersistenceStore) mergeSnapshot(ctx context.Context, state domain.OnboardingState) ([]byte, error) {
	update, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	raw, ok := p.loadRaw(ctx)
	if !ok {
		return update, nil
	}

	var base map[string]json.RawMessage
	if err := json.Unmarshal(raw, &base); err != nil || base == nil {
		return update, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(update, &fields); err != nil {
		return nil, fmt.Errorf("split snapshot: %w", err)
	}
	for k, v := range fields {
		base[k] = v
	}

	out, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("marshal merged snapshot: %w", err)
	}
	return out, nil
}

// loadRaw returns the first parsable, valid snapshot in precedence order.
func (p *PersistenceStore) loadRaw(ctx context.Context) ([]byte, bool) {
	for _, src := range []struct {
		scope string
		store ports.KeyValueStore
		key   string
	}{
		{"session", p.session, p.sessionSnapshotKey()},
		{"durable", p.durable, p.snapshotKey()},
	} {
		raw, err := src.store.Get(ctx, src.key)
		if err != nil {
			if !errors.Is(err, domain.ErrKeyNotFound) {
				p.log.Warn().Err(err).Str("scope", src.scope).Msg("failed to read snapshot")
			}
			continue
		}
		if _, err := decodeSnapshot(raw); err != nil {
			p.log.Warn().Err(err).Str("scope", src.scope).Msg("discarding unreadable snapshot")
			continue
		}
		return raw, true
	}
	return nil, false
}

func decodeSnapshot(raw []byte) (domain.OnboardingState, error) {
	var s domain.OnboardingState
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.OnboardingState{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return domain.OnboardingState{}, fmt.Errorf("invalid snapshot: %w", err)
	}
	return s, nil
}

// LoadSnapshot returns the session-scope snapshot, falling back to the durable
// one. Absent, unparsable or invalid records count as missing.
func (p *PersistenceStore) LoadSnapshot(ctx context.Context) (domain.OnboardingState, bool) {
	raw, ok := p.loadRaw(ctx)
	if !ok {
		return domain.OnboardingState{}, false
	}
	s, _ := decodeSnapshot(raw)
	return s, true
}

// ClearSnapshot removes both scopes. Preferences are untouched.
func (p *PersistenceStore) ClearSnapshot(ctx context.Context) {
	if err := p.durable.Delete(ctx, p.snapshotKey()); err != nil {
		p.log.Warn().Err(err).Msg("failed to clear durable snapshot")
	}
	if err := p.session.Delete(ctx, p.sessionSnapshotKey()); err != nil {
		p.log.Warn().Err(err).Msg("failed to clear session snapshot")
	}
}

// HasCompleted reports whether the stored snapshot carries a completion time.
func (p *PersistenceStore) HasCompleted(ctx context.Context) bool {
	s, ok := p.LoadSnapshot(ctx)
	return ok && s.Completed()
}

// LastScreen is the screen of the stored snapshot, or welcome.
func (p *PersistenceStore) LastScreen(ctx context.Context) domain.Screen {
	if s, ok := p.LoadSnapshot(ctx); ok {
		return s.CurrentScreen
	}
	return domain.ScreenWelcome
}

// SavePreferences merges update into the stored preferences and stamps UpdatedAt.
func (p *PersistenceStore) SavePreferences(ctx context.Context, update domain.UserPreferences) {
	current, _ := p.LoadPreferences(ctx)
	merged := current.Merge(update, p.now())

	raw, err := json.Marshal(merged)
	if err != nil {
		p.log.Error().Err(err).Msg("failed to encode preferences")
		return
	}
	if err := p.durable.Set(ctx, p.preferencesKey(), raw, 0); err != nil {
		p.log.Warn().Err(err).Msg("failed to save preferences")
	}
}

// LoadPreferences returns the stored preferences, if any.
func (p *PersistenceStore) LoadPreferences(ctx context.Context) (domain.UserPreferences, bool) {
	raw, err := p.durable.Get(ctx, p.preferencesKey())
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			p.log.Warn().Err(err).Msg("failed to read preferences")
		}
		return domain.UserPreferences{}, false
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		p.log.Warn().Err(err).Msg("discarding unreadable preferences")
		return domain.UserPreferences{}, false
	}
	return prefs, true
}
