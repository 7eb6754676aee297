package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/scratchie/onboarding-flow/internal/core/analytics"
	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

const (
	defaultMaxLiveSessions = 10_000
	defaultSessionTTL      = 30 * time.Minute
)

// SessionConfig tunes the session host.
type SessionConfig struct {
	// SessionTTL is the idle lifetime of an in-memory flow and of its
	// session-scope snapshot. Every request against a flow restarts it.
	SessionTTL time.Duration
	// MaxLiveSessions caps the flows held in memory. Evicted flows resume
	// from storage on their next request.
	MaxLiveSessions int
	// Debug turns on the recorder trace for every session.
	Debug bool
	// AnalyticsDisabled starts every recorder disabled: nothing is logged
	// or forwarded.
	AnalyticsDisabled bool
}

// StorageDeps are the two media behind the persistence scopes.
type StorageDeps struct {
	Durable ports.KeyValueStore
	Session ports.KeyValueStore
}

// liveSession is one hosted flow. mu serialises every operation on it.
type liveSession struct {
	mu      sync.Mutex
	machine *OnboardingMachine
}

type sessionService struct {
	catalog ports.SectorCatalog
	storage StorageDeps
	sink    ports.AnalyticsSink
	cfg     SessionConfig
	live    *expirable.LRU[string, *liveSession]
	liveMu  sync.Mutex
	opening singleflight.Group
	now     func() time.Time
	log     zerolog.Logger
}

// NewSessionService returns an OnboardingService hosting one state machine per
// device/session pair. sink may be nil.
func NewSessionService(
	catalog ports.SectorCatalog,
	storage StorageDeps,
	sink ports.AnalyticsSink,
	cfg SessionConfig,
	log zerolog.Logger,
) ports.OnboardingService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.MaxLiveSessions <= 0 {
		cfg.MaxLiveSessions = defaultMaxLiveSessions
	}
	s := &sessionService{
		catalog: catalog,
		storage: storage,
		sink:    sink,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
	}
	s.live = expirable.NewLRU[string, *liveSession](cfg.MaxLiveSessions, s.onEvict, cfg.SessionTTL)
	return s
}

func (s *sessionService) onEvict(key string, _ *liveSession) {
	s.log.Debug().Str("session_key", key).Msg("live session evicted")
}

func (s *sessionService) storeFor(id domain.Identity) *PersistenceStore {
	return NewPersistenceStore(s.storage.Durable, s.storage.Session, id, s.cfg.SessionTTL, s.log)
}

// touch returns the live flow under key and pushes its idle deadline out by
// SessionTTL. The cache only sets expiry on Add, so the hit is re-added.
func (s *sessionService) touch(key string) (*liveSession, bool) {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	ls, ok := s.live.Get(key)
	if ok {
		s.live.Add(key, ls)
	}
	return ls, ok
}

// acquire returns the live flow of id, resuming or starting it on first use.
func (s *sessionService) acquire(ctx context.Context, id domain.Identity, initial domain.Screen) (*liveSession, error) {
	key := id.Key()
	if ls, ok := s.touch(key); ok {
		return ls, nil
	}

	v, err, _ := s.opening.Do(key, func() (any, error) {
		if ls, ok := s.touch(key); ok {
			return ls, nil
		}

		log := s.log.With().Str("device_id", id.DeviceID).Str("session_id", id.SessionID).Logger()
		opts := []analytics.Option{
			analytics.WithEnabled(!s.cfg.AnalyticsDisabled),
			analytics.WithDebug(s.cfg.Debug),
			analytics.WithLogger(log),
			analytics.WithClock(s.now),
		}
		if s.sink != nil {
			opts = append(opts, analytics.WithSink(s.sink))
		}

		m := NewOnboardingMachine(MachineDeps{
			Catalog:  s.catalog,
			Store:    s.storeFor(id),
			Recorder: analytics.NewRecorder(id.SessionID, opts...),
			Clock:    s.now,
			Log:      log,
		})
		m.Open(ctx, initial)

		ls := &liveSession{machine: m}
		s.liveMu.Lock()
		s.live.Add(key, ls)
		s.liveMu.Unlock()
		log.Info().Str("screen", string(m.Screen())).Msg("onboarding session opened")
		return ls, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*liveSession), nil
}

// Open returns the view of the flow, starting it on in.InitialScreen when no
// snapshot exists.
func (s *sessionService) Open(ctx context.Context, in ports.OpenSessionInput) (*domain.ScreenView, error) {
	ls, err := s.acquire(ctx, in.Identity, in.InitialScreen)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	if in.Debug {
		ls.machine.Recorder().SetDebug(true)
	}
	view := ls.machine.View()
	return &view, nil
}

// Dispatch applies one user action. Unknown actions and malformed arguments
// are errors; actions the current screen does not allow are not.
func (s *sessionService) Dispatch(ctx context.Context, id domain.Identity, in domain.ActionInput) (*domain.ActionResult, error) {
	var goal domain.UserGoal
	switch in.Action {
	case domain.ActionSelectGoal:
		g, err := domain.ParseUserGoal(in.Goal)
		if err != nil {
			return nil, fmt.Errorf("dispatch %s: %w", in.Action, err)
		}
		goal = g
	case domain.ActionStart, domain.ActionSkipWelcome, domain.ActionSelectCategory,
		domain.ActionSelectSector, domain.ActionSelectSectorDir, domain.ActionSkipSector,
		domain.ActionContinueFromTips, domain.ActionToggleMode, domain.ActionGoBack,
		domain.ActionReset, domain.ActionGoPro, domain.ActionFirstValue:
	default:
		return nil, fmt.Errorf("dispatch: %w: %q", domain.ErrUnknownAction, in.Action)
	}

	ls, err := s.acquire(ctx, id, "")
	if err != nil {
		return nil, fmt.Errorf("dispatch %s: %w", in.Action, err)
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	m := ls.machine
	from := m.Screen()
	var applied bool
	switch in.Action {
	case domain.ActionStart:
		applied = m.Start(ctx)
	case domain.ActionSkipWelcome:
		applied = m.SkipFromWelcome(ctx)
	case domain.ActionSelectGoal:
		applied = m.SelectGoal(ctx, goal)
	case domain.ActionSelectCategory:
		applied = m.SelectCategory(ctx, in.Category)
	case domain.ActionSelectSector:
		applied = m.SelectSector(ctx, in.Sector)
	case domain.ActionSelectSectorDir:
		applied = m.SelectSectorDirect(ctx, in.Sector)
	case domain.ActionSkipSector:
		applied = m.SkipSector(ctx)
	case domain.ActionContinueFromTips:
		applied = m.ContinueFromTips(ctx)
	case domain.ActionToggleMode:
		applied = m.ToggleMode(ctx)
	case domain.ActionGoBack:
		applied = m.GoBack(ctx)
	case domain.ActionReset:
		applied = m.Reset(ctx)
	case domain.ActionGoPro:
		applied = m.GoPro(ctx)
	case domain.ActionFirstValue:
		applied = m.RecordFirstValueAction(ctx, in.Kind)
	}

	s.log.Debug().
		Str("session_id", id.SessionID).
		Str("action", string(in.Action)).
		Str("from", string(from)).
		Str("to", string(m.Screen())).
		Bool("applied", applied).
		Int("events", m.Recorder().Len()).
		Msg("onboarding action")

	return &domain.ActionResult{Applied: applied, View: m.View()}, nil
}

// Events returns a copy of the flow's event log.
func (s *sessionService) Events(ctx context.Context, id domain.Identity) ([]domain.AnalyticsEvent, error) {
	ls, err := s.acquire(ctx, id, "")
	if err != nil {
		return nil, fmt.Errorf("events: %w", err)
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.machine.Recorder().All(), nil
}

// Preferences reads the device's preferences straight from storage.
func (s *sessionService) Preferences(ctx context.Context, id domain.Identity) (domain.UserPreferences, bool) {
	return s.storeFor(id).LoadPreferences(ctx)
}

// HasCompleted reads the completion flag straight from storage.
func (s *sessionService) HasCompleted(ctx context.Context, id domain.Identity) bool {
	return s.storeFor(id).HasCompleted(ctx)
}

// LastScreen is the screen of the stored snapshot, or welcome.
func (s *sessionService) LastScreen(ctx context.Context, id domain.Identity) domain.Screen {
	return s.storeFor(id).LastScreen(ctx)
}

func (s *sessionService) LiveSessions() int {
	return s.live.Len()
}
