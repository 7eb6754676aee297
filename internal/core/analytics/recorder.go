// Package analytics implements the per-session event recorder: an
// append-only, in-memory log of named events.
//
// A Recorder is owned by exactly one onboarding session and is created with
// it. It is not safe for concurrent use; the session host serialises access.
package analytics

import (
	"maps"
	"time"

	"github.com/rs/zerolog"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

// Recorder is the event log of one onboarding session.
type Recorder struct {
	sessionID string
	events    []domain.AnalyticsEvent
	sink      ports.AnalyticsSink
	enabled   bool
	debug     bool
	now       func() time.Time
	log       zerolog.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithSink forwards every recorded event to sink. Sink failures are ignored.
func WithSink(sink ports.AnalyticsSink) Option {
	return func(r *Recorder) { r.sink = sink }
}

// WithEnabled starts the recorder enabled or disabled.
func WithEnabled(enabled bool) Option {
	return func(r *Recorder) { r.SetEnabled(enabled) }
}

// WithDebug turns on the human-readable trace of each recorded event.
func WithDebug(debug bool) Option {
	return func(r *Recorder) { r.debug = debug }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithLogger sets the logger used for the debug trace.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Recorder) { r.log = log }
}

// NewRecorder returns an empty, enabled recorder for sessionID.
func NewRecorder(sessionID string, opts ...Option) *Recorder {
	r := &Recorder{
		sessionID: sessionID,
		enabled:   true,
		now:       func() time.Time { return time.Now().UTC() },
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends an event. It never fails and never blocks.
func (r *Recorder) Record(event string, data map[string]any) {
	r.RecordOn(event, data, "")
}

// RecordOn appends an event attributed to a screen.
func (r *Recorder) RecordOn(event string, data map[string]any, screen domain.Screen) {
	if !r.enabled {
		return
	}

	ev := domain.AnalyticsEvent{
		Event:     event,
		Data:      maps.Clone(data),
		Timestamp: r.now(),
		Screen:    screen,
		SessionID: r.sessionID,
	}
	r.events = append(r.events, ev)

	if r.debug {
		r.log.Info().
			Str("event", ev.Event).
			Interface("data", ev.Data).
			Str("screen", string(ev.Screen)).
			Time("timestamp", ev.Timestamp).
			Msg("analytics event")
	}

	if r.sink != nil {
		if err := r.sink.Publish(ev); err != nil {
			r.log.Debug().Err(err).Str("event", ev.Event).Msg("analytics sink rejected event")
		}
	}
}

// All returns a copy of the log in insertion order.
func (r *Recorder) All() []domain.AnalyticsEvent {
	out := make([]domain.AnalyticsEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Len is the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Clear empties the log.
func (r *Recorder) Clear() {
	r.events = nil
}

// SetEnabled toggles recording. Disabled recorders drop events silently.
func (r *Recorder) SetEnabled(enabled bool) {
	r.enabled = enabled
}

// SetDebug toggles the debug trace.
func (r *Recorder) SetDebug(debug bool) {
	r.debug = debug
}

// Debug reports whether the debug trace is on.
func (r *Recorder) Debug() bool {
	return r.debug
}
