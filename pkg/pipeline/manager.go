package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/metrics"
	"github.com/AccelByte/extend-santa-skill/pkg/skill"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// Replies used when no handler produced one.
var (
	ErrorSpeech       = speech.Bells + " Oops! Something went wrong. Can you try that again?"
	ErrorReprompt     = "What would you like to do?"
	NoHandlerSpeech   = "Sorry, I can't help with that yet. You can ask me for the Christmas countdown, a story, trivia, or help with your letter to Santa."
	NoHandlerReprompt = "What would you like to do?"
)

// Manager orchestrates one conversation turn:
// Envelope → Session → Handler → Response
type Manager struct {
	registry *intent.Registry
	location *time.Location
	clock    func() time.Time
	logger   *slog.Logger
}

// NewManager creates a new turn manager. Handlers are matched in the
// registry's registration order; now is taken from clock in loc.
func NewManager(registry *intent.Registry, loc *time.Location, clock func() time.Time, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}

	return &Manager{
		registry: registry,
		location: loc,
		clock:    clock,
		logger:   logger,
	}
}

// Dispatch runs one turn and always returns a response. Handler failures
// and panics become a generic error reply, and an unmatched turn gets a
// clarifying prompt.
func (m *Manager) Dispatch(ctx context.Context, env *skill.RequestEnvelope) *skill.ResponseEnvelope {
	scope := common.GetScopeFromContext(ctx, "pipeline.Dispatch")
	defer scope.Finish()
	scope.WithField("request_type", env.Request.Type)
	if name := env.IntentName(); name != "" {
		scope.WithField("intent", name)
	}

	in := &intent.Input{
		Envelope: env,
		UserID:   env.UserID(),
		Session:  skill.DecodeSession(env.Attributes()),
		Now:      m.clock().In(m.location),
	}

	out, handlerID, err := m.run(scope.Ctx, in)
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, intent.ErrNoHandler) {
			m.logger.Warn("no handler matched turn",
				slog.String("request_type", env.Request.Type),
				slog.String("intent", env.IntentName()))
			metrics.ObserveError(metrics.ErrorKindNoHandler)
			return m.respond(env, skill.DecodeSession(env.Attributes()), intent.Ask(NoHandlerSpeech, NoHandlerReprompt))
		}

		m.logger.Error("handler failed",
			slog.String("handler_id", handlerID),
			slog.String("user_id", in.UserID),
			slog.String("error", err.Error()))
		return m.respond(env, skill.DecodeSession(env.Attributes()), intent.Ask(ErrorSpeech, ErrorReprompt))
	}

	m.logger.Debug("turn handled",
		slog.String("handler_id", handlerID),
		slog.String("mode", in.Session.Mode.String()))
	return m.respond(env, in.Session, out)
}

// run matches and invokes a handler. It is the single place panics are
// recovered.
func (m *Manager) run(ctx context.Context, in *intent.Input) (out *intent.Output, handlerID string, err error) {
	h, err := m.registry.Match(in)
	if err != nil {
		return nil, "", err
	}
	handlerID = h.ID()

	start := time.Now()
	defer func() {
		metrics.ObserveHandler(handlerID, h.Config().Type, time.Since(start))

		if r := recover(); r != nil {
			metrics.ObserveError(metrics.ErrorKindPanic)
			out, err = nil, fmt.Errorf("handler %s panicked: %v", handlerID, r)
		}
	}()

	out, err = h.Handle(ctx, in)
	if err != nil {
		metrics.ObserveError(metrics.ErrorKindHandler)
		return nil, handlerID, err
	}
	if out == nil {
		return nil, handlerID, fmt.Errorf("handler %s returned no output", handlerID)
	}
	return out, handlerID, nil
}

// respond formats out. Session attributes are carried only while the
// conversation stays open.
func (m *Manager) respond(env *skill.RequestEnvelope, session *skill.SessionState, out *intent.Output) *skill.ResponseEnvelope {
	resp := skill.NewResponse(out.Speech, out.Reprompt)
	if env.Request.Type != skill.RequestSessionEnded && !resp.EndsSession() {
		resp.SessionAttributes = session.Encode()
	}
	return resp
}
