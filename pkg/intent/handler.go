// Package intent defines intent handlers and the ordered registry the
// dispatcher scans to pick one per turn.
package intent

import (
	"context"
	"time"

	"github.com/AccelByte/extend-santa-skill/pkg/skill"
)

// Handler answers one kind of request.
// Handlers are registered in a Registry and selected by the dispatcher.
type Handler interface {
	// ID returns unique handler identifier.
	ID() string

	// Name returns human-readable handler name.
	Name() string

	// CanHandle reports whether this handler should answer the turn.
	CanHandle(in *Input) bool

	// Handle produces the reply and may update in.Session.
	// Returns error only for failures the user cannot fix by rephrasing.
	Handle(ctx context.Context, in *Input) (*Output, error)

	// Config returns the handler's configuration.
	Config() HandlerConfig
}

// Input is one conversation turn as seen by a handler.
type Input struct {
	Envelope *skill.RequestEnvelope
	UserID   string
	Session  *skill.SessionState
	Now      time.Time
}

// RequestType returns the envelope's request type.
func (in *Input) RequestType() string {
	return in.Envelope.Request.Type
}

// IntentName returns the intent name, or "" for non-intent requests.
func (in *Input) IntentName() string {
	return in.Envelope.IntentName()
}

// Slot returns the trimmed value of a slot, or "" when absent.
func (in *Input) Slot(name string) string {
	return in.Envelope.SlotValue(name)
}

// Output is a handler's reply. An empty Reprompt ends the session.
type Output struct {
	Speech   string
	Reprompt string
}

// Ask replies and keeps the conversation open.
func Ask(speech, reprompt string) *Output {
	return &Output{Speech: speech, Reprompt: reprompt}
}

// Tell replies and ends the conversation.
func Tell(speech string) *Output {
	return &Output{Speech: speech}
}

// EndsSession reports whether the reply closes the conversation.
func (o *Output) EndsSession() bool {
	return o.Reprompt == ""
}

// Predicate decides whether a handler matches a turn.
type Predicate func(in *Input) bool

// RequestIs matches a request type.
func RequestIs(requestType string) Predicate {
	return func(in *Input) bool {
		return in.RequestType() == requestType
	}
}

// IntentIs matches any of the given intent names.
func IntentIs(names ...string) Predicate {
	return func(in *Input) bool {
		name := in.IntentName()
		if name == "" {
			return false
		}
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
}

// BaseHandler carries the identity and match predicate shared by handlers.
// Embed it and implement Handle.
type BaseHandler struct {
	config HandlerConfig
	name   string
	match  Predicate
}

// NewBaseHandler builds a BaseHandler. A name set in config overrides
// defaultName.
func NewBaseHandler(config HandlerConfig, defaultName string, match Predicate) BaseHandler {
	name := defaultName
	if config.Name != "" {
		name = config.Name
	}
	return BaseHandler{config: config, name: name, match: match}
}

// ID returns the handler identifier.
func (b BaseHandler) ID() string {
	return b.config.ID
}

// Name returns the handler name.
func (b BaseHandler) Name() string {
	return b.name
}

// Config returns the handler configuration.
func (b BaseHandler) Config() HandlerConfig {
	return b.config
}

// CanHandle applies the handler's predicate.
func (b BaseHandler) CanHandle(in *Input) bool {
	return b.match != nil && b.match(in)
}
