// Package skill defines the voice platform's JSON request and response
// envelopes and the per-conversation session state carried inside them.
package skill

import (
	"strings"

	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// Request types sent by the voice platform.
const (
	RequestLaunch       = "LaunchRequest"
	RequestIntent       = "IntentRequest"
	RequestSessionEnded = "SessionEndedRequest"
)

// ResponseVersion is the envelope version this service speaks.
const ResponseVersion = "1.0"

// RequestEnvelope is an inbound webhook call.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

type Session struct {
	New         bool                   `json:"new"`
	SessionID   string                 `json:"sessionId"`
	Application Application            `json:"application"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
	User        User                   `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Application Application `json:"application"`
	User        User        `json:"user"`
}

type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// UserID returns the caller's user id from the session, or from the
// context when the request carries no session.
func (e *RequestEnvelope) UserID() string {
	if e.Session != nil && e.Session.User.UserID != "" {
		return e.Session.User.UserID
	}
	if e.Context != nil {
		return e.Context.System.User.UserID
	}
	return ""
}

// ApplicationID returns the skill id the request was addressed to.
func (e *RequestEnvelope) ApplicationID() string {
	if e.Session != nil && e.Session.Application.ApplicationID != "" {
		return e.Session.Application.ApplicationID
	}
	if e.Context != nil {
		return e.Context.System.Application.ApplicationID
	}
	return ""
}

// IntentName returns the intent name, or "" for non-intent requests.
func (e *RequestEnvelope) IntentName() string {
	if e.Request.Type != RequestIntent || e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// SlotValue returns the trimmed value of a slot, or "" when absent.
func (e *RequestEnvelope) SlotValue(name string) string {
	if e.Request.Intent == nil {
		return ""
	}
	slot, ok := e.Request.Intent.Slots[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(slot.Value)
}

// Attributes returns the inbound session attributes, possibly nil.
func (e *RequestEnvelope) Attributes() map[string]interface{} {
	if e.Session == nil {
		return nil
	}
	return e.Session.Attributes
}

// ResponseEnvelope is the webhook reply.
type ResponseEnvelope struct {
	Version           string                 `json:"version"`
	SessionAttributes map[string]interface{} `json:"sessionAttributes,omitempty"`
	Response          Response               `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// NewResponse builds a reply. Both texts are wrapped as SSML. An empty
// reprompt ends the session; an empty text yields a bare ending response.
func NewResponse(text, reprompt string) *ResponseEnvelope {
	resp := &ResponseEnvelope{
		Version:  ResponseVersion,
		Response: Response{ShouldEndSession: true},
	}
	if text != "" {
		resp.Response.OutputSpeech = ssml(text)
	}
	if reprompt != "" {
		resp.Response.Reprompt = &Reprompt{OutputSpeech: *ssml(reprompt)}
		resp.Response.ShouldEndSession = false
	}
	return resp
}

// EndsSession reports whether the reply closes the conversation.
func (r *ResponseEnvelope) EndsSession() bool {
	return r.Response.ShouldEndSession
}

func ssml(text string) *OutputSpeech {
	return &OutputSpeech{Type: "SSML", SSML: speech.Wrap(text)}
}
