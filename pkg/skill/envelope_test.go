package skill

import (
	"encoding/json"
	"strings"
	"testing"
)

const launchJSON = `{
  "version": "1.0",
  "session": {
    "new": true,
    "sessionId": "amzn1.echo-api.session.1",
    "application": {"applicationId": "amzn1.ask.skill.santa"},
    "attributes": {"mode": "writing_letter"},
    "user": {"userId": "amzn1.ask.account.user1"}
  },
  "context": {"System": {"application": {"applicationId": "amzn1.ask.skill.santa"}, "user": {"userId": "amzn1.ask.account.user1"}}},
  "request": {
    "type": "IntentRequest",
    "requestId": "req-1",
    "locale": "en-US",
    "intent": {"name": "AddGiftIntent", "slots": {"gift": {"name": "gift", "value": "  Bicicleta "}}}
  }
}`

func TestRequestEnvelope_Accessors(t *testing.T) {
	var env RequestEnvelope
	if err := json.Unmarshal([]byte(launchJSON), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}

	if got := env.UserID(); got != "amzn1.ask.account.user1" {
		t.Errorf("UserID() = %s", got)
	}
	if got := env.ApplicationID(); got != "amzn1.ask.skill.santa" {
		t.Errorf("ApplicationID() = %s", got)
	}
	if got := env.IntentName(); got != "AddGiftIntent" {
		t.Errorf("IntentName() = %s", got)
	}
	if got := env.SlotValue("gift"); got != "Bicicleta" {
		t.Errorf("SlotValue(gift) = %q, expected %q", got, "Bicicleta")
	}
	if got := env.SlotValue("person"); got != "" {
		t.Errorf("SlotValue(person) = %q, expected empty", got)
	}
	if DecodeSession(env.Attributes()).Mode != ModeWritingLetter {
		t.Error("session attributes were not decoded")
	}
}

func TestRequestEnvelope_ContextFallback(t *testing.T) {
	env := RequestEnvelope{
		Context: &Context{System: System{
			Application: Application{ApplicationID: "app"},
			User:        User{UserID: "user"},
		}},
		Request: Request{Type: RequestLaunch},
	}

	if env.UserID() != "user" || env.ApplicationID() != "app" {
		t.Errorf("UserID() = %s, ApplicationID() = %s", env.UserID(), env.ApplicationID())
	}
	if env.IntentName() != "" {
		t.Errorf("IntentName() = %s, expected empty for a launch", env.IntentName())
	}
}

func TestNewResponse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		reprompt    string
		expectEnd   bool
		expectSpeak bool
	}{
		{name: "with reprompt", text: "Hi", reprompt: "Well?", expectEnd: false, expectSpeak: true},
		{name: "without reprompt", text: "Bye", reprompt: "", expectEnd: true, expectSpeak: true},
		{name: "empty", text: "", reprompt: "", expectEnd: true, expectSpeak: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewResponse(tt.text, tt.reprompt)
			if resp.Version != ResponseVersion {
				t.Errorf("Version = %s", resp.Version)
			}
			if resp.EndsSession() != tt.expectEnd {
				t.Errorf("EndsSession() = %v, expected %v", resp.EndsSession(), tt.expectEnd)
			}
			if (resp.Response.OutputSpeech != nil) != tt.expectSpeak {
				t.Fatalf("OutputSpeech present = %v, expected %v", resp.Response.OutputSpeech != nil, tt.expectSpeak)
			}
			if tt.expectSpeak && !strings.HasPrefix(resp.Response.OutputSpeech.SSML, "<speak>") {
				t.Errorf("SSML = %s, expected wrapped speech", resp.Response.OutputSpeech.SSML)
			}
		})
	}
}
