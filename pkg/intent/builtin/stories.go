package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// tellStory reads an unread story aloud and records it as read.
func tellStory(ctx context.Context, deps *Dependencies, in *intent.Input) (*intent.Output, error) {
	read := deps.Store.StoriesRead(ctx, in.UserID)
	story := content.PickUnreadStory(deps.Catalog.Stories(), read, deps.Random)

	if _, err := deps.Store.MarkStoryRead(ctx, in.UserID, story.ID); err != nil {
		return nil, err
	}
	in.Session.LastStoryID = story.ID

	text := speech.Compose(speech.Parts{
		Intro: fmt.Sprintf("%s Today I'm going to tell you the story of %s. %s Get comfy and listen...",
			speech.Magic, story.Title, pause(500)),
		Main: pause(500) + story.Body,
		Outro: fmt.Sprintf("%s And they all lived happily ever after. The end. %s Did you like it? I can tell you another story, or we can do something different. What would you prefer?",
			pause(500), pause(300)),
	})
	return intent.Ask(text, "Do you want to hear another story, or would you rather do something else?"), nil
}

// TellStoryHandler tells a story the user hasn't heard yet.
type TellStoryHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewTellStoryHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &TellStoryHandler{
		BaseHandler: intent.NewBaseHandler(config, "Tell Story", intent.IntentIs(IntentTellStory)),
		deps:        deps,
	}
}

func (h *TellStoryHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	return tellStory(ctx, h.deps, in)
}

// NextStoryHandler tells another story, or offers a repeat once all were heard.
type NextStoryHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewNextStoryHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &NextStoryHandler{
		BaseHandler: intent.NewBaseHandler(config, "Next Story", intent.IntentIs(IntentNextStory)),
		deps:        deps,
	}
}

func (h *NextStoryHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	read := h.deps.Store.StoriesRead(ctx, in.UserID)
	if len(content.UnreadStories(h.deps.Catalog.Stories(), read)) == 0 {
		text := fmt.Sprintf("%s Wow! You've already heard all the stories I know. %s But don't worry, stories are like Christmas: it's always lovely to enjoy them again. Do you want me to tell you one again?",
			speech.Bells, pause(200))
		return intent.Ask(text, "Do you want to hear a story again?"), nil
	}

	return tellStory(ctx, h.deps, in)
}
