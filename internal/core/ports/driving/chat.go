package driving

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// ChatService drives the scripted legal assistant.
// Conversations are immutable; every call returns a new snapshot.
type ChatService interface {
	// Begin starts a conversation at the welcome message.
	Begin(lang domain.Language) domain.Conversation

	// Handle applies an event. Events that are not valid in the current
	// state return an error wrapping ErrInvalidTransition and leave the
	// conversation unchanged.
	Handle(ctx context.Context, conv domain.Conversation, event domain.ChatEvent) (domain.Conversation, error)
}
