package domain

import (
	"fmt"
	"time"
)

// ChatState is a state of the chat assistant's conversation.
type ChatState string

// Chat states.
const (
	ChatWelcome               ChatState = "welcome"
	ChatAwaitingLanguage      ChatState = "awaiting_language"
	ChatAwaitingTopic         ChatState = "awaiting_topic"
	ChatAwaitingSectionNumber ChatState = "awaiting_section_number"
	ChatShowingResult         ChatState = "showing_result"
)

// String returns the string representation.
func (s ChatState) String() string {
	return string(s)
}

// ChatEventKind names an input the assistant accepts.
type ChatEventKind string

// Chat events.
const (
	// EventStart opens the language menu from the welcome message.
	EventStart ChatEventKind = "start"

	// EventChooseLanguage selects the conversation language.
	EventChooseLanguage ChatEventKind = "choose_language"

	// EventChooseTopic selects what to ask about. Only ipc is offered.
	EventChooseTopic ChatEventKind = "choose_topic"

	// EventEnterSection submits free text while a section number is awaited.
	EventEnterSection ChatEventKind = "enter_section"

	// EventBack resets the conversation to the welcome message.
	EventBack ChatEventKind = "back"
)

// TopicIPC is the only topic the assistant can answer.
const TopicIPC = "ipc"

// ChatEvent is one user action fed to the assistant.
type ChatEvent struct {
	Kind ChatEventKind

	// Value carries the language code, topic or section text.
	Value string
}

// Start returns the event that opens the language menu.
func Start() ChatEvent { return ChatEvent{Kind: EventStart} }

// ChooseLanguage returns a language selection event.
func ChooseLanguage(lang Language) ChatEvent {
	return ChatEvent{Kind: EventChooseLanguage, Value: string(lang)}
}

// ChooseTopic returns a topic selection event.
func ChooseTopic(topic string) ChatEvent {
	return ChatEvent{Kind: EventChooseTopic, Value: topic}
}

// EnterSection returns a section entry event.
func EnterSection(text string) ChatEvent {
	return ChatEvent{Kind: EventEnterSection, Value: text}
}

// Back returns the reset event.
func Back() ChatEvent { return ChatEvent{Kind: EventBack} }

// ChatRole identifies who authored a chat message.
type ChatRole string

// Chat roles.
const (
	RoleBot  ChatRole = "bot"
	RoleUser ChatRole = "user"
)

// ChatOption is a button offered with a bot message.
type ChatOption struct {
	Label string    `json:"label"`
	Event ChatEvent `json:"-"`
}

// ChatMessage is one entry in the transcript.
type ChatMessage struct {
	ID      string       `json:"id"`
	Role    ChatRole     `json:"role"`
	Content string       `json:"content"`
	Options []ChatOption `json:"options,omitempty"`

	// Section is set on a bot message that answers a section lookup.
	Section *RawSection `json:"section,omitempty"`
	At      time.Time   `json:"at"`
}

// Conversation is an immutable snapshot of a chat session.
type Conversation struct {
	State      ChatState     `json:"state"`
	Language   Language      `json:"language"`
	Transcript []ChatMessage `json:"transcript"`
}

// LastMessage returns the most recent message, or nil for an empty transcript.
func (c *Conversation) LastMessage() *ChatMessage {
	if len(c.Transcript) == 0 {
		return nil
	}
	return &c.Transcript[len(c.Transcript)-1]
}

// Options returns the options of the latest bot message.
func (c *Conversation) Options() []ChatOption {
	for i := len(c.Transcript) - 1; i >= 0; i-- {
		if c.Transcript[i].Role == RoleBot {
			return c.Transcript[i].Options
		}
	}
	return nil
}

// AcceptsText reports whether free-text input is meaningful in this state.
func (c *Conversation) AcceptsText() bool {
	return c.State == ChatAwaitingSectionNumber
}

// TransitionError describes an event that is not valid in a state.
// It wraps ErrInvalidTransition.
type TransitionError struct {
	State ChatState
	Event ChatEventKind
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s not allowed in state %s", ErrInvalidTransition, e.Event, e.State)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
