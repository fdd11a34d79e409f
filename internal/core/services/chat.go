package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService runs the assistant's decision tree:
//
//	Welcome -> AwaitingLanguage -> AwaitingTopic -> AwaitingSectionNumber -> ShowingResult
//
// Back returns to Welcome from any state.
type ChatService struct {
	legal driving.LegalService
	now   func() time.Time
	newID func() string
}

// NewChatService creates a chat service answering from the IPC outline.
func NewChatService(legal driving.LegalService) *ChatService {
	return &ChatService{
		legal: legal,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Begin starts a conversation at the welcome message.
func (s *ChatService) Begin(lang domain.Language) domain.Conversation {
	if !lang.IsValid() {
		lang = domain.DefaultLanguage
	}
	tr := domain.Translations(lang)
	return domain.Conversation{
		State:    domain.ChatWelcome,
		Language: lang,
		Transcript: []domain.ChatMessage{
			s.bot(tr.T(domain.TextWelcome),
				domain.ChatOption{Label: tr.T(domain.TextSelectLanguage), Event: domain.Start()}),
		},
	}
}

// Handle applies one event to a conversation.
func (s *ChatService) Handle(
	ctx context.Context, conv domain.Conversation, event domain.ChatEvent,
) (domain.Conversation, error) {
	if event.Kind == domain.EventBack {
		return s.Begin(conv.Language), nil
	}

	switch {
	case conv.State == domain.ChatWelcome && event.Kind == domain.EventStart:
		return s.offerLanguages(conv), nil
	case conv.State == domain.ChatAwaitingLanguage && event.Kind == domain.EventChooseLanguage:
		return s.chooseLanguage(conv, event.Value)
	case conv.State == domain.ChatAwaitingTopic && event.Kind == domain.EventChooseTopic:
		return s.chooseTopic(conv, event.Value)
	case conv.State == domain.ChatAwaitingSectionNumber && event.Kind == domain.EventEnterSection:
		return s.enterSection(ctx, conv, event.Value)
	default:
		return conv, &domain.TransitionError{State: conv.State, Event: event.Kind}
	}
}

func (s *ChatService) offerLanguages(conv domain.Conversation) domain.Conversation {
	tr := domain.Translations(conv.Language)
	options := make([]domain.ChatOption, 0, len(domain.Languages()))
	for _, lang := range domain.Languages() {
		options = append(options, domain.ChatOption{
			Label: lang.NativeName(),
			Event: domain.ChooseLanguage(lang),
		})
	}
	return s.advance(conv, domain.ChatAwaitingLanguage,
		s.bot(tr.T(domain.TextSelectLanguage), options...))
}

func (s *ChatService) chooseLanguage(conv domain.Conversation, value string) (domain.Conversation, error) {
	lang, err := domain.ParseLanguage(value)
	if err != nil {
		return conv, err
	}

	tr := domain.Translations(lang)
	next := s.advance(conv, domain.ChatAwaitingTopic,
		s.user(lang.NativeName()),
		s.bot(tr.T(domain.TextLanguageSelected)+"\n"+tr.T(domain.TextSelectSection),
			domain.ChatOption{Label: tr.T(domain.TextIPCOption), Event: domain.ChooseTopic(domain.TopicIPC)},
			domain.ChatOption{Label: tr.T(domain.TextBackToMain), Event: domain.Back()},
		),
	)
	next.Language = lang
	return next, nil
}

func (s *ChatService) chooseTopic(conv domain.Conversation, topic string) (domain.Conversation, error) {
	if !strings.EqualFold(strings.TrimSpace(topic), domain.TopicIPC) {
		return conv, fmt.Errorf("%w: unknown topic %q", domain.ErrInvalidInput, topic)
	}

	tr := domain.Translations(conv.Language)
	return s.advance(conv, domain.ChatAwaitingSectionNumber,
		s.bot(tr.T(domain.TextSectionPrompt)+"\n"+tr.T(domain.TextSectionExample)),
	), nil
}

// enterSection ignores blank input and otherwise always reaches
// ShowingResult, with either the section or a not-found reply.
func (s *ChatService) enterSection(
	ctx context.Context, conv domain.Conversation, text string,
) (domain.Conversation, error) {
	number := strings.TrimSpace(text)
	if number == "" {
		return conv, nil
	}

	tr := domain.Translations(conv.Language)
	back := domain.ChatOption{Label: tr.T(domain.TextBackToMain), Event: domain.Back()}
	question := s.user("Section " + number)

	sec, err := s.legal.Section(ctx, domain.DatasetIPC, number)
	if errors.Is(err, domain.ErrNotFound) {
		return s.advance(conv, domain.ChatShowingResult,
			question, s.bot(tr.T(domain.TextSectionNotFound), back)), nil
	}
	if err != nil {
		return conv, err
	}

	answer := s.bot(fmt.Sprintf("IPC Section %d\n%s\n%s", sec.Number, sec.Title, sec.Description), back)
	answer.Section = sec
	return s.advance(conv, domain.ChatShowingResult, question, answer), nil
}

// advance returns a new snapshot; the input transcript is not shared.
func (s *ChatService) advance(
	conv domain.Conversation, state domain.ChatState, msgs ...domain.ChatMessage,
) domain.Conversation {
	transcript := make([]domain.ChatMessage, 0, len(conv.Transcript)+len(msgs))
	transcript = append(transcript, conv.Transcript...)
	transcript = append(transcript, msgs...)
	return domain.Conversation{
		State:      state,
		Language:   conv.Language,
		Transcript: transcript,
	}
}

func (s *ChatService) bot(content string, options ...domain.ChatOption) domain.ChatMessage {
	return domain.ChatMessage{
		ID:      s.newID(),
		Role:    domain.RoleBot,
		Content: content,
		Options: options,
		At:      s.now(),
	}
}

func (s *ChatService) user(content string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:      s.newID(),
		Role:    domain.RoleUser,
		Content: content,
		At:      s.now(),
	}
}
