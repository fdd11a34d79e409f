package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

func newTestChat() *ChatService {
	return NewChatService(NewLegalService(newMockDatasets()))
}

// walk applies events in order and fails the test on the first error.
func walk(t *testing.T, svc *ChatService, conv domain.Conversation, events ...domain.ChatEvent) domain.Conversation {
	t.Helper()
	for _, ev := range events {
		var err error
		conv, err = svc.Handle(context.Background(), conv, ev)
		require.NoError(t, err, "event %s", ev.Kind)
	}
	return conv
}

func TestChat_Begin(t *testing.T) {
	conv := newTestChat().Begin(domain.LanguageEnglish)

	assert.Equal(t, domain.ChatWelcome, conv.State)
	require.Len(t, conv.Transcript, 1)
	assert.Equal(t, "Hello! How may I assist you today?", conv.Transcript[0].Content)
	require.Len(t, conv.Options(), 1)
	assert.Equal(t, domain.EventStart, conv.Options()[0].Event.Kind)
}

func TestChat_BeginInvalidLanguageFallsBack(t *testing.T) {
	conv := newTestChat().Begin(domain.Language("xx"))
	assert.Equal(t, domain.DefaultLanguage, conv.Language)
}

func TestChat_HappyPath(t *testing.T) {
	svc := newTestChat()
	conv := svc.Begin(domain.LanguageEnglish)

	conv = walk(t, svc, conv, domain.Start())
	assert.Equal(t, domain.ChatAwaitingLanguage, conv.State)
	assert.Len(t, conv.Options(), len(domain.Languages()))

	conv = walk(t, svc, conv, domain.ChooseLanguage(domain.LanguageHindi))
	assert.Equal(t, domain.ChatAwaitingTopic, conv.State)
	assert.Equal(t, domain.LanguageHindi, conv.Language)
	assert.Contains(t, conv.LastMessage().Content, "भाषा हिंदी में सेट की गई")
	require.Len(t, conv.Options(), 2)
	assert.Equal(t, "भारतीय दंड संहिता (IPC)", conv.Options()[0].Label)

	conv = walk(t, svc, conv, domain.ChooseTopic(domain.TopicIPC))
	assert.Equal(t, domain.ChatAwaitingSectionNumber, conv.State)
	assert.True(t, conv.AcceptsText())

	conv = walk(t, svc, conv, domain.EnterSection(" 302 "))
	assert.Equal(t, domain.ChatShowingResult, conv.State)
	last := conv.LastMessage()
	require.NotNil(t, last.Section)
	assert.Equal(t, 302, last.Section.Number)
	assert.Contains(t, last.Content, "IPC Section 302")
	assert.Contains(t, last.Content, "Punishment for murder")
	assert.Equal(t, domain.RoleUser, conv.Transcript[len(conv.Transcript)-2].Role)
	assert.Equal(t, "Section 302", conv.Transcript[len(conv.Transcript)-2].Content)
}

func TestChat_SectionNotFound(t *testing.T) {
	svc := newTestChat()
	conv := walk(t, svc, svc.Begin(domain.LanguageEnglish),
		domain.Start(), domain.ChooseLanguage(domain.LanguageTamil), domain.ChooseTopic("ipc"), domain.EnterSection("9999"))

	assert.Equal(t, domain.ChatShowingResult, conv.State)
	assert.Equal(t, "பிரிவு கிடைக்கவில்லை. வேறு பிரிவு எண்ணை முயற்சிக்கவும்.", conv.LastMessage().Content)
	assert.Nil(t, conv.LastMessage().Section)
}

func TestChat_SectionPromptIsTranslated(t *testing.T) {
	svc := newTestChat()
	conv := walk(t, svc, svc.Begin(domain.LanguageEnglish),
		domain.Start(), domain.ChooseLanguage(domain.LanguageHindi), domain.ChooseTopic("ipc"))

	tr := domain.Translations(domain.LanguageHindi)
	assert.Equal(t, tr.T(domain.TextSectionPrompt)+"\n"+tr.T(domain.TextSectionExample), conv.LastMessage().Content)
	assert.NotContains(t, conv.LastMessage().Content, "Example")
}

func TestChat_BlankSectionIgnored(t *testing.T) {
	svc := newTestChat()
	conv := walk(t, svc, svc.Begin(domain.LanguageEnglish),
		domain.Start(), domain.ChooseLanguage(domain.LanguageEnglish), domain.ChooseTopic("ipc"))

	next := walk(t, svc, conv, domain.EnterSection("   "))

	assert.Equal(t, conv, next)
}

func TestChat_InvalidTransitions(t *testing.T) {
	svc := newTestChat()
	welcome := svc.Begin(domain.LanguageEnglish)
	awaitingLang := walk(t, svc, welcome, domain.Start())

	tests := []struct {
		name  string
		conv  domain.Conversation
		event domain.ChatEvent
	}{
		{"section at welcome", welcome, domain.EnterSection("1")},
		{"topic at welcome", welcome, domain.ChooseTopic("ipc")},
		{"start twice", awaitingLang, domain.Start()},
		{"section before topic", awaitingLang, domain.EnterSection("1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Handle(context.Background(), tt.conv, tt.event)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Equal(t, tt.conv, got)

			var te *domain.TransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.conv.State, te.State)
		})
	}
}

func TestChat_InvalidValues(t *testing.T) {
	svc := newTestChat()
	awaitingLang := walk(t, svc, svc.Begin(domain.LanguageEnglish), domain.Start())

	got, err := svc.Handle(context.Background(), awaitingLang, domain.ChooseLanguage("fr"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, awaitingLang, got)

	awaitingTopic := walk(t, svc, awaitingLang, domain.ChooseLanguage(domain.LanguageEnglish))
	_, err = svc.Handle(context.Background(), awaitingTopic, domain.ChooseTopic("cpc"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChat_BackResetsFromAnyState(t *testing.T) {
	svc := newTestChat()
	conv := walk(t, svc, svc.Begin(domain.LanguageEnglish),
		domain.Start(), domain.ChooseLanguage(domain.LanguageGujarati), domain.ChooseTopic("ipc"))

	reset := walk(t, svc, conv, domain.Back())

	assert.Equal(t, domain.ChatWelcome, reset.State)
	assert.Equal(t, domain.LanguageGujarati, reset.Language)
	require.Len(t, reset.Transcript, 1)
	assert.Equal(t, "નમસ્તે! હું તમને કેવી રીતે મદદ કરી શકું?", reset.Transcript[0].Content)
}

func TestChat_HandleDoesNotMutateInput(t *testing.T) {
	svc := newTestChat()
	welcome := svc.Begin(domain.LanguageEnglish)
	before := len(welcome.Transcript)

	_ = walk(t, svc, welcome, domain.Start())

	assert.Len(t, welcome.Transcript, before)
	assert.Equal(t, domain.ChatWelcome, welcome.State)
}
