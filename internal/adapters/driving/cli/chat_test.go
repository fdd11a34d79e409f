package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

func TestChatCmd_SectionLookup(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "1\n1\n1\n378\nq\n", "chat")

	require.NoError(t, err)
	assert.Contains(t, out, domain.AssistantName+":")
	assert.Contains(t, out, "[1] Please select your preferred language:")
	assert.Contains(t, out, "you: Section 378")
	assert.Contains(t, out, "IPC Section 378")
}

func TestChatCmd_UnknownInput(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "hello\nq\n", "chat")

	require.NoError(t, err)
	assert.Contains(t, out, "Choose an option by its number, or q to quit.")
}

func TestChatCmd_BackRestarts(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "1\nback\n", "chat")

	require.NoError(t, err)
	// The welcome is printed at start and again after back.
	assert.Equal(t, 2, strings.Count(out, "Hello! How may I assist you today?"))
}

func TestChatCmd_EndOfInput(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "chat")

	assert.NoError(t, err)
}

func TestChatEvent(t *testing.T) {
	s := setupTestServices(t)
	conv := s.Chat.Begin(domain.LanguageEnglish)

	event, ok := chatEvent(conv, "1")
	assert.True(t, ok)
	assert.Equal(t, domain.Start(), event)

	_, ok = chatEvent(conv, "7")
	assert.False(t, ok)

	event, ok = chatEvent(conv, "BACK")
	assert.True(t, ok)
	assert.Equal(t, domain.Back(), event)

	conv.State = domain.ChatAwaitingSectionNumber
	event, ok = chatEvent(conv, "1")
	assert.True(t, ok)
	assert.Equal(t, domain.EnterSection("1"), event)
}
