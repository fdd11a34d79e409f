package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_HasFlags(t *testing.T) {
	code := searchCmd.Flags().Lookup("code")
	require.NotNil(t, code)
	assert.Equal(t, "c", code.Shorthand)
	assert.Equal(t, "ipc", code.DefValue)

	assert.NotNil(t, searchCmd.Flags().Lookup("json"))
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestSearchCmd_FindsTheft(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "search", "theft")

	require.NoError(t, err)
	assert.Contains(t, out, "Indian Penal Code (IPC)")
	assert.Contains(t, out, "Chapter XVII: Offences Against Property")
	assert.Contains(t, out, "378")
	assert.Contains(t, out, "379")
}

func TestSearchCmd_JoinsWords(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "search", "punishment", "theft")

	require.NoError(t, err)
	assert.Contains(t, out, "379")
}

func TestSearchCmd_NoResults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "search", "zzzz-no-such-text")

	require.NoError(t, err)
	assert.Contains(t, out, "No sections found")
}

func TestSearchCmd_InvalidCode(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "search", "--code", "crpc", "theft")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "search", "--json", "theft")
	require.NoError(t, err)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.DatasetIPC, result.Kind)
	assert.Equal(t, "theft", result.Query)
	assert.False(t, result.IsEmpty())
}

func TestSearchCmd_NoService(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)

	_, err := execute(t, "", "search", "theft")

	assert.ErrorIs(t, err, errNoLegal)
}
