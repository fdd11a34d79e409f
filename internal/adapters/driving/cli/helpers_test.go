package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/adapters/driven/dataset"
	"github.com/nyayvidhi/nyaya/internal/adapters/driven/storage/memory"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/services"
)

var testFIRs = []domain.FIR{
	{
		ID:          "FIR2024001",
		Status:      domain.FIRInProgress,
		Language:    domain.LanguageEnglish,
		Station:     "Connaught Place",
		Date:        "2024-03-01",
		Type:        "Theft",
		Description: "Mobile phone stolen near metro gate",
	},
	{
		ID:          "FIR2024002",
		Status:      domain.FIRResolved,
		Language:    domain.LanguageHindi,
		Station:     "Deccan Gymkhana",
		Date:        "2024-04-11",
		Type:        "Fraud",
		Description: "Online payment fraud",
	},
}

// setupTestServices installs real services over in-memory stores and
// restores the command globals when the test ends.
func setupTestServices(t *testing.T) *Services {
	t.Helper()
	provider, err := dataset.New("")
	require.NoError(t, err)

	legal := services.NewLegalService(provider)
	s := &Services{
		Legal:        legal,
		FIR:          services.NewFIRService(memory.NewFIRStore(testFIRs...), nil, nil),
		Registration: services.NewRegistrationService(memory.NewSubmissionStore(), nil),
		Chat:         services.NewChatService(legal),
		Settings:     services.NewSettingsService(memory.NewConfigStore(), t.TempDir()),
	}
	SetServices(s)
	t.Cleanup(func() {
		SetServices(nil)
		resetFlags()
	})
	return s
}

// resetFlags restores flag variables, which cobra keeps between runs.
func resetFlags() {
	searchCode, searchJSON = "ipc", false
	sectionsCode, showCode, exportCode = "ipc", "ipc", "ipc"
	exportFormat, exportOut = "md", ""
	firDocumentOut, firDocumentText = "", false
	registerFrom = ""
}

// execute runs the root command with args, feeding stdin, and returns
// everything written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := ExecuteContext(context.Background())
	return buf.String(), err
}
