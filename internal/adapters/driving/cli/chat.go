package cli

import (
	"bufio"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the legal assistant",
	Long: `Starts the scripted legal assistant. Pick an option by typing its
number, type a section number when asked, "back" to start over, or
"q" to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errNoChat
	}
	ctx := commandContext(cmd)

	conv := chatService.Begin(currentPreferences().Language)
	shown := 0
	shown = printTranscript(cmd, conv, shown)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "q", "quit", "exit":
			return nil
		case "":
			continue
		}

		event, ok := chatEvent(conv, input)
		if !ok {
			cmd.Println("Choose an option by its number, or q to quit.")
			continue
		}

		next, err := chatService.Handle(ctx, conv, event)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidTransition) {
				cmd.Println(err.Error())
				continue
			}
			return err
		}
		if len(next.Transcript) < shown {
			// Back restarts the transcript.
			shown = 0
			cmd.Println()
		}
		conv = next
		shown = printTranscript(cmd, conv, shown)
	}
}

// chatEvent maps a line of input to the event it selects.
func chatEvent(conv domain.Conversation, input string) (domain.ChatEvent, bool) {
	if strings.EqualFold(input, "back") {
		return domain.Back(), true
	}
	options := conv.Options()
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) && !conv.AcceptsText() {
		return options[n-1].Event, true
	}
	if conv.AcceptsText() {
		return domain.EnterSection(input), true
	}
	return domain.ChatEvent{}, false
}

// printTranscript prints messages from index shown onwards and returns
// the new count.
func printTranscript(cmd *cobra.Command, conv domain.Conversation, shown int) int {
	for _, msg := range conv.Transcript[shown:] {
		if msg.Role == domain.RoleUser {
			cmd.Printf("you: %s\n", msg.Content)
			continue
		}
		cmd.Printf("%s:\n", domain.AssistantName)
		for _, line := range strings.Split(msg.Content, "\n") {
			cmd.Printf("  %s\n", line)
		}
		for i, opt := range msg.Options {
			cmd.Printf("  [%d] %s\n", i+1, opt.Label)
		}
	}
	return len(conv.Transcript)
}
