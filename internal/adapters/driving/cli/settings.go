package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the interface language, theme, vision mode and the
FIR backend connection.

Environment variables (NYAYA_*) take precedence over saved values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Validates and saves a single setting, for example:

  nyaya settings set ui.language hi
  nyaya settings set ui.dark true
  nyaya settings set backend.url https://fir.example.org`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Walks through language, theme and vision mode one step at a time.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	all := settingsService.All()
	keys := settingsService.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	for _, k := range keys {
		cmd.Printf("  %-*s  %s\n", width, k, all[k])
	}

	p := currentPreferences()
	cmd.Println()
	cmd.Printf("Language: %s, theme: %s, vision: %s\n",
		p.Language.NativeName(), themeName(p.Dark), p.Colorblind.Description())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("setting %s: %w", args[0], err)
	}
	cmd.Printf("Set %s to %s\n", args[0], settingsService.All()[args[0]])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	cmd.Println("Nyaya Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())
	prefs := currentPreferences()

	cmd.Println("Step 1: Language")
	langs := domain.Languages()
	for i, l := range langs {
		cmd.Printf("  %d. %s (%s)\n", i+1, l.NativeName(), l)
	}
	cmd.Printf("\nEnter choice [%d]: ", indexOf(langs, prefs.Language)+1)
	prefs = prefs.WithLanguage(langs[parseChoice(readLine(reader), len(langs), indexOf(langs, prefs.Language)+1)-1])
	cmd.Println()

	cmd.Println("Step 2: Theme")
	cmd.Println("  1. Light")
	cmd.Println("  2. Dark")
	current := 1
	if prefs.Dark {
		current = 2
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	prefs = prefs.WithDark(parseChoice(readLine(reader), 2, current) == 2)
	cmd.Println()

	cmd.Println("Step 3: Vision mode")
	modes := domain.ColorblindModes()
	for i, m := range modes {
		cmd.Printf("  %d. %s\n", i+1, m.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", indexOf(modes, prefs.Colorblind)+1)
	prefs = prefs.WithColorblind(modes[parseChoice(readLine(reader), len(modes), indexOf(modes, prefs.Colorblind)+1)-1])
	cmd.Println()

	if err := settingsService.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	cmd.Printf("Saved: %s, %s theme, %s\n",
		prefs.Language.NativeName(), themeName(prefs.Dark), prefs.Colorblind.Description())
	return nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// parseChoice returns the 1-based choice in input, or defaultVal when
// input is blank or out of range.
func parseChoice(input string, maxVal, defaultVal int) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > maxVal {
		return defaultVal
	}
	return choice
}
