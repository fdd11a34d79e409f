package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

var (
	searchCode string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search legal sections",
	Long: `Finds sections whose number or description contain every word of
the query, ignoring case. A number on its own also matches section
numbers that contain it, so "37" finds sections 37, 137 and 378.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCode, "code", "c", "ipc", "legal code: ipc or cpc")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if legalService == nil {
		return errNoLegal
	}
	kind, err := domain.ParseDatasetKind(searchCode)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	result, err := legalService.Search(commandContext(cmd), kind, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}
	outputSearchText(cmd, result)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, result *domain.SearchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, result *domain.SearchResult) {
	t := domain.Translations(currentPreferences().Language)

	if result.IsEmpty() {
		cmd.Println(t.T(domain.TextNoResults))
		return
	}

	cmd.Printf("Found %d results in %s\n", result.Count(), result.Kind.Title())
	for _, ch := range result.Chapters {
		cmd.Println()
		cmd.Println(renderSpans(ch.TitleSpans))
		for _, s := range ch.Sections {
			cmd.Printf("  %s  %s\n", renderSpans(s.NumberSpans), renderSpans(s.DescriptionSpans))
		}
	}
}
