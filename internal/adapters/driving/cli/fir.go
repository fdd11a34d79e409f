package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

var (
	firDocumentOut  string
	firDocumentText bool
)

var firCmd = &cobra.Command{
	Use:   "fir",
	Short: "Track registered FIRs",
	Long:  `Look up a registered First Information Report, search records, or fetch the filed document.`,
}

var firGetCmd = &cobra.Command{
	Use:   "get [fir-id]",
	Short: "Show the status of a FIR",
	Args:  cobra.ExactArgs(1),
	RunE:  runFIRGet,
}

var firSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search FIRs by number, station, type or description",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFIRSearch,
}

var firDocumentCmd = &cobra.Command{
	Use:   "document [fir-id]",
	Short: "Download the filed document",
	Long: `Fetches the FIR document from the backend. Use --out to save it to a
file or --text to print the text extracted from the PDF.`,
	Args: cobra.ExactArgs(1),
	RunE: runFIRDocument,
}

func init() {
	firDocumentCmd.Flags().StringVarP(&firDocumentOut, "out", "o", "", "save the document to this file")
	firDocumentCmd.Flags().BoolVar(&firDocumentText, "text", false, "print the document text")

	firCmd.AddCommand(firGetCmd)
	firCmd.AddCommand(firSearchCmd)
	firCmd.AddCommand(firDocumentCmd)
	rootCmd.AddCommand(firCmd)
}

func runFIRGet(cmd *cobra.Command, args []string) error {
	if firService == nil {
		return errNoFIR
	}
	lang := currentPreferences().Language
	t := domain.Translations(lang)

	fir, err := firService.Lookup(commandContext(cmd), args[0])
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return errors.New(t.T(domain.TextInvalidFIRID))
	case errors.Is(err, domain.ErrNotFound):
		return errors.New(t.T(domain.TextFIRNotFound))
	case err != nil:
		return err
	}

	printFIR(cmd, fir, lang)
	return nil
}

func runFIRSearch(cmd *cobra.Command, args []string) error {
	if firService == nil {
		return errNoFIR
	}
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	firs, err := firService.Search(commandContext(cmd), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(firs) == 0 {
		cmd.Println("No FIRs found.")
		return nil
	}

	lang := currentPreferences().Language
	for i := range firs {
		cmd.Printf("%-11s %-12s %-10s %-18s %s\n",
			firs[i].ID, firs[i].Status.Label(lang), firs[i].Date, firs[i].Type, firs[i].Station)
	}
	return nil
}

func runFIRDocument(cmd *cobra.Command, args []string) error {
	if firService == nil {
		return errNoFIR
	}
	ctx := commandContext(cmd)

	if firDocumentText {
		text, err := firService.DocumentText(ctx, args[0])
		if err != nil {
			return fmt.Errorf("document text: %w", err)
		}
		cmd.Println(text)
		return nil
	}

	doc, err := firService.Document(ctx, args[0])
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}

	out := firDocumentOut
	if out == "" {
		out = doc.FIRID + extensionFor(doc.ContentType)
	}
	if err := os.WriteFile(out, doc.Data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	cmd.Printf("Saved %s (%d bytes, %s)\n", out, len(doc.Data), doc.ContentType)
	return nil
}

func printFIR(cmd *cobra.Command, fir *domain.FIR, lang domain.Language) {
	cmd.Printf("FIR:         %s\n", fir.ID)
	cmd.Printf("Status:      %s\n", fir.Status.Label(lang))
	cmd.Printf("Station:     %s\n", fir.Station)
	cmd.Printf("Date:        %s\n", fir.Date)
	cmd.Printf("Type:        %s\n", fir.Type)
	cmd.Printf("Language:    %s\n", fir.Language.NativeName())
	cmd.Printf("Description: %s\n", fir.Description)
	if fir.URL != "" {
		cmd.Printf("Document:    %s\n", fir.URL)
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	default:
		return ".bin"
	}
}
