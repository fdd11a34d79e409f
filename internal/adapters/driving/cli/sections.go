package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

var (
	sectionsCode string
	showCode     string
	exportCode   string
	exportFormat string
	exportOut    string
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Browse a legal code chapter by chapter",
	Long: `Prints the chapters of the Indian Penal Code (ipc) or the Code of
Civil Procedure (cpc) with every section number and description.`,
	Args: cobra.NoArgs,
	RunE: runSections,
}

var sectionsShowCmd = &cobra.Command{
	Use:   "show [number]",
	Short: "Show one section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionsShow,
}

var sectionsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a legal code as Markdown or HTML",
	Args:  cobra.NoArgs,
	RunE:  runSectionsExport,
}

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsCode, "code", "c", "ipc", "legal code: ipc or cpc")
	sectionsShowCmd.Flags().StringVarP(&showCode, "code", "c", "ipc", "legal code: ipc or cpc")
	sectionsExportCmd.Flags().StringVarP(&exportCode, "code", "c", "ipc", "legal code: ipc or cpc")
	sectionsExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "md", "output format: md or html")
	sectionsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")

	sectionsCmd.AddCommand(sectionsShowCmd)
	sectionsCmd.AddCommand(sectionsExportCmd)
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	if legalService == nil {
		return errNoLegal
	}
	kind, err := domain.ParseDatasetKind(sectionsCode)
	if err != nil {
		return err
	}

	chapters, err := legalService.Chapters(commandContext(cmd), kind)
	if err != nil {
		return fmt.Errorf("loading %s: %w", kind, err)
	}

	cmd.Println(kind.Title())
	for _, ch := range chapters {
		cmd.Println()
		cmd.Printf("%s (%d)\n", ch.Title, len(ch.Sections))
		for _, s := range ch.Sections {
			cmd.Printf("  %5s  %s\n", s.Number, s.Description)
		}
	}
	return nil
}

func runSectionsShow(cmd *cobra.Command, args []string) error {
	if legalService == nil {
		return errNoLegal
	}
	kind, err := domain.ParseDatasetKind(showCode)
	if err != nil {
		return err
	}

	section, err := legalService.Section(commandContext(cmd), kind, args[0])
	if err != nil {
		return fmt.Errorf("%s section %s: %w", kind, args[0], err)
	}
	return renderMarkdown(cmd, sectionMarkdown(kind, section))
}

func runSectionsExport(cmd *cobra.Command, _ []string) error {
	if legalService == nil {
		return errNoLegal
	}
	kind, err := domain.ParseDatasetKind(exportCode)
	if err != nil {
		return err
	}

	chapters, err := legalService.Chapters(commandContext(cmd), kind)
	if err != nil {
		return fmt.Errorf("loading %s: %w", kind, err)
	}
	md := outlineMarkdown(kind, chapters)

	var out []byte
	switch exportFormat {
	case "md", "markdown":
		out = []byte(md)
	case "html":
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(md), &buf); err != nil {
			return fmt.Errorf("converting to html: %w", err)
		}
		out = buf.Bytes()
	default:
		return fmt.Errorf("%w: unknown format %q (want md or html)", domain.ErrInvalidInput, exportFormat)
	}

	if exportOut == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(exportOut, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	cmd.Printf("Wrote %s (%d sections)\n", exportOut, domain.CountSections(chapters))
	return nil
}
